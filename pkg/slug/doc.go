// Package slug generates URL- and DNS-safe identifiers from free-form text.
// Organization creation uses it to derive a subdomain slug from the
// organization name, optionally with a random suffix to dodge collisions.
package slug
