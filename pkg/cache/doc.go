// Package cache provides a generic in-process LRU cache with optional
// per-entry TTL. It backs the organization resolver's memory cache mode when
// no Redis instance is configured.
package cache
