// Package config loads typed configuration structs from environment
// variables.
//
// Each package owning configuration declares a Config struct with `env` and
// `envDefault` tags and the binary loads it at startup:
//
//	var cfg tenant.Config
//	config.MustLoad(&cfg)
//
// A .env file in the working directory is loaded once per process as a
// development convenience; real environments set variables directly.
// Configuration is read at process start and passed by value into
// constructors — packages never reach into the environment at request time.
package config
