// Package config defines the application configuration and its three-layer
// resolution: command-line flags override environment variables, which
// override built-in defaults.
package config
