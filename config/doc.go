// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The package supports multiple named result sources and allows source
// selection by name.
package config
