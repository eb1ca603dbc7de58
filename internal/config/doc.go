// Package config loads runtime settings from the environment and validates them.
package config
