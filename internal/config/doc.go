// Package config handles configuration loading, parsing, and validation
// from environment variables and YAML files. Settings are read with viper,
// using the TIMEKEEPER_ prefix for environment overrides, and validated with
// go-playground/validator before use.
package config
