// Package config manages user-level settings stored at ~/.tsconfig-presets/config.yaml.
// Every key can also be supplied through a TSCONFIG_PRESETS_<KEY> environment
// variable, which takes precedence over the file.
package config
