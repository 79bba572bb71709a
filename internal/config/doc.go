// Package config loads the panel configuration from
// ~/.config/shellpanel/config.toml.
//
// Two keys are recognized: api_bind (host:port of the shell supervisor
// API) and export_dir (where copied session logs are written). A missing
// file yields defaults; a malformed file is an error.
package config
