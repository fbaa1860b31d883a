// Package config resolves sleigh settings (santa name, bag capacity, selection
// policy, scenario file, pacing, log format) from defaults, SLEIGH_*
// environment variables, an optional YAML file and CLI flags, in increasing
// order of precedence.
package config
