// Package config loads the YAML configuration of the article CLI: the
// default template, custom templates, output location, PDF timeout and
// result cache TTL.
package config
