// Package server holds the HTTP server configuration and constants.
//
// While the application entry point handles the server startup, this package
// defines the configuration structure and the fixed list of
// deployment-environment labels (DEV, TEST, UAT, PROD) that reports display.
//
// # Usage
//
// This package is primarily used by core/config to embed server settings and
// by the validation handlers to normalize the environment form field.
package server
