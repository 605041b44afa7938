// Package config provides configuration management for the DataSure service.
//
// It uses Viper for loading configuration from environment variables and an
// optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, default environment label)
//   - Log: Logging level and format
//
// Defaults come from 'default' struct tags on the partial configs, so each
// package documents its own settings next to the code that uses them.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
