// Package config provides configuration management for the forge service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults bound from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for profile storage
//   - Storage: S3/MinIO credentials and the gamedata bucket
//   - Log: Logging level and format
//   - Forge: save profile and gamedata object names
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
