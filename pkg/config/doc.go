// Package config loads typed configuration from environment variables.
//
// Structs are described with caarlos0/env tags; .env files are read with
// joho/godotenv. Load caches one value per config type for the life of the
// process, while Parse and ParseFrom always parse fresh and suit tests.
//
//	var cfg app.Config
//	config.MustLoad(&cfg)
//
// Nested structs without a tag prefix share the flat namespace, so a service
// config can embed httpserver.Config and email.Config directly.
package config
