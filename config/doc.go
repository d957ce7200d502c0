// Package config loads settings structs from configuration files, .env files
// and environment variables.
//
// It uses Viper for the file formats it understands (YAML, JSON, TOML) and
// godotenv for .env files. Environment variables sharing the loader's prefix
// override file values, with underscores mapping to nesting:
//
//	BILLING_API_HTTP_BASE_URL=https://billing.internal  ->  http.base_url
//
// # Usage
//
//	var s endpoint.Settings
//	err := config.Load("billing-api", &s, config.WithConfigFile("./billing.yml"))
package config
