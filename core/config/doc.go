// Package config provides configuration management for the PantryPal API.
//
// It uses Viper to read environment variables, after loading a .env file with godotenv
// when one is present. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings:
//   - Environment (ENVIRONMENT): deployment label, "development" by default
//   - AllowedOrigins (ALLOWED_ORIGINS): comma-separated CORS allow-list
//   - Server (SERVER_*): host, port, shutdown timeout
//   - Database (DATABASE_*): optional PostgreSQL/MySQL/SQLite connection
//   - Storage (STORAGE_*): optional S3/MinIO bucket
//   - Log (LOG_*): logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port, cfg.Origins())
package config
