// Package config provides configuration management for ledger-recon.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: logging level and format
//   - Recon: engine tuning (target match rate, iteration budget, timing
//     classification window and categories, balance tolerance)
//
// Environment variables map onto nested keys, e.g. RECON_TARGET_MATCH_RATE
// sets recon.target_match_rate and LOG_LEVEL sets log.level.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Recon.TargetMatchRate)
package config
