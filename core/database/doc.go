// Package database handles the MySQL connection for profile storage.
//
// It provides a wrapper around GORM to configure the connection from
// application settings, with timeouts applied at the DSN level and an
// initial ping verifying reachability.
//
// The connection is optional: when no database is reachable the service
// falls back to in-memory storage slots, so callers should treat a Connect
// failure as a warning rather than fatal.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database unavailable, using in-memory slots", err)
//	}
package database
