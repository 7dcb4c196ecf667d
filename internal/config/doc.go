// Package config manages application configuration for MeowHome.
//
// Configuration is loaded from environment variables via struct tags
// and validated in one pass. All configuration is centralized here to
// provide a single source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - DatabaseConfig: SurrealDB connection settings
//   - FamilyConfig: household id and device identity file
//   - ParserConfig: magic input (Gemini) settings
//   - MediaConfig: photo binary storage
//   - SyncConfig: realtime sync intervals
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT         - HTTP server port (default: 8080)
//	DB_HOST / DB_PORT   - SurrealDB endpoint
//	DB_NAMESPACE        - Database namespace (default: meowhome)
//	FAMILY_ID           - Household identifier (default: demo-family)
//	GEMINI_API_KEY      - Enables magic input when set
//	SYNC_POLL_INTERVAL  - Collection re-list cadence (default: 2s)
//	READY_TIMEOUT       - Startup readiness bound (default: 1s)
package config
