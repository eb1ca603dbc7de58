package config

// Log level constants
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Store type constants
const (
	StoreTypeSQLite = "sqlite"
	StoreTypeJSON   = "json"
)

// DatabaseName names the list database; file backends derive their default
// file name from it.
const DatabaseName = "shopping_list_db"

// Theme names understood by the ui package.
const (
	ThemeClassic = "classic"
	ThemeNeon    = "neon"
	ThemeMono    = "mono"
)
