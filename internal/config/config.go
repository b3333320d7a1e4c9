// Package config defines tool configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() to build a Config with defaults; Load() layers file/env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for the squad tools.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// RoleFile is the default path of the target-formation document.
	RoleFile string `koanf:"role_file"`

	// PlayerTable is the default path of the scouted-player table
	// (.xlsx, .csv, or .tsv).
	PlayerTable string `koanf:"player_table"`

	// TableHeaderRows is how many heading rows to drop from the table.
	TableHeaderRows int `koanf:"table_header_rows"`

	// TableSheet names the worksheet to read from workbook files;
	// empty means the first sheet.
	TableSheet string `koanf:"table_sheet"`

	// MetricsAddr exposes Prometheus metrics on this address when set,
	// e.g. ":9090". Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// PoolShardCount configures the number of shards in the pool store.
	PoolShardCount int `koanf:"pool_shard_count"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		RoleFile:        "roles.txt",
		PlayerTable:     "players.xlsx",
		TableHeaderRows: 1,
		PoolShardCount:  8,
	}
}
