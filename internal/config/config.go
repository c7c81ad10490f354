// Package config assembles runtime settings for the CampusHire CLI host.
// Sources are layered, later ones overriding earlier ones:
// defaults → environment (.env supported) → JSON file → command-line flags.
package config

// Config holds runtime settings for the CLI host.
//
// Fields:
//   - DataDir: directory holding the local database file.
//   - DataFile: SQLite database file name inside DataDir.
//   - SeedDemoData: write the demo jobs on first run.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	DataDir      string
	DataFile     string
	SeedDemoData bool
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.DataFile = "campushire.db"
	c.SeedDemoData = true
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given via -c/-config) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
