package config

const (
	defaultOutputDir = "~/.local/share/ttresults/html"
	defaultHeader    = "INDOOR TIME TRIAL SERIES"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Dir:    defaultOutputDir,
			Header: defaultHeader,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
