package config

const (
	defaultDataDir   = "~/.local/share/gavel"
	defaultCorpusDir = "~/.local/share/gavel/corpus"
	defaultLogDir    = "~/.local/share/gavel/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
	defaultMinFreeMB = 256
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			CorpusDir: defaultCorpusDir,
			LogDir:    defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Storage: Storage{
			MinFreeMB: defaultMinFreeMB,
		},
	}
}
