package config

import "github.com/kayatools/kayadata/internal/logging"

// ToLoggingConfig converts the config section into a logging.Config. When a
// file is configured the output destination becomes the file; otherwise
// logs go to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
