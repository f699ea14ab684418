package logger

// Log implements the logger config.
//
// Keys are flat because they live in the [log] section of an INI file.
type Log struct {
	Level        string `mapstructure:"level"` // trace, debug, info, warn, error
	AppName      string `mapstructure:"app_name"`
	ServiceName  string `mapstructure:"service_name"`
	ReportCaller bool   `mapstructure:"report_caller"`

	// Console logging, used mainly for docker and dev.
	Console bool `mapstructure:"console"`
	// ConsolePretty switches the console from JSON lines to the
	// human-readable zerolog ConsoleWriter.
	ConsolePretty bool `mapstructure:"console_pretty"`

	// Rolling file logging.
	File       bool   `mapstructure:"file"`
	Path       string `mapstructure:"path"`
	InfoLog    string `mapstructure:"info_log"`
	ErrorLog   string `mapstructure:"error_log"`
	AccessLog  string `mapstructure:"access_log"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes per file before rotation
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days

	// EnableAccessLogToConsole mirrors HTTP access logs to the console.
	// Does not overrule Console: if Console is false no access log output
	// is shown either.
	EnableAccessLogToConsole bool `mapstructure:"access_console"`
	// DisableHealthz drops access log entries for /healthz calls.
	DisableHealthz bool `mapstructure:"disable_healthz"`
}
