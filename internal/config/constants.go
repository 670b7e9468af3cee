package config

// ProgramName is used in usage output and as the environment variable prefix.
const ProgramName = "shellexpr"

// CaseFileExtensions are the recognized batch case file extensions
var CaseFileExtensions = []string{".yaml", ".yml"}

// Environment variables read by FromEnv
const (
	EnvLogLevel  = "SHELLEXPR_LOG_LEVEL"
	EnvLogFormat = "SHELLEXPR_LOG_FORMAT"
	EnvColor     = "SHELLEXPR_COLOR"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)
