package constant

const (
	LogFormat             = "log-format"
	LogFormatJSON         = "json"
	LogFormatText         = "text"
	LogLevel              = "log-level"
	LogLevelDebug         = "debug"
	LogLevelInfo          = "info"
	LogLevelWarn          = "warn"
	LogLevelError         = "error"
	Port                  = "port"
	Endpoint              = "endpoint"
	OpenTelemetryEnabled  = "opentelemetry-enabled"
	OpenTelemetryEndpoint = "opentelemetry-endpoint"
	StorageType           = "storage-type"
	StorageTypeInMemory   = "inmemory"
	NotifierType          = "notifier"
	NotifierTypeLog       = "log"
	NotifierTypeNone      = "none"
	PreSet                = "preset"
	Remote                = "remote"
)
