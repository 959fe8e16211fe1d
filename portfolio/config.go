package portfolio

import "encore.dev/config"

type Config struct {
	BackendURL            config.String
	BackendTimeoutSeconds config.Int
	// TemporalHost left empty disables the moderation workflow.
	TemporalHost      config.String
	TemporalNamespace config.String
	ReminderHours     config.Int
}

var cfg = config.Load[*Config]()
