// Package config loads runtime settings from the environment, optionally
// seeded from .env files.
//
//	ROP_LOG_LEVEL      debug|info|warn|error (default info)
//	ROP_LOG_FORMAT     text|json (default text)
//	ROP_WARNINGS       log|silent (default log)
//	ROP_BATCH_WORKERS  workers used by batch runs (default 1)
package config
