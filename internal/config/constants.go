package config

// Config file paths
const (
	ConfigPathEngine = "configs/engine.json"
)

// Database pool defaults
const (
	DefaultMaxConnections = 25
)
