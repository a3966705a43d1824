package config

const (
	// Configuration file paths
	ConfigPathItems    = "configs/items.json"
	ConfigPathSessions = "configs/sessions.json"
)
