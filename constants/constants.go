package constants

import "os"

func GetSessionDir() string {
	path := os.Getenv("SESSION_PATH")
	if path != "" {
		return path
	}
	return "./sessions"
}

func GetServePort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// SessionTable is the DynamoDB table holding session metadata rows.
const SessionTable = "pitchmatch-sessions"

// InTuneCents is how far off a match can be and still count as in tune.
const InTuneCents = 5.0
