package config

import (
	"os"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	TypesenseHost   string
	TypesenseAPIKey string
	SyncSchedule    string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGO_DB", "crags"),
		TypesenseHost:   os.Getenv("TYPESENSE_HOST"),    // no default: required for sync
		TypesenseAPIKey: os.Getenv("TYPESENSE_API_KEY"), // no default: required for sync
		SyncSchedule:    os.Getenv("SYNC_SCHEDULE"),     // cron spec, e.g. "@every 24h"; empty disables
	}
}

// SearchConfigured reports whether the destination index is reachable in
// principle. The sync job treats false as a fatal precondition.
func (c Config) SearchConfigured() bool {
	return c.TypesenseHost != "" && c.TypesenseAPIKey != ""
}
