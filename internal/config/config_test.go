package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("TYPESENSE_HOST", "")
	t.Setenv("TYPESENSE_API_KEY", "")

	cfg := Load()
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI %q", cfg.MongoURI)
	}
	if cfg.TypesenseHost != "" || cfg.TypesenseAPIKey != "" {
		t.Error("search destination must have no default")
	}
	if cfg.SearchConfigured() {
		t.Error("SearchConfigured true with no host and key")
	}
}

func TestSearchConfigured(t *testing.T) {
	t.Setenv("TYPESENSE_HOST", "http://localhost:8108")
	t.Setenv("TYPESENSE_API_KEY", "")
	if Load().SearchConfigured() {
		t.Error("host alone must not count as configured")
	}

	t.Setenv("TYPESENSE_API_KEY", "xyz")
	if !Load().SearchConfigured() {
		t.Error("host plus key must count as configured")
	}
}
