package graphmirror

import (
	"os"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected Config
	}{
		{
			name: "default values",
			env:  map[string]string{},
			expected: Config{
				URI:      "bolt://localhost:7687",
				Username: "neo4j",
				Password: "password",
				Database: "neo4j",
				Timeout:  5 * time.Second,
			},
		},
		{
			name: "custom values from env",
			env: map[string]string{
				"NEO4J_URI":        "bolt://remote:7687",
				"NEO4J_USERNAME":   "admin",
				"NEO4J_PASSWORD":   "secret",
				"NEO4J_DATABASE":   "graph",
				"NEO4J_TIMEOUT_MS": "10000",
			},
			expected: Config{
				URI:      "bolt://remote:7687",
				Username: "admin",
				Password: "secret",
				Database: "graph",
				Timeout:  10 * time.Second,
			},
		},
		{
			name: "invalid timeout falls back to default",
			env: map[string]string{
				"NEO4J_TIMEOUT_MS": "invalid",
			},
			expected: Config{
				URI:      "bolt://localhost:7687",
				Username: "neo4j",
				Password: "password",
				Database: "neo4j",
				Timeout:  5 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neo4jVars := []string{"NEO4J_URI", "NEO4J_USERNAME", "NEO4J_PASSWORD", "NEO4J_DATABASE", "NEO4J_TIMEOUT_MS"}
			original := make(map[string]string)
			for _, k := range neo4jVars {
				original[k] = os.Getenv(k)
				os.Unsetenv(k)
			}
			defer func() {
				for k, v := range original {
					if v != "" {
						os.Setenv(k, v)
					} else {
						os.Unsetenv(k)
					}
				}
			}()

			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			got := DefaultConfig()
			if got != tt.expected {
				t.Errorf("DefaultConfig() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestNewRejectsUnreachableServer(t *testing.T) {
	cfg := Config{
		URI:      "bolt://127.0.0.1:1",
		Username: "neo4j",
		Password: "password",
		Database: "neo4j",
		Timeout:  50 * time.Millisecond,
	}
	if _, err := New(cfg); err == nil {
		t.Fatal("expected New to fail against an unreachable server")
	}
}
