// Package graphmirror optionally mirrors concept.Memory's term-link graph
// into Neo4j, so the structural graph spec.md §4.6 builds in-process can be
// browsed/queried externally. Disabled unless a Mirror is explicitly
// constructed and wired into engine.Config — never part of the core NARS
// algorithm.
//
// Grounded on teacher's internal/knowledge/neo4j_client.go (env-driven
// Config, pooled neo4j.DriverWithContext, ExecuteWrite helper); adapted
// from the teacher's generic Cypher-runner client to two fixed,
// domain-specific upserts (concept node, term-link edge).
package graphmirror

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
)

// Config holds Neo4j connection settings.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
	Timeout  time.Duration
}

// DefaultConfig returns connection settings from the environment, matching
// teacher's NEO4J_* variable names.
func DefaultConfig() Config {
	cfg := Config{
		URI:      getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Username: getEnv("NEO4J_USERNAME", "neo4j"),
		Password: getEnv("NEO4J_PASSWORD", "password"),
		Database: getEnv("NEO4J_DATABASE", "neo4j"),
		Timeout:  5 * time.Second,
	}
	if ms := os.Getenv("NEO4J_TIMEOUT_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Millisecond
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Mirror writes concept and term-link upserts to a Neo4j instance.
type Mirror struct {
	driver   neo4j.DriverWithContext
	database string
	timeout  time.Duration
}

// New connects to Neo4j per cfg and verifies connectivity.
func New(cfg Config) (*Mirror, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
		func(c *config.Config) {
			c.MaxConnectionPoolSize = 20
			c.ConnectionAcquisitionTimeout = cfg.Timeout
			c.SocketConnectTimeout = cfg.Timeout
		},
	)
	if err != nil {
		return nil, fmt.Errorf("graphmirror: create driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("graphmirror: verify connectivity: %w", err)
	}

	return &Mirror{driver: driver, database: cfg.Database, timeout: cfg.Timeout}, nil
}

// Close releases the underlying driver.
func (m *Mirror) Close(ctx context.Context) error {
	if m.driver == nil {
		return nil
	}
	return m.driver.Close(ctx)
}

// UpsertConcept merges a (:Concept {term}) node, used whenever
// concept.Memory creates a new concept (see concept.Config.OnConceptCreated).
func (m *Mirror) UpsertConcept(ctx context.Context, term string) error {
	_, err := m.write(ctx, "MERGE (c:Concept {term: $term})", map[string]any{"term": term})
	if err != nil {
		return fmt.Errorf("graphmirror: upsert concept %s: %w", term, err)
	}
	return nil
}

// UpsertLink merges a (:Concept)-[:LINKS_TO]->(:Concept) edge, used
// whenever concept.Memory links a concept to a structural sub-term (see
// concept.Config.OnLinkCreated).
func (m *Mirror) UpsertLink(ctx context.Context, from, to string) error {
	_, err := m.write(ctx, `
		MERGE (a:Concept {term: $from})
		MERGE (b:Concept {term: $to})
		MERGE (a)-[:LINKS_TO]->(b)
	`, map[string]any{"from": from, "to": to})
	if err != nil {
		return fmt.Errorf("graphmirror: upsert link %s -> %s: %w", from, to, err)
	}
	return nil
}

func (m *Mirror) write(ctx context.Context, query string, params map[string]any) (any, error) {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: m.database,
		AccessMode:   neo4j.AccessModeWrite,
	})
	defer func() { _ = session.Close(ctx) }()

	return session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransactionContext) (any, error) {
		return tx.Run(ctx, query, params)
	})
}
