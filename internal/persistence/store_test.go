package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nars/internal/engine"
)

func testStore() *SQLiteStore {
	return NewSQLiteStore(5000)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	store := testStore()
	path := filepath.Join(t.TempDir(), "nars.db")

	snapshot := engine.Snapshot{
		Concepts: []engine.ConceptSnapshot{
			{
				Term:    "(raven --> bird)",
				Beliefs: []engine.TruthSnapshot{{F: 0.9, C: 0.8}},
			},
			{
				Term:    "bird",
				Beliefs: []engine.TruthSnapshot{{F: 0.9, C: 0.8}, {F: 0.7, C: 0.5}},
				Desires: []engine.TruthSnapshot{{F: 1.0, C: 0.6}},
			},
		},
	}

	require.NoError(t, store.Save(path, snapshot))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Concepts, 2)

	byTerm := make(map[string]engine.ConceptSnapshot, len(loaded.Concepts))
	for _, c := range loaded.Concepts {
		byTerm[c.Term] = c
	}

	raven := byTerm["(raven --> bird)"]
	assert.Len(t, raven.Beliefs, 1)
	assert.InDelta(t, 0.9, raven.Beliefs[0].F, 1e-9)

	bird := byTerm["bird"]
	assert.Len(t, bird.Beliefs, 2)
	assert.Len(t, bird.Desires, 1)
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	store := testStore()
	path := filepath.Join(t.TempDir(), "nars.db")

	require.NoError(t, store.Save(path, engine.Snapshot{
		Concepts: []engine.ConceptSnapshot{{Term: "a", Beliefs: []engine.TruthSnapshot{{F: 0.5, C: 0.5}}}},
	}))
	require.NoError(t, store.Save(path, engine.Snapshot{
		Concepts: []engine.ConceptSnapshot{{Term: "b", Beliefs: []engine.TruthSnapshot{{F: 0.6, C: 0.6}}}},
	}))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Concepts, 1)
	assert.Equal(t, "b", loaded.Concepts[0].Term)
}

func TestLoadEmptyDatabase(t *testing.T) {
	store := testStore()
	path := filepath.Join(t.TempDir(), "empty.db")

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Concepts)
}
