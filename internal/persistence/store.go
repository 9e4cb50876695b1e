package persistence

import (
	"database/sql"
	"fmt"

	"nars/internal/engine"
)

// Save truncates path's concepts/beliefs/desires tables and repopulates
// them from snapshot, in a single transaction so a reader never observes a
// half-written snapshot.
func (s *SQLiteStore) Save(path string, snapshot engine.Snapshot) error {
	db, err := s.open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("persistence: begin save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"desires", "beliefs", "concepts"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("persistence: clear %s: %w", table, err)
		}
	}

	insertConcept, err := tx.Prepare("INSERT INTO concepts (term) VALUES (?)")
	if err != nil {
		return fmt.Errorf("persistence: prepare concept insert: %w", err)
	}
	defer insertConcept.Close()

	insertBelief, err := tx.Prepare("INSERT INTO beliefs (term, f, c) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("persistence: prepare belief insert: %w", err)
	}
	defer insertBelief.Close()

	insertDesire, err := tx.Prepare("INSERT INTO desires (term, f, c) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("persistence: prepare desire insert: %w", err)
	}
	defer insertDesire.Close()

	for _, c := range snapshot.Concepts {
		if _, err := insertConcept.Exec(c.Term); err != nil {
			return fmt.Errorf("persistence: insert concept %s: %w", c.Term, err)
		}
		for _, b := range c.Beliefs {
			if _, err := insertBelief.Exec(c.Term, b.F, b.C); err != nil {
				return fmt.Errorf("persistence: insert belief for %s: %w", c.Term, err)
			}
		}
		for _, d := range c.Desires {
			if _, err := insertDesire.Exec(c.Term, d.F, d.C); err != nil {
				return fmt.Errorf("persistence: insert desire for %s: %w", c.Term, err)
			}
		}
	}

	return tx.Commit()
}

// Load reads every concept, belief, and desire stored at path back into a
// Snapshot.
func (s *SQLiteStore) Load(path string) (engine.Snapshot, error) {
	db, err := s.open(path)
	if err != nil {
		return engine.Snapshot{}, err
	}
	defer db.Close()

	terms, err := queryTerms(db)
	if err != nil {
		return engine.Snapshot{}, err
	}

	snapshot := engine.Snapshot{Concepts: make([]engine.ConceptSnapshot, 0, len(terms))}
	for _, term := range terms {
		beliefs, err := queryTruths(db, "beliefs", term)
		if err != nil {
			return engine.Snapshot{}, err
		}
		desires, err := queryTruths(db, "desires", term)
		if err != nil {
			return engine.Snapshot{}, err
		}
		snapshot.Concepts = append(snapshot.Concepts, engine.ConceptSnapshot{
			Term:    term,
			Beliefs: beliefs,
			Desires: desires,
		})
	}
	return snapshot, nil
}

func queryTerms(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT term FROM concepts")
	if err != nil {
		return nil, fmt.Errorf("persistence: query concepts: %w", err)
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("persistence: scan concept: %w", err)
		}
		terms = append(terms, term)
	}
	return terms, rows.Err()
}

func queryTruths(db *sql.DB, table, term string) ([]engine.TruthSnapshot, error) {
	rows, err := db.Query("SELECT f, c FROM "+table+" WHERE term = ?", term)
	if err != nil {
		return nil, fmt.Errorf("persistence: query %s for %s: %w", table, term, err)
	}
	defer rows.Close()

	var out []engine.TruthSnapshot
	for rows.Next() {
		var t engine.TruthSnapshot
		if err := rows.Scan(&t.F, &t.C); err != nil {
			return nil, fmt.Errorf("persistence: scan %s for %s: %w", table, term, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
