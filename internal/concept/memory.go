package concept

import (
	"context"
	"fmt"

	"github.com/dominikbraun/graph"
	chromem "github.com/philippgille/chromem-go"

	"nars/internal/bag"
	"nars/internal/nerr"
	"nars/internal/sentence"
	"nars/internal/term"
)

// linkHash is the dominikbraun/graph hash function for the term-link graph:
// vertices are canonical term strings, so the value is its own key.
// Grounded on teacher's internal/modes/graph_types.go VertexHash pattern.
func linkHash(s string) string { return s }

// Memory is the set of all Concepts, addressable by canonical term string,
// plus the directed term-link graph connecting each concept to the
// concepts of its immediate structural sub-terms (spec.md §4.6). Grounded
// on teacher's internal/modes/graph.go GraphController (graph.New +
// AddVertex/AddEdge over a bounded id->vertex map).
type Memory struct {
	concepts *bag.Bag[string, *Concept]
	links    graph.Graph[string, string]

	beliefCapacity int
	desireCapacity int
	k              float64

	semantic         *semanticIndex
	onConceptCreated func(term.Term)
	onLinkCreated    func(from, to term.Term)
}

// Config bundles the tunables Memory needs to construct new Concepts and,
// optionally, a semantic-neighbour fallback.
type Config struct {
	ConceptCapacity int
	BeliefCapacity  int
	DesireCapacity  int
	K               float64

	// EnableSemanticFallback turns on the chromem-go backed neighbour
	// search exposed as SemanticNeighbors (spec.md §4.6 DOMAIN expansion);
	// off by default since it is not part of the core NARS algorithm and
	// costs an embedding pass per new concept. The control cycle's premise
	// selection does not call it: it uses structural term-links only.
	EnableSemanticFallback bool

	// OnConceptCreated, if set, is called once for every concept newly
	// created (both directly requested and created implicitly as a
	// term-link neighbour). Used by internal/metrics to track concept
	// churn without Memory importing the metrics package itself.
	OnConceptCreated func(term.Term)

	// OnLinkCreated, if set, is called once for every term-link edge added
	// to the graph. Used by internal/graphmirror to mirror the structural
	// term-link graph into an external store without Memory importing it.
	OnLinkCreated func(from, to term.Term)
}

// NewMemory builds an empty Memory per cfg.
func NewMemory(cfg Config) *Memory {
	m := &Memory{
		concepts:         bag.New[string, *Concept](cfg.ConceptCapacity, bag.IdentityWeight),
		links:            graph.New(linkHash, graph.Directed()),
		beliefCapacity:   cfg.BeliefCapacity,
		desireCapacity:   cfg.DesireCapacity,
		k:                cfg.K,
		onConceptCreated: cfg.OnConceptCreated,
		onLinkCreated:    cfg.OnLinkCreated,
	}
	if cfg.EnableSemanticFallback {
		m.semantic = newSemanticIndex()
	}
	return m
}

// Concept returns the concept for t, creating it (and lazily creating and
// linking concepts for every structural sub-term, per spec.md §4.6) if it
// does not already exist.
func (m *Memory) Concept(t term.Term) *Concept {
	key := t.String()
	if c, ok := m.concepts.PeekUsingKey(key); ok {
		return c
	}
	return m.createConcept(t)
}

// Lookup returns the concept for t without creating one.
func (m *Memory) Lookup(t term.Term) (*Concept, error) {
	c, ok := m.concepts.PeekUsingKey(t.String())
	if !ok {
		return nil, fmt.Errorf("concept for %s: %w", t.String(), nerr.ErrUnknownConcept)
	}
	return c, nil
}

func (m *Memory) createConcept(t term.Term) *Concept {
	key := t.String()
	c := New(t, m.beliefCapacity, m.desireCapacity, m.k)
	_, _, _, _ = m.concepts.Put(key, c, bag.Budget{Priority: 0.5, Durability: 0.9, Quality: 1})
	_ = m.links.AddVertex(key)

	if m.semantic != nil {
		m.semantic.index(key)
	}
	if m.onConceptCreated != nil {
		m.onConceptCreated(t)
	}

	for _, sub := range subterms(t) {
		subKey := sub.String()
		m.createIfAbsent(sub)
		if err := m.links.AddEdge(key, subKey); err == nil && m.onLinkCreated != nil {
			m.onLinkCreated(t, sub)
		}
	}
	return c
}

func (m *Memory) createIfAbsent(t term.Term) {
	if _, ok := m.concepts.PeekUsingKey(t.String()); ok {
		return
	}
	m.createConcept(t)
}

// subterms returns t's immediate structural children per spec.md §4.6's
// term-link rule: a StatementTerm links to its subject and predicate, a
// CompoundTerm links to each of its subterms, and an Atomic/Variable term
// has none.
func subterms(t term.Term) []term.Term {
	switch tt := t.(type) {
	case *term.StatementTerm:
		return []term.Term{tt.Subject(), tt.Predicate()}
	case *term.CompoundTerm:
		return tt.Subterms()
	default:
		return nil
	}
}

// FileBelief inserts j into its own concept's belief table and, for a
// statement term, propagates it into its subject's and predicate's concept
// belief tables too. This mirrors NARS's term-link model: a concept such
// as "bird" holds every belief that mentions bird as subject or predicate,
// not only beliefs whose whole term is literally "bird" — which is what
// lets the control cycle's main step find a structurally related second
// premise by sampling a neighbor concept (spec.md §4.6/§4.7).
func (m *Memory) FileBelief(j *sentence.Judgment) *sentence.Judgment {
	stored, _ := m.Concept(j.Term()).AddBelief(j)
	for _, sub := range subterms(j.Term()) {
		m.Concept(sub).AddBelief(stored)
	}
	return stored
}

// Neighbors returns the concepts whose terms are directly term-linked to
// t's concept, in either direction.
func (m *Memory) Neighbors(t term.Term) []*Concept {
	key := t.String()
	var out []*Concept
	if adjacency, err := m.links.AdjacencyMap(); err == nil {
		for target := range adjacency[key] {
			if c, ok := m.concepts.PeekUsingKey(target); ok {
				out = append(out, c)
			}
		}
	}
	if predecessors, err := m.links.PredecessorMap(); err == nil {
		for target := range predecessors[key] {
			if c, ok := m.concepts.PeekUsingKey(target); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// SampleConcept probabilistically draws a concept for the control cycle's
// main step (spec.md §4.7 step 2).
func (m *Memory) SampleConcept() (*Concept, bool) {
	_, c, ok := m.concepts.Peek()
	return c, ok
}

// Len returns the number of concepts currently in memory.
func (m *Memory) Len() int { return m.concepts.Len() }

// StrengthenConcept raises t's concept priority (spec.md §4.7 step 4).
func (m *Memory) StrengthenConcept(t term.Term, delta float64) bool {
	return m.concepts.Strengthen(t.String(), delta)
}

// DecayConcept lowers t's concept priority (spec.md §4.7 step 4).
func (m *Memory) DecayConcept(t term.Term, delta float64) bool {
	return m.concepts.Decay(t.String(), delta)
}

// All returns a snapshot of every concept in memory, in no particular
// order. Used for persistence snapshotting, not the cycle's sampling path.
func (m *Memory) All() []*Concept {
	keys := m.concepts.Keys()
	out := make([]*Concept, 0, len(keys))
	for _, k := range keys {
		if c, ok := m.concepts.PeekUsingKey(k); ok {
			out = append(out, c)
		}
	}
	return out
}

// SemanticNeighbors returns up to limit concepts whose terms are
// semantically close to t, via the optional chromem-go index. It returns
// an empty slice (never an error) when the fallback is disabled or the
// term has no close neighbours — structural term-links remain the
// authoritative relation; this is a best-effort supplement only.
func (m *Memory) SemanticNeighbors(ctx context.Context, t term.Term, limit int) []*Concept {
	if m.semantic == nil {
		return nil
	}
	keys := m.semantic.query(ctx, t.String(), limit)
	out := make([]*Concept, 0, len(keys))
	for _, key := range keys {
		if c, ok := m.concepts.PeekUsingKey(key); ok {
			out = append(out, c)
		}
	}
	return out
}

// semanticIndex wraps an in-process chromem-go collection embedding term
// canonical strings under a deterministic, dependency-free lexical
// embedding (termEmbedder) — there being no natural-language description
// to embed in a Narsese concept, unlike teacher's Voyage-backed
// internal/embeddings.Embedder, which embeds free text.
type semanticIndex struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedder   termEmbedder
}

const semanticCollectionName = "concepts"

func newSemanticIndex() *semanticIndex {
	db := chromem.NewDB()
	embedder := termEmbedder{dimension: 64}
	collection, err := db.CreateCollection(semanticCollectionName, nil, embedder.embedFunc())
	if err != nil {
		// CreateCollection only fails on a name/embedding-func conflict,
		// neither of which applies to a fresh in-memory DB.
		panic(fmt.Sprintf("concept: semantic index setup: %v", err))
	}
	return &semanticIndex{db: db, collection: collection, embedder: embedder}
}

func (s *semanticIndex) index(key string) {
	_ = s.collection.AddDocument(context.Background(), chromem.Document{
		ID:      key,
		Content: key,
	})
}

func (s *semanticIndex) query(ctx context.Context, text string, limit int) []string {
	if limit <= 0 {
		limit = 5
	}
	if n := s.collection.Count(); n < limit {
		limit = n
	}
	if limit == 0 {
		return nil
	}
	results, err := s.collection.Query(ctx, text, limit, nil, nil)
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(results))
	for _, r := range results {
		keys = append(keys, r.ID)
	}
	return keys
}
