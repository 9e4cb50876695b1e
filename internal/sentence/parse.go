package sentence

import (
	"fmt"
	"strconv"
	"strings"

	"nars/internal/nerr"
	"nars/internal/syntax"
	"nars/internal/term"
	"nars/internal/truth"
)

// DefaultJudgmentTruth is assigned to an input judgment whose wire text
// carries no explicit "%f;c%" suffix, matching the NARS convention of a
// maximally confident but non-certain default observation.
var DefaultJudgmentTruth = truth.TruthValue{F: 1.0, C: 0.9}

// Parsed is the structural result of reading one line of Narsese wire text,
// before the caller (engine.Engine, which alone knows the current cycle
// number) resolves a Tense marker into a concrete occurrence time.
type Parsed struct {
	Term        term.Term
	Punctuation syntax.Punctuation
	Tense       syntax.Tense
	Truth       *truth.TruthValue
}

// Parse reads one Narsese sentence: a term, followed by a punctuation mark,
// an optional tense marker, and an optional truth-value suffix (spec.md §6).
func Parse(s string) (Parsed, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Parsed{}, fmt.Errorf("empty sentence: %w", nerr.ErrInvalidSentence)
	}

	termEnd, err := findTermEnd(s)
	if err != nil {
		return Parsed{}, err
	}
	t, err := term.FromString(s[:termEnd])
	if err != nil {
		return Parsed{}, err
	}

	rest := strings.TrimSpace(s[termEnd:])
	if rest == "" || !syntax.IsPunctuation(rest[0]) {
		return Parsed{}, fmt.Errorf("missing sentence punctuation: %w", nerr.ErrInvalidSentence)
	}
	punct := syntax.Punctuation(rest[0])
	rest = strings.TrimSpace(rest[1:])

	tense := syntax.TenseNone
	if parsedTense, ok := syntax.ParseTense(rest); ok {
		tense = parsedTense
		rest = strings.TrimSpace(rest[len(parsedTense):])
	}

	var tv *truth.TruthValue
	if rest != "" {
		parsedTruth, err := parseTruthSuffix(rest)
		if err != nil {
			return Parsed{}, err
		}
		tv = &parsedTruth
	}

	return Parsed{Term: t, Punctuation: punct, Tense: tense, Truth: tv}, nil
}

func parseTruthSuffix(s string) (truth.TruthValue, error) {
	if len(s) < 2 || s[0] != syntax.TruthSuffixStart || s[len(s)-1] != syntax.TruthSuffixEnd {
		return truth.TruthValue{}, fmt.Errorf("malformed truth-value suffix %q: %w", s, nerr.ErrInvalidSentence)
	}
	body := s[1 : len(s)-1]
	parts := strings.SplitN(body, string(syntax.TruthValueSep), 2)
	if len(parts) != 2 {
		return truth.TruthValue{}, fmt.Errorf("malformed truth-value suffix %q: %w", s, nerr.ErrInvalidSentence)
	}
	f, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return truth.TruthValue{}, fmt.Errorf("malformed frequency in %q: %w", s, nerr.ErrInvalidSentence)
	}
	c, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return truth.TruthValue{}, fmt.Errorf("malformed confidence in %q: %w", s, nerr.ErrInvalidSentence)
	}
	return truth.New(f, c)
}

// findTermEnd returns the index immediately after s's leading term: the
// length of the shortest balanced-bracket prefix (for statements, compounds
// and sets) or, for a bracket-free term (atomic, variable, array-without-
// index), the run of term/sigil characters starting at 0.
func findTermEnd(s string) (int, error) {
	depth := 0
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			depth--
			if depth < 0 {
				return 0, fmt.Errorf("unbalanced brackets in %q: %w", s, nerr.ErrInvalidSentence)
			}
		default:
			if depth == 0 && !isTermContinuation(c) {
				if i == 0 {
					return 0, fmt.Errorf("no term found in %q: %w", s, nerr.ErrInvalidSentence)
				}
				return i, nil
			}
		}
	}
	if depth != 0 {
		return 0, fmt.Errorf("unbalanced brackets in %q: %w", s, nerr.ErrInvalidSentence)
	}
	return i, nil
}

func isTermContinuation(c byte) bool {
	return syntax.IsValidTermChar(c) || c == syntax.ArraySigil ||
		c == syntax.IndependentVariableSigil || c == syntax.QueryVariableSigil
}
