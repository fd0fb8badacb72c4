// Package evaluator applies a single statement to a remaining candidate set.
// Validation happens in full before any filtering, so a malformed statement
// never leaves a partially applied result behind.
package evaluator

import (
	"sort"
	"strings"

	"svw.info/cheryl/internal/domain"
	"svw.info/cheryl/internal/epistemic"
)

// Validate checks a statement against the space's player list and the
// subject/state pairing rules: a single player may be said to know or not
// know, a non-empty group of players may be said to contain someone who
// might know, and nothing else. Subjects must be unique within a statement.
func Validate(space *domain.Space, st domain.Statement) error {
	if _, ok := space.PlayerIndex(st.Author); !ok {
		return &domain.UnknownPlayerError{Name: st.Author}
	}
	seen := make(map[string]bool, len(st.Facts))
	for _, f := range st.Facts {
		key, err := validateFact(space, st.Author, f)
		if err != nil {
			return err
		}
		if seen[key] {
			return &domain.InvalidFactError{Fact: f, Reason: "duplicate subject in statement"}
		}
		seen[key] = true
	}
	return nil
}

func validateFact(space *domain.Space, author string, f domain.Fact) (string, error) {
	switch {
	case f.Player != "" && len(f.AnyOf) > 0:
		return "", &domain.InvalidFactError{Fact: f, Reason: "subject names both a single player and a group"}
	case f.Player != "":
		if _, ok := space.PlayerIndex(f.Player); !ok {
			return "", &domain.UnknownPlayerError{Name: f.Player}
		}
		if f.State != domain.Knows && f.State != domain.DoesNotKnow {
			return "", &domain.InvalidFactError{Fact: f, Reason: "might_know requires a group subject"}
		}
		return f.Player, nil
	case len(f.AnyOf) > 0:
		if f.State != domain.MightKnow {
			return "", &domain.InvalidFactError{Fact: f, Reason: "knows/does_not_know requires a single-player subject"}
		}
		names := make(map[string]bool, len(f.AnyOf))
		for _, name := range f.AnyOf {
			if _, ok := space.PlayerIndex(name); !ok {
				return "", &domain.UnknownPlayerError{Name: name}
			}
			if name == author {
				return "", &domain.InvalidFactError{Fact: f, Reason: "author cannot appear in its own group subject"}
			}
			if names[name] {
				return "", &domain.InvalidFactError{Fact: f, Reason: "repeated player in group subject"}
			}
			names[name] = true
		}
		sorted := append([]string(nil), f.AnyOf...)
		sort.Strings(sorted)
		return strings.Join(sorted, "\x1f"), nil
	default:
		return "", &domain.InvalidFactError{Fact: f, Reason: "subject names no players"}
	}
}

// Apply filters rem through one statement, returning the survivors in their
// original order. Every fact is judged against rem as it stood before the
// statement; the conjunction of facts is the intersection of their keep-sets.
func Apply(space *domain.Space, rem []domain.Candidate, st domain.Statement) ([]domain.Candidate, error) {
	if err := Validate(space, st); err != nil {
		return nil, err
	}
	authorCoord, _ := space.PlayerIndex(st.Author)
	out := make([]domain.Candidate, 0, len(rem))
	for _, cand := range rem {
		if trueFor(space, rem, st, authorCoord, cand) {
			out = append(out, cand)
		}
	}
	return out, nil
}

// trueFor evaluates the statement under the hypothesis that cand is the
// hidden candidate. The author's information set at cand conditions every
// fact: the statement is informative precisely because its truth depends on
// what the author could infer from the previously narrowed set.
func trueFor(space *domain.Space, rem []domain.Candidate, st domain.Statement, authorCoord int, cand domain.Candidate) bool {
	view := epistemic.Compatible(rem, authorCoord, cand)
	for _, f := range st.Facts {
		if f.Player != "" {
			coord, _ := space.PlayerIndex(f.Player)
			if epistemic.WouldKnow(rem, coord, view) != f.State {
				return false
			}
			continue
		}
		coords := make([]int, len(f.AnyOf))
		for i, name := range f.AnyOf {
			coords[i], _ = space.PlayerIndex(name)
		}
		if !epistemic.MightKnowAmong(rem, authorCoord, cand, coords, true) {
			return false
		}
	}
	return true
}
