package domain

import (
	"fmt"
	"strings"
)

// Value is one attribute of a candidate tuple (a month, a day, a year, ...).
type Value = string

// Candidate is one fully specified tuple the chooser may have picked.
// Coordinate i is the part privately shown to player i.
type Candidate []Value

// Equal reports value equality of two candidates.
func (c Candidate) Equal(other Candidate) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Less orders candidates lexicographically by coordinate.
func (c Candidate) Less(other Candidate) bool {
	for i := range c {
		if i >= len(other) {
			return false
		}
		if c[i] != other[i] {
			return c[i] < other[i]
		}
	}
	return len(c) < len(other)
}

// Key returns a map key uniquely identifying the candidate by value.
func (c Candidate) Key() string {
	return strings.Join(c, "\x1f")
}

func (c Candidate) String() string {
	return "(" + strings.Join(c, ", ") + ")"
}

// Space is the immutable candidate pool plus the ordered player names.
// Player i privately observes coordinate i of the hidden candidate, so the
// number of players must equal the tuple arity.
type Space struct {
	Players    []string    `json:"players"`
	Candidates []Candidate `json:"candidates"`

	indexByName map[string]int
}

// NewSpace validates the pool and player list. Duplicate candidates are
// dropped, keeping the first occurrence so the pool order is stable.
func NewSpace(candidates []Candidate, players []string) (*Space, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidateSet
	}
	arity := len(candidates[0])
	if arity == 0 {
		return nil, &ArityMismatchError{Subject: candidates[0].String(), Got: 0, Want: 1}
	}
	for _, c := range candidates {
		if len(c) != arity {
			return nil, &ArityMismatchError{Subject: "candidate " + c.String(), Got: len(c), Want: arity}
		}
	}
	if len(players) != arity {
		return nil, &ArityMismatchError{Subject: "player list", Got: len(players), Want: arity}
	}
	index := make(map[string]int, len(players))
	for i, name := range players {
		if _, ok := index[name]; ok {
			return nil, &DuplicatePlayerError{Name: name}
		}
		index[name] = i
	}
	seen := make(map[string]bool, len(candidates))
	pool := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if key := c.Key(); !seen[key] {
			seen[key] = true
			pool = append(pool, c)
		}
	}
	return &Space{Players: players, Candidates: pool, indexByName: index}, nil
}

// Arity is the tuple length shared by every candidate in the pool.
func (s *Space) Arity() int { return len(s.Players) }

// PlayerIndex maps a player name to the coordinate that player observes.
func (s *Space) PlayerIndex(name string) (int, bool) {
	i, ok := s.indexByName[name]
	return i, ok
}

// Fact asserts a knowledge state about a subject: either a single player
// (Knows or DoesNotKnow) or a group of players of which at least one
// MightKnow. Exactly one of Player and AnyOf must be set.
type Fact struct {
	Player string         `json:"player,omitempty"`
	AnyOf  []string       `json:"anyOf,omitempty"`
	State  KnowledgeState `json:"state"`
}

func (f Fact) String() string {
	subject := f.Player
	if len(f.AnyOf) > 0 {
		subject = "any of [" + strings.Join(f.AnyOf, ", ") + "]"
	}
	return fmt.Sprintf("%s: %s", subject, f.State)
}

// Statement is one public declaration: the author conjoins facts about who
// knows what. All facts are judged against the remaining set as it stood
// before the statement, never against partially filtered intermediates.
type Statement struct {
	Author string `json:"author"`
	Facts  []Fact `json:"facts"`
}

// Trace records remaining-set snapshots: one before any filtering and one
// after each applied statement. It is a read-only presentation artifact.
type Trace [][]Candidate

// Solution is the unique candidate surviving a statement sequence, with the
// trace when it was requested.
type Solution struct {
	Candidate Candidate `json:"candidate"`
	Trace     Trace     `json:"trace,omitempty"`
}

// Search configures a generator run: per-coordinate value domains to sample
// from and the statement sequence the sampled pool must collapse under.
type Search struct {
	Domains       [][]Value   `json:"domains"`
	NumCandidates int         `json:"nCandidates"`
	Statements    []Statement `json:"statements"`
	MaxTries      int         `json:"nTries"`
	Players       []string    `json:"players"`
	// Seed makes runs reproducible; zero draws a time-based seed.
	Seed int64 `json:"seed,omitempty"`
}

// Puzzle is a found game: a candidate pool that the statement sequence pins
// down to exactly one candidate.
type Puzzle struct {
	Seed       int64       `json:"seed"`
	Space      *Space      `json:"space"`
	Statements []Statement `json:"statements"`
	Solution   Candidate   `json:"solution"`
	CreatedAt  int64       `json:"createdAt,omitempty"`
}
