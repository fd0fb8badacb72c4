package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Configuration errors are detected eagerly, before any filtering or
// sampling work begins. Logical outcomes (ContradictionError,
// UnderdeterminedError, NoGameFoundError) are expected results of a
// statement sequence against a particular pool and are kept apart from
// configuration mistakes so callers never confuse the two.

// ErrEmptyCandidateSet rejects construction over an empty pool.
var ErrEmptyCandidateSet = errors.New("candidate pool is empty")

// ArityMismatchError reports a tuple-length disagreement.
type ArityMismatchError struct {
	Subject string
	Got     int
	Want    int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s has length %d, want %d", e.Subject, e.Got, e.Want)
}

// DuplicatePlayerError reports a repeated player name.
type DuplicatePlayerError struct {
	Name string
}

func (e *DuplicatePlayerError) Error() string {
	return fmt.Sprintf("duplicate player name %q", e.Name)
}

// UnknownPlayerError reports a fact or statement referencing a name outside
// the space's player list.
type UnknownPlayerError struct {
	Name string
}

func (e *UnknownPlayerError) Error() string {
	return fmt.Sprintf("unknown player %q", e.Name)
}

// InvalidFactError reports a malformed subject/state pairing.
type InvalidFactError struct {
	Fact   Fact
	Reason string
}

func (e *InvalidFactError) Error() string {
	return fmt.Sprintf("invalid fact {%s}: %s", e.Fact, e.Reason)
}

// SearchConfigError rejects a generator configuration before any trial runs,
// including pools the domains cannot support with distinct tuples.
type SearchConfigError struct {
	Reason string
}

func (e *SearchConfigError) Error() string {
	return "invalid search: " + e.Reason
}

// TooManyTriesError reports that distinct-tuple sampling did not converge
// within its round cap.
type TooManyTriesError struct {
	Rounds int
}

func (e *TooManyTriesError) Error() string {
	return fmt.Sprintf("could not sample distinct candidates in %d rounds", e.Rounds)
}

// ContradictionError: the remaining set became empty, so no candidate is
// consistent with the declarations made so far. Statement is the 1-based
// position of the statement that emptied the set.
type ContradictionError struct {
	Statement int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("no candidate is consistent with statement %d", e.Statement)
}

// UnderdeterminedError: more than one candidate survived every statement,
// so the declarations do not pin down a solution.
type UnderdeterminedError struct {
	Remaining []Candidate
}

func (e *UnderdeterminedError) Error() string {
	return fmt.Sprintf("%d candidates remain after all statements", len(e.Remaining))
}

// NoGameFoundError: no sampled pool produced a unique solution within the
// trial budget. Histogram maps terminal remaining-set size to the number of
// trials that ended there, so a caller can tell over-strict declarations
// (mostly zeros) from under-constraining ones (mostly sizes above one).
type NoGameFoundError struct {
	Trials    int
	Histogram map[int]int
}

func (e *NoGameFoundError) Error() string {
	sizes := make([]int, 0, len(e.Histogram))
	for size := range e.Histogram {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	parts := make([]string, 0, len(sizes))
	for _, size := range sizes {
		parts = append(parts, fmt.Sprintf("%d:%d", size, e.Histogram[size]))
	}
	return fmt.Sprintf("no game found in %d tries (terminal sizes %s)",
		e.Trials, strings.Join(parts, " "))
}
