package domain

import (
	"encoding/json"
	"fmt"
)

// KnowledgeState is the closed vocabulary a statement can assert about a
// subject's epistemic state relative to the current remaining set.
type KnowledgeState int

const (
	// DoesNotKnow: the subject's view cannot single out the candidate.
	DoesNotKnow KnowledgeState = iota
	// MightKnow: among the worlds the author cannot rule out, at least one
	// lets the subject single out the candidate. Only valid on a group
	// subject ("at least one of ...").
	MightKnow
	// Knows: the subject's view singles out the candidate.
	Knows
)

var stateNames = map[KnowledgeState]string{
	DoesNotKnow: "does_not_know",
	MightKnow:   "might_know",
	Knows:       "knows",
}

func (k KnowledgeState) String() string {
	if s, ok := stateNames[k]; ok {
		return s
	}
	return fmt.Sprintf("KnowledgeState(%d)", int(k))
}

// ParseKnowledgeState converts the wire spelling back to a state.
func ParseKnowledgeState(s string) (KnowledgeState, error) {
	for k, name := range stateNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown knowledge state %q", s)
}

func (k KnowledgeState) MarshalJSON() ([]byte, error) {
	s, ok := stateNames[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal knowledge state %d", int(k))
	}
	return json.Marshal(s)
}

func (k *KnowledgeState) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseKnowledgeState(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
