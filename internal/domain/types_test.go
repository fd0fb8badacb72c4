package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpaceRejectsEmptyPool(t *testing.T) {
	_, err := NewSpace(nil, []string{"Albert"})
	require.ErrorIs(t, err, ErrEmptyCandidateSet)
}

func TestNewSpaceRejectsArityMismatch(t *testing.T) {
	cases := []struct {
		name       string
		candidates []Candidate
		players    []string
	}{
		{"too few players", []Candidate{{"May", "15"}}, []string{"Albert"}},
		{"too many players", []Candidate{{"May", "15"}}, []string{"Albert", "Bernard", "Carl"}},
		{"ragged candidate", []Candidate{{"May", "15"}, {"June"}}, []string{"Albert", "Bernard"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSpace(tc.candidates, tc.players)
			var arity *ArityMismatchError
			require.ErrorAs(t, err, &arity)
		})
	}
}

func TestNewSpaceRejectsDuplicatePlayers(t *testing.T) {
	_, err := NewSpace([]Candidate{{"May", "15"}}, []string{"Albert", "Albert"})
	var dup *DuplicatePlayerError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Albert", dup.Name)
}

func TestNewSpaceDeduplicatesKeepingOrder(t *testing.T) {
	s, err := NewSpace([]Candidate{
		{"May", "15"}, {"June", "17"}, {"May", "15"}, {"May", "16"},
	}, []string{"Albert", "Bernard"})
	require.NoError(t, err)
	require.Len(t, s.Candidates, 3)
	assert.Equal(t, Candidate{"May", "15"}, s.Candidates[0])
	assert.Equal(t, Candidate{"June", "17"}, s.Candidates[1])
	assert.Equal(t, Candidate{"May", "16"}, s.Candidates[2])
}

func TestSpacePlayerIndex(t *testing.T) {
	s, err := NewSpace([]Candidate{{"May", "15"}}, []string{"Albert", "Bernard"})
	require.NoError(t, err)

	i, ok := s.PlayerIndex("Bernard")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = s.PlayerIndex("Cheryl")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Arity())
}

func TestCandidateComparisons(t *testing.T) {
	a := Candidate{"July", "14"}
	b := Candidate{"July", "16"}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Equal(Candidate{"July", "14"}))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(Candidate{"July"}))
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, "(July, 14)", a.String())
}

func TestKnowledgeStateStrings(t *testing.T) {
	cases := []struct {
		state KnowledgeState
		text  string
	}{
		{Knows, "knows"},
		{DoesNotKnow, "does_not_know"},
		{MightKnow, "might_know"},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.text, tc.state.String())
			parsed, err := ParseKnowledgeState(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.state, parsed)
		})
	}

	_, err := ParseKnowledgeState("maybe")
	assert.Error(t, err)
}

func TestKnowledgeStateJSON(t *testing.T) {
	raw, err := json.Marshal(Knows)
	require.NoError(t, err)
	assert.Equal(t, `"knows"`, string(raw))

	var k KnowledgeState
	require.NoError(t, json.Unmarshal([]byte(`"might_know"`), &k))
	assert.Equal(t, MightKnow, k)

	assert.Error(t, json.Unmarshal([]byte(`"sort_of_knows"`), &k))

	_, err = json.Marshal(KnowledgeState(42))
	assert.Error(t, err)
}

func TestStatementJSONRoundTrip(t *testing.T) {
	st := Statement{
		Author: "Albert",
		Facts: []Fact{
			{Player: "Albert", State: DoesNotKnow},
			{AnyOf: []string{"Bernard", "Carl"}, State: MightKnow},
		},
	}
	raw, err := json.Marshal(st)
	require.NoError(t, err)

	var back Statement
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, st, back)
}
