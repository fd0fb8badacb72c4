// Package epistemic provides the grouping and knowledge tests that
// statement filtering is built on. A player "knows" the hidden candidate,
// relative to a remaining set, exactly when the candidates sharing their
// observed coordinate value form a singleton group. Every statement reduces
// to counting tests over such groups; no possible-worlds model is needed.
package epistemic

import "svw.info/cheryl/internal/domain"

// Compatible returns the members of rem sharing cand's value at coord,
// preserving their relative order in rem. It is the information set of the
// player observing coord when the hidden candidate is cand.
func Compatible(rem []domain.Candidate, coord int, cand domain.Candidate) []domain.Candidate {
	group := make([]domain.Candidate, 0, len(rem))
	for _, c := range rem {
		if c[coord] == cand[coord] {
			group = append(group, c)
		}
	}
	return group
}

// GroupSizes partitions rem by the value at coord and returns the size of
// each group.
func GroupSizes(rem []domain.Candidate, coord int) map[domain.Value]int {
	sizes := make(map[domain.Value]int)
	for _, c := range rem {
		sizes[c[coord]]++
	}
	return sizes
}

// KnowsAt reports whether the player observing coord would know the hidden
// candidate within rem, were it cand: no other member of rem shares cand's
// value at coord. Depends only on rem's membership, never on its order.
func KnowsAt(rem []domain.Candidate, coord int, cand domain.Candidate) bool {
	n := 0
	for _, c := range rem {
		if c[coord] == cand[coord] {
			n++
			if n > 1 {
				return false
			}
		}
	}
	return n == 1
}

// WouldKnow aggregates KnowsAt over a set of possible truths: Knows when the
// player would know under every truth, DoesNotKnow under none, MightKnow
// otherwise. With truths restricted to an author's information set this is
// what the author can assert about another player's knowledge.
func WouldKnow(rem []domain.Candidate, coord int, truths []domain.Candidate) domain.KnowledgeState {
	yes, no := 0, 0
	for _, t := range truths {
		if KnowsAt(rem, coord, t) {
			yes++
		} else {
			no++
		}
	}
	switch {
	case no == 0 && yes > 0:
		return domain.Knows
	case yes == 0 && no > 0:
		return domain.DoesNotKnow
	default:
		return domain.MightKnow
	}
}

// MightKnowAmong answers the second-order form "at least one of these
// players might know", as inferred by the author observing authorCoord. The
// test runs within the author's own group at cand: the claim is about what
// the author considers possible, not what an outside observer sees. It holds
// when some world in that group lets some subject player know (want true),
// or not know (want false), judged within the restricted view.
func MightKnowAmong(rem []domain.Candidate, authorCoord int, cand domain.Candidate, subjects []int, want bool) bool {
	view := Compatible(rem, authorCoord, cand)
	for _, c := range view {
		for _, coord := range subjects {
			if KnowsAt(view, coord, c) == want {
				return true
			}
		}
	}
	return false
}
