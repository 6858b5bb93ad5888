package task

import (
	"strings"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
)

// Matcher resolves an action item's free-text owner against team members.
// Matching is best-effort: a nil result is a legitimate outcome, not an
// error.
type Matcher interface {
	Match(owner string, members []entities.TeamMember) *entities.TeamMember
}

// NameMatcher matches by display name: case-insensitive exact match first,
// then substring containment in either direction. Ambiguous input (more than
// one candidate at the same tier) resolves to no match.
type NameMatcher struct{}

// NewNameMatcher creates the default matcher
func NewNameMatcher() *NameMatcher {
	return &NameMatcher{}
}

// Match implements Matcher. The result is deterministic for a given owner
// string and member sequence.
func (m *NameMatcher) Match(owner string, members []entities.TeamMember) *entities.TeamMember {
	needle := strings.ToLower(strings.TrimSpace(owner))
	if needle == "" {
		return nil
	}

	var exact []int
	var partial []int
	for i := range members {
		name := strings.ToLower(strings.TrimSpace(members[i].DisplayName))
		if name == "" {
			continue
		}
		switch {
		case name == needle:
			exact = append(exact, i)
		case strings.Contains(name, needle) || strings.Contains(needle, name):
			partial = append(partial, i)
		}
	}

	if len(exact) == 1 {
		return &members[exact[0]]
	}
	if len(exact) > 1 {
		return nil
	}
	if len(partial) == 1 {
		return &members[partial[0]]
	}
	return nil
}
