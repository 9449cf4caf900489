// resolve.go implements single-path ownership resolution.

package codeowners

// Resolve returns the ownership of path under this snapshot.
//
// Precedence is last-match-wins: a single forward pass over the rule list
// retains the most recent match, making the "later rules override earlier
// ones" convention explicit. No rule file, an empty rule list, or an empty
// path all yield the unowned default - that is a steady state, not an
// error. Owners are reported verbatim from the single selected rule; owners
// are never merged across rules.
func (s *Snapshot) Resolve(path string) OwnershipInfo {
	if !s.Found || len(s.Rules) == 0 || path == "" {
		return OwnershipInfo{Unowned: true}
	}

	var matched *Rule
	for i := range s.Rules {
		if Matches(path, s.Rules[i].Pattern) {
			matched = &s.Rules[i]
		}
	}

	if matched == nil {
		return OwnershipInfo{Unowned: true}
	}

	if len(matched.Owners) == 0 {
		return OwnershipInfo{Unowned: true, MatchingPattern: matched.Pattern}
	}

	owners := make([]string, len(matched.Owners))
	copy(owners, matched.Owners)

	return OwnershipInfo{Owners: owners, MatchingPattern: matched.Pattern}
}
