package valida

import "slices"

// GroupsValid reports whether a rule tagged with ruleGroups applies to a run
// with the active groups.
//
// A rule applies when either side is empty. Otherwise at least one label must
// appear in both sets.
func GroupsValid(active, ruleGroups []string) bool {
	if len(active) == 0 || len(ruleGroups) == 0 {
		return true
	}

	for _, g := range ruleGroups {
		if slices.Contains(active, g) {
			return true
		}
	}

	return false
}

// normalizeGroups drops empty and repeated labels, keeping first-seen order.
func normalizeGroups(groups []string) []string {
	if len(groups) == 0 {
		return nil
	}

	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if g == "" || slices.Contains(out, g) {
			continue
		}
		out = append(out, g)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
