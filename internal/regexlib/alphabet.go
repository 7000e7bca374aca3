package regexlib

import "slices"

// CollectAlphabet returns the distinct non-epsilon labels used anywhere in t,
// in ascending order.
func CollectAlphabet(t Transitions) []rune {
	set := map[rune]struct{}{}
	for _, bySym := range t {
		for sym := range bySym {
			if sym != Epsilon {
				set[sym] = struct{}{}
			}
		}
	}
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

func unionAlphabets(a, b []rune) []rune {
	out := append(slices.Clone(a), b...)
	slices.Sort(out)
	return slices.Compact(out)
}
