package proof

// CtxtCompatible reports whether current is a prefix of cited, the
// compatibility rule every citing rule applies between a record's own
// context and the context of each record it cites.
func CtxtCompatible(current, cited []int) bool {
	if len(current) > len(cited) {
		return false
	}
	for i, v := range current {
		if cited[i] != v {
			return false
		}
	}
	return true
}
