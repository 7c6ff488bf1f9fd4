package brackets

// FindCutPosition computes the end of the unsafe span that starts at an
// offending bracket reported by CheckBalance. The caller removes the
// half-open rune range [offendingIndex, cut) from the original string: the
// unmatched bracket and everything up to — but not including — the closer
// that is still needed to satisfy structure opened before the offending
// bracket.
//
// The scan works in two phases:
//
//  1. Replay [0, offendingIndex) with a true LIFO stack, tracking a
//     multiset of closers still owed by openers that remain on the stack.
//  2. If nothing is owed, the cut is the offending index itself (the span
//     to delete is empty; a stray closer with no pending opener is left for
//     the strip pass to deal with). Otherwise walk forward from the
//     offending index consuming owed closers; the cut lands on the closer
//     that satisfies the last debt, so that closer survives the deletion.
//     If the string ends with some owed closers found but not all, the cut
//     is just past the last one found; if none were found, the cut stays at
//     the offending index.
//
// offendingIndex must be the rune index of an actual bracket character, as
// produced by CheckBalance. Indices in and out are rune indices.
func FindCutPosition(text string, offendingIndex int) int {
	runes := []rune(text)
	if offendingIndex < 0 || offendingIndex >= len(runes) {
		return offendingIndex
	}

	var stack []rune
	need := make(map[rune]int)
	owed := 0

	for i := 0; i < offendingIndex; i++ {
		ch := runes[i]
		switch {
		case IsOpener(ch):
			stack = append(stack, ch)
			if closer, ok := CloserFor(ch); ok {
				need[closer]++
				owed++
			}
		case IsCloser(ch):
			if len(stack) > 0 && IsMatchingPair(stack[len(stack)-1], ch) {
				stack = stack[:len(stack)-1]
				need[ch]--
				owed--
			}
		}
	}

	if len(stack) == 0 {
		return offendingIndex
	}

	cut := offendingIndex
	found := false
	for i := offendingIndex; i < len(runes); i++ {
		ch := runes[i]
		if IsCloser(ch) && need[ch] > 0 {
			need[ch]--
			owed--
			cut = i
			found = true
			if owed == 0 {
				return cut
			}
		}
	}
	if found {
		return cut + 1
	}
	return offendingIndex
}
