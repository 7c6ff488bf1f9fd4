package brackets

import "unicode"

// maxStripIterations bounds the strip loop so pathological input can never
// spin forever. Hitting the cap is a silent fallback: whatever partial
// result exists at that point is returned as-is.
const maxStripIterations = 100

// StripRedundant removes decorative bracket wrapping from a
// bracket-balanced string. Uploaders wrap whole titles in brackets as line
// noise; brackets that carry real content (a bracketed subtitle inside a
// longer title) must survive.
//
// Policies, applied in a bounded fixed-point loop:
//
//   - A string that is nothing but brackets and whitespace reduces via a
//     LIFO pass: fully balanced collapses to the empty string, and a single
//     surviving unmatched opener is returned as that one character.
//   - When the first and last characters form a matching pair: an inner
//     that is empty or only whitespace collapses to the empty string; an
//     inner with no letters, digits, or ideographs (decorative punctuation
//     such as "!@#$%^&*") is unwrapped once and then kept verbatim;
//     anything else loses the outer pair and goes around again.
//   - Otherwise every empty pair anywhere in the string (opener, optional
//     whitespace, matching closer) is deleted; if that changes nothing and
//     only whitespace remains, the result is the empty string.
//
// Interior whitespace keeps its position relative to the surviving text:
// stripping "（ Hello  World ）" yields " Hello  World ", spacing intact.
//
// StripRedundant never fails; every input degrades to a best-effort cleaned
// string. Idempotent on already-stripped input.
func StripRedundant(text string) string {
	cur := []rune(text)
	for i := 0; i < maxStripIterations; i++ {
		next, terminal := stripOnce(cur)
		if terminal {
			return string(next)
		}
		if runesEqual(next, cur) {
			break
		}
		cur = next
	}
	return string(cur)
}

// stripOnce applies a single iteration of the strip policies. The second
// return value is true when the result is terminal and the loop must not
// run again (empty result, bracket-only residue, or a punctuation-only
// inner that is deliberately not re-examined).
func stripOnce(r []rune) ([]rune, bool) {
	if len(r) == 0 {
		return nil, true
	}

	if isBracketOnly(r) {
		residual := reduceBrackets(r)
		switch len(residual) {
		case 0:
			return nil, true
		case 1:
			return residual, true
		}
		// Multi-character residue falls through to the generic policies.
	}

	if len(r) >= 2 && IsMatchingPair(r[0], r[len(r)-1]) {
		inner := r[1 : len(r)-1]
		if isWhitespaceOnly(inner) {
			return nil, true
		}
		if isPunctuationOnly(inner) {
			return append([]rune(nil), inner...), true
		}
		return append([]rune(nil), inner...), false
	}

	out, changed := removeEmptyPairs(r)
	if changed {
		return out, false
	}
	if isWhitespaceOnly(r) {
		return nil, true
	}
	return r, false
}

// isBracketOnly reports whether r consists solely of supported bracket
// characters and whitespace, with at least one bracket present.
func isBracketOnly(r []rune) bool {
	sawBracket := false
	for _, ch := range r {
		switch {
		case isBracket(ch):
			sawBracket = true
		case unicode.IsSpace(ch):
		default:
			return false
		}
	}
	return sawBracket
}

// reduceBrackets runs a plain stack reduction over the bracket characters
// in r, skipping whitespace. Matched pairs annihilate; everything that
// cannot be matched in nested order survives, in input order.
func reduceBrackets(r []rune) []rune {
	var stack []rune
	for _, ch := range r {
		if unicode.IsSpace(ch) {
			continue
		}
		if IsCloser(ch) && len(stack) > 0 && IsMatchingPair(stack[len(stack)-1], ch) {
			stack = stack[:len(stack)-1]
			continue
		}
		stack = append(stack, ch)
	}
	return stack
}

// isPunctuationOnly reports whether r is non-empty, not purely whitespace,
// and contains no letters, digits, or ideographs. Such content is treated
// as decorative and kept verbatim once its wrapping pair is removed.
func isPunctuationOnly(r []rune) bool {
	if isWhitespaceOnly(r) {
		return false
	}
	for _, ch := range r {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}

func isWhitespaceOnly(r []rune) bool {
	for _, ch := range r {
		if !unicode.IsSpace(ch) {
			return false
		}
	}
	return true
}

// removeEmptyPairs deletes every occurrence of an opener immediately
// followed by optional whitespace and its matching closer, for all
// supported pair types. Single pass; the caller's loop picks up pairs that
// become empty as a consequence.
func removeEmptyPairs(r []rune) ([]rune, bool) {
	out := make([]rune, 0, len(r))
	changed := false
	for i := 0; i < len(r); i++ {
		ch := r[i]
		if IsOpener(ch) {
			j := i + 1
			for j < len(r) && unicode.IsSpace(r[j]) {
				j++
			}
			if j < len(r) && IsMatchingPair(ch, r[j]) {
				i = j
				changed = true
				continue
			}
		}
		out = append(out, ch)
	}
	return out, changed
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
