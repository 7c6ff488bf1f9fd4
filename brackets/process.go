package brackets

// ProcessAndTrim is the single entry point callers need: it repairs bracket
// imbalance in text and then strips redundant decorative bracket wrapping.
//
// Orchestration:
//
//  1. CheckBalance. Balanced input goes straight to StripRedundant.
//  2. Unbalanced input has its unsafe span removed first: FindCutPosition
//     locates the cut, the rune range [OffendingIndex, cut) is deleted, and
//     the repaired string is stripped.
//
// The cut preserves any later closer still needed by structure opened
// before the offending bracket, so
//
//	ProcessAndTrim("第一章（新人《上山》下山（访客）")
//
// discards "（访客" but keeps the "）" that closes the "（" before "下山",
// returning "第一章（新人《上山》下山）".
//
// ProcessAndTrim never fails; every input, however malformed, produces a
// best-effort printable string.
func ProcessAndTrim(text string) string {
	verdict := CheckBalance(text)
	if verdict.Balanced {
		return StripRedundant(text)
	}

	runes := []rune(text)
	cut := FindCutPosition(text, verdict.OffendingIndex)
	repaired := string(runes[:verdict.OffendingIndex]) + string(runes[cut:])
	return StripRedundant(repaired)
}
