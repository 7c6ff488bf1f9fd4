package brackets

// Verdict is the result of a balance check over a string.
//
// When Balanced is true, OffendingChar is 0 and OffendingIndex is -1.
// When Balanced is false, OffendingChar is the bracket identified as the
// cause of the imbalance and OffendingIndex is its rune index in the
// original string (never an index into the bracket-only projection used
// internally).
type Verdict struct {
	Balanced       bool
	OffendingChar  rune
	OffendingIndex int
}

// positionedBracket is a bracket character paired with its rune index in
// the original input. Produced transiently while scanning; never retained
// across calls.
type positionedBracket struct {
	ch    rune
	index int
	open  bool
}

// collectBrackets projects the input down to its bracket characters,
// keeping each one's rune index in the original string. The slice position
// of an entry is its local position; the stored index maps it back to the
// source text.
func collectBrackets(text string) []positionedBracket {
	var seq []positionedBracket
	idx := 0
	for _, ch := range text {
		if isBracket(ch) {
			seq = append(seq, positionedBracket{ch: ch, index: idx, open: IsOpener(ch)})
		}
		idx++
	}
	return seq
}

// CheckBalance scans text and reports whether every bracket character can
// be paired up across the supported pair types.
//
// The pairing discipline of this pass is deliberately first-in-first-out:
// each closer consumes the EARLIEST still-pending opener of its type, not
// the nearest enclosing one. This pass only decides whether enough
// structurally-ordered opens and closes of the right types exist; producing
// a correctly nested pairing is the job of FindCutPosition and the strip
// loop, which use genuine stack order. The FIFO rule changes which bracket
// gets reported as the offending one when multiple pair types interleave,
// and downstream cut behavior depends on that exact choice.
//
// Imbalance is a normal outcome, not an error:
//   - leftover openers: the offending bracket is the most recently opened
//     pending opener (largest local position);
//   - otherwise leftover closers: the offending bracket is the earliest
//     stray closer (smallest local position).
//
// CheckBalance never modifies its input and is safe to call concurrently.
//
// Example:
//
//	v := brackets.CheckBalance("《上山》")   // v.Balanced == true
//	v := brackets.CheckBalance("第一章（新") // v.OffendingChar == '（', v.OffendingIndex == 3
func CheckBalance(text string) Verdict {
	seq := collectBrackets(text)

	// Pending collections hold local positions into seq, kept in insertion
	// order so "earliest pending" and "most recent" are the ends.
	var pendingOpens []int
	var pendingCloses []int

	for local, b := range seq {
		if b.open {
			pendingOpens = append(pendingOpens, local)
			continue
		}
		matched := -1
		for k, openLocal := range pendingOpens {
			if openLocal < local && IsMatchingPair(seq[openLocal].ch, b.ch) {
				matched = k
				break
			}
		}
		if matched >= 0 {
			pendingOpens = append(pendingOpens[:matched], pendingOpens[matched+1:]...)
		} else {
			pendingCloses = append(pendingCloses, local)
		}
	}

	var offending int
	switch {
	case len(pendingOpens) > 0:
		offending = pendingOpens[len(pendingOpens)-1]
	case len(pendingCloses) > 0:
		offending = pendingCloses[0]
	default:
		return Verdict{Balanced: true, OffendingChar: 0, OffendingIndex: -1}
	}

	return Verdict{
		Balanced:       false,
		OffendingChar:  seq[offending].ch,
		OffendingIndex: seq[offending].index,
	}
}
