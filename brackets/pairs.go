// Package brackets implements bracket-balance resolution and recursive
// redundant-bracket stripping for LocalShelf. It is used to clean candidate
// book titles and author names sliced out of raw filenames: uploaders wrap
// titles in decorative bracket noise (`【精校版】`, `(完结)`), truncate
// filenames mid-bracket, or mix Latin and CJK bracket styles freely.
//
// The package is a family of pure functions over in-memory strings: no I/O,
// no shared mutable state, safe for concurrent use. Indices reported by this
// package are rune indices into the original input string.
package brackets

// closerToOpener maps each supported closing bracket to its opening
// counterpart. This table is the single source of truth for the sixteen
// supported pair types; the opener-to-closer direction is derived from it at
// init time so the two can never drift apart.
var closerToOpener = map[rune]rune{
	')': '(',
	'）': '（',
	']': '[',
	'］': '［',
	'}': '{',
	'｝': '｛',
	'》': '《',
	'」': '「',
	'』': '『',
	'﹂': '﹁',
	'﹄': '﹃',
	'】': '【',
	'〕': '〔',
	'〗': '〖',
	'〙': '〘',
	'〛': '〚',
}

// openerToCloser is the derived reverse mapping. Never written after init.
var openerToCloser = func() map[rune]rune {
	m := make(map[rune]rune, len(closerToOpener))
	for closer, opener := range closerToOpener {
		m[opener] = closer
	}
	return m
}()

// IsOpener reports whether ch is one of the supported opening brackets.
// Unknown characters (including bracket-like characters outside the
// supported set) classify as neither opener nor closer.
//
// This is a pure atom function with no side effects.
func IsOpener(ch rune) bool {
	_, ok := openerToCloser[ch]
	return ok
}

// IsCloser reports whether ch is one of the supported closing brackets.
//
// This is a pure atom function with no side effects.
func IsCloser(ch rune) bool {
	_, ok := closerToOpener[ch]
	return ok
}

// OpenerFor returns the opening bracket paired with the given closer.
// The second return value is false when closer is not a supported closing
// bracket.
//
// Example:
//
//	opener, ok := brackets.OpenerFor('》') // Returns '《', true
//	opener, ok := brackets.OpenerFor('a') // Returns 0, false
func OpenerFor(closer rune) (rune, bool) {
	opener, ok := closerToOpener[closer]
	return opener, ok
}

// CloserFor returns the closing bracket paired with the given opener.
// The second return value is false when opener is not a supported opening
// bracket.
func CloserFor(opener rune) (rune, bool) {
	closer, ok := openerToCloser[opener]
	return closer, ok
}

// IsMatchingPair reports whether open and close form one of the sixteen
// supported bracket pairs. Matching is exact code-point equality; no Unicode
// normalization is performed, so composed and decomposed forms of the same
// visual bracket are distinct characters.
//
// Example:
//
//	brackets.IsMatchingPair('（', '）') // Returns true
//	brackets.IsMatchingPair('（', ')') // Returns false (mixed width)
func IsMatchingPair(open, close rune) bool {
	opener, ok := closerToOpener[close]
	return ok && opener == open
}

// isBracket reports whether ch is any supported bracket, opener or closer.
func isBracket(ch rune) bool {
	return IsOpener(ch) || IsCloser(ch)
}
