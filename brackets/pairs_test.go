package brackets

import "testing"

func TestIsOpenerIsCloser(t *testing.T) {
	tests := []struct {
		name   string
		ch     rune
		opener bool
		closer bool
	}{
		{name: "ascii paren open", ch: '(', opener: true, closer: false},
		{name: "ascii paren close", ch: ')', opener: false, closer: true},
		{name: "fullwidth paren open", ch: '（', opener: true, closer: false},
		{name: "fullwidth paren close", ch: '）', opener: false, closer: true},
		{name: "square open", ch: '[', opener: true, closer: false},
		{name: "fullwidth square close", ch: '］', opener: false, closer: true},
		{name: "curly open", ch: '{', opener: true, closer: false},
		{name: "fullwidth curly close", ch: '｝', opener: false, closer: true},
		{name: "double angle open", ch: '《', opener: true, closer: false},
		{name: "corner open", ch: '「', opener: true, closer: false},
		{name: "white corner close", ch: '』', opener: false, closer: true},
		{name: "vertical corner open", ch: '﹁', opener: true, closer: false},
		{name: "vertical white corner close", ch: '﹄', opener: false, closer: true},
		{name: "black lenticular open", ch: '【', opener: true, closer: false},
		{name: "tortoise shell close", ch: '〕', opener: false, closer: true},
		{name: "white lenticular open", ch: '〖', opener: true, closer: false},
		{name: "white tortoise shell close", ch: '〙', opener: false, closer: true},
		{name: "double square open", ch: '〚', opener: true, closer: false},
		{name: "letter is neither", ch: 'a', opener: false, closer: false},
		{name: "ideograph is neither", ch: '书', opener: false, closer: false},
		{name: "unsupported angle is neither", ch: '<', opener: false, closer: false},
		{name: "space is neither", ch: ' ', opener: false, closer: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOpener(tt.ch); got != tt.opener {
				t.Errorf("IsOpener(%q) = %v, want %v", tt.ch, got, tt.opener)
			}
			if got := IsCloser(tt.ch); got != tt.closer {
				t.Errorf("IsCloser(%q) = %v, want %v", tt.ch, got, tt.closer)
			}
		})
	}
}

func TestPairTableCoversAllSixteenTypes(t *testing.T) {
	if len(closerToOpener) != 16 {
		t.Fatalf("closerToOpener has %d entries, want 16", len(closerToOpener))
	}
	if len(openerToCloser) != 16 {
		t.Fatalf("openerToCloser has %d entries, want 16", len(openerToCloser))
	}
	// The derived mapping must round-trip against the stored one.
	for closer, opener := range closerToOpener {
		got, ok := CloserFor(opener)
		if !ok || got != closer {
			t.Errorf("CloserFor(%q) = %q, %v; want %q, true", opener, got, ok, closer)
		}
	}
}

func TestOpenerFor(t *testing.T) {
	tests := []struct {
		name   string
		closer rune
		opener rune
		ok     bool
	}{
		{name: "fullwidth paren", closer: '）', opener: '（', ok: true},
		{name: "double angle", closer: '》', opener: '《', ok: true},
		{name: "corner", closer: '」', opener: '「', ok: true},
		{name: "double square", closer: '〛', opener: '〚', ok: true},
		{name: "opener is not a closer", closer: '（', opener: 0, ok: false},
		{name: "plain letter", closer: 'x', opener: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener, ok := OpenerFor(tt.closer)
			if ok != tt.ok || opener != tt.opener {
				t.Errorf("OpenerFor(%q) = %q, %v; want %q, %v", tt.closer, opener, ok, tt.opener, tt.ok)
			}
		})
	}
}

func TestIsMatchingPair(t *testing.T) {
	tests := []struct {
		name  string
		open  rune
		close rune
		want  bool
	}{
		{name: "ascii parens", open: '(', close: ')', want: true},
		{name: "fullwidth parens", open: '（', close: '）', want: true},
		{name: "double angle", open: '《', close: '》', want: true},
		{name: "mixed width is not a pair", open: '（', close: ')', want: false},
		{name: "cross type is not a pair", open: '【', close: '》', want: false},
		{name: "reversed order is not a pair", open: '）', close: '（', want: false},
		{name: "non brackets", open: 'a', close: 'b', want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMatchingPair(tt.open, tt.close); got != tt.want {
				t.Errorf("IsMatchingPair(%q, %q) = %v, want %v", tt.open, tt.close, got, tt.want)
			}
		})
	}
}
