package bookname

import "testing"

func TestAdFilterClean(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		author string
		line   string
		want   string
	}{
		{
			name:   "title-keyed ad line is removed entirely",
			title:  "斗破苍穹",
			author: "天蚕土豆",
			line:   "《斗破苍穹》最新章节",
			want:   "",
		},
		{
			name:   "author-keyed ad line is removed entirely",
			title:  "斗破苍穹",
			author: "唐家三少",
			line:   "唐家三少作品",
			want:   "",
		},
		{
			name:   "static boilerplate is removed without book identity",
			title:  "",
			author: "",
			line:   "本书由老王整理上传",
			want:   "",
		},
		{
			name:   "ordinary prose is untouched",
			title:  "斗破苍穹",
			author: "天蚕土豆",
			line:   "他推开了门。",
			want:   "他推开了门。",
		},
		{
			name:   "regex metacharacters in the title are quoted",
			title:  "C++从入门到放弃",
			author: "",
			line:   "《C++从入门到放弃》最新章节",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewAdFilter()
			got := f.Clean(tt.title, tt.author, tt.line)
			if got != tt.want {
				t.Errorf("Clean(%q, %q, %q) = %q, want %q", tt.title, tt.author, tt.line, got, tt.want)
			}
		})
	}
}

// One filter reused across different books recompiles its patterns when the
// identity key changes and keeps working for both.
func TestAdFilterCacheInvalidation(t *testing.T) {
	f := NewAdFilter()

	if got := f.Clean("斗破苍穹", "", "《斗破苍穹》最新章节"); got != "" {
		t.Errorf("first book: got %q, want empty", got)
	}
	if got := f.Clean("神墓", "", "《神墓》最新章节"); got != "" {
		t.Errorf("second book: got %q, want empty", got)
	}
	// Patterns for the first book must no longer apply.
	if got := f.Clean("神墓", "", "《斗破苍穹》最新章节"); got != "《斗破苍穹》最新章节" {
		t.Errorf("stale pattern applied: got %q", got)
	}
}

// Two filters never share cached state.
func TestAdFilterInstancesAreIndependent(t *testing.T) {
	a := NewAdFilter()
	b := NewAdFilter()

	if got := a.Clean("斗破苍穹", "", "《斗破苍穹》最新章节"); got != "" {
		t.Fatalf("filter a: got %q, want empty", got)
	}
	if got := b.Clean("神墓", "", "《斗破苍穹》最新章节"); got != "《斗破苍穹》最新章节" {
		t.Errorf("filter b used filter a's patterns: got %q", got)
	}
}
