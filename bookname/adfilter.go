package bookname

import (
	"regexp"
	"strings"
	"sync"
)

// adLinePatterns match whole-line promotional boilerplate regardless of
// which book is being read. Compiled once; shared read-only.
var adLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*本书由.{0,30}(?:整理|制作|提供|收集).*$`),
	regexp.MustCompile(`^\s*更多(?:精彩|免费)?(?:小说|电子书|章节).{0,20}$`),
	regexp.MustCompile(`^\s*(?:请|支持)?(?:到|上)?正版.{0,20}(?:订阅|阅读|支持).*$`),
	regexp.MustCompile(`(?:手机|电脑)?(?:访问|请记住|请收藏).{0,40}$`),
}

// AdFilter removes per-book promotional lines from book content. Uploaders
// interleave ads that embed the book's own title and author ("《X》最新章节
// 由YYY提供"), so the effective patterns depend on the current book
// identity.
//
// The compiled per-book patterns are memoized on the (title, author) key
// and regenerated only when the key changes. The cache is an explicit field
// of the filter, not package-level state, so each test (and each reader
// session) constructs its own filter with no cross-instance leakage.
//
// AdFilter is safe for concurrent use.
type AdFilter struct {
	mu       sync.Mutex
	lastKey  string
	patterns []*regexp.Regexp
}

// NewAdFilter returns a filter with an empty cache. The first Clean call
// compiles the per-book patterns.
func NewAdFilter() *AdFilter {
	return &AdFilter{}
}

// Clean removes promotional content from one line of book text, using
// patterns specialized to the given title and author. Returns the trimmed
// remainder, which is empty when the whole line was an ad.
func (f *AdFilter) Clean(title, author, line string) string {
	key := title + "\x00" + author

	f.mu.Lock()
	if key != f.lastKey {
		f.patterns = compileBookPatterns(title, author)
		f.lastKey = key
	}
	patterns := f.patterns
	f.mu.Unlock()

	for _, p := range patterns {
		line = p.ReplaceAllString(line, "")
	}
	for _, p := range adLinePatterns {
		line = p.ReplaceAllString(line, "")
	}
	return strings.TrimSpace(line)
}

// compileBookPatterns builds the per-book ad patterns. Title and author are
// quoted verbatim; empty identities contribute no patterns.
func compileBookPatterns(title, author string) []*regexp.Regexp {
	var patterns []*regexp.Regexp
	if title != "" {
		quoted := regexp.QuoteMeta(title)
		patterns = append(patterns,
			regexp.MustCompile(`《?`+quoted+`》?(?:最新章节|全文阅读|无弹窗|txt下载)\S*`),
		)
	}
	if author != "" {
		quoted := regexp.QuoteMeta(author)
		patterns = append(patterns,
			regexp.MustCompile(quoted+`(?:作品|大作|倾情奉献|提供)\S*`),
		)
	}
	return patterns
}
