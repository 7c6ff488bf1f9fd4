package bookname

import "regexp"

// chapterPatterns recognize chapter heading lines so pagination can break
// pages on them. Static configuration; the list is ordered roughly by how
// often each form appears in the wild.
var chapterPatterns = []*regexp.Regexp{
	// 第12章 / 第一百二十章 / 第3卷 / 第两千回, optionally followed by a title.
	regexp.MustCompile(`^\s*第[0-9０-９零一二三四五六七八九十百千万两]+[章卷节回集部篇](?:[\s:：].*)?$`),
	// Standalone structural headings.
	regexp.MustCompile(`^\s*(?:序章|序言|楔子|引子|番外|尾声|后记|前言|终章)(?:[\s:：].*)?$`),
	// Chapter 12 / chapter 12: Title / Part IV / Section 3.
	regexp.MustCompile(`^\s*(?i:chapter|section|part)\s+(?:\d+|[IVXLC]+)(?:[\s:.].*)?$`),
}

// IsChapterTitle reports whether a line of book text looks like a chapter
// heading.
func IsChapterTitle(line string) bool {
	for _, p := range chapterPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
