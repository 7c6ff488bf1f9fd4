// Package bookname extracts book titles and author names from raw upload
// filenames. Filenames in the wild carry site watermarks, download tags and
// truncated bracket noise ("《斗破苍穹》作者：天蚕土豆(精校版).txt",
// "神墓_作者：辰东_www.example.com.txt"); this package slices out the
// candidate title and author around a language-specific author separator and
// hands both candidates to the brackets engine for balance repair and
// decorative-wrap stripping.
package bookname

import (
	"path/filepath"
	"regexp"
	"strings"

	"shelf_backend/brackets"
)

// Meta is the result of extracting shelf metadata from a filename.
// Author is empty when no author separator was found.
type Meta struct {
	Title  string
	Author string
}

// authorSeparator locates the token that splits a filename into a title
// candidate (before) and an author candidate (after). CJK uploads use
// 作者/著, English uploads use "by".
var authorSeparator = regexp.MustCompile(`(?:作者|著者|著)[:：\s]*|\s+[bB][yY]\s+`)

// noisePatterns remove static promotional noise before any slicing happens.
// These are fixed configuration, not tied to a particular book; per-book ad
// removal lives in AdFilter.
var noisePatterns = []*regexp.Regexp{
	// Site watermarks and download domains.
	regexp.MustCompile(`(?:www\.)?[A-Za-z0-9-]+\.(?:com|net|org|cn|cc|la|me|info)\S*`),
	regexp.MustCompile(`笔趣阁|八一中文网?|顶点小说|起点中文网|新笔趣阁|飘天文学`),
	// Bracketed release tags: 【精校版】 (完结) [全本校对] and friends.
	regexp.MustCompile(`[\[【（(〔][^\]】）)〕]*?(?:精校|完结|全本|校对|修订|未删节|实体书|出版|TXT|txt|下载|整理)[^\]】）)〕]*?[\]】）)〕]`),
}

// edgeCutset holds separator litter commonly left at candidate edges after
// noise removal.
const edgeCutset = " \t-—_·.、:：,，"

// Extract parses a filename (with or without directory and extension) into
// shelf metadata.
//
// Pipeline: basename → extension drop → static noise removal → author
// separator split → brackets.ProcessAndTrim on each candidate → edge trim.
//
// Extract never fails; unparseable names degrade to a best-effort Meta,
// possibly with an empty Title (callers fall back to the raw filename).
//
// Example:
//
//	m := bookname.Extract("《斗破苍穹》作者：天蚕土豆(精校版).txt")
//	// m.Title == "斗破苍穹", m.Author == "天蚕土豆"
func Extract(filename string) Meta {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	for _, p := range noisePatterns {
		base = p.ReplaceAllString(base, "")
	}

	titlePart := base
	authorPart := ""
	if loc := authorSeparator.FindStringIndex(base); loc != nil {
		titlePart = base[:loc[0]]
		authorPart = base[loc[1]:]
	}

	return Meta{
		Title:  cleanCandidate(titlePart),
		Author: cleanCandidate(authorPart),
	}
}

// cleanCandidate runs one sliced candidate through the brackets engine and
// trims separator litter off both ends.
func cleanCandidate(s string) string {
	s = brackets.ProcessAndTrim(s)
	return strings.Trim(s, edgeCutset)
}
