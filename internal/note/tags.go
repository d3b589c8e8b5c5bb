// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package note

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/calfzhou/bear-to-joplin/pkg/types"
)

// ScanTags collects Bear-style hashtags from text, deduplicated in order of
// first appearance. A tag starts at a '#' preceded by a space or the line
// start and followed by a visible character; a multi-word tag closes with a
// trailing '#' (as in "#multi word tag#"). Hashtags inside code spans and
// code blocks are not tags when rules say so, and hashtags inside URLs or
// link targets never qualify because they follow a non-space character.
func ScanTags(text string, rules types.TagRules) []string {
	if !strings.Contains(text, "#") {
		return nil
	}

	var excluded []span
	if rules.ExcludeCode {
		excluded = codeRanges([]byte(text))
	}

	var tags []string
	seen := make(map[string]bool)
	off := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		for _, cand := range scanLine(strings.TrimRight(line, "\r\n")) {
			if inSpans(excluded, off+cand.off) {
				continue
			}
			tag := normalizeTag(cand.text)
			if tag == "" || !keepTag(tag, rules) {
				continue
			}
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
		off += len(line)
	}
	return tags
}

// candidate is a raw hashtag occurrence: its text without the leading '#'
// and the byte offset of that '#' within the line.
type candidate struct {
	text string
	off  int
}

// scanLine walks one line byte by byte, tracking whether it is inside a
// hashtag and whether that hashtag might span multiple words.
func scanLine(line string) []candidate {
	var cands []candidate
	var start, end, hash int
	inHash := false
	multiWords := false

	emit := func(stop int) {
		cands = append(cands, candidate{text: line[start:stop], off: hash})
		inHash = false
		multiWords = false
	}

	for i := 0; i < len(line); i++ {
		curr := line[i]
		var peek byte
		if i+1 < len(line) {
			peek = line[i+1]
		}

		switch {
		case !inHash:
			if curr == '#' && (i == 0 || line[i-1] == ' ') && peek != 0 && peek != ' ' && peek != '#' {
				hash = i
				start = i + 1
				end = start
				inHash = true
			}
		case curr == '#' && line[i-1] != ' ':
			// A '#' right after a word closes a multi-word tag.
			emit(i)
		case curr == ' ' && peek == '#':
			// A space before the next hashtag ends the current one.
			emit(end)
		case curr == ' ':
			// Either a multi-word tag continues or the tag ended here;
			// remember this position as the possible end.
			end = i
			multiWords = true
		case !multiWords:
			end = i + 1
		}
	}
	if inHash {
		emit(end)
	}
	return cands
}

// normalizeTag trims the trailing punctuation that note prose attaches to
// hashtags ("#work." tags the note with "work").
func normalizeTag(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), ".,;:!?`\"')]}")
}

// colorHex matches the six-digit color tokens Bear renders as swatches.
var colorHex = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

func keepTag(tag string, rules types.TagRules) bool {
	if rules.ExcludeNumeric && isNumeric(tag) {
		return false
	}
	if rules.ExcludeColorHex && colorHex.MatchString(tag) {
		return false
	}
	return true
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// span is a half-open byte range [lo, hi) within the note source.
type span struct{ lo, hi int }

func inSpans(spans []span, off int) bool {
	for _, s := range spans {
		if off >= s.lo && off < s.hi {
			return true
		}
	}
	return false
}

// codeRanges parses source as markdown and returns the byte ranges covered
// by code spans and code blocks, where a '#' is syntax rather than a tag.
func codeRanges(source []byte) []span {
	doc := goldmark.New().Parser().Parse(gtext.NewReader(source))

	var spans []span
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.CodeSpan:
			for c := v.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					spans = append(spans, span{t.Segment.Start, t.Segment.Stop})
				}
			}
		case *ast.FencedCodeBlock:
			spans = appendSegments(spans, v.Lines())
		case *ast.CodeBlock:
			spans = appendSegments(spans, v.Lines())
		}
		return ast.WalkContinue, nil
	})
	return spans
}

func appendSegments(spans []span, lines *gtext.Segments) []span {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		spans = append(spans, span{seg.Start, seg.Stop})
	}
	return spans
}
