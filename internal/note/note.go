// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package note extracts structured metadata from raw note text: a title, a
// tag list, and creation/modification timestamps.
package note

import (
	"strings"
	"time"

	"github.com/calfzhou/bear-to-joplin/internal/frontmatter"
	"github.com/calfzhou/bear-to-joplin/pkg/types"
)

// Extract derives note metadata from raw text and filesystem timestamps.
// It never fails: empty or unusable text falls back to fallbackTitle and an
// empty tag list. When the text already carries a front-matter block, the
// block's created/updated values win over the filesystem ones, so re-running
// a conversion leaves timestamps stable.
func Extract(text, fallbackTitle string, fsCreated, fsModified time.Time, rules types.TagRules) types.NoteMetadata {
	meta := types.NoteMetadata{
		Title:   fallbackTitle,
		Created: fsCreated.UTC(),
		Updated: fsModified.UTC(),
	}

	prev, body := frontmatter.Parse(text)
	if prev != nil {
		if !prev.Created.IsZero() {
			meta.Created = prev.Created
		}
		if !prev.Updated.IsZero() {
			meta.Updated = prev.Updated
		}
	}

	if title := firstLineTitle(body); title != "" {
		meta.Title = title
	}
	meta.Tags = ScanTags(body, rules)
	return meta
}

// firstLineTitle returns the first non-blank line of text, stripped of
// leading markdown heading markers and surrounding whitespace. An empty
// result means the text has no usable title line.
func firstLineTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(line, "#"))
	}
	return ""
}
