// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data structures shared between the CLI and the
// conversion stages.
package types

import (
	"fmt"
	"time"
)

// NoteMetadata is the structured metadata extracted from a note: the fields
// that end up in the front-matter block.
type NoteMetadata struct {
	// Title is the note title, never empty after extraction. Derived from
	// the first non-blank line with heading markers stripped, or the
	// filename stem as a fallback.
	Title string `json:"title" yaml:"title"`

	// Created is the note creation time, in UTC.
	Created time.Time `json:"created" yaml:"created"`

	// Updated is the last modification time, in UTC.
	Updated time.Time `json:"updated" yaml:"updated"`

	// Tags are hashtags found in the note body, deduplicated in order of
	// first appearance. Nil when the note has none.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// OverwritePolicy governs what happens when a conversion would replace an
// existing destination file.
type OverwritePolicy string

const (
	// OverwriteYes replaces existing destination files silently.
	OverwriteYes OverwritePolicy = "yes"
	// OverwriteNo skips tasks whose destination already exists.
	OverwriteNo OverwritePolicy = "no"
	// OverwriteAsk prompts per file; the answer governs that file only.
	OverwriteAsk OverwritePolicy = "ask"
	// OverwriteAbort halts the whole batch on the first collision.
	OverwriteAbort OverwritePolicy = "abort"
)

// ParseOverwritePolicy validates s as an overwrite policy name.
func ParseOverwritePolicy(s string) (OverwritePolicy, error) {
	switch p := OverwritePolicy(s); p {
	case OverwriteYes, OverwriteNo, OverwriteAsk, OverwriteAbort:
		return p, nil
	default:
		return "", fmt.Errorf("unknown overwrite policy %q: use yes, no, ask, or abort", s)
	}
}
