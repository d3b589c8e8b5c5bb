// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package frontmatter renders and parses the YAML front-matter block that
// carries note metadata between conversions.
package frontmatter

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	fm "github.com/adrg/frontmatter"
	"go.yaml.in/yaml/v3"

	"github.com/calfzhou/bear-to-joplin/pkg/types"
)

// TimeLayout is the timestamp format written into front matter. It matches
// the layout Joplin accepts on markdown import.
const TimeLayout = "2006-01-02 15:04:05Z"

const delim = "---"

// envelope is the on-disk shape of the front-matter block. Timestamps are
// kept as strings so the layout stays stable across YAML libraries.
type envelope struct {
	Title   string   `yaml:"title"`
	Created string   `yaml:"created"`
	Updated string   `yaml:"updated"`
	Tags    []string `yaml:"tags,omitempty"`
}

// Render serializes meta as a front-matter block followed by a blank line
// and the body, unmodified.
func Render(meta types.NoteMetadata, body string) (string, error) {
	env := envelope{
		Title:   meta.Title,
		Created: meta.Created.UTC().Format(TimeLayout),
		Updated: meta.Updated.UTC().Format(TimeLayout),
		Tags:    meta.Tags,
	}

	data, err := yaml.Marshal(&env)
	if err != nil {
		return "", fmt.Errorf("marshaling front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString(delim + "\n")
	b.Write(data)
	b.WriteString(delim + "\n\n")
	b.WriteString(body)
	return b.String(), nil
}

// Parse detects a leading front-matter block in text. It returns the parsed
// metadata and the body with the block stripped. When no valid block is
// present the metadata is nil and the text comes back unchanged; that is not
// an error, merely nothing to parse.
func Parse(text string) (*types.NoteMetadata, string) {
	meta, body, err := parse(text)
	if err != nil {
		// Notes exported from Bear occasionally carry control characters
		// that break the YAML reader. Retry with those stripped, as the
		// block itself is usually fine.
		meta, body, err = parse(sanitize(text))
		if err != nil {
			return nil, text
		}
	}
	if meta == nil {
		return nil, text
	}
	return meta, body
}

// Body returns text with any leading front-matter block stripped.
func Body(text string) string {
	_, body := Parse(text)
	return body
}

func parse(text string) (*types.NoteMetadata, string, error) {
	if !strings.HasPrefix(text, delim) {
		return nil, text, nil
	}

	var env envelope
	rest, err := fm.Parse(strings.NewReader(text), &env)
	if err != nil {
		return nil, "", err
	}
	if len(rest) == len(text) {
		// Nothing was consumed, so there was no block to begin with.
		return nil, text, nil
	}

	meta := types.NoteMetadata{
		Title: env.Title,
		Tags:  env.Tags,
	}
	meta.Created = parseTime(env.Created)
	meta.Updated = parseTime(env.Updated)

	// Render emits exactly one blank line between the block and the body.
	body := strings.TrimPrefix(string(rest), "\n")
	return &meta, body, nil
}

// parseTime accepts the layouts this tool and Joplin write. An
// unparsable value yields the zero time, which callers treat as absent.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{TimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// controlChars matches characters that are invalid in YAML documents.
var controlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f-\x9f]`)

func sanitize(text string) string {
	return controlChars.ReplaceAllString(text, "")
}
