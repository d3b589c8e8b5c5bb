// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package frontmatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calfzhou/bear-to-joplin/pkg/types"
)

func sampleMeta() types.NoteMetadata {
	return types.NoteMetadata{
		Title:   "My Note",
		Created: time.Date(2023, 1, 1, 8, 30, 0, 0, time.UTC),
		Updated: time.Date(2023, 6, 1, 15, 45, 10, 0, time.UTC),
		Tags:    []string{"work", "multi word tag"},
	}
}

func TestRenderLayout(t *testing.T) {
	out, err := Render(sampleMeta(), "# My Note\n\nBody text.\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "---\n"), "output should start with the delimiter")
	assert.Contains(t, out, "title: My Note")
	assert.Contains(t, out, "2023-01-01 08:30:00Z")
	assert.Contains(t, out, "2023-06-01 15:45:10Z")
	assert.Contains(t, out, "- work")
	assert.Contains(t, out, "- multi word tag")
	assert.Contains(t, out, "\n---\n\n# My Note\n")
}

func TestRenderNoTags(t *testing.T) {
	meta := sampleMeta()
	meta.Tags = nil

	out, err := Render(meta, "body\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "tags:")
}

func TestRoundTrip(t *testing.T) {
	bodies := []string{
		"# My Note\n\nBody text with #work.\n",
		"",
		"\nleading blank line\n",
		"no trailing newline",
	}

	for _, body := range bodies {
		meta := sampleMeta()

		out, err := Render(meta, body)
		require.NoError(t, err)

		got, gotBody := Parse(out)
		require.NotNil(t, got, "body %q", body)

		assert.Equal(t, meta.Title, got.Title)
		assert.Equal(t, meta.Tags, got.Tags)
		assert.True(t, meta.Created.Equal(got.Created), "created = %v", got.Created)
		assert.True(t, meta.Updated.Equal(got.Updated), "updated = %v", got.Updated)
		assert.Equal(t, body, gotBody)
	}
}

func TestParseNoFrontMatter(t *testing.T) {
	texts := []string{
		"# Just a note\n\nNo block here.\n",
		"",
		"--- not a delimiter line\ntext\n",
		"---\nunterminated block\n",
	}

	for _, text := range texts {
		meta, body := Parse(text)
		assert.Nil(t, meta, "text %q", text)
		assert.Equal(t, text, body)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	text := "---\n:::bad\n---\n\nbody\n"

	meta, body := Parse(text)
	assert.Nil(t, meta)
	assert.Equal(t, text, body)
}

func TestParseControlCharacters(t *testing.T) {
	// Bear exports occasionally embed control characters that break strict
	// YAML readers; the parser strips them rather than giving up.
	text := "---\ntitle: Damaged\x0bNote\ncreated: 2023-01-01 08:30:00Z\nupdated: 2023-06-01 15:45:10Z\n---\n\nbody\n"

	meta, _ := Parse(text)
	require.NotNil(t, meta)
	assert.Equal(t, "DamagedNote", meta.Title)
}

func TestParseRFC3339Timestamps(t *testing.T) {
	text := "---\ntitle: Imported\ncreated: 2023-01-01T08:30:00Z\nupdated: 2023-06-01T15:45:10Z\n---\n\nbody\n"

	meta, body := Parse(text)
	require.NotNil(t, meta)
	assert.Equal(t, time.Date(2023, 1, 1, 8, 30, 0, 0, time.UTC), meta.Created)
	assert.Equal(t, time.Date(2023, 6, 1, 15, 45, 10, 0, time.UTC), meta.Updated)
	assert.Equal(t, "body\n", body)
}

func TestParseUnparsableTimesAreZero(t *testing.T) {
	text := "---\ntitle: Odd\ncreated: yesterday\n---\n\nbody\n"

	meta, _ := Parse(text)
	require.NotNil(t, meta)
	assert.True(t, meta.Created.IsZero())
	assert.True(t, meta.Updated.IsZero())
}

func TestBody(t *testing.T) {
	out, err := Render(sampleMeta(), "the body\n")
	require.NoError(t, err)

	assert.Equal(t, "the body\n", Body(out))
	assert.Equal(t, "plain\n", Body("plain\n"))
}
