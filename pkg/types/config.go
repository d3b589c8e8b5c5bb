package types

// TagRules controls which hashtag candidates are kept as note tags. The
// defaults match Bear's own tag recognition; the toggles exist because the
// boundary rules differ between note applications.
type TagRules struct {
	// ExcludeNumeric drops tags consisting only of digits (e.g. #2024),
	// which are usually dates rather than tags.
	ExcludeNumeric bool `json:"exclude_numeric" yaml:"exclude_numeric"`

	// ExcludeColorHex drops six-digit hex tokens (e.g. #a1b2c3), which Bear
	// renders as color swatches.
	ExcludeColorHex bool `json:"exclude_color_hex" yaml:"exclude_color_hex"`

	// ExcludeCode drops hashtags inside code spans and code blocks.
	ExcludeCode bool `json:"exclude_code" yaml:"exclude_code"`
}

// DefaultTagRules returns the Bear-compatible rule set.
func DefaultTagRules() TagRules {
	return TagRules{
		ExcludeNumeric:  true,
		ExcludeColorHex: true,
		ExcludeCode:     true,
	}
}

// ConvertConfig holds the settings for one conversion run. It is built once
// from flags and config at startup and passed into the batch converter.
type ConvertConfig struct {
	// Overwrite selects the behavior when a destination file already exists.
	Overwrite OverwritePolicy `json:"overwrite" yaml:"overwrite"`

	// Reverse strips front matter and restores file times instead of
	// adding front matter.
	Reverse bool `json:"reverse" yaml:"reverse"`

	// Extensions lists the note file extensions eligible for conversion
	// (default ".md"). Files with other extensions are copied verbatim so
	// attachments travel with the notes.
	Extensions []string `json:"extensions" yaml:"extensions"`

	// Tags configures hashtag recognition for the metadata extractor.
	Tags TagRules `json:"tags" yaml:"tags"`
}
