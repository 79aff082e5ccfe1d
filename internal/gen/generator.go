package gen

import (
	"fmt"

	"emoji-generator/internal/mapping"
	"emoji-generator/internal/source"
)

// DefaultTipPrefix marks tips lines managed by the generator.
const DefaultTipPrefix = "表情："

// GeneratorConfig holds configuration for rendering.
type GeneratorConfig struct {
	// LexiconPath is where the lexicon file is written.
	LexiconPath string
	// TipsPath is where the tips file is written.
	TipsPath string
	// TipPrefix marks generated tips lines.
	TipPrefix string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		LexiconPath: "opencc/emoji.txt",
		TipsPath:    "lua/tips/tips_show.txt",
		TipPrefix:   DefaultTipPrefix,
	}
}

// Generator renders output files from a word→emojis table.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.TipPrefix == "" {
		config.TipPrefix = DefaultTipPrefix
	}

	return &Generator{config: config}
}

// GeneratedFile represents a rendered output file.
type GeneratedFile struct {
	// Path is where the file is written.
	Path string
	// Content is the full file content.
	Content []byte
}

// Stats summarizes one rendering pass.
type Stats struct {
	// LexiconLines is the number of lexicon lines written.
	LexiconLines int
	// TipsPreserved is the number of hand-written tips lines kept.
	TipsPreserved int
	// TipsGenerated is the number of emoji tips lines generated.
	TipsGenerated int
}

// Generate renders the lexicon and the updated tips file.
// tips is the current content of the tips file.
func (g *Generator) Generate(wordEmojis *mapping.Table, tips source.Source) ([]GeneratedFile, Stats, error) {
	if wordEmojis == nil {
		return nil, Stats{}, fmt.Errorf("generating %s: no word table", g.config.LexiconPath)
	}

	lexicon, lexiconLines := RenderLexicon(wordEmojis)
	rendered := RenderTips(wordEmojis, tips, g.config.TipPrefix)

	files := []GeneratedFile{
		{Path: g.config.LexiconPath, Content: lexicon},
		{Path: g.config.TipsPath, Content: rendered.Content},
	}

	stats := Stats{
		LexiconLines:  lexiconLines,
		TipsPreserved: rendered.Preserved,
		TipsGenerated: rendered.Generated,
	}

	return files, stats, nil
}
