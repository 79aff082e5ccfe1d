// Package pipeline runs the full regeneration: fetch and read the sources,
// merge, invert and order the associations, render and write the outputs.
//
// Nothing is written unless every step before the write succeeded.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"emoji-generator/internal/config"
	"emoji-generator/internal/diagnostic"
	"emoji-generator/internal/gen"
	"emoji-generator/internal/logging"
	"emoji-generator/internal/mapping"
	"emoji-generator/internal/order"
	"emoji-generator/internal/source"
)

// Fetcher retrieves the upstream emoji map.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (source.Source, error)
}

// Tables are the merged and inverted associations.
type Tables struct {
	// EmojiWords maps each emoji to its words.
	EmojiWords *mapping.Table
	// WordEmojis maps each word to its ordered emojis.
	WordEmojis *mapping.Table
	// Diagnostics holds the non-fatal findings of parsing and ordering.
	Diagnostics diagnostic.Diagnostics
}

// Result summarizes a completed run.
type Result struct {
	Emojis int
	Words  int
	gen.Stats
	Files []string
}

// Pipeline regenerates the lexicon and tips files.
type Pipeline struct {
	cfg     *config.Config
	fetcher Fetcher
	logger  *slog.Logger
}

// New creates a Pipeline. A nil logger discards log output.
func New(cfg *config.Config, fetcher Fetcher, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		fetcher: fetcher,
		logger:  logging.OrDiscard(logger),
	}
}

// Build fetches and reads the map sources and computes both tables.
func (p *Pipeline) Build(ctx context.Context) (*Tables, error) {
	upstreamSrc, err := p.fetcher.Fetch(ctx, p.cfg.Upstream.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching upstream map: %w", err)
	}

	p.logger.Debug("fetched upstream map", slog.String("url", p.cfg.Upstream.URL), slog.Int("bytes", len(upstreamSrc.Content)))

	if upstreamSrc.IsEmpty() {
		p.logger.Warn("upstream map has no entries", slog.String("url", p.cfg.Upstream.URL))
	}

	upstream, err := mapping.Parse(upstreamSrc)
	if err != nil {
		return nil, p.fail("parsing upstream map", upstream.Diagnostics, err)
	}

	local, err := mapping.LoadFile(p.cfg.Paths.LocalMap)
	if err != nil {
		return nil, p.fail("parsing local map", diagnosticsOf(local), err)
	}

	directives, err := order.LoadDirectives(p.cfg.Paths.Order)
	if err != nil {
		var diags diagnostic.Diagnostics
		if directives != nil {
			diags = directives.Diagnostics
		}

		return nil, p.fail("parsing ordering directives", diags, err)
	}

	t := &Tables{EmojiWords: mapping.Merge(upstream, local)}

	var orderDiags diagnostic.Diagnostics
	t.WordEmojis, orderDiags = order.WordEmojis(t.EmojiWords, directives)

	t.Diagnostics.Merge(upstream.Diagnostics)
	t.Diagnostics.Merge(local.Diagnostics)
	t.Diagnostics.Merge(directives.Diagnostics)
	t.Diagnostics.Merge(orderDiags)
	t.Diagnostics.Log(p.logger)

	p.logger.Info("merged emoji map",
		slog.Int("upstream_lines", len(upstream.Entries)),
		slog.Int("local_lines", len(local.Entries)),
		slog.Int("ordered_words", directives.Len()),
		slog.Int("emojis", t.EmojiWords.Len()),
		slog.Int("words", t.WordEmojis.Len()),
		slog.Int("pairs", t.EmojiWords.Pairs()),
	)

	return t, nil
}

// Run builds the tables, renders both outputs and writes them.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	t, err := p.Build(ctx)
	if err != nil {
		return nil, err
	}

	tips, err := source.ReadFile(p.cfg.Paths.Tips)
	if err != nil {
		return nil, fmt.Errorf("reading tips file: %w", err)
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.LexiconPath = p.cfg.Paths.Lexicon
	genCfg.TipsPath = p.cfg.Paths.Tips

	generator := gen.NewGenerator(genCfg)

	files, stats, err := generator.Generate(t.WordEmojis, tips)
	if err != nil {
		return nil, err
	}

	if err := gen.WriteFiles(files); err != nil {
		return nil, err
	}

	res := &Result{
		Emojis: t.EmojiWords.Len(),
		Words:  t.WordEmojis.Len(),
		Stats:  stats,
	}

	for _, f := range files {
		res.Files = append(res.Files, f.Path)
		p.logger.Info("generated", slog.String("path", f.Path), slog.Int("bytes", len(f.Content)))
	}

	p.logger.Info("tips updated",
		slog.Int("preserved", stats.TipsPreserved),
		slog.Int("generated", stats.TipsGenerated),
	)

	return res, nil
}

func (p *Pipeline) fail(step string, diags diagnostic.Diagnostics, err error) error {
	diags.Log(p.logger)
	return fmt.Errorf("%s: %w", step, err)
}

func diagnosticsOf(f *mapping.File) diagnostic.Diagnostics {
	if f == nil {
		return diagnostic.Diagnostics{}
	}

	return f.Diagnostics
}
