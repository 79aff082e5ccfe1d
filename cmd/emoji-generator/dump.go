package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"emoji-generator/internal/common"
	"emoji-generator/internal/mapping"
)

// Dump output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

type dumpOptions struct {
	byWord bool
	multi  bool
	format string
}

func newDumpCmd(a *app) *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the merged emoji map without writing any file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.format != formatText && opts.format != formatYAML {
				return fmt.Errorf("unknown format %q", opts.format)
			}

			s, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer s.closer.Close()

			tables, err := s.pipeline.Build(cmd.Context())
			if err != nil {
				return err
			}

			t := tables.EmojiWords
			if opts.byWord {
				t = tables.WordEmojis
			}

			if opts.multi {
				t = onlyMultiple(t)
			}

			return writeTable(cmd.OutOrStdout(), t, opts.format)
		},
	}

	cmd.Flags().BoolVar(&opts.byWord, "by-word", false, "print word to emojis instead of emoji to words")
	cmd.Flags().BoolVar(&opts.multi, "multi", false, "only print keys with more than one value")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, yaml")

	return cmd
}

// onlyMultiple keeps the keys that have more than one value.
func onlyMultiple(t *mapping.Table) *mapping.Table {
	filtered := mapping.NewTable()

	for key, values := range t.All() {
		if common.IsMultiple(values) {
			filtered.Set(key, values)
		}
	}

	return filtered
}

func writeTable(w io.Writer, t *mapping.Table, format string) error {
	if format == formatYAML {
		data, err := mapping.Marshal(t)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		_, err = w.Write(data)

		return err
	}

	for key, values := range t.All() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", key, strings.Join(values, " ")); err != nil {
			return err
		}
	}

	return nil
}
