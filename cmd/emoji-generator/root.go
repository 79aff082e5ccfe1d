package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"emoji-generator/internal/config"
	"emoji-generator/internal/fetch"
	"emoji-generator/internal/logging"
	"emoji-generator/internal/pipeline"
)

// app carries the configuration state shared by all commands.
type app struct {
	v          *viper.Viper
	configFile string
}

// session is a configured pipeline with its logger.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
	closer   io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:   "emoji-generator",
		Short: "Regenerate the emoji lexicon and tips from the upstream emoji map",
		Long: `emoji-generator merges the upstream emoji map with the local overrides,
orders each word's emojis and rewrites the OpenCC emoji lexicon and the tips file.

Without flags every path is resolved against the repository root, the parent
of the directory holding the executable.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd)
			if err != nil {
				return err
			}
			defer s.closer.Close()

			res, err := s.pipeline.Run(cmd.Context())
			if err != nil {
				return err
			}

			s.logger.Info("done",
				slog.Int("emojis", res.Emojis),
				slog.Int("words", res.Words),
				slog.Int("lexicon_lines", res.LexiconLines),
			)

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file path (YAML)")
	flags.String("root", "", "directory relative paths are resolved against")
	flags.String("upstream-url", "", "upstream emoji map URL")
	flags.Duration("timeout", 0, "upstream request timeout")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "write JSON logs to this rotating file")

	bindings := map[string]string{
		config.KeyRoot:            "root",
		config.KeyUpstreamURL:     "upstream-url",
		config.KeyUpstreamTimeout: "timeout",
		config.KeyLogLevel:        "log-level",
		config.KeyLogFile:         "log-file",
	}
	for key, flag := range bindings {
		cobra.CheckErr(a.v.BindPFlag(key, flags.Lookup(flag)))
	}

	cmd.AddCommand(newDumpCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// open loads the configuration and builds the pipeline.
func (a *app) open(cmd *cobra.Command) (*session, error) {
	if err := config.ReadFile(a.v, a.configFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded",
		slog.String("root", cfg.Root),
		slog.String("upstream", cfg.Upstream.URL),
		slog.String("lexicon", cfg.Paths.Lexicon),
		slog.String("tips", cfg.Paths.Tips),
	)

	return &session{
		cfg:      cfg,
		logger:   logger,
		pipeline: pipeline.New(cfg, fetch.NewClient(cfg.Upstream.Timeout), logger),
		closer:   closer,
	}, nil
}
