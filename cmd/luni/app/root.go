// Package app provides the command tree of the luni command-line application.
package app

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"luni/internal/config"
	"luni/internal/unicodedb"
)

// NewRootCmd creates the luni root command. Each call returns an independent
// command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	v := config.NewViper()
	var codes bool

	rootCmd := &cobra.Command{
		Use:               "luni <pattern>",
		DisableAutoGenTag: true,
		Short:             "Look up Unicode characters by description",
		Long: `luni prints the Unicode characters whose description matches a regular expression.

Descriptions are stored in lower case, so patterns should be typed in lower case:

  luni otter
  luni '^white .*circle$'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := unicodedb.FormatGlyph
			if codes {
				format = unicodedb.FormatCodePoint
			}
			return runSearch(cmd, v, args[0], format)
		},
	}

	rootCmd.PersistentFlags().String(config.KeyDatabase, config.DefaultDatabase,
		"Path to the description database (text, or SQLite with a .db/.sqlite extension)")
	rootCmd.PersistentFlags().String(config.KeyLogLevel, config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&codes, "codes", false, "Print U+XXXX code points instead of characters")

	mustBindPFlag(v, config.KeyDatabase, rootCmd.PersistentFlags())
	mustBindPFlag(v, config.KeyLogLevel, rootCmd.PersistentFlags())

	// "help" and "completion" are search words, not subcommands; --help still works
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.AddCommand(newServeCmd(v))

	return rootCmd
}

func runSearch(cmd *cobra.Command, v *viper.Viper, pattern string, format unicodedb.Format) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	store, err := loadStore(cmd.InOrStdin(), cfg.Database, logger)
	if err != nil {
		return err
	}

	chars, err := store.Search(pattern)
	if err != nil {
		return err
	}

	return unicodedb.WriteChars(cmd.OutOrStdout(), chars, format)
}

// loadStore loads the database at path; "-" reads a text database from stdin.
func loadStore(stdin io.Reader, path string, logger logrus.FieldLogger) (*unicodedb.Store, error) {
	start := time.Now()

	var store *unicodedb.Store
	var err error
	if path == "-" {
		store, err = unicodedb.LoadReader(stdin)
	} else {
		store, err = unicodedb.Open(path)
	}
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"database": path,
		"records":  store.Len(),
		"elapsed":  time.Since(start),
	}).Debug("Database loaded")

	return store, nil
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	return logger
}

func mustBindPFlag(v *viper.Viper, key string, flags *pflag.FlagSet) {
	if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
		logrus.Fatalf("Failed to bind %s flag: %v", key, err)
	}
}
