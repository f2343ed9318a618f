package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/harrison/fortuner/internal/config"
	"github.com/harrison/fortuner/internal/display"
	"github.com/harrison/fortuner/internal/fortune"
	"github.com/harrison/fortuner/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// errNoSources is returned when neither arguments nor config name a source
var errNoSources = errors.New("requires at least 1 source (pass FILE arguments or set sources in the config file)")

// NewRootCommand creates and returns the root cobra command for fortuner
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fortuner [flags] FILE...",
		Short: "Print a random fortune, or every fortune matching a pattern",
		Long: `Fortuner reads fortune files and prints one fortune chosen at random.

Each FILE may be a fortune file or a directory, which is searched
recursively. Compiled index files (*.dat) are ignored. Every fortune in a
file must be followed by a line containing only %.

With --pattern, every matching fortune is printed instead, grouped under
the name of the file it came from. Headers go to stderr and fortunes to
stdout.

Examples:
  fortuner /usr/share/games/fortunes
  fortuner --seed 42 fortunes/jokes fortunes/quotes
  fortuner -i -m 'yogi berra' fortunes/`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE:    runFortune,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.Flags().StringP("pattern", "m", "", "Print all fortunes matching this regular expression")
	cmd.Flags().BoolP("insensitive", "i", false, "Case-insensitive pattern matching")
	cmd.Flags().StringP("seed", "s", "", "Random seed for a reproducible pick")
	cmd.Flags().String("config", "", "Path to config file (default: $FORTUNER_HOME/config.yaml)")
	cmd.Flags().String("log-level", "", "Log verbosity: trace, debug, info, warn, error")
	cmd.Flags().String("color", "", "Colorize headers and warnings: auto, always, never")

	return cmd
}

// runFortune implements the root command logic
func runFortune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var logLevel, colorMode *string
	var insensitive *bool
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		colorMode = &v
	}
	if cmd.Flags().Changed("insensitive") {
		v, _ := cmd.Flags().GetBool("insensitive")
		insensitive = &v
	}
	cfg.MergeWithFlags(args, logLevel, colorMode, insensitive)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if len(cfg.Sources) == 0 {
		return errNoSources
	}

	var seed *uint64
	if cmd.Flags().Changed("seed") {
		raw, _ := cmd.Flags().GetString("seed")
		v, err := parseSeed(raw)
		if err != nil {
			return err
		}
		seed = &v
	}

	var pattern *regexp.Regexp
	if cmd.Flags().Changed("pattern") {
		raw, _ := cmd.Flags().GetString("pattern")
		pattern, err = compilePattern(raw, cfg.Insensitive)
		if err != nil {
			return err
		}
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	useColor := shouldColor(cfg.Color, stderr)

	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	log.SetColor(useColor)

	log.LogDebug(fmt.Sprintf("Loading fortunes from %d source(s)", len(cfg.Sources)))
	store, result, err := fortune.LoadStore(cfg.Sources)
	if err != nil {
		return err
	}
	for _, f := range result.Files {
		log.LogTrace(fmt.Sprintf("Parsed %d fortunes from %s", f.Fortunes, f.Path))
	}
	log.LogDebug(fmt.Sprintf("Parsed %d fortunes", store.Len()))

	if len(result.Unterminated) > 0 {
		display.WarnUnterminated(result.Unterminated).Display(stderr, useColor)
	}

	printer := display.NewPrinter(stdout, stderr, useColor)

	if pattern != nil {
		log.LogDebug(fmt.Sprintf("Filtering with pattern %q", pattern.String()))
		printed := printer.PrintGroups(fortune.Filter(store, pattern))
		log.LogInfo(fmt.Sprintf("%d fortune(s) matched", printed))
		return nil
	}

	if seed != nil {
		log.LogDebug(fmt.Sprintf("Picking with seed %d", *seed))
	}
	printer.PrintFortune(fortune.Pick(store, seed))
	return nil
}

// loadConfig reads --config, or the default config path when it is not set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			// No home directory: run on defaults
			return config.DefaultConfig(), nil
		}
		configPath = defaultPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}
	return cfg, nil
}

// parseSeed parses a decimal unsigned 64-bit seed
func parseSeed(val string) (uint64, error) {
	seed, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q not a valid integer", val)
	}
	return seed, nil
}

// compilePattern compiles val, optionally ignoring case
func compilePattern(val string, insensitive bool) (*regexp.Regexp, error) {
	expr := val
	if insensitive {
		expr = "(?i)" + val
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("Invalid --pattern %q", val)
	}
	return re, nil
}

// shouldColor resolves the color mode against the writer headers go to
func shouldColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
