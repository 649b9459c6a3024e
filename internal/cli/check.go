package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goturtle/internal/logging"
	"github.com/yaklabco/goturtle/internal/ui/pretty"
	"github.com/yaklabco/goturtle/pkg/config"
	"github.com/yaklabco/goturtle/pkg/turtle"
)

// ErrProblemsFound signals a non-zero exit without an error message.
var ErrProblemsFound = errors.New("problems found")

type checkFlags struct {
	format       string
	strict       bool
	strictMode   bool
	werror       bool
	noContext    bool
	noRecovery   bool
	showComments bool
	maxErrors    int
	baseIRI      string
	suppress     []string
	promote      []string
	showStats    bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <files...>",
		Short: "Parse Turtle files and report problems",
		Long:  checkLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Parse one or more Turtle (TTL) files and report every syntax problem
found, recovering from errors to keep going instead of stopping at the
first one.

Examples:
  goturtle check data.ttl              # Check a single file
  goturtle check a.ttl b.ttl           # Check several files
  goturtle check --format json *.ttl   # Machine-readable output for CI
  goturtle check --strict data.ttl     # Warnings affect the exit code
  goturtle check --werror data.ttl     # Treat warnings as errors`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := loadConfig(cmd)
	if err != nil {
		return &exitError{code: ExitConfigError, err: err}
	}
	applyCheckFlags(cmd, cfg, flags)
	if err := cfg.Validate(); err != nil {
		return &exitError{code: ExitInvalidUsage, err: err}
	}

	if colorMode, flagErr := cmd.Flags().GetString("color"); flagErr == nil && cmd.Flags().Changed("color") {
		cfg.Diagnostics.Color = colorMode
	}

	engine := cfg.NewEngine(cmd.ErrOrStderr())
	batch := engine.NewBatch()

	stats := pretty.SummaryStats{}

	for _, path := range args {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return &exitError{code: ExitIOError, err: fmt.Errorf("read %s: %w", path, readErr)}
		}

		result, parseErr := turtle.ParseBytes(path, content, cfg.Parser)

		logger.Debug("parsed file",
			logging.FieldPath, path,
			logging.FieldStatements, result.Stats.StatementsParsed,
			logging.FieldTriples, result.Stats.TriplesParsed,
			logging.FieldTokens, result.Stats.TokensConsumed,
			logging.FieldRecovered, result.Stats.ErrorsRecovered,
			logging.FieldElapsedMS, result.Stats.ParseTimeMillis(),
		)

		stats.FilesChecked++
		if batch.AddAll(result.Source, result.Errors.Errors()) > 0 {
			stats.FilesWithIssues++
		}

		if parseErr != nil && result.Errors.Fatals() > 0 {
			logger.Error("parse aborted", logging.FieldPath, path, logging.FieldError, parseErr)
		}

		// Diagnostics reference the Source, not the tree, so the node
		// arena can go back as soon as the file is processed.
		result.Context.Release()
	}

	sum, err := batch.Flush()
	if err != nil {
		return &exitError{code: ExitIOError, err: fmt.Errorf("write diagnostics: %w", err)}
	}

	stats.Diagnostics = sum.Total()
	stats.Errors = sum.Errors
	stats.Warnings = sum.Warnings
	stats.Suggestions = sum.Suggestions

	if flags.showStats {
		colorEnabled := pretty.IsColorEnabled(cfg.Diagnostics.Color, cmd.OutOrStdout())
		styles := pretty.NewStyles(colorEnabled)
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummaryOneLine(stats))
	}

	if code := ExitCodeFromSummary(sum, flags.strict); code != ExitSuccess {
		return &exitError{code: code, err: ErrProblemsFound}
	}

	return nil
}

// loadConfig resolves the configuration: an explicit --config path wins,
// otherwise discovery runs from the working directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	return config.Load(configPath)
}

// applyCheckFlags overlays explicitly set CLI flags onto the config.
func applyCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) {
	if cmd.Flags().Changed("format") {
		cfg.Diagnostics.Format = flags.format
	}
	if cmd.Flags().Changed("werror") {
		cfg.Diagnostics.Werror = flags.werror
	}
	if cmd.Flags().Changed("no-context") {
		show := !flags.noContext
		cfg.Diagnostics.ShowSource = &show
	}
	if cmd.Flags().Changed("strict-mode") {
		cfg.Parser.StrictMode = flags.strictMode
	}
	if cmd.Flags().Changed("no-recovery") {
		cfg.Parser.ErrorRecovery = !flags.noRecovery
	}
	if cmd.Flags().Changed("comments") {
		cfg.Parser.TrackComments = flags.showComments
	}
	if cmd.Flags().Changed("max-errors") {
		cfg.Parser.MaxErrors = flags.maxErrors
	}
	if cmd.Flags().Changed("base") {
		cfg.Parser.BaseIRI = flags.baseIRI
	}
	cfg.Diagnostics.Suppress = append(cfg.Diagnostics.Suppress, flags.suppress...)
	cfg.Diagnostics.Promote = append(cfg.Diagnostics.Promote, flags.promote...)
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "human",
		"output format: human, json, compact, gcc, msvc")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "warnings affect the exit code")
	cmd.Flags().BoolVar(&flags.strictMode, "strict-mode", false,
		"enforce IRI validation and literal normalization while parsing")
	cmd.Flags().BoolVar(&flags.werror, "werror", false, "treat warnings as errors")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.noRecovery, "no-recovery", false, "stop at the first error")
	cmd.Flags().BoolVar(&flags.showComments, "comments", false, "track comments in the parse tree")
	cmd.Flags().IntVar(&flags.maxErrors, "max-errors", turtle.DefaultMaxErrors,
		"maximum diagnostics to collect per file (0 = unbounded)")
	cmd.Flags().StringVar(&flags.baseIRI, "base", "", "base IRI for resolving relative references")
	cmd.Flags().StringSliceVar(&flags.suppress, "suppress", nil,
		"warning types to suppress, by name")
	cmd.Flags().StringSliceVar(&flags.promote, "promote", nil,
		"warning types to promote to errors, by name")
	cmd.Flags().BoolVar(&flags.showStats, "stats", true, "print a summary line")
}
