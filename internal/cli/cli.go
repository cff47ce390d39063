// Package cli implements the tablewrap command-line interface.
//
// tablewrap reads delimited text from stdin (or --input) and prints it as a
// boxed table. Tables taller than LINE_TO_WRAP data rows continue in further
// blocks to the right, each under a copy of the header.
//
// # Configuration
//
// Settings come from, in increasing precedence: built-in defaults, a TOML
// config file, and the command line. See [Config] for the file format.
//
// # Logging
//
// Logs go to stderr via charmbracelet/log. Only warnings are shown by
// default; --verbose (-v) enables debug output including per-stage timings.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tablewrap/pkg/buildinfo"
	"github.com/matzehuels/tablewrap/pkg/errors"
	"github.com/matzehuels/tablewrap/pkg/observability"
	"github.com/matzehuels/tablewrap/pkg/pipeline"
	"github.com/matzehuels/tablewrap/pkg/table"
)

// appName is the application name used for directories and display.
const appName = "tablewrap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogWarn  = log.WarnLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// rootFlags holds the command-line flags of the root command.
type rootFlags struct {
	configPath  string // explicit config file
	input       string // input file, stdin when empty
	delimiter   string // cell separator
	verbose     bool   // debug logging
	interactive bool   // open the viewer instead of printing
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	flags := rootFlags{delimiter: pipeline.DefaultDelimiter}

	root := &cobra.Command{
		Use:   appName + " LINE_TO_WRAP [MAXWIDTH]",
		Short: "Render delimited text as a boxed table, wrapping long tables into side-by-side blocks",
		Long: `tablewrap reads delimited rows from stdin and prints them as a boxed text table.
The first row is the header. When there are more than LINE_TO_WRAP data rows, the
table continues in further blocks to the right, each under its own copy of the header.

MAXWIDTH optionally fixes the width of every column as a comma-separated list
(e.g. '1,4,2,3,4'), one entry per column. Longer cells wrap onto extra lines.
Without it, each column is as wide as its longest cell.`,
		Example: `  seq 1 100 | sed '1i n' | tablewrap 25
  tablewrap 10 8,20,4 < report.csv
  tablewrap -d ';' -f data.txt 15`,
		Args:          cobra.MaximumNArgs(2),
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				c.SetLogLevel(LogDebug)
				observability.SetPipelineHooks(logHooks{logger: c.Logger})
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFormat(cmd, args, &flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tablewrap/config.toml)")
	root.Flags().StringVarP(&flags.input, "input", "f", "", "read rows from file instead of stdin")
	root.Flags().StringVarP(&flags.delimiter, "delimiter", "d", flags.delimiter, "cell separator (single character)")
	root.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "browse the table in a scrollable viewer")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

// runFormat resolves options, runs the pipeline and prints or views the result.
func (c *CLI) runFormat(cmd *cobra.Command, args []string, flags *rootFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, cfgPath, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		logger.Debug("loaded config", "path", cfgPath)
	}

	delimiter := ""
	if cmd.Flags().Changed("delimiter") {
		delimiter = flags.delimiter
	}
	opts, err := buildOptions(cfg, args, delimiter)
	if err != nil {
		if errors.Is(err, errors.ErrCodeInvalidConfig) && len(args) == 0 {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		}
		return err
	}

	in, closeIn, err := openInput(cmd.InOrStdin(), flags.input)
	if err != nil {
		return err
	}
	defer closeIn()

	prog := newProgress(logger)
	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, in, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Formatted %d rows into %d blocks", result.Stats.DataRows(), result.Stats.Blocks))

	if flags.interactive {
		if result.Output == "" {
			printWarning(cmd.ErrOrStderr(), "input is empty, nothing to view")
			return nil
		}
		return runViewer(ctx, runner, result, opts)
	}

	if result.Output != "" {
		fmt.Fprintln(cmd.OutOrStdout(), result.Output)
	}
	return nil
}

// buildOptions merges config file values with command-line arguments.
// delimiter is the --delimiter value if the flag was given, "" otherwise.
func buildOptions(cfg Config, args []string, delimiter string) (pipeline.Options, error) {
	opts := pipeline.Options{
		LineToWrap: cfg.LineToWrap,
		MaxWidths:  cfg.MaxWidth,
		Delimiter:  cfg.Delimiter,
	}

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "line_to_wrap: %q is not an integer", args[0])
		}
		opts.LineToWrap = n
	} else if cfg.LineToWrap == 0 {
		return opts, errors.New(errors.ErrCodeInvalidConfig, "LINE_TO_WRAP is required (as an argument or line_to_wrap in the config file)")
	}

	if len(args) > 1 {
		widths, err := table.ParseWidths(args[1])
		if err != nil {
			return opts, err
		}
		opts.MaxWidths = widths
	}

	if delimiter != "" {
		opts.Delimiter = delimiter
	}
	if opts.Delimiter != "" && utf8.RuneCountInString(opts.Delimiter) != 1 {
		return opts, errors.New(errors.ErrCodeInvalidParameter, "delimiter must be a single character, got %q", opts.Delimiter)
	}

	style, err := cfg.Rules.style()
	if err != nil {
		return opts, err
	}
	opts.Style = style

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

// openInput returns the reader to consume and a function that releases it.
func openInput(stdin io.Reader, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "open input")
	}
	return f, func() { _ = f.Close() }, nil
}
