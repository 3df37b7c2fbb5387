package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/rep/internal/args"
	"github.com/mvp-joe/rep/internal/config"
	"github.com/mvp-joe/rep/internal/files"
	"github.com/mvp-joe/rep/internal/flags"
	"github.com/mvp-joe/rep/internal/logger"
	"github.com/mvp-joe/rep/internal/runner"
)

// rootCmd represents the base command. rep has no subcommands: every
// argument is a flag, the pattern or a file pattern.
var rootCmd = &cobra.Command{
	Use:   "rep",
	Short: "Search files for lines containing a literal pattern",
	Long: `rep scans every file matched by the given glob patterns and prints the
lines that contain PATTERN. The pattern is a plain substring, not a regular
expression. When more than one file is searched, each line is prefixed with
its file name.

Defaults can be set in .rep/config.yml (project) or ~/.rep/config.yml (user):

  defaults:
    flags: ["-n"]
  files:
    ignore: ["**/*.bak"]

Ignore patterns are matched against the whole resolved path, so "*.bak" only
drops files in the working directory; use "**/*.bak" to drop them everywhere.

Environment variables REP_DEFAULTS_FLAGS and REP_FILES_IGNORE override both.`,
	Example: `  rep TODO '*.go'
  rep -n -i error 'logs/**/*.log'
  rep -c -v '#' config.ini other.ini`,
	Args: cobra.ArbitraryArgs,

	// A pattern may be any word, including "completion"
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},

	// Single-dash tokens are rep flags, not pflag shorthands
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runSearch,
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		w := rootCmd.ErrOrStderr()
		fmt.Fprintln(w, errorLabel(w)+" "+formatError(err))
		os.Exit(1)
	}
}

// errorLabel renders "Error:" in bold red when w is a color terminal and as
// plain text otherwise.
func errorLabel(w io.Writer) string {
	style := lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#F38BA8"))
	return style.Render("Error:")
}

func init() {
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), helpText(cmd))
	})
}

func runSearch(cmd *cobra.Command, argv []string) error {
	for _, arg := range argv {
		switch arg {
		case "-h", "--help":
			return cmd.Help()
		case "--version":
			printVersion(cmd.OutOrStdout())
			return nil
		}
	}

	parsed, err := args.Parse(append([]string{cmd.Name()}, argv...))
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	runFlags := append(cfg.DefaultFlags(), parsed.Flags...)

	expander, err := files.NewExpander(cfg.Files.Ignore)
	if err != nil {
		return err
	}
	paths, err := expander.Expand(parsed.FilePatterns)
	if err != nil {
		return err
	}

	log := logger.New(cmd.ErrOrStderr(), slices.Contains(runFlags, flags.Verbose))
	defer log.Sync()

	r := runner.New(cmd.OutOrStdout(), files.OSReader{}, log)
	return r.Run(runner.Request{
		Pattern: parsed.Pattern,
		Paths:   paths,
		Flags:   runFlags,
	})
}

func helpText(cmd *cobra.Command) string {
	var b strings.Builder
	b.WriteString(cmd.Long)
	b.WriteString("\n\n")
	b.WriteString(args.Usage(cmd.Name()))
	b.WriteString("\n\nFlags:\n")
	for _, f := range flags.All {
		fmt.Fprintf(&b, "  %s  %s\n", f.String(), f.Description())
	}
	b.WriteString("  -h, --help  show this help\n")
	b.WriteString("  --version   print version information\n")
	b.WriteString("\nExamples:\n")
	b.WriteString(cmd.Example)
	b.WriteString("\n")
	return b.String()
}
