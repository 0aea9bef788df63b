package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/apacheconf"
)

var errorStyle = color.New(color.FgRed, color.Bold)

// cliOptions are the flags shared by every command.
type cliOptions struct {
	indent        string
	settingsFile  string
	lenient       bool
	requireClosed bool
	verbose       bool
	write         bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "apacheconf FILE PATH [CURRENT_VALUE [NEW_VALUE]]",
		Short: "apacheconf - query and edit Apache httpd configuration files",
		Long: `Select directives or sections by a dotted PATH such as VirtualHost.ServerName.

CURRENT_VALUE narrows the selection to nodes whose leading arguments equal its
shell-split words. NEW_VALUE replaces all arguments of every selected node; the
enclosing block of each edit is then printed. Without NEW_VALUE the selected
nodes are printed.`,
		Args:          cobra.RangeArgs(2, 4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.verbose, stderr)
			defer logger.Sync()

			return runQuery(cmd, opts, logger, args, stdout)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.indent, "indent", apacheconf.DefaultIndent, "Indentation unit per nesting level")
	flags.StringVar(&opts.settingsFile, "settings", "", "TOML file with parser options")
	flags.BoolVar(&opts.lenient, "lenient", false, "Accept closing tags that do not match the open section")
	flags.BoolVar(&opts.requireClosed, "require-closed", false, "Reject sections left open at end of file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Write the edited configuration back to FILE")

	rootCmd.AddCommand(newExportCmd(opts, stdout, stderr))
	rootCmd.AddCommand(newWatchCmd(opts, stdout, stderr))
	return rootCmd
}

// newLogger logs JSON at info level, or human-readable debug output when verbose.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	level := zapcore.InfoLevel
	if verbose {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
}

// newParser applies the settings file first, then any flags given explicitly.
func newParser(cmd *cobra.Command, opts *cliOptions, logger *zap.Logger) (*apacheconf.ValidatingParser, error) {
	parserOpts := apacheconf.DefaultOptions()
	if opts.settingsFile != "" {
		loaded, err := apacheconf.LoadOptionsFile(opts.settingsFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, opts.settingsFile)
		}
		parserOpts = loaded
	}

	b := apacheconf.NewBuilder().WithOptions(parserOpts).WithLogger(logger)
	if cmd.Flags().Changed("indent") {
		b.WithIndent(opts.indent)
	}
	if opts.lenient {
		b.WithStrictClose(false)
	}
	if opts.requireClosed {
		b.WithRequireClosed(true)
	}
	return b.Build()
}

func runQuery(cmd *cobra.Command, opts *cliOptions, logger *zap.Logger, args []string, out io.Writer) error {
	file, path := args[0], args[1]
	var current string
	if len(args) > 2 {
		current = args[2]
	}

	parser, err := newParser(cmd, opts, logger)
	if err != nil {
		return err
	}
	tree, err := parser.ParseFile(file)
	if err != nil {
		return err
	}

	matched, err := tree.SelectWords(path, current)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		logger.Debug("No match", zap.String("file", file), zap.String("path", path), zap.String("current", current))
		return fmt.Errorf("%w: %s", apacheconf.ErrPathNotFound, path)
	}
	logger.Debug("Matched nodes", zap.String("path", path), zap.Int("count", len(matched)))

	renderer := apacheconf.Renderer{Indent: tree.Indent()}
	if len(args) < 4 {
		fmt.Fprintln(out, string(matched.Render(renderer)))
		return nil
	}

	if _, err := matched.Replace(args[3]); err != nil {
		return err
	}
	fmt.Fprintln(out, string(matched.Parents().Render(renderer)))

	if opts.write {
		if err := tree.Save(file); err != nil {
			return err
		}
		logger.Info("Configuration saved", zap.String("file", file), zap.Int("updated", len(matched)))
	}
	return nil
}
