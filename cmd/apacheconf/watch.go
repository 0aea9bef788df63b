package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/apacheconf"
)

func newWatchCmd(opts *cliOptions, stdout, stderr io.Writer) *cobra.Command {
	watchOpts := apacheconf.DefaultWatchOptions()

	watchCmd := &cobra.Command{
		Use:           "watch FILE PATH [CURRENT_VALUE]",
		Short:         "Print the selected nodes again every time FILE changes",
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.verbose, stderr)
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, cmd, opts, logger, args, watchOpts, stdout)
		},
	}

	watchCmd.Flags().DurationVar(&watchOpts.PollInterval, "interval", apacheconf.DefaultPollInterval, "Interval between file checks")
	watchCmd.Flags().DurationVar(&watchOpts.Debounce, "debounce", apacheconf.DefaultDebounce, "Quiet period required before reloading")
	return watchCmd
}

// runWatch prints the selection once, then after every successful reload until ctx ends.
func runWatch(ctx context.Context, cmd *cobra.Command, opts *cliOptions, logger *zap.Logger, args []string, watchOpts apacheconf.WatchOptions, out io.Writer) error {
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
	if err := printSelection(out, logger, tree, path, current); err != nil {
		return err
	}

	for ev := range parser.Watch(ctx, file, watchOpts) {
		if ev.Err != nil {
			continue // logged by the parser
		}
		if err := printSelection(out, logger, ev.Tree, path, current); err != nil {
			return err
		}
	}
	return nil
}

func printSelection(out io.Writer, logger *zap.Logger, tree *apacheconf.Tree, path, current string) error {
	matched, err := tree.SelectWords(path, current)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		logger.Warn("No match", zap.String("file", tree.Source()), zap.String("path", path))
		return nil
	}
	_, err = fmt.Fprintln(out, string(matched.Render(apacheconf.Renderer{Indent: tree.Indent()})))
	return err
}
