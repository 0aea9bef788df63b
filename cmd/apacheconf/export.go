package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/apacheconf"
)

func newExportCmd(opts *cliOptions, stdout, stderr io.Writer) *cobra.Command {
	var (
		format  string
		path    string
		outPath string
	)

	exportCmd := &cobra.Command{
		Use:           "export FILE",
		Short:         "Export the configuration, or a selection of it, as TOML, YAML or JSON",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.verbose, stderr)
			defer logger.Sync()

			if format == "" {
				format = apacheconf.DetectFormat(outPath)
			}
			if format == "" {
				format = apacheconf.FormatJSON
			}

			return runExport(cmd, opts, logger, args[0], path, format, outPath, stdout)
		},
	}

	exportCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: toml, yaml or json (default from --output extension, else json)")
	exportCmd.Flags().StringVarP(&path, "path", "p", "", "Export only the sections selected by this dotted path")
	exportCmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to this file instead of standard output")
	return exportCmd
}

func runExport(cmd *cobra.Command, opts *cliOptions, logger *zap.Logger, file, path, format, outPath string, out io.Writer) error {
	parser, err := newParser(cmd, opts, logger)
	if err != nil {
		return err
	}
	tree, err := parser.ParseFile(file)
	if err != nil {
		return err
	}

	var data []byte
	if path == "" {
		data, err = tree.Export(format)
	} else {
		data, err = exportSelection(tree, path, format)
	}
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err = out.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file '%s': %w", outPath, err)
	}
	logger.Info("Configuration exported", zap.String("file", outPath), zap.String("format", format))
	return nil
}

// exportSelection exports the first section selected by path.
func exportSelection(tree *apacheconf.Tree, path, format string) ([]byte, error) {
	for _, n := range tree.Select(path) {
		if n.IsContainer() {
			return n.Export(format)
		}
	}
	return nil, fmt.Errorf("%w: no section at %s", apacheconf.ErrPathNotFound, path)
}
