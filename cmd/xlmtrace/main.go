// Package main provides the CLI entry point for xlmtrace.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/xlmtrace-go/internal/config"
	"github.com/ukaji3/xlmtrace-go/internal/logging"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/output"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/parser"
)

type cliOptions struct {
	showVersion  bool
	showFormula  bool
	autoExecCell string
	maxEmpty     int
	jsonOut      bool
	pretty       bool
	outputPath   string
	encoding     string
	marker       string
	sheet        string
	configPath   string
	logLevel     string
	logFormat    string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var o cliOptions
	rootCmd := &cobra.Command{
		Use:   "xlmtrace [flags] <dump-file>...",
		Short: "Reconstruct the execution order of Excel 4.0 macro cells",
		Long: `xlmtrace follows RUN/GOTO jumps, CALL/FORMULA cells and fall-through
from the auto-exec cell of an XLM macro sheet and prints the cells in the order
the macro would execute them.

Inputs are BIFF record dumps (only lines starting with the marker are read)
or .xlsx/.xlsm workbooks.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Flags(), &o, args, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.BoolVarP(&o.showVersion, "version", "v", false, "Show version information")
	flags.BoolVarP(&o.showFormula, "show-formula", "s", false, "Show FORMULA(expr,ref) cells as =expr")
	flags.StringVarP(&o.autoExecCell, "auto-exec-cell", "a", "", "Start at this cell instead of the auto-exec cell")
	flags.IntVar(&o.maxEmpty, "max-empty-cells", xlmtrace.DefaultEmptyCellBudget, "Empty cells skipped before the trace is aborted")
	flags.BoolVar(&o.jsonOut, "json", false, "Write traces as JSON")
	flags.BoolVar(&o.pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVar(&o.encoding, "encoding", "utf-8", "Dump file encoding: utf-8, latin1, cp1252")
	flags.StringVar(&o.marker, "marker", parser.DefaultMarker, "Prefix of relevant dump lines")
	flags.StringVar(&o.sheet, "sheet", "", "Workbook sheet to trace (default: all sheets)")
	flags.StringVarP(&o.configPath, "config", "c", "", "Path to an HCL configuration file")
	flags.StringVar(&o.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&o.logFormat, "log-format", "text", "Log format: text, json")

	return rootCmd
}

func run(flags *pflag.FlagSet, o *cliOptions, args []string, stdout, stderr io.Writer) error {
	if o.showVersion {
		fmt.Fprintf(stdout, "%s v%s\n", xlmtrace.AppName, xlmtrace.Version)
		return nil
	}
	if len(args) == 0 {
		return errors.New("requires at least one input file")
	}

	opts := xlmtrace.DefaultOptions()
	logLevel, logFormat := o.logLevel, o.logFormat
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		opts = cfg.Apply(opts)
		if !flags.Changed("log-level") {
			logLevel = cfg.LogLevel(logLevel)
		}
		if !flags.Changed("log-format") {
			logFormat = cfg.LogFormat(logFormat)
		}
	}
	if flags.Changed("max-empty-cells") && o.maxEmpty < 1 {
		return fmt.Errorf("invalid max-empty-cells %d: must be at least 1", o.maxEmpty)
	}
	applyFlags(flags, o, &opts)

	logger, err := logging.New(logLevel, logFormat, stderr)
	if err != nil {
		return err
	}
	opts.Logger = logger

	var buf bytes.Buffer
	var traces []*models.Trace
	for _, path := range args {
		tr, err := xlmtrace.TraceFile(path, opts)
		if err != nil {
			return fmt.Errorf("trace failed for %s: %w", path, err)
		}
		if o.jsonOut {
			traces = append(traces, tr)
			continue
		}
		fmt.Fprintln(&buf, output.ToText(tr, xlmtrace.AppName, xlmtrace.Version))
	}

	if o.jsonOut {
		data, err := output.TracesToJSON(traces, o.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	if o.outputPath != "" {
		if err := os.WriteFile(o.outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = stdout.Write(buf.Bytes())
	return err
}

// applyFlags copies explicitly set flags over config file values.
func applyFlags(flags *pflag.FlagSet, o *cliOptions, opts *xlmtrace.Options) {
	if flags.Changed("show-formula") {
		opts.Mode = xlmtrace.ModeStandard
		if o.showFormula {
			opts.Mode = xlmtrace.ModeShowFormula
		}
	}
	if flags.Changed("auto-exec-cell") {
		opts.EntryPoint = o.autoExecCell
	}
	if flags.Changed("max-empty-cells") {
		opts.EmptyCellBudget = o.maxEmpty
	}
	if flags.Changed("encoding") {
		opts.Encoding = o.encoding
	}
	if flags.Changed("marker") {
		opts.Marker = o.marker
	}
	if flags.Changed("sheet") {
		opts.Sheet = o.sheet
	}
}
