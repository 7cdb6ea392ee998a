// Package main provides the CLI entrypoint for scene-converter.
//
// scene-converter turns a path-tracer JSON scene into the JSON scene of the
// ray-tracing engine:
//
//	convert <input-scene-path> <output-name> [flags]
//
// The output is written next to the input as <output-name>.json.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"github.com/davecgh/go-spew/spew"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"scene-converter/internal/config"
	"scene-converter/internal/convert"
	"scene-converter/internal/diagnostic"
	"scene-converter/internal/source"
	"scene-converter/internal/target"
)

// flags holds the command line options.
type flags struct {
	configPath string
	verbose    bool
	dump       bool
	verify     bool
	extended   bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "convert <input-scene-path> <output-name>",
		Short: "Convert a path-tracer scene into a ray-tracing engine scene",
		Long: "convert reads a path-tracer JSON scene and writes the equivalent engine scene\n" +
			"as <output-name>.json in the directory of the input file.",
		Args:          cobra.RangeArgs(0, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(stdout, stderr, args, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "options file (.yaml, .yml or .toml)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every converted item")
	fs.BoolVar(&f.dump, "dump", false, "print the converted document structure")
	fs.BoolVar(&f.verify, "verify", false, "check that every entity transform round-trips")
	fs.BoolVar(&f.extended, "extended", false, "also write the integrator and output records")

	return cmd
}

func run(stdout, stderr io.Writer, args []string, f flags) error {
	term := termenv.NewOutput(stdout)

	input := argAt(args, 0)
	if input == "" {
		fmt.Fprintln(stdout, "convert file is empty, nothing to convert")
		return nil
	}

	opts, err := loadOptions(f)
	if err != nil {
		return err
	}

	if f.verbose {
		logx.UserLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logx.UserLevel}))
	slog.SetDefault(logger)

	name := argAt(args, 1)
	if name == "" {
		name = opts.DefaultOutputName
	}

	fmt.Fprintln(stdout, term.String("converting file:").Bold().String(), input)

	scene, err := source.LoadFile(input)
	if err != nil {
		return err
	}

	conv, err := convert.New(opts, logger)
	if err != nil {
		return err
	}

	doc, diags, err := conv.Convert(scene)
	if err != nil {
		printDiagnostics(term, stdout, diags, f.verbose)
		printErrors(term, stderr, diags)

		return fmt.Errorf("failed to convert %s: %w", input, err)
	}

	if f.dump {
		fmt.Fprint(stdout, spew.Sdump(doc))
	}

	outPath := target.OutputPath(input, name)
	if err := target.WriteFile(doc, outPath); err != nil {
		return err
	}

	printDiagnostics(term, stdout, diags, f.verbose)
	fmt.Fprintln(stdout, term.String("convert finish:").Foreground(term.Color("2")).Bold().String(), outPath)

	return nil
}

func loadOptions(f flags) (config.Options, error) {
	opts := config.Default()

	if f.configPath != "" {
		loaded, err := config.LoadFile(f.configPath)
		if err != nil {
			return config.Options{}, err
		}

		opts = *loaded
	}

	if f.verify {
		opts.VerifyTransforms = true
	}

	if f.extended {
		opts.ExtendedOutput = true
	}

	return opts, nil
}

func printDiagnostics(term *termenv.Output, w io.Writer, diags *diagnostic.Diagnostics, verbose bool) {
	for _, d := range diags.Warnings {
		fmt.Fprintln(w, term.String("warning:").Foreground(term.Color("3")).String(), d.String())
	}

	if !verbose {
		return
	}

	for _, d := range diags.Infos {
		fmt.Fprintln(w, term.String("info:").Faint().String(), d.String())
	}
}

// printErrors lists the located failures that stopped the conversion.
func printErrors(term *termenv.Output, w io.Writer, diags *diagnostic.Diagnostics) {
	if !diags.HasErrors() {
		return
	}

	for _, d := range diags.Errors {
		fmt.Fprintln(w, term.String("error:").Foreground(term.Color("1")).Bold().String(), d.String())
	}
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}
