package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/datasheet"
	"pkt.systems/datasheet/pdf"
	"pkt.systems/version"
)

const defaultOutput = "pb86_8button_schematic.pdf"

func init() {
	version.SetDefaultModule("pkt.systems/datasheet")
}

func main() {
	var (
		outPath    string
		pageSize   string
		margin     float64
		fontSize   float64
		lineHeight float64
		boring     bool
		noCompress bool
	)

	defaults := pdf.DefaultConfig()
	flags := pflag.NewFlagSet("datasheet", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", defaultOutput, "Output file (- for stdout)")
	flags.StringVar(&pageSize, "page-size", defaults.PageSize, "PDF page size")
	flags.Float64Var(&margin, "margin", defaults.Margin, "Page margin in points")
	flags.Float64Var(&fontSize, "font-size", defaults.FontSize, "Body font size in points")
	flags.Float64Var(&lineHeight, "line-height", defaults.LineHeight, "Body line height in points")
	flags.BoolVarP(&boring, "boring", "b", false, "Render the validation section in plain text color")
	flags.BoolVar(&noCompress, "no-compress", false, "Disable PDF stream compression")

	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: datasheet [flags]\n")
		fmt.Fprintln(os.Stderr, "\nRenders the PB86 8-button circuit datasheet as a one-page PDF.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument %q\n\n", flags.Arg(0))
		flags.Usage()
		os.Exit(2)
	}

	cfg := pdf.Config{
		PageSize:      pageSize,
		Margin:        margin,
		FontSize:      fontSize,
		LineHeight:    lineHeight,
		Boring:        boring,
		NoCompression: noCompress,
	}

	if outPath == "-" && isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "refusing to write PDF to terminal; use -o/--output")
		os.Exit(2)
	}

	if err := run(outPath, cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "datasheet: %v\n", err)
		os.Exit(1)
	}
}

func run(outPath string, cfg pdf.Config, stdout io.Writer) error {
	writer, closer, err := resolveOutput(outPath, stdout)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	renderErr := pdf.Render(pdf.RenderRequest{
		Doc:    datasheet.PB86(),
		Writer: writer,
		Config: cfg,
	})
	if closer != nil {
		if closeErr := closer.Close(); renderErr == nil && closeErr != nil {
			return fmt.Errorf("close output: %w", closeErr)
		}
	}
	if renderErr != nil {
		return renderErr
	}
	if closer != nil {
		fmt.Fprintf(stdout, "PDF created: %s\n", outPath)
	}
	return nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if path == "-" {
		return stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
