package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"pdfbind/internal/services"
)

func main() {
	// stdout carries only the output path; logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	config, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfbind: %v\n", err)
		os.Exit(2)
	}

	wrote, err := services.NewPipeline(config).Run()
	if err != nil {
		slog.Error("Run failed.", "error", err)
		os.Exit(1)
	}
	if wrote {
		fmt.Println(config.OutputPath)
	} else {
		fmt.Fprintln(os.Stderr, "pdfbind: no PDF files found, no output written")
	}
}

// parseConfig parses and validates the command line. --add-blank is a real
// boolean flag: it defaults to true and is disabled with --add-blank=false.
func parseConfig(args []string) (services.Config, error) {
	fs := flag.NewFlagSet("pdfbind", flag.ContinueOnError)
	inputDir := fs.String("input-dir", "", "directory containing the PDF files to merge")
	outputPath := fs.String("output-path", "", "destination for the merged, annotated document")
	footerText := fs.String("footer-text", "", "text prefixed to the page number caption on every page")
	addBlank := fs.Bool("add-blank", true, "insert a blank separator page after each merged document")

	if err := fs.Parse(args); err != nil {
		return services.Config{}, err
	}
	if *inputDir == "" {
		return services.Config{}, fmt.Errorf("--input-dir is required")
	}
	if *outputPath == "" {
		return services.Config{}, fmt.Errorf("--output-path is required")
	}
	if *footerText == "" {
		return services.Config{}, fmt.Errorf("--footer-text is required")
	}

	return services.Config{
		InputDir:   *inputDir,
		OutputPath: *outputPath,
		FooterText: *footerText,
		AddBlank:   *addBlank,
	}, nil
}
