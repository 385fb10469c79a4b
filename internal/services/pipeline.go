package services

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Config holds the validated run options.
type Config struct {
	InputDir   string
	OutputPath string
	FooterText string
	AddBlank   bool
}

// Pipeline runs the two stages in order: merge, then annotate. All
// intermediate artifacts live in a per-run temp directory removed on every
// exit path, and the destination is only written once the final document is
// complete, so a failed run leaves the output path untouched.
type Pipeline struct {
	config Config
	log    *slog.Logger
}

func NewPipeline(config Config) *Pipeline {
	return &Pipeline{
		config: config,
		log:    slog.With("inputDir", config.InputDir, "outputPath", config.OutputPath),
	}
}

// Run executes the pipeline. It reports whether an output file was written;
// an empty input directory is a successful run that writes nothing.
func (p *Pipeline) Run() (bool, error) {
	workDir, err := os.MkdirTemp("", "pdfbind-*")
	if err != nil {
		return false, fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(workDir)
	p.log.Info("Created temp directory.", "path", workDir)

	mergedPath := filepath.Join(workDir, "merged.pdf")
	res, err := NewMerger(p.config.InputDir, p.config.AddBlank).Merge(workDir, mergedPath)
	if err != nil {
		return false, err
	}
	if res.PageCount == 0 {
		p.log.Info("Nothing to merge. No output written.")
		return false, nil
	}

	finalPath := filepath.Join(workDir, "final.pdf")
	if err := NewAnnotator(p.config.FooterText).Annotate(workDir, res, finalPath); err != nil {
		return false, err
	}

	if err := moveFile(finalPath, p.config.OutputPath); err != nil {
		return false, fmt.Errorf("writing final document to %s: %w", p.config.OutputPath, err)
	}
	p.log.Info("Run complete.", "documents", res.SourceCount, "pages", res.PageCount)
	return true, nil
}

// moveFile moves src to dst, falling back to a copy when a rename crosses
// filesystems (the temp directory usually does).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return os.Remove(src)
}
