package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pdfbind/internal/models"
	"pdfbind/internal/pdfops"
)

// Merger concatenates every PDF in a directory into one document and records
// where each source document begins. Sources are merged in lexicographic
// file-name order, which keeps the result deterministic across platforms.
type Merger struct {
	inputDir string
	addBlank bool
	log      *slog.Logger
}

func NewMerger(inputDir string, addBlank bool) *Merger {
	return &Merger{
		inputDir: inputDir,
		addBlank: addBlank,
		log:      slog.With("inputDir", inputDir),
	}
}

// Merge writes the concatenated document to destPath and returns the merge
// result with its bookmark table. Intermediate artifacts (the blank separator
// template) are placed in workDir, which the caller owns and cleans up.
//
// An empty input directory yields a result with PageCount 0 and no file
// written at destPath. Any unreadable or malformed source aborts the merge
// before destPath is created.
func (m *Merger) Merge(workDir, destPath string) (*models.MergeResult, error) {
	sources, err := m.scanSources()
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		m.log.Info("No PDF files found in input directory.")
		return &models.MergeResult{}, nil
	}

	paths := make([]string, len(sources))
	for i, src := range sources {
		paths[i] = src.Path
	}
	if err := pdfops.ValidateAll(paths); err != nil {
		return nil, fmt.Errorf("validating source documents: %w", err)
	}

	// The separator template must exist before the first insertion and is
	// generated exactly once; every insertion references the same file.
	var blankPath string
	if m.addBlank {
		blankPath = filepath.Join(workDir, "blank.pdf")
		if err := pdfops.WriteBlankPage(blankPath); err != nil {
			return nil, fmt.Errorf("creating blank separator template: %w", err)
		}
	}

	res := &models.MergeResult{Path: destPath, SourceCount: len(sources)}
	inFiles := make([]string, 0, 2*len(sources))
	cursor := 0
	for _, src := range sources {
		n, err := pdfops.PageCount(src.Path)
		if err != nil {
			return nil, fmt.Errorf("reading page count of %s: %w", src.Path, err)
		}

		// The bookmark must be recorded before the document's pages are
		// appended so it points at the document's first page.
		res.Bookmarks = append(res.Bookmarks, models.BookmarkEntry{PageIndex: cursor, Label: src.Name})
		inFiles = append(inFiles, src.Path)
		cursor += n
		if m.addBlank {
			inFiles = append(inFiles, blankPath)
			cursor++
		}
		m.log.Info("Appended source document.", "name", src.Name, "pages", n)
	}

	if err := pdfops.MergeCreate(inFiles, destPath); err != nil {
		return nil, fmt.Errorf("merging %d documents: %w", len(sources), err)
	}
	got, err := pdfops.PageCount(destPath)
	if err != nil {
		return nil, fmt.Errorf("reading page count of merged document: %w", err)
	}
	if got != cursor {
		return nil, fmt.Errorf("internal: merged document has %d pages, bookkeeping expected %d", got, cursor)
	}
	res.PageCount = cursor

	m.log.Info("Merged source documents.", "documents", len(sources), "pages", res.PageCount, "separators", m.addBlank)
	return res, nil
}

// scanSources lists the input directory's PDF files, matched by extension
// case-insensitively. os.ReadDir yields entries sorted by file name, which
// is the documented merge order.
func (m *Merger) scanSources() ([]models.SourceDocument, error) {
	entries, err := os.ReadDir(m.inputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", m.inputDir, err)
	}
	var sources []models.SourceDocument
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		sources = append(sources, models.SourceDocument{
			Path: filepath.Join(m.inputDir, e.Name()),
			Name: e.Name(),
		})
	}
	return sources, nil
}
