package services

import (
	"os"
	"path/filepath"
	"testing"

	"pdfbind/internal/models"
	"pdfbind/internal/pdfops"
)

func TestAnnotatePreservesPageCount(t *testing.T) {
	inputDir := t.TempDir()
	workDir := t.TempDir()
	writeFixturePDF(t, filepath.Join(inputDir, "a.pdf"), 2)
	writeFixturePDF(t, filepath.Join(inputDir, "b.pdf"), 3)

	res, err := NewMerger(inputDir, true).Merge(workDir, filepath.Join(workDir, "merged.pdf"))
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	dest := filepath.Join(workDir, "final.pdf")
	if err := NewAnnotator("report").Annotate(workDir, res, dest); err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}

	n, err := pdfops.PageCount(dest)
	if err != nil {
		t.Fatalf("PageCount() error = %v", err)
	}
	if n != res.PageCount {
		t.Errorf("final document has %d pages, want %d", n, res.PageCount)
	}
	if _, err := os.Stat(filepath.Join(workDir, "overlay.pdf")); !os.IsNotExist(err) {
		t.Errorf("overlay artifact left behind after annotation")
	}
}

func TestAnnotateEmptyResultSkipsOutput(t *testing.T) {
	workDir := t.TempDir()
	dest := filepath.Join(workDir, "final.pdf")

	if err := NewAnnotator("report").Annotate(workDir, &models.MergeResult{}, dest); err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Errorf("output written for an empty merge result")
	}
}

func TestAnnotateRejectsMalformedBookmarkTable(t *testing.T) {
	workDir := t.TempDir()
	res := &models.MergeResult{
		Path:      filepath.Join(workDir, "does-not-exist.pdf"),
		PageCount: 3,
		Bookmarks: []models.BookmarkEntry{
			{PageIndex: 2, Label: "b.pdf"},
			{PageIndex: 0, Label: "a.pdf"},
		},
	}
	err := NewAnnotator("report").Annotate(workDir, res, filepath.Join(workDir, "final.pdf"))
	if err == nil {
		t.Fatal("Annotate() accepted a non-increasing bookmark table, want error")
	}
}

func TestAnnotateRemovesOverlayOnFailure(t *testing.T) {
	workDir := t.TempDir()
	// A valid bookmark table over a missing merged file: overlay generation
	// succeeds, compositing fails, and the overlay must still be removed.
	res := &models.MergeResult{
		Path:      filepath.Join(workDir, "does-not-exist.pdf"),
		PageCount: 2,
		Bookmarks: []models.BookmarkEntry{{PageIndex: 0, Label: "a.pdf"}},
	}
	err := NewAnnotator("report").Annotate(workDir, res, filepath.Join(workDir, "final.pdf"))
	if err == nil {
		t.Fatal("Annotate() succeeded with a missing merged file, want error")
	}
	if _, statErr := os.Stat(filepath.Join(workDir, "overlay.pdf")); !os.IsNotExist(statErr) {
		t.Errorf("overlay artifact left behind after failed annotation")
	}
}
