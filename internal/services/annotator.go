package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pdfbind/internal/models"
	"pdfbind/internal/pdfops"
)

// Annotator stamps every page of a merged document with a footer caption
// and reattaches the bookmark table collected during the merge. Bookmarks
// are applied after compositing; the compositing step does not preserve
// outline entries, so attaching them earlier would lose them.
type Annotator struct {
	footerText string
	log        *slog.Logger
}

func NewAnnotator(footerText string) *Annotator {
	return &Annotator{
		footerText: footerText,
		log:        slog.With("stage", "annotate"),
	}
}

// Annotate writes the final document to destPath. Intermediate artifacts
// (the footer overlay, the stamped-but-unbookmarked document) live in
// workDir; the overlay is removed on every exit path.
//
// A zero-page merge result is a no-op: nothing is written and no error is
// returned.
func (a *Annotator) Annotate(workDir string, res *models.MergeResult, destPath string) error {
	if res.PageCount == 0 {
		a.log.Info("Merged document is empty. Skipping annotation.")
		return nil
	}
	if err := models.ValidateBookmarks(res.Bookmarks, res.PageCount); err != nil {
		return err
	}

	overlayPath := filepath.Join(workDir, "overlay.pdf")
	if err := pdfops.WriteFooterOverlay(overlayPath, res.PageCount, a.footerText); err != nil {
		return fmt.Errorf("generating footer overlay: %w", err)
	}
	defer os.Remove(overlayPath)

	got, err := pdfops.PageCount(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay page count: %w", err)
	}
	if got != res.PageCount {
		return fmt.Errorf("internal: overlay has %d pages, merged document has %d", got, res.PageCount)
	}

	stampedPath := filepath.Join(workDir, "stamped.pdf")
	if err := pdfops.OverlayEachPage(res.Path, overlayPath, stampedPath, res.PageCount); err != nil {
		return fmt.Errorf("compositing footer overlay: %w", err)
	}

	if err := pdfops.AttachBookmarks(stampedPath, destPath, res.Bookmarks); err != nil {
		return fmt.Errorf("attaching outline entries: %w", err)
	}

	a.log.Info("Annotated merged document.", "pages", res.PageCount, "bookmarks", len(res.Bookmarks))
	return nil
}
