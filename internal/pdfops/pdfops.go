// Package pdfops wraps the PDF toolkit primitives this tool consumes:
// reading page counts, validating and merging files, compositing overlay
// pages, and serializing outline entries. All higher-level bookkeeping
// lives in internal/services.
package pdfops

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdfbind/internal/models"
)

// newConfiguration returns the toolkit configuration shared by all
// operations. Relaxed validation keeps slightly out-of-spec source
// documents mergeable.
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount returns the number of pages in the document at path.
func PageCount(path string) (int, error) {
	return api.PageCountFile(path)
}

// ValidateAll validates every document in paths and fails on the first
// unreadable or malformed one.
func ValidateAll(paths []string) error {
	return api.ValidateFiles(paths, newConfiguration())
}

// MergeCreate concatenates the pages of inFiles, in order, into a new
// document at outPath. The same input path may appear more than once.
func MergeCreate(inFiles []string, outPath string) error {
	return api.MergeCreateFile(inFiles, outPath, false, newConfiguration())
}

// overlayDesc places an overlay page exactly over its target page, fully
// opaque and on top, leaving the original content placement untouched.
const overlayDesc = "scale:1 abs, pos:full, rot:0, op:1"

// OverlayEachPage composites page i of the n-page document at overlayPath
// onto page i of the document at inPath and writes the result to outPath.
func OverlayEachPage(inPath, overlayPath, outPath string, n int) error {
	wms := make(map[int]*model.Watermark, n)
	for i := 1; i <= n; i++ {
		wm, err := api.PDFWatermark(fmt.Sprintf("%s:%d", overlayPath, i), overlayDesc, true, false, types.POINTS)
		if err != nil {
			return fmt.Errorf("preparing overlay for page %d: %w", i, err)
		}
		wms[i] = wm
	}
	return api.AddWatermarksMapFile(inPath, outPath, wms, newConfiguration())
}

// AttachBookmarks writes the document at inPath to outPath with one outline
// entry per BookmarkEntry, replacing any existing outline. Entries carry
// 0-based page indices; the toolkit wants 1-based page numbers.
func AttachBookmarks(inPath, outPath string, entries []models.BookmarkEntry) error {
	bms := make([]pdfcpu.Bookmark, 0, len(entries))
	for _, e := range entries {
		bms = append(bms, pdfcpu.Bookmark{Title: e.Label, PageFrom: e.PageIndex + 1})
	}
	return api.AddBookmarksFile(inPath, outPath, bms, true, newConfiguration())
}
