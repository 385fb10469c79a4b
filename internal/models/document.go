package models

import "fmt"

// SourceDocument is one PDF file discovered in the input directory,
// immutable once scanned.
type SourceDocument struct {
	Path string
	Name string
}

// BookmarkEntry marks where a source document begins in the merged output.
// PageIndex is the 0-based page offset into the merged document.
type BookmarkEntry struct {
	PageIndex int
	Label     string
}

// MergeResult is the hand-off value from the merge stage to the annotation
// stage. Path points at the merged-but-unannotated intermediate document.
type MergeResult struct {
	Path        string
	PageCount   int
	SourceCount int
	Bookmarks   []BookmarkEntry
}

// ValidateBookmarks checks that entries are strictly increasing in PageIndex
// and in range for a document of pageCount pages. A violation means the merge
// bookkeeping is broken, so callers must treat the error as fatal.
func ValidateBookmarks(entries []BookmarkEntry, pageCount int) error {
	prev := -1
	for _, e := range entries {
		if e.PageIndex <= prev {
			return fmt.Errorf("internal: bookmark %q at page index %d is not after previous index %d", e.Label, e.PageIndex, prev)
		}
		if e.PageIndex >= pageCount {
			return fmt.Errorf("internal: bookmark %q at page index %d exceeds page count %d", e.Label, e.PageIndex, pageCount)
		}
		prev = e.PageIndex
	}
	return nil
}
