package catalog

import (
	"fmt"
	"strings"

	"github.com/abhisek/bizcheck/internal/errs"
)

// Band is a coarse score bucket used to pick feedback text.
type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// AllBands returns the bands from lowest to highest.
func AllBands() []Band {
	return []Band{BandLow, BandMedium, BandHigh}
}

// Feedback is the canned text for one category, one block per band.
type Feedback struct {
	Low    string
	Medium string
	High   string
}

func (f Feedback) text(b Band) (string, bool) {
	switch b {
	case BandLow:
		return f.Low, true
	case BandMedium:
		return f.Medium, true
	case BandHigh:
		return f.High, true
	default:
		return "", false
	}
}

// FeedbackTable maps a category id and band to feedback text.
type FeedbackTable struct {
	entries map[string]Feedback
}

// NewFeedbackTable builds a table from per-category feedback. Every entry must
// have non-blank text for all three bands.
func NewFeedbackTable(entries map[string]Feedback) (*FeedbackTable, error) {
	t := &FeedbackTable{entries: make(map[string]Feedback, len(entries))}
	for id, fb := range entries {
		for _, b := range AllBands() {
			text, _ := fb.text(b)
			if strings.TrimSpace(text) == "" {
				return nil, fmt.Errorf("%w: category %q has no %s feedback", errs.ErrInvalidArgument, id, b)
			}
		}
		t.entries[id] = fb
	}
	return t, nil
}

// Text returns the feedback for a category and band.
func (t *FeedbackTable) Text(categoryID string, band Band) (string, error) {
	fb, ok := t.entries[categoryID]
	if !ok {
		return "", fmt.Errorf("%w: no feedback for category %q", errs.ErrNotFound, categoryID)
	}
	text, ok := fb.text(band)
	if !ok {
		return "", fmt.Errorf("%w: feedback band %q", errs.ErrNotFound, band)
	}
	return text, nil
}

// Covers returns an error naming the first catalog category that has no
// feedback entry.
func (t *FeedbackTable) Covers(c *Catalog) error {
	for _, id := range c.IDs() {
		if _, ok := t.entries[id]; !ok {
			return fmt.Errorf("%w: no feedback for category %q", errs.ErrNotFound, id)
		}
	}
	return nil
}
