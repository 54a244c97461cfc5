package scoring

import (
	"fmt"

	"github.com/abhisek/bizcheck/internal/catalog"
)

// CategoryResult is one row of the results view.
type CategoryResult struct {
	CategoryScore
	Label    Label        `json:"label"`
	Band     catalog.Band `json:"band"`
	Feedback string       `json:"feedback"`
}

// Report is the materialized results view for a finished assessment.
type Report struct {
	Categories        []CategoryResult `json:"categories"`
	Overall           float64          `json:"overall"`
	OverallPercentage int              `json:"overall_percentage"`
	OverallLabel      Label            `json:"overall_label"`
}

// Scores returns the category scores in catalog order.
func (r *Report) Scores() []CategoryScore {
	out := make([]CategoryScore, len(r.Categories))
	for i, c := range r.Categories {
		out[i] = c.CategoryScore
	}
	return out
}

// BuildReport computes scores, labels and feedback for the given answers.
func BuildReport(c *catalog.Catalog, table *catalog.FeedbackTable, answers Answers) (*Report, error) {
	scores := AllCategoryScores(c, answers)

	results := make([]CategoryResult, 0, len(scores))
	for _, s := range scores {
		text, err := FeedbackFor(table, s.CategoryID, s.Score)
		if err != nil {
			return nil, fmt.Errorf("feedback for %s: %w", s.CategoryID, err)
		}
		results = append(results, CategoryResult{
			CategoryScore: s,
			Label:         LabelFor(s.Score),
			Band:          BandFor(s.Score),
			Feedback:      text,
		})
	}

	overall := OverallScore(scores)
	return &Report{
		Categories:        results,
		Overall:           overall,
		OverallPercentage: OverallPercentage(overall),
		OverallLabel:      LabelFor(overall),
	}, nil
}
