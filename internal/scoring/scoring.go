// Package scoring turns an answer matrix into category and overall scores
// and picks feedback text for them. Every function here is pure.
package scoring

import (
	"fmt"
	"math"

	"github.com/abhisek/bizcheck/internal/catalog"
)

// Feedback band cut points. A score equal to a cut point falls in the upper band.
const (
	mediumBandFrom = 2.5
	highBandFrom   = 4.0
)

// CategoryScore is the derived score of one category.
type CategoryScore struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Percentage float64 `json:"percentage"`
}

// AverageForCategory returns the mean rating of a category. The row must be
// non-empty with every value in [MinScore, MaxScore]; anything else is a
// caller bug and panics.
func AverageForCategory(categoryID string, answers Answers) float64 {
	row := answers[categoryID]
	if len(row) == 0 {
		panic(fmt.Sprintf("scoring: no answers for category %q", categoryID))
	}

	total := 0
	for i, v := range row {
		if !ValidScore(v) {
			panic(fmt.Sprintf("scoring: answer %d of category %q is %d, want [%d,%d]", i, categoryID, v, MinScore, MaxScore))
		}
		total += v
	}
	return float64(total) / float64(len(row))
}

// PercentageForCategory returns the category average as a percentage of MaxScore.
func PercentageForCategory(categoryID string, answers Answers) float64 {
	return percentage(AverageForCategory(categoryID, answers))
}

// percentage is score / MaxScore * 100; 100/MaxScore is exact, so the
// result equals score*20 bit for bit.
func percentage(score float64) float64 {
	return score * (100.0 / MaxScore)
}

// AllCategoryScores returns one CategoryScore per category, in catalog order.
func AllCategoryScores(c *catalog.Catalog, answers Answers) []CategoryScore {
	scores := make([]CategoryScore, 0, c.Count())
	for _, cat := range c.All() {
		avg := AverageForCategory(cat.ID, answers)
		scores = append(scores, CategoryScore{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Score:      avg,
			Percentage: percentage(avg),
		})
	}
	return scores
}

// OverallScore is the unweighted mean of the category scores. Returns 0 for
// no scores.
func OverallScore(scores []CategoryScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s.Score
	}
	return sum / float64(len(scores))
}

// OverallPercentage returns the overall score as a whole-number percentage.
func OverallPercentage(overall float64) int {
	return int(math.Round(percentage(overall)))
}

// BandFor selects the feedback band for a score.
func BandFor(score float64) catalog.Band {
	if score < mediumBandFrom {
		return catalog.BandLow
	}
	if score < highBandFrom {
		return catalog.BandMedium
	}
	return catalog.BandHigh
}

// FeedbackFor returns the feedback text for a category at the given score.
func FeedbackFor(table *catalog.FeedbackTable, categoryID string, score float64) (string, error) {
	return table.Text(categoryID, BandFor(score))
}

// Progress returns the fraction of categories reached when positioned at
// index, in (0, 1].
func Progress(index, count int) float64 {
	if count <= 0 {
		return 0
	}
	return float64(index+1) / float64(count)
}
