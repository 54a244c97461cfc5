package scoring

import (
	"maps"
	"slices"

	"github.com/abhisek/bizcheck/internal/catalog"
)

const (
	MinScore = 1
	MaxScore = 5

	// DefaultAnswer is the neutral rating every slot starts at.
	DefaultAnswer = 3
)

// Answers is the answer matrix: category id to one rating per question.
type Answers map[string][]int

// NewAnswers returns a matrix with every slot of every category set to DefaultAnswer.
func NewAnswers(c *catalog.Catalog) Answers {
	a := make(Answers, c.Count())
	for _, cat := range c.All() {
		row := make([]int, cat.QuestionCount())
		for i := range row {
			row[i] = DefaultAnswer
		}
		a[cat.ID] = row
	}
	return a
}

// Clone returns a deep copy.
func (a Answers) Clone() Answers {
	out := maps.Clone(a)
	for id, row := range out {
		out[id] = slices.Clone(row)
	}
	return out
}

// ValidScore reports whether v is an allowed rating.
func ValidScore(v int) bool {
	return v >= MinScore && v <= MaxScore
}

// RatingLabel returns the Likert caption for a rating.
func RatingLabel(v int) string {
	switch v {
	case 1:
		return "Strongly Disagree"
	case 2:
		return "Disagree"
	case 3:
		return "Neutral"
	case 4:
		return "Agree"
	case 5:
		return "Strongly Agree"
	default:
		return ""
	}
}
