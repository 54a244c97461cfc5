package scoring

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bizcheck/internal/catalog"
	"github.com/abhisek/bizcheck/internal/errs"
)

func twoQuestionCatalog(t *testing.T) (*catalog.Catalog, *catalog.FeedbackTable) {
	t.Helper()
	c, err := catalog.New([]catalog.Category{
		{ID: "alpha", Name: "Alpha", Questions: []string{"a1", "a2"}},
		{ID: "beta", Name: "Beta", Questions: []string{"b1", "b2"}},
	})
	require.NoError(t, err)
	fb, err := catalog.NewFeedbackTable(map[string]catalog.Feedback{
		"alpha": {Low: "alpha-low", Medium: "alpha-medium", High: "alpha-high"},
		"beta":  {Low: "beta-low", Medium: "beta-medium", High: "beta-high"},
	})
	require.NoError(t, err)
	return c, fb
}

func TestAverageForCategory_UniformAnswers(t *testing.T) {
	c, _ := catalog.Default()
	for v := MinScore; v <= MaxScore; v++ {
		answers := NewAnswers(c)
		for id := range answers {
			for i := range answers[id] {
				answers[id][i] = v
			}
		}
		for _, id := range c.IDs() {
			assert.Equal(t, float64(v), AverageForCategory(id, answers), "category %s, v=%d", id, v)
		}
	}
}

func TestAverageForCategory_Mean(t *testing.T) {
	answers := Answers{"x": {1, 2, 3, 4, 5}, "y": {1, 2}}
	assert.Equal(t, 3.0, AverageForCategory("x", answers))
	assert.Equal(t, 1.5, AverageForCategory("y", answers))
}

func TestAverageForCategory_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { AverageForCategory("missing", Answers{}) })
	assert.Panics(t, func() { AverageForCategory("x", Answers{"x": {}}) })
	assert.Panics(t, func() { AverageForCategory("x", Answers{"x": {3, 0}}) })
	assert.Panics(t, func() { AverageForCategory("x", Answers{"x": {6}}) })
}

func TestPercentageForCategory_IsAverageTimesTwenty(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		row := make([]int, 1+rng.IntN(7))
		for i := range row {
			row[i] = MinScore + rng.IntN(MaxScore)
		}
		answers := Answers{"x": row}
		assert.Equal(t, AverageForCategory("x", answers)*20, PercentageForCategory("x", answers), "row %v", row)
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score float64
		want  catalog.Band
	}{
		{1.0, catalog.BandLow},
		{2.4, catalog.BandLow},
		{2.4999, catalog.BandLow},
		{2.5, catalog.BandMedium},
		{3.0, catalog.BandMedium},
		{3.9999, catalog.BandMedium},
		{4.0, catalog.BandHigh},
		{5.0, catalog.BandHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.score), "score %v", tt.score)
	}
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Label
	}{
		{1.0, LabelNeedsImprovement},
		{2.49, LabelNeedsImprovement},
		{2.5, LabelDeveloping},
		{3.49, LabelDeveloping},
		{3.5, LabelStrong},
		{4.0, LabelStrong},
		{4.49, LabelStrong},
		{4.5, LabelExcellent},
		{5.0, LabelExcellent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelFor(tt.score), "score %v", tt.score)
	}
}

func TestBoundaries_FromAnswers(t *testing.T) {
	c, fb := twoQuestionCatalog(t)

	answers := Answers{"alpha": {2, 3}, "beta": {4, 4}}
	scores := AllCategoryScores(c, answers)
	require.Len(t, scores, 2)

	// 2.5 is medium feedback and "Developing", not low / "Needs Improvement".
	assert.Equal(t, 2.5, scores[0].Score)
	text, err := FeedbackFor(fb, "alpha", scores[0].Score)
	require.NoError(t, err)
	assert.Equal(t, "alpha-medium", text)
	assert.Equal(t, LabelDeveloping, LabelFor(scores[0].Score))

	// 4.0 is high feedback but only a "Strong" label.
	assert.Equal(t, 4.0, scores[1].Score)
	text, err = FeedbackFor(fb, "beta", scores[1].Score)
	require.NoError(t, err)
	assert.Equal(t, "beta-high", text)
	assert.Equal(t, LabelStrong, LabelFor(scores[1].Score))

	assert.Equal(t, LabelStrong, LabelFor(AverageForCategory("alpha", Answers{"alpha": {3, 4}})))
	assert.Equal(t, LabelExcellent, LabelFor(AverageForCategory("alpha", Answers{"alpha": {4, 5}})))
}

func TestFeedbackFor_UnknownCategory(t *testing.T) {
	_, fb := twoQuestionCatalog(t)
	_, err := FeedbackFor(fb, "gamma", 3)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAllCategoryScores_CatalogOrder(t *testing.T) {
	c, _ := catalog.Default()
	rng := rand.New(rand.NewPCG(7, 11))

	for range 50 {
		answers := NewAnswers(c)
		for id := range answers {
			for i := range answers[id] {
				answers[id][i] = MinScore + rng.IntN(MaxScore)
			}
		}
		scores := AllCategoryScores(c, answers)
		require.Len(t, scores, c.Count())
		for i, s := range scores {
			cat, err := c.At(i)
			require.NoError(t, err)
			assert.Equal(t, cat.ID, s.CategoryID)
			assert.Equal(t, cat.Name, s.Name)
		}
	}
}

func TestOverallScore(t *testing.T) {
	for _, s := range []float64{1, 2.5, 3, 4.2, 5} {
		scores := make([]CategoryScore, 5)
		for i := range scores {
			scores[i].Score = s
		}
		assert.Equal(t, s, OverallScore(scores))
	}

	// Unweighted: each category counts once regardless of question count.
	assert.Equal(t, 3.0, OverallScore([]CategoryScore{{Score: 1}, {Score: 5}}))
	assert.Equal(t, 0.0, OverallScore(nil))
}

func TestOverallPercentage(t *testing.T) {
	assert.Equal(t, 60, OverallPercentage(3.0))
	assert.Equal(t, 20, OverallPercentage(1.0))
	assert.Equal(t, 100, OverallPercentage(5.0))
	assert.Equal(t, 57, OverallPercentage(2.84))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.2, Progress(0, 5))
	assert.Equal(t, 1.0, Progress(4, 5))
	assert.Equal(t, 0.0, Progress(0, 0))
}

func TestRatingLabel(t *testing.T) {
	assert.Equal(t, "Strongly Disagree", RatingLabel(1))
	assert.Equal(t, "Neutral", RatingLabel(3))
	assert.Equal(t, "Strongly Agree", RatingLabel(5))
	assert.Equal(t, "", RatingLabel(0))
}

func TestAnswers_Clone(t *testing.T) {
	c, _ := catalog.Default()
	a := NewAnswers(c)
	b := a.Clone()
	b["business-planning"][0] = 1

	assert.Equal(t, DefaultAnswer, a["business-planning"][0])
}
