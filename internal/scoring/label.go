package scoring

// Label is the qualitative rating shown next to a score.
//
// Labels use their own cut points (2.5/3.5/4.5), separate from the feedback
// bands (2.5/4.0).
type Label string

const (
	LabelNeedsImprovement Label = "Needs Improvement"
	LabelDeveloping       Label = "Developing"
	LabelStrong           Label = "Strong"
	LabelExcellent        Label = "Excellent"
)

// LabelFor returns the display label for a score.
func LabelFor(score float64) Label {
	switch {
	case score < 2.5:
		return LabelNeedsImprovement
	case score < 3.5:
		return LabelDeveloping
	case score < 4.5:
		return LabelStrong
	default:
		return LabelExcellent
	}
}
