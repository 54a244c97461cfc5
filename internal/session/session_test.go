package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/bizcheck/internal/catalog"
	"github.com/abhisek/bizcheck/internal/errs"
	"github.com/abhisek/bizcheck/internal/scoring"
)

func testSession() *Session {
	c, fb := catalog.Default()
	return New(c, fb, nil)
}

// questioningSession returns a session positioned at Questioning(0).
func questioningSession(t *testing.T) *Session {
	t.Helper()
	s := testSession()
	require.NoError(t, s.Start())
	require.NoError(t, s.SubmitIdentity("Ada", "Lovelace", "ada@example.com"))
	return s
}

// advanceTo moves a questioning session forward to the given index.
func advanceTo(t *testing.T, s *Session, index int) {
	t.Helper()
	for s.CurrentCategoryIndex() < index {
		require.NoError(t, s.Advance())
	}
}

func TestNew_Defaults(t *testing.T) {
	s := testSession()

	assert.Equal(t, PhaseWelcome, s.Phase())
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, Respondent{}, s.Respondent())

	answers := s.Answers()
	require.Len(t, answers, s.Catalog().Count())
	for _, row := range answers {
		for _, v := range row {
			assert.Equal(t, scoring.DefaultAnswer, v)
		}
	}
}

func TestStart(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start())
	assert.Equal(t, PhaseIdentity, s.Phase())

	assert.ErrorIs(t, s.Start(), errs.ErrInvalidState)
	assert.Equal(t, PhaseIdentity, s.Phase())
}

func TestWelcome_RejectsEverythingButStart(t *testing.T) {
	s := testSession()

	assert.ErrorIs(t, s.Advance(), errs.ErrInvalidState)
	assert.ErrorIs(t, s.Retreat(), errs.ErrInvalidState)
	assert.ErrorIs(t, s.JumpTo(0), errs.ErrInvalidState)
	assert.ErrorIs(t, s.SetAnswer("business-planning", 0, 5), errs.ErrInvalidState)
	assert.ErrorIs(t, s.SubmitIdentity("Ada", "", "ada@example.com"), errs.ErrInvalidState)

	_, err := s.Results()
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	_, err = s.CurrentCategory()
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	assert.Equal(t, PhaseWelcome, s.Phase())
}

func TestSubmitIdentity_Valid(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start())

	require.NoError(t, s.SubmitIdentity("  Ada ", "", " ada@example.com "))

	assert.Equal(t, PhaseQuestioning, s.Phase())
	assert.Equal(t, 0, s.CurrentCategoryIndex())
	assert.Equal(t, Respondent{FirstName: "Ada", Email: "ada@example.com"}, s.Respondent())
	assert.Equal(t, "Ada", s.Respondent().DisplayName())
}

func TestSubmitIdentity_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		first      string
		email      string
		wantFields map[string]string
	}{
		{
			name:  "blank first name",
			first: "   ",
			email: "ada@example.com",
			wantFields: map[string]string{
				FieldFirstName: "First name is required",
			},
		},
		{
			name:  "missing email",
			first: "Ada",
			email: " ",
			wantFields: map[string]string{
				FieldEmail: "Email is required",
			},
		},
		{
			name:  "malformed email",
			first: "Ada",
			email: "ada@example",
			wantFields: map[string]string{
				FieldEmail: "Please enter a valid email address",
			},
		},
		{
			name:  "both",
			first: "",
			email: "not-an-email",
			wantFields: map[string]string{
				FieldFirstName: "First name is required",
				FieldEmail:     "Please enter a valid email address",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession()
			require.NoError(t, s.Start())

			err := s.SubmitIdentity(tt.first, "Lovelace", tt.email)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)
			assert.Equal(t, tt.wantFields, errs.FieldErrors(err))

			assert.Equal(t, PhaseIdentity, s.Phase())
			assert.Equal(t, Respondent{}, s.Respondent())
		})
	}
}

func TestAdvance_ThroughAllCategories(t *testing.T) {
	s := questioningSession(t)
	n := s.Catalog().Count()

	for k := 0; k < n-1; k++ {
		assert.Equal(t, k, s.CurrentCategoryIndex())
		assert.False(t, s.IsLastCategory())
		require.NoError(t, s.Advance())
		assert.Equal(t, PhaseQuestioning, s.Phase())
	}

	assert.Equal(t, n-1, s.CurrentCategoryIndex())
	assert.True(t, s.IsLastCategory())
	assert.Equal(t, 1.0, s.Progress())

	require.NoError(t, s.Advance())
	assert.Equal(t, PhaseResults, s.Phase())
	assert.Equal(t, 0.0, s.Progress())

	assert.ErrorIs(t, s.Advance(), errs.ErrInvalidState)
	assert.ErrorIs(t, s.Retreat(), errs.ErrInvalidState)
	assert.ErrorIs(t, s.JumpTo(0), errs.ErrInvalidState)
}

func TestRetreat(t *testing.T) {
	s := questioningSession(t)

	err := s.Retreat()
	assert.ErrorIs(t, err, errs.ErrOutOfRange)
	assert.Equal(t, 0, s.CurrentCategoryIndex())

	advanceTo(t, s, 2)
	require.NoError(t, s.Retreat())
	assert.Equal(t, 1, s.CurrentCategoryIndex())
}

func TestJumpTo(t *testing.T) {
	s := questioningSession(t)
	advanceTo(t, s, 3)

	assert.ErrorIs(t, s.JumpTo(4), errs.ErrInvalidState)
	assert.Equal(t, 3, s.CurrentCategoryIndex())

	assert.ErrorIs(t, s.JumpTo(-1), errs.ErrOutOfRange)
	assert.ErrorIs(t, s.JumpTo(5), errs.ErrOutOfRange)
	assert.Equal(t, 3, s.CurrentCategoryIndex())

	for _, target := range []int{3, 1, 0} {
		require.NoError(t, s.JumpTo(target))
		assert.Equal(t, target, s.CurrentCategoryIndex())
	}

	// After jumping back, the previous position counts as ahead again.
	assert.ErrorIs(t, s.JumpTo(1), errs.ErrInvalidState)
}

func TestSetAnswer(t *testing.T) {
	s := questioningSession(t)

	require.NoError(t, s.SetAnswer("business-planning", 2, 5))

	answers := s.Answers()
	assert.Equal(t, []int{3, 3, 5, 3, 3}, answers["business-planning"])
	for id, row := range answers {
		if id == "business-planning" {
			continue
		}
		assert.Equal(t, []int{3, 3, 3, 3, 3}, row, id)
	}
}

func TestSetAnswer_Rejections(t *testing.T) {
	s := questioningSession(t)
	advanceTo(t, s, 1)

	tests := []struct {
		name     string
		category string
		question int
		score    int
		want     error
	}{
		{"unknown category", "sales", 0, 3, errs.ErrInvalidArgument},
		{"ahead of current", "financial-management", 0, 3, errs.ErrInvalidState},
		{"negative question", "business-planning", -1, 3, errs.ErrInvalidArgument},
		{"question past end", "operational-efficiency", 5, 3, errs.ErrInvalidArgument},
		{"score too low", "operational-efficiency", 0, 0, errs.ErrInvalidArgument},
		{"score too high", "operational-efficiency", 0, 6, errs.ErrInvalidArgument},
	}

	before := s.Answers()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.SetAnswer(tt.category, tt.question, tt.score)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, s.Answers())
		})
	}
}

func TestSetAnswer_PreviouslyVisitedCategory(t *testing.T) {
	s := questioningSession(t)
	advanceTo(t, s, 2)

	require.NoError(t, s.SetAnswer("business-planning", 0, 1))
	assert.Equal(t, 1, s.Answers()["business-planning"][0])
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	s := questioningSession(t)
	a := s.Answers()
	a["business-planning"][0] = 1

	assert.Equal(t, scoring.DefaultAnswer, s.Answers()["business-planning"][0])
}

func TestResults_FrozenOnEntry(t *testing.T) {
	s := questioningSession(t)
	for q := 0; q < 5; q++ {
		require.NoError(t, s.SetAnswer("business-planning", q, 1))
	}
	advanceTo(t, s, s.Catalog().Count()-1)
	require.NoError(t, s.Advance())

	r, err := s.Results()
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetAnswer("business-planning", 0, 5), errs.ErrInvalidState)

	// Callers cannot change the stored report through the returned copy.
	r.Categories[0].Score = 5
	again, err := s.Results()
	require.NoError(t, err)
	assert.Equal(t, 1.0, again.Categories[0].Score)
	assert.Equal(t, 20.0, again.Categories[0].Percentage)
	assert.Equal(t, catalog.BandLow, again.Categories[0].Band)
}

func TestEndToEnd_AllDefaults(t *testing.T) {
	s := questioningSession(t)
	advanceTo(t, s, s.Catalog().Count()-1)
	require.NoError(t, s.Advance())

	r, err := s.Results()
	require.NoError(t, err)
	require.Len(t, r.Categories, 5)
	for _, cr := range r.Categories {
		assert.Equal(t, 3.0, cr.Score)
		assert.Equal(t, 60.0, cr.Percentage)
		assert.Equal(t, catalog.BandMedium, cr.Band)
	}
	assert.Equal(t, 3.0, r.Overall)
}

func TestEndToEnd_OneCategoryAllOnes(t *testing.T) {
	s := questioningSession(t)
	advanceTo(t, s, 3)
	for q := 0; q < 5; q++ {
		require.NoError(t, s.SetAnswer("market-position", q, 1))
	}
	require.NoError(t, s.Advance())
	require.NoError(t, s.Advance())

	r, err := s.Results()
	require.NoError(t, err)

	mp := r.Categories[3]
	assert.Equal(t, "market-position", mp.CategoryID)
	assert.Equal(t, 1.0, mp.Score)
	assert.Equal(t, 20.0, mp.Percentage)
	assert.Equal(t, catalog.BandLow, mp.Band)
}

func TestReset(t *testing.T) {
	phases := []struct {
		name  string
		setup func(t *testing.T) *Session
	}{
		{"welcome", func(t *testing.T) *Session { return testSession() }},
		{"questioning", func(t *testing.T) *Session {
			s := questioningSession(t)
			advanceTo(t, s, 2)
			require.NoError(t, s.SetAnswer("operational-efficiency", 4, 1))
			return s
		}},
		{"results", func(t *testing.T) *Session {
			s := questioningSession(t)
			require.NoError(t, s.SetAnswer("business-planning", 0, 5))
			advanceTo(t, s, 4)
			require.NoError(t, s.SetAnswer("talent-development", 1, 2))
			require.NoError(t, s.Advance())
			return s
		}},
	}

	for _, tt := range phases {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setup(t)
			s.Reset()

			assert.Equal(t, PhaseWelcome, s.Phase())
			assert.Equal(t, Respondent{}, s.Respondent())
			for _, row := range s.Answers() {
				for _, v := range row {
					assert.Equal(t, scoring.DefaultAnswer, v)
				}
			}
			_, err := s.Results()
			assert.ErrorIs(t, err, errs.ErrInvalidState)

			// A reset session runs through again from the start.
			require.NoError(t, s.Start())
			require.NoError(t, s.SubmitIdentity("Grace", "", "grace@example.com"))
			assert.Equal(t, 0, s.CurrentCategoryIndex())
		})
	}
}

func TestCurrentCategory(t *testing.T) {
	s := questioningSession(t)
	advanceTo(t, s, 2)

	cat, err := s.CurrentCategory()
	require.NoError(t, err)
	assert.Equal(t, "financial-management", cat.ID)
	assert.InDelta(t, 0.6, s.Progress(), 1e-9)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c, fb := catalog.Default()
	s := New(c, fb, zap.New(core))

	require.NoError(t, s.Start())
	assert.Error(t, s.Advance())

	changed := logs.FilterMessage("phase changed").All()
	require.Len(t, changed, 1)
	fields := changed[0].ContextMap()
	assert.Equal(t, s.ID(), fields["session_id"])
	assert.Equal(t, "welcome", fields["from"])
	assert.Equal(t, "identity", fields["to"])

	rejected := logs.FilterMessage("operation rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "advance", rejected[0].ContextMap()["op"])
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "welcome", PhaseWelcome.String())
	assert.Equal(t, "identity", PhaseIdentity.String())
	assert.Equal(t, "questioning", PhaseQuestioning.String())
	assert.Equal(t, "results", PhaseResults.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
