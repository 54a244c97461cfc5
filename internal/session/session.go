// Package session implements the assessment state machine:
//
//	Welcome -> Identity -> Questioning(0..n-1) -> Results -> (Reset) Welcome
//
// Every operation validates first and applies second, so a rejected call
// leaves the session exactly as it was. A Session is owned by a single caller
// and is not safe for concurrent use.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/bizcheck/internal/catalog"
	"github.com/abhisek/bizcheck/internal/errs"
	"github.com/abhisek/bizcheck/internal/scoring"
)

// Session is one assessment in progress (or completed).
type Session struct {
	id       string
	catalog  *catalog.Catalog
	feedback *catalog.FeedbackTable
	logger   *zap.Logger

	phase      Phase
	current    int
	answers    scoring.Answers
	respondent Respondent

	// report is materialized on entering PhaseResults and never recomputed.
	report *scoring.Report
}

// New creates a session in PhaseWelcome with every answer at the default.
// A nil logger disables logging.
func New(c *catalog.Catalog, fb *catalog.FeedbackTable, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		id:       id,
		catalog:  c,
		feedback: fb,
		logger:   logger.With(zap.String("session_id", id)),
		phase:    PhaseWelcome,
		answers:  scoring.NewAnswers(c),
	}
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Catalog returns the catalog the session rates against.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// CurrentCategoryIndex returns the category being rated. Only meaningful in
// PhaseQuestioning.
func (s *Session) CurrentCategoryIndex() int { return s.current }

// CurrentCategory returns the category being rated.
func (s *Session) CurrentCategory() (catalog.Category, error) {
	if s.phase != PhaseQuestioning {
		return catalog.Category{}, fmt.Errorf("%w: no current category in phase %s", errs.ErrInvalidState, s.phase)
	}
	return s.catalog.At(s.current)
}

// IsLastCategory reports whether the next Advance finishes the assessment.
func (s *Session) IsLastCategory() bool {
	return s.phase == PhaseQuestioning && s.current == s.catalog.Count()-1
}

// Progress returns the fraction of categories reached, or 0 outside PhaseQuestioning.
func (s *Session) Progress() float64 {
	if s.phase != PhaseQuestioning {
		return 0
	}
	return scoring.Progress(s.current, s.catalog.Count())
}

// Answers returns a copy of the answer matrix.
func (s *Session) Answers() scoring.Answers {
	return s.answers.Clone()
}

// Respondent returns the captured identity (zero value before SubmitIdentity).
func (s *Session) Respondent() Respondent { return s.respondent }

// Results returns the frozen report. Only available in PhaseResults.
func (s *Session) Results() (*scoring.Report, error) {
	if s.phase != PhaseResults {
		return nil, fmt.Errorf("%w: results not available in phase %s", errs.ErrInvalidState, s.phase)
	}
	r := *s.report
	r.Categories = append([]scoring.CategoryResult(nil), s.report.Categories...)
	return &r, nil
}

// Start moves from Welcome to Identity.
func (s *Session) Start() error {
	if s.phase != PhaseWelcome {
		return s.reject("start", fmt.Errorf("%w: cannot start from phase %s", errs.ErrInvalidState, s.phase))
	}
	s.respondent = Respondent{}
	s.transition("start", PhaseIdentity)
	return nil
}

// SubmitIdentity validates the identity form and enters Questioning at the
// first category. Field problems come back as *errs.ValidationError.
func (s *Session) SubmitIdentity(firstName, lastName, email string) error {
	if s.phase != PhaseIdentity {
		return s.reject("submit_identity", fmt.Errorf("%w: identity not expected in phase %s", errs.ErrInvalidState, s.phase))
	}
	if err := ValidateIdentity(firstName, lastName, email); err != nil {
		return s.reject("submit_identity", err)
	}

	s.respondent = Respondent{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
	}
	s.current = 0
	s.transition("submit_identity", PhaseQuestioning)
	return nil
}

// SetAnswer records one rating. The category must be the current one or one
// already visited.
func (s *Session) SetAnswer(categoryID string, questionIndex, score int) error {
	const op = "set_answer"
	if s.phase != PhaseQuestioning {
		return s.reject(op, fmt.Errorf("%w: answers are locked in phase %s", errs.ErrInvalidState, s.phase))
	}

	idx, err := s.catalog.IndexOf(categoryID)
	if err != nil {
		return s.reject(op, fmt.Errorf("%w: unknown category %q", errs.ErrInvalidArgument, categoryID))
	}
	if idx > s.current {
		return s.reject(op, fmt.Errorf("%w: category %q not reached yet (at %d, category is %d)", errs.ErrInvalidState, categoryID, s.current, idx))
	}
	row := s.answers[categoryID]
	if questionIndex < 0 || questionIndex >= len(row) {
		return s.reject(op, fmt.Errorf("%w: question index %d not in [0, %d) for %q", errs.ErrInvalidArgument, questionIndex, len(row), categoryID))
	}
	if !scoring.ValidScore(score) {
		return s.reject(op, fmt.Errorf("%w: score %d not in [%d, %d]", errs.ErrInvalidArgument, score, scoring.MinScore, scoring.MaxScore))
	}

	row[questionIndex] = score
	s.logger.Debug("answer set",
		zap.String("category", categoryID),
		zap.Int("question", questionIndex),
		zap.Int("score", score))
	return nil
}

// Advance moves to the next category, or to Results from the last one.
// Entering Results freezes the report.
func (s *Session) Advance() error {
	const op = "advance"
	if s.phase != PhaseQuestioning {
		return s.reject(op, fmt.Errorf("%w: cannot advance in phase %s", errs.ErrInvalidState, s.phase))
	}

	if s.current < s.catalog.Count()-1 {
		s.current++
		s.logger.Debug("category changed", zap.String("op", op), zap.Int("index", s.current))
		return nil
	}

	report, err := scoring.BuildReport(s.catalog, s.feedback, s.answers)
	if err != nil {
		return s.reject(op, err)
	}
	s.report = report
	s.transition(op, PhaseResults)
	s.logger.Info("assessment completed",
		zap.Float64("overall", report.Overall),
		zap.Int("overall_percentage", report.OverallPercentage))
	return nil
}

// Retreat moves back one category. Rejected at the first category.
func (s *Session) Retreat() error {
	const op = "retreat"
	if s.phase != PhaseQuestioning {
		return s.reject(op, fmt.Errorf("%w: cannot retreat in phase %s", errs.ErrInvalidState, s.phase))
	}
	if s.current == 0 {
		return s.reject(op, fmt.Errorf("%w: already at the first category", errs.ErrOutOfRange))
	}
	s.current--
	s.logger.Debug("category changed", zap.String("op", op), zap.Int("index", s.current))
	return nil
}

// JumpTo moves directly to an already-visited category. Forward jumps are
// rejected; later categories are only reached through Advance.
func (s *Session) JumpTo(index int) error {
	const op = "jump_to"
	if s.phase != PhaseQuestioning {
		return s.reject(op, fmt.Errorf("%w: cannot jump in phase %s", errs.ErrInvalidState, s.phase))
	}
	if index < 0 || index >= s.catalog.Count() {
		return s.reject(op, fmt.Errorf("%w: category index %d not in [0, %d)", errs.ErrOutOfRange, index, s.catalog.Count()))
	}
	if index > s.current {
		return s.reject(op, fmt.Errorf("%w: cannot jump forward from %d to %d", errs.ErrInvalidState, s.current, index))
	}
	s.current = index
	s.logger.Debug("category changed", zap.String("op", op), zap.Int("index", s.current))
	return nil
}

// Reset discards answers, identity and results and returns to Welcome.
func (s *Session) Reset() {
	s.answers = scoring.NewAnswers(s.catalog)
	s.respondent = Respondent{}
	s.report = nil
	s.current = 0
	s.transition("reset", PhaseWelcome)
}

func (s *Session) transition(op string, to Phase) {
	s.logger.Debug("phase changed",
		zap.String("op", op),
		zap.Stringer("from", s.phase),
		zap.Stringer("to", to))
	s.phase = to
}

func (s *Session) reject(op string, err error) error {
	s.logger.Debug("operation rejected",
		zap.String("op", op),
		zap.Stringer("phase", s.phase),
		zap.Error(err))
	return fmt.Errorf("%s: %w", op, err)
}
