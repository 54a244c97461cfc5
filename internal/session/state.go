package session

// Phase is the current step of an assessment.
type Phase int

const (
	PhaseWelcome     Phase = iota // Nothing captured yet
	PhaseIdentity                 // Collecting respondent details
	PhaseQuestioning              // Rating one category at a time
	PhaseResults                  // Scores frozen; only Reset leaves
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseIdentity:
		return "identity"
	case PhaseQuestioning:
		return "questioning"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Respondent holds the identity captured before questioning.
type Respondent struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
}

// DisplayName returns the first name, or "" when no identity was captured.
func (r Respondent) DisplayName() string {
	return r.FirstName
}
