package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/bizcheck/internal/errs"
	"github.com/abhisek/bizcheck/internal/scoring"
	"github.com/abhisek/bizcheck/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an assessment non-interactively",
	Long: "Runs a full assessment from flags and prints the report. Categories not " +
		"given with --answers keep the neutral rating of 3.",
	Example: "  bizcheck score --first-name Ada --email ada@example.com \\\n" +
		"    --answers business-planning=4,4,5,3,4 --answers market-position=2,2,3,2,1",
	RunE: func(cmd *cobra.Command, args []string) error {
		var in scoreInput
		in.FirstName, _ = cmd.Flags().GetString("first-name")
		in.LastName, _ = cmd.Flags().GetString("last-name")
		in.Email, _ = cmd.Flags().GetString("email")
		rawAnswers, _ := cmd.Flags().GetStringArray("answers")
		asJSON, _ := cmd.Flags().GetBool("json")

		answers, err := parseAnswers(rawAnswers)
		if err != nil {
			return err
		}
		in.Answers = answers

		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		sess := session.New(rt.Catalog, rt.Feedback, rt.Logger)
		if err := runAssessment(sess, in); err != nil {
			return err
		}
		rt.Logger.Info("scored from flags", zap.String("session_id", sess.ID()))
		return printReport(cmd.OutOrStdout(), sess, asJSON)
	},
}

func init() {
	scoreCmd.Flags().String("first-name", "", "Respondent first name (required)")
	scoreCmd.Flags().String("last-name", "", "Respondent last name")
	scoreCmd.Flags().String("email", "", "Respondent email (required)")
	scoreCmd.Flags().StringArray("answers", nil, "Ratings for one category as <category-id>=v1,v2,... (repeatable)")
	scoreCmd.Flags().Bool("json", false, "Print the report as JSON")
}

// scoreInput is everything needed to drive one assessment to completion.
type scoreInput struct {
	FirstName string
	LastName  string
	Email     string
	Answers   map[string][]int
}

// parseAnswers parses repeated "<category-id>=v1,v2,..." values. Ranges and
// lengths are left to the session.
func parseAnswers(raw []string) (map[string][]int, error) {
	out := make(map[string][]int, len(raw))
	for _, r := range raw {
		id, list, ok := strings.Cut(r, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" || strings.TrimSpace(list) == "" {
			return nil, fmt.Errorf("%w: --answers %q: want <category-id>=v1,v2,...", errs.ErrInvalidArgument, r)
		}
		if _, dup := out[id]; dup {
			return nil, fmt.Errorf("%w: --answers given twice for %q", errs.ErrInvalidArgument, id)
		}

		parts := strings.Split(list, ",")
		values := make([]int, len(parts))
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("%w: --answers %s: value %d: %q is not a number", errs.ErrInvalidArgument, id, i+1, p)
			}
			values[i] = v
		}
		out[id] = values
	}
	return out, nil
}

// runAssessment walks sess from Welcome to Results, rating each category as
// it becomes current.
func runAssessment(sess *session.Session, in scoreInput) error {
	if err := sess.Start(); err != nil {
		return err
	}
	if err := sess.SubmitIdentity(in.FirstName, in.LastName, in.Email); err != nil {
		return err
	}

	c := sess.Catalog()
	for id, values := range in.Answers {
		n, err := c.QuestionCount(id)
		if err != nil {
			return fmt.Errorf("--answers: unknown category %q: %w", id, err)
		}
		if len(values) != n {
			return fmt.Errorf("%w: --answers %s: got %d values, want %d", errs.ErrInvalidArgument, id, len(values), n)
		}
	}

	for sess.Phase() == session.PhaseQuestioning {
		cat, err := sess.CurrentCategory()
		if err != nil {
			return err
		}
		for q, v := range in.Answers[cat.ID] {
			if err := sess.SetAnswer(cat.ID, q, v); err != nil {
				return fmt.Errorf("--answers %s: statement %d: %w", cat.ID, q+1, err)
			}
		}
		if err := sess.Advance(); err != nil {
			return err
		}
	}
	return nil
}

type reportJSON struct {
	SessionID  string             `json:"session_id"`
	Respondent session.Respondent `json:"respondent"`
	*scoring.Report
}

func printReport(w io.Writer, sess *session.Session, asJSON bool) error {
	r, err := sess.Results()
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reportJSON{
			SessionID:  sess.ID(),
			Respondent: sess.Respondent(),
			Report:     r,
		})
	}

	resp := sess.Respondent()
	name := strings.TrimSpace(resp.FirstName + " " + resp.LastName)
	fmt.Fprintf(w, "Business Growth Assessment: %s <%s>\n\n", name, resp.Email)

	fmt.Fprintf(w, "%-26s  %7s  %4s  %-18s  %s\n", "Category", "Score", "%", "Rating", "Band")
	fmt.Fprintln(w, strings.Repeat("─", 72))
	for _, cr := range r.Categories {
		fmt.Fprintf(w, "%-26s  %4.1f/5  %3.0f%%  %-18s  %s\n",
			cr.Name, cr.Score, cr.Percentage, cr.Label, cr.Band)
	}
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%-26s  %4.1f/5  %3d%%  %s\n\n", "Overall", r.Overall, r.OverallPercentage, r.OverallLabel)

	fmt.Fprintln(w, "Recommendations")
	for _, cr := range r.Categories {
		fmt.Fprintf(w, "\n%s (%s)\n  %s\n", cr.Name, cr.Label, cr.Feedback)
	}
	return nil
}
