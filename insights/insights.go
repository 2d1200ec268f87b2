package insights

// Report is the strict contract with the generative producer. Anything that
// does not validate against it is discarded in favor of the deterministic
// fallback; unvalidated external JSON never reaches the report model.
type Report struct {
	ExecutiveSummary  string     `json:"executiveSummary"`
	TopIssues         []Issue    `json:"topIssues"`
	QuickWins         []QuickWin `json:"quickWins"`
	IndustryInsight   string     `json:"industryInsight"`
	LLMRecommendation string     `json:"llmRecommendation"`
	Generated         bool       `json:"generated"`
}

// Issue is one prioritized problem surfaced to the business owner.
type Issue struct {
	Title       string `json:"title"`
	Impact      string `json:"impact"`
	Description string `json:"description"`
}

// QuickWin is one low-effort improvement with a rough time estimate.
type QuickWin struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	TimeEstimate string `json:"timeEstimate"`
}

// validate enforces the response schema: every scalar field populated and
// at least one issue and one quick win, each fully filled in.
func (r Report) validate() error {
	if r.ExecutiveSummary == "" {
		return errMissingField("executiveSummary")
	}
	if r.IndustryInsight == "" {
		return errMissingField("industryInsight")
	}
	if r.LLMRecommendation == "" {
		return errMissingField("llmRecommendation")
	}
	if len(r.TopIssues) == 0 {
		return errMissingField("topIssues")
	}
	if len(r.QuickWins) == 0 {
		return errMissingField("quickWins")
	}
	for _, issue := range r.TopIssues {
		if issue.Title == "" || issue.Impact == "" || issue.Description == "" {
			return errMissingField("topIssues[].title/impact/description")
		}
	}
	for _, win := range r.QuickWins {
		if win.Title == "" || win.Description == "" || win.TimeEstimate == "" {
			return errMissingField("quickWins[].title/description/timeEstimate")
		}
	}
	return nil
}

type errMissingField string

func (e errMissingField) Error() string {
	return "insights: response missing required field " + string(e)
}
