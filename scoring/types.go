package scoring

// Check statuses for a DetailedCheck.
const (
	StatusGood    = "good"
	StatusPartial = "partial"
	StatusMissing = "missing"
)

// Category names as they appear in the ScoreSummary.
const (
	CategoryAIReadiness   = "aiReadiness"
	CategoryAEO           = "aeo"
	CategorySEO           = "seo"
	CategorySecurity      = "security"
	CategoryAccessibility = "accessibility"
)

// DetailedCheck is one fixed-weight check inside a category. Score never
// exceeds MaxScore, and the sum of a category's check scores (clamped to
// 100) is exactly the category's reported score.
type DetailedCheck struct {
	Name           string   `json:"name"`
	Status         string   `json:"status"`
	Score          int      `json:"score"`
	MaxScore       int      `json:"maxScore"`
	Details        []string `json:"details"`
	WhyItMatters   string   `json:"whyItMatters"`
	Recommendation string   `json:"recommendation"`
}

// CategoryScore is one category's full result.
type CategoryScore struct {
	Score           int             `json:"score"`
	Checks          map[string]bool `json:"checks"`
	Issues          []string        `json:"issues"`
	Recommendations []string        `json:"recommendations"`
	DetailedChecks  []DetailedCheck `json:"detailedChecks"`
}

// ScoreSummary maps category name to its final clamped score.
type ScoreSummary map[string]int

// BusinessContext carries the caller-supplied metadata scorers use to phrase
// issues and recommendations. It never affects point allocation.
type BusinessContext struct {
	CompanyName string
	Industry    string
	City        string
}

// builder accumulates detailed checks and derives the category score from
// them, so the sum invariant holds by construction.
type builder struct {
	checks          map[string]bool
	issues          []string
	recommendations []string
	detailed        []DetailedCheck
}

func newBuilder() *builder {
	return &builder{checks: make(map[string]bool)}
}

// add records one check. Points are clamped into [0, maxScore]; status is
// derived from the points unless the caller already chose one.
func (b *builder) add(check DetailedCheck) {
	if check.Score < 0 {
		check.Score = 0
	}
	if check.Score > check.MaxScore {
		check.Score = check.MaxScore
	}
	if check.Status == "" {
		switch {
		case check.Score >= check.MaxScore:
			check.Status = StatusGood
		case check.Score > 0:
			check.Status = StatusPartial
		default:
			check.Status = StatusMissing
		}
	}
	b.detailed = append(b.detailed, check)
	b.checks[check.Name] = check.Score > 0
}

func (b *builder) issue(msg string) {
	b.issues = append(b.issues, msg)
}

func (b *builder) recommend(msg string) {
	b.recommendations = append(b.recommendations, msg)
}

// build sums the detailed checks into the category score, clamped to [0,100].
func (b *builder) build() CategoryScore {
	total := 0
	for _, c := range b.detailed {
		total += c.Score
	}

	cs := CategoryScore{
		Score:           clamp(total),
		Checks:          b.checks,
		Issues:          b.issues,
		Recommendations: b.recommendations,
		DetailedChecks:  b.detailed,
	}
	if cs.Issues == nil {
		cs.Issues = []string{}
	}
	if cs.Recommendations == nil {
		cs.Recommendations = []string{}
	}
	if cs.DetailedChecks == nil {
		cs.DetailedChecks = []DetailedCheck{}
	}
	return cs
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// unavailable is the degenerate CategoryScore used when the page fetch
// failed and nothing can be derived.
func unavailable(reason string) CategoryScore {
	return CategoryScore{
		Score:           0,
		Checks:          map[string]bool{},
		Issues:          []string{reason},
		Recommendations: []string{},
		DetailedChecks:  []DetailedCheck{},
	}
}
