package signals

// Confidence grades how a detection was made: "high" when a concrete
// loader-script or global-object fingerprint matched, "medium" when only a
// looser structural pattern matched, "none" otherwise.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceNone   Confidence = "none"
)

// FeatureDetection is the outcome of running one detector registry.
type FeatureDetection struct {
	Detected   bool       `json:"detected"`
	Providers  []string   `json:"providers"`
	Confidence Confidence `json:"confidence"`
}

// CalculatorDetection mirrors FeatureDetection for interactive calculators,
// where the matched labels describe calculator types rather than vendors.
type CalculatorDetection struct {
	Detected   bool       `json:"detected"`
	Types      []string   `json:"types"`
	Confidence Confidence `json:"confidence"`
}

// SchemaMarkup summarizes the page's JSON-LD structured data.
type SchemaMarkup struct {
	Found            bool     `json:"found"`
	Count            int      `json:"count"`
	Schemas          []string `json:"schemas"`
	HasLocalBusiness bool     `json:"hasLocalBusiness"`
	HasFAQSchema     bool     `json:"hasFAQSchema"`
	HasReviewSchema  bool     `json:"hasReviewSchema"`
	HasServiceSchema bool     `json:"hasServiceSchema"`
}

// MetaTags holds the first match for each head-level field.
type MetaTags struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	OGTitle       string `json:"ogTitle"`
	OGDescription string `json:"ogDescription"`
	Canonical     string `json:"canonical"`
	Robots        string `json:"robots"`
}

// Headings collects trimmed heading text per level, empties dropped.
type Headings struct {
	H1 []string `json:"h1"`
	H2 []string `json:"h2"`
	H3 []string `json:"h3"`
}

// LocalBusinessInfo captures NAP-style signals (name/address/phone).
type LocalBusinessInfo struct {
	Phone      string `json:"phone"`
	HasAddress bool   `json:"hasAddress"`
	HasHours   bool   `json:"hasHours"`
}

// Reviews captures social-proof signals.
type Reviews struct {
	Detected      bool `json:"detected"`
	HasStarRating bool `json:"hasStarRating"`
}

// ContactInfo captures independent contact predicates.
type ContactInfo struct {
	HasPhoneInHeader bool `json:"hasPhoneInHeader"`
	HasClickToCall   bool `json:"hasClickToCall"`
	HasContactForm   bool `json:"hasContactForm"`
	HasEmail         bool `json:"hasEmail"`
}

// AEOIndicators are the ten content-shape flags the answer-engine scorer
// reads. Each is an independent keyword/pattern heuristic.
type AEOIndicators struct {
	HasDefinitiveAnswers   bool `json:"hasDefinitiveAnswers"`
	HasServiceDescriptions bool `json:"hasServiceDescriptions"`
	HasProcessExplanation  bool `json:"hasProcessExplanation"`
	HasExpertiseSignals    bool `json:"hasExpertiseSignals"`
	HasStatistics          bool `json:"hasStatistics"`
	HasLists               bool `json:"hasLists"`
	HasQAFormat            bool `json:"hasQAFormat"`
	HasComparisons         bool `json:"hasComparisons"`
	HasPricingInfo         bool `json:"hasPricingInfo"`
	HasGuarantees          bool `json:"hasGuarantees"`
}

// AccessibilitySignals are the static-HTML inputs to the accessibility
// scorer. Lab sub-scores arrive separately through the performance report.
type AccessibilitySignals struct {
	TotalImages        int  `json:"totalImages"`
	ImagesWithAlt      int  `json:"imagesWithAlt"`
	HasFormLabels      bool `json:"hasFormLabels"`
	HasForms           bool `json:"hasForms"`
	HasSkipLink        bool `json:"hasSkipLink"`
	HasAriaLandmarks   bool `json:"hasAriaLandmarks"`
	HasLightTextColors bool `json:"hasLightTextColors"`
	HasFocusStyles     bool `json:"hasFocusStyles"`
	HasLangAttribute   bool `json:"hasLangAttribute"`
}

// SecuritySignals carries transport security and the response headers the
// security scorer grades. Values are the raw header values, empty when the
// header was absent.
type SecuritySignals struct {
	IsSecureTransport   bool   `json:"isSecureTransport"`
	HSTS                string `json:"hsts"`
	CSP                 string `json:"csp"`
	XFrameOptions       string `json:"xFrameOptions"`
	XContentTypeOptions string `json:"xContentTypeOptions"`
	ReferrerPolicy      string `json:"referrerPolicy"`
	PermissionsPolicy   string `json:"permissionsPolicy"`
	Server              string `json:"server"`
	XPoweredBy          string `json:"xPoweredBy"`
	HasMixedContent     bool   `json:"hasMixedContent"`
}

// SignalSet is the structured summary of everything detected on one page.
// It is built once per fetched page, never mutated afterwards, and is the
// sole page-derived input to every category scorer.
type SignalSet struct {
	Extracted         bool                 `json:"extracted"`
	Chatbot           FeatureDetection     `json:"chatbot"`
	VoiceAgent        FeatureDetection     `json:"voiceAgent"`
	Calculator        CalculatorDetection  `json:"calculator"`
	SchemaMarkup      SchemaMarkup         `json:"schemaMarkup"`
	MetaTags          MetaTags             `json:"metaTags"`
	Headings          Headings             `json:"headings"`
	HasFAQ            bool                 `json:"hasFAQ"`
	LocalBusinessInfo LocalBusinessInfo    `json:"localBusinessInfo"`
	Reviews           Reviews              `json:"reviews"`
	ContactInfo       ContactInfo          `json:"contactInfo"`
	AEOIndicators     AEOIndicators        `json:"aeoIndicators"`
	Accessibility     AccessibilitySignals `json:"accessibility"`
	Security          SecuritySignals      `json:"security"`
}
