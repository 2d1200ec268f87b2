package signals

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/bizscope/backend/fetch"
)

func page(html string) fetch.RawPageData {
	return fetch.RawPageData{
		HTML:              html,
		Headers:           http.Header{},
		IsSecureTransport: true,
	}
}

func TestExtract_ErrorMarkedPage(t *testing.T) {
	sig := Extract(fetch.RawPageData{FetchErr: "connection refused"})

	if sig.Extracted {
		t.Error("Extracted = true for error-marked page, want false")
	}
	if sig.Chatbot.Detected || sig.VoiceAgent.Detected || sig.Calculator.Detected {
		t.Error("detectors reported detections on an error-marked page")
	}
	if sig.Chatbot.Confidence != ConfidenceNone {
		t.Errorf("Chatbot.Confidence = %q, want %q", sig.Chatbot.Confidence, ConfidenceNone)
	}
	if sig.SchemaMarkup.Found {
		t.Error("SchemaMarkup.Found = true on an error-marked page")
	}
}

func TestExtract_Idempotent(t *testing.T) {
	html := `<!DOCTYPE html><html lang="en"><head><title>Smith Plumbing</title>
	<script src="https://widget.intercom.io/widget/abc"></script>
	<script type="application/ld+json">{"@type":"LocalBusiness","name":"Smith Plumbing"}</script>
	</head><body><h1>Plumbing in Austin</h1><p>Call (512) 555-0134. Hours: 9-5.</p></body></html>`

	first := Extract(page(html))
	second := Extract(page(html))

	if !reflect.DeepEqual(first, second) {
		t.Error("Extract is not idempotent: two runs on identical input differ")
	}
}

func TestExtract_ChatbotLoaderFingerprint(t *testing.T) {
	html := `<html><head><script src="https://widget.intercom.io/widget/abc123"></script></head><body></body></html>`

	sig := Extract(page(html))

	if !sig.Chatbot.Detected {
		t.Fatal("Chatbot.Detected = false, want true")
	}
	if sig.Chatbot.Confidence != ConfidenceHigh {
		t.Errorf("Chatbot.Confidence = %q, want %q", sig.Chatbot.Confidence, ConfidenceHigh)
	}
	found := false
	for _, provider := range sig.Chatbot.Providers {
		if provider == "Intercom" {
			found = true
		}
	}
	if !found {
		t.Errorf("Providers = %v, want to contain Intercom", sig.Chatbot.Providers)
	}
}

func TestExtract_LooseChatbotMentionIsMediumConfidence(t *testing.T) {
	html := `<html><body><div class="chat-widget"></div></body></html>`

	sig := Extract(page(html))

	if !sig.Chatbot.Detected {
		t.Fatal("Chatbot.Detected = false, want true")
	}
	if sig.Chatbot.Confidence != ConfidenceMedium {
		t.Errorf("Chatbot.Confidence = %q, want %q", sig.Chatbot.Confidence, ConfidenceMedium)
	}
}

func TestExtract_VoiceAgent(t *testing.T) {
	html := `<html><body><elevenlabs-convai agent-id="xyz"></elevenlabs-convai></body></html>`

	sig := Extract(page(html))

	if !sig.VoiceAgent.Detected {
		t.Fatal("VoiceAgent.Detected = false, want true")
	}
	if sig.VoiceAgent.Providers[0] != "ElevenLabs" {
		t.Errorf("Providers[0] = %q, want ElevenLabs", sig.VoiceAgent.Providers[0])
	}
}

func TestExtract_CalculatorGenericMarkup(t *testing.T) {
	html := `<html><body><div id="pricing-calculator"></div></body></html>`

	sig := Extract(page(html))

	if !sig.Calculator.Detected {
		t.Fatal("Calculator.Detected = false, want true")
	}
	if sig.Calculator.Confidence != ConfidenceMedium {
		t.Errorf("Calculator.Confidence = %q, want %q", sig.Calculator.Confidence, ConfidenceMedium)
	}
	if len(sig.Calculator.Types) == 0 || sig.Calculator.Types[0] != "Pricing Calculator" {
		t.Errorf("Calculator.Types = %v, want [Pricing Calculator ...]", sig.Calculator.Types)
	}
}

func TestExtract_SchemaMarkup(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{"@type":"LocalBusiness","name":"Smith Plumbing"}</script>
	<script type="application/ld+json">{"@type":"FAQPage","mainEntity":[]}</script>
	</head><body></body></html>`

	sig := Extract(page(html))

	sm := sig.SchemaMarkup
	if !sm.Found {
		t.Fatal("SchemaMarkup.Found = false, want true")
	}
	if sm.Count != 2 {
		t.Errorf("Count = %d, want 2", sm.Count)
	}
	if !sm.HasLocalBusiness {
		t.Error("HasLocalBusiness = false, want true")
	}
	if !sm.HasFAQSchema {
		t.Error("HasFAQSchema = false, want true")
	}
}

func TestExtract_SchemaMarkup_MalformedBlockSkipped(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{not valid json</script>
	<script type="application/ld+json">{"@type":"LocalBusiness"}</script>
	</head><body></body></html>`

	sig := Extract(page(html))

	if sig.SchemaMarkup.Count != 1 {
		t.Errorf("Count = %d, want 1 (malformed block skipped)", sig.SchemaMarkup.Count)
	}
	if !sig.SchemaMarkup.HasLocalBusiness {
		t.Error("HasLocalBusiness = false, want true (valid block still processed)")
	}
}

func TestExtract_SchemaMarkup_GraphAndArrayTypes(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{"@graph":[{"@type":"LocalBusiness"},{"@type":["Service","Offer"]}]}</script>
	</head><body></body></html>`

	sig := Extract(page(html))

	if !sig.SchemaMarkup.HasLocalBusiness {
		t.Error("HasLocalBusiness = false, want true (nested in @graph)")
	}
	if !sig.SchemaMarkup.HasServiceSchema {
		t.Error("HasServiceSchema = false, want true (array @type)")
	}
}

func TestExtract_MetaAndHeadings(t *testing.T) {
	html := `<!DOCTYPE html><html><head>
	<title>  Smith Plumbing | Austin  </title>
	<meta name="description" content="Trusted plumbers in Austin.">
	<meta property="og:title" content="Smith Plumbing">
	<meta property="og:description" content="Plumbing done right.">
	<link rel="canonical" href="https://smithplumbing.com/">
	<meta name="robots" content="index,follow">
	</head><body>
	<h1>Plumbing <em>Services</em></h1>
	<h2>Water Heaters</h2><h2>  </h2><h2>Drains</h2>
	<h3>Emergency</h3>
	</body></html>`

	sig := Extract(page(html))

	if sig.MetaTags.Title != "Smith Plumbing | Austin" {
		t.Errorf("Title = %q", sig.MetaTags.Title)
	}
	if sig.MetaTags.Description != "Trusted plumbers in Austin." {
		t.Errorf("Description = %q", sig.MetaTags.Description)
	}
	if sig.MetaTags.Canonical != "https://smithplumbing.com/" {
		t.Errorf("Canonical = %q", sig.MetaTags.Canonical)
	}
	if sig.MetaTags.OGTitle == "" || sig.MetaTags.OGDescription == "" {
		t.Error("Open Graph tags not extracted")
	}
	if len(sig.Headings.H1) != 1 || sig.Headings.H1[0] != "Plumbing Services" {
		t.Errorf("H1 = %v, want [Plumbing Services] with markup stripped", sig.Headings.H1)
	}
	if len(sig.Headings.H2) != 2 {
		t.Errorf("len(H2) = %d, want 2 (empty heading dropped)", len(sig.Headings.H2))
	}
}

func TestExtract_LocalBusinessAndContact(t *testing.T) {
	html := `<html><body>
	<header>Call us: (512) 555-0134</header>
	<p>123 Main Street, Austin TX. Hours: Mon-Fri 9-5.</p>
	<a href="tel:+15125550134">Call now</a>
	<form id="contact-form"><input type="email" name="email"><label>Email</label></form>
	<p>info@smithplumbing.com</p>
	</body></html>`

	sig := Extract(page(html))

	if sig.LocalBusinessInfo.Phone == "" {
		t.Error("Phone not extracted")
	}
	if !sig.LocalBusinessInfo.HasAddress {
		t.Error("HasAddress = false, want true")
	}
	if !sig.LocalBusinessInfo.HasHours {
		t.Error("HasHours = false, want true")
	}
	if !sig.ContactInfo.HasPhoneInHeader {
		t.Error("HasPhoneInHeader = false, want true")
	}
	if !sig.ContactInfo.HasClickToCall {
		t.Error("HasClickToCall = false, want true")
	}
	if !sig.ContactInfo.HasContactForm {
		t.Error("HasContactForm = false, want true")
	}
	if !sig.ContactInfo.HasEmail {
		t.Error("HasEmail = false, want true")
	}
}

func TestExtract_AEOIndicators(t *testing.T) {
	html := `<html><body>
	<h2>What is trenchless repair?</h2>
	<p>We offer drain cleaning. Step 1: we inspect. Our certified team has 20 years of experience.</p>
	<p>98% of customers recommend us. Prices from $150. 100% satisfaction guarantee.</p>
	<ul><li>Fast</li></ul>
	<p>Trenchless vs traditional: a comparison.</p>
	</body></html>`

	sig := Extract(page(html))
	ind := sig.AEOIndicators

	for name, got := range map[string]bool{
		"HasDefinitiveAnswers":   ind.HasDefinitiveAnswers,
		"HasServiceDescriptions": ind.HasServiceDescriptions,
		"HasProcessExplanation":  ind.HasProcessExplanation,
		"HasExpertiseSignals":    ind.HasExpertiseSignals,
		"HasStatistics":          ind.HasStatistics,
		"HasLists":               ind.HasLists,
		"HasQAFormat":            ind.HasQAFormat,
		"HasComparisons":         ind.HasComparisons,
		"HasPricingInfo":         ind.HasPricingInfo,
		"HasGuarantees":          ind.HasGuarantees,
	} {
		if !got {
			t.Errorf("%s = false, want true", name)
		}
	}
}

func TestExtract_SecuritySignals(t *testing.T) {
	headers := http.Header{}
	headers.Set("Strict-Transport-Security", "max-age=31536000")
	headers.Set("Content-Security-Policy", "default-src 'self'")
	headers.Set("Server", "nginx/1.25.3")

	sig := Extract(fetch.RawPageData{
		HTML:              `<html><body><img src="http://cdn.example.com/a.png"></body></html>`,
		Headers:           headers,
		IsSecureTransport: true,
	})

	if sig.Security.HSTS == "" {
		t.Error("HSTS not captured")
	}
	if sig.Security.CSP == "" {
		t.Error("CSP not captured")
	}
	if sig.Security.Server != "nginx/1.25.3" {
		t.Errorf("Server = %q", sig.Security.Server)
	}
	if !sig.Security.HasMixedContent {
		t.Error("HasMixedContent = false, want true (http:// image on https page)")
	}
}

func TestExtract_MixedContentNotFlaggedOnHTTP(t *testing.T) {
	sig := Extract(fetch.RawPageData{
		HTML:              `<html><body><img src="http://cdn.example.com/a.png"></body></html>`,
		Headers:           http.Header{},
		IsSecureTransport: false,
	})

	if sig.Security.HasMixedContent {
		t.Error("HasMixedContent = true on an HTTP origin, want false (not applicable)")
	}
}

func TestAltTextRatio(t *testing.T) {
	tests := []struct {
		name string
		sig  AccessibilitySignals
		want float64
	}{
		{"no images", AccessibilitySignals{}, 1.0},
		{"all with alt", AccessibilitySignals{TotalImages: 4, ImagesWithAlt: 4}, 1.0},
		{"half with alt", AccessibilitySignals{TotalImages: 4, ImagesWithAlt: 2}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sig.AltTextRatio(); got != tt.want {
				t.Errorf("AltTextRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtract_AccessibilitySignals(t *testing.T) {
	html := `<html lang="en"><head><style>a:focus{outline:2px}</style></head><body>
	<a href="#main" class="skip-nav">Skip to content</a>
	<main><img src="a.png" alt="van"><img src="b.png"></main>
	<form><label for="n">Name</label><input id="n"></form>
	</body></html>`

	sig := Extract(page(html))
	as := sig.Accessibility

	if as.TotalImages != 2 || as.ImagesWithAlt != 1 {
		t.Errorf("images = %d/%d, want 1/2", as.ImagesWithAlt, as.TotalImages)
	}
	if !as.HasFormLabels {
		t.Error("HasFormLabels = false, want true")
	}
	if !as.HasSkipLink {
		t.Error("HasSkipLink = false, want true")
	}
	if !as.HasAriaLandmarks {
		t.Error("HasAriaLandmarks = false, want true")
	}
	if !as.HasFocusStyles {
		t.Error("HasFocusStyles = false, want true")
	}
	if !as.HasLangAttribute {
		t.Error("HasLangAttribute = false, want true")
	}
}
