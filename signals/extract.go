package signals

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bizscope/backend/fetch"
)

var (
	phoneRe      = regexp.MustCompile(`\(?\b[2-9][0-9]{2}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}\b`)
	emailRe      = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	streetRe     = regexp.MustCompile(`(?i)\b\d+\s+[a-z0-9.\- ]+\s(?:street|st|avenue|ave|road|rd|boulevard|blvd|drive|dr|lane|ln|way|court|ct|suite|ste)\b`)
	statRe       = regexp.MustCompile(`\b\d+(?:\.\d+)?%|\b\d[\d,]{2,}\+?\s+(?:customers|clients|projects|reviews|patients|installs)\b`)
	priceRe      = regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d{2})?`)
	lightColorRe   = regexp.MustCompile(`(?i)color\s*:\s*#(?:fff(?:fff)?|f[0-9a-f]f[0-9a-f]f[0-9a-f]|e[0-9a-f]e[0-9a-f]e[0-9a-f])\b`)
	questionH2Re   = regexp.MustCompile(`(?is)<h[23][^>]*>[^<]*\?\s*</h[23]>`)
	mixedContentRe = regexp.MustCompile(`(?i)(?:src|href)\s*=\s*["']http://`)
)

// pageDoc is the narrow query surface over one fetched page. It hides the
// regex/DOM mix so the scorers never touch raw HTML, and a future swap to a
// different parser stays local to this package.
type pageDoc struct {
	html  string
	lower string
	doc   *goquery.Document
}

func newPageDoc(rawHTML string) pageDoc {
	p := pageDoc{html: rawHTML, lower: strings.ToLower(rawHTML)}
	// goquery tolerates broken markup; a hard parse failure just means the
	// DOM-backed extractions degrade to their zero values.
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML)); err == nil {
		p.doc = doc
	}
	return p
}

func (p pageDoc) contains(pattern string) bool {
	return strings.Contains(p.lower, strings.ToLower(pattern))
}

func (p pageDoc) containsAny(patterns ...string) bool {
	for _, pat := range patterns {
		if p.contains(pat) {
			return true
		}
	}
	return false
}

// Extract derives the full SignalSet from one fetched page. It is pure and
// deterministic: the same RawPageData always yields the same SignalSet.
// An error-marked page yields an empty set (every detector reports absent).
func Extract(page fetch.RawPageData) SignalSet {
	if page.Failed() || page.HTML == "" {
		return SignalSet{
			Chatbot:    FeatureDetection{Providers: []string{}, Confidence: ConfidenceNone},
			VoiceAgent: FeatureDetection{Providers: []string{}, Confidence: ConfidenceNone},
			Calculator: CalculatorDetection{Types: []string{}, Confidence: ConfidenceNone},
		}
	}

	p := newPageDoc(page.HTML)

	return SignalSet{
		Extracted:         true,
		Chatbot:           detectFeature(p, chatbotRegistry),
		VoiceAgent:        detectFeature(p, voiceAgentRegistry),
		Calculator:        detectCalculator(p),
		SchemaMarkup:      extractSchemaMarkup(p),
		MetaTags:          extractMetaTags(p),
		Headings:          extractHeadings(p),
		HasFAQ:            p.containsAny("frequently asked questions", "faq"),
		LocalBusinessInfo: extractLocalBusiness(p),
		Reviews:           extractReviews(p),
		ContactInfo:       extractContactInfo(p),
		AEOIndicators:     extractAEOIndicators(p),
		Accessibility:     extractAccessibility(p),
		Security:          extractSecurity(p, page),
	}
}

func extractSecurity(p pageDoc, page fetch.RawPageData) SecuritySignals {
	ss := SecuritySignals{IsSecureTransport: page.IsSecureTransport}
	if page.Headers != nil {
		ss.HSTS = page.Headers.Get("Strict-Transport-Security")
		ss.CSP = page.Headers.Get("Content-Security-Policy")
		ss.XFrameOptions = page.Headers.Get("X-Frame-Options")
		ss.XContentTypeOptions = page.Headers.Get("X-Content-Type-Options")
		ss.ReferrerPolicy = page.Headers.Get("Referrer-Policy")
		ss.PermissionsPolicy = page.Headers.Get("Permissions-Policy")
		ss.Server = page.Headers.Get("Server")
		ss.XPoweredBy = page.Headers.Get("X-Powered-By")
	}
	if page.IsSecureTransport {
		ss.HasMixedContent = mixedContentRe.MatchString(p.html)
	}
	return ss
}

// detectFeature runs one registry against the page. Providers collect matched
// labels in registry order; a label that matched on several patterns appears
// once.
func detectFeature(p pageDoc, registry []fingerprint) FeatureDetection {
	det := FeatureDetection{Providers: []string{}, Confidence: ConfidenceNone}
	seen := make(map[string]bool)

	for _, fp := range registry {
		if !p.contains(fp.Pattern) {
			continue
		}
		det.Detected = true
		if fp.Concrete {
			det.Confidence = ConfidenceHigh
		} else if det.Confidence == ConfidenceNone {
			det.Confidence = ConfidenceMedium
		}
		if !seen[fp.Label] {
			seen[fp.Label] = true
			det.Providers = append(det.Providers, fp.Label)
		}
	}

	return det
}

func detectCalculator(p pageDoc) CalculatorDetection {
	fd := detectFeature(p, calculatorRegistry)
	return CalculatorDetection{
		Detected:   fd.Detected,
		Types:      fd.Providers,
		Confidence: fd.Confidence,
	}
}

// extractSchemaMarkup parses every JSON-LD block independently. A block that
// fails to parse is skipped; the rest are still aggregated.
func extractSchemaMarkup(p pageDoc) SchemaMarkup {
	sm := SchemaMarkup{Schemas: []string{}}
	if p.doc == nil {
		return sm
	}

	p.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var block any
		if err := json.Unmarshal([]byte(s.Text()), &block); err != nil {
			return
		}
		types := collectSchemaTypes(block)
		if len(types) == 0 {
			return
		}
		sm.Count++
		for _, t := range types {
			sm.Schemas = append(sm.Schemas, t)
			key := strings.ToLower(t)
			switch {
			case localBusinessTypes[key]:
				sm.HasLocalBusiness = true
			case faqTypes[key]:
				sm.HasFAQSchema = true
			case reviewTypes[key]:
				sm.HasReviewSchema = true
			case serviceTypes[key]:
				sm.HasServiceSchema = true
			}
		}
	})

	sm.Found = sm.Count > 0
	return sm
}

// collectSchemaTypes walks one parsed JSON-LD value and gathers every @type
// it declares. @type may be a string or an array, and entities may be nested
// under @graph or given as a top-level array.
func collectSchemaTypes(block any) []string {
	var types []string

	switch v := block.(type) {
	case []any:
		for _, item := range v {
			types = append(types, collectSchemaTypes(item)...)
		}
	case map[string]any:
		switch t := v["@type"].(type) {
		case string:
			types = append(types, t)
		case []any:
			for _, item := range t {
				if s, ok := item.(string); ok {
					types = append(types, s)
				}
			}
		}
		if graph, ok := v["@graph"].([]any); ok {
			for _, item := range graph {
				types = append(types, collectSchemaTypes(item)...)
			}
		}
	}

	return types
}

func extractMetaTags(p pageDoc) MetaTags {
	var mt MetaTags
	if p.doc == nil {
		return mt
	}

	mt.Title = strings.TrimSpace(p.doc.Find("title").First().Text())
	mt.Description, _ = p.doc.Find(`meta[name="description"]`).First().Attr("content")
	mt.OGTitle, _ = p.doc.Find(`meta[property="og:title"]`).First().Attr("content")
	mt.OGDescription, _ = p.doc.Find(`meta[property="og:description"]`).First().Attr("content")
	mt.Canonical, _ = p.doc.Find(`link[rel="canonical"]`).First().Attr("href")
	mt.Robots, _ = p.doc.Find(`meta[name="robots"]`).First().Attr("content")

	mt.Description = strings.TrimSpace(mt.Description)
	mt.OGTitle = strings.TrimSpace(mt.OGTitle)
	mt.OGDescription = strings.TrimSpace(mt.OGDescription)
	mt.Canonical = strings.TrimSpace(mt.Canonical)
	mt.Robots = strings.TrimSpace(mt.Robots)
	return mt
}

func extractHeadings(p pageDoc) Headings {
	h := Headings{H1: []string{}, H2: []string{}, H3: []string{}}
	if p.doc == nil {
		return h
	}

	collect := func(selector string) []string {
		out := []string{}
		p.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				out = append(out, text)
			}
		})
		return out
	}

	h.H1 = collect("h1")
	h.H2 = collect("h2")
	h.H3 = collect("h3")
	return h
}

func extractLocalBusiness(p pageDoc) LocalBusinessInfo {
	return LocalBusinessInfo{
		Phone:      phoneRe.FindString(p.html),
		HasAddress: p.contains("address") || streetRe.MatchString(p.html),
		HasHours:   p.containsAny("hours", "open ", "schedule"),
	}
}

func extractReviews(p pageDoc) Reviews {
	return Reviews{
		Detected:      p.containsAny("testimonial", "review", "rated "),
		HasStarRating: p.containsAny("star-rating", "★", "aria-label=\"rating", "stars"),
	}
}

func extractContactInfo(p pageDoc) ContactInfo {
	ci := ContactInfo{
		HasClickToCall: p.contains(`href="tel:`),
		HasEmail:       emailRe.MatchString(p.html),
	}

	if p.doc != nil {
		p.doc.Find("form").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			formHTML, err := goquery.OuterHtml(s)
			if err != nil {
				return true
			}
			lower := strings.ToLower(formHTML)
			if strings.Contains(lower, "contact") || strings.Contains(lower, `type="email"`) {
				ci.HasContactForm = true
				return false
			}
			return true
		})

		if header := p.doc.Find("header").First(); header.Length() > 0 {
			ci.HasPhoneInHeader = phoneRe.MatchString(header.Text())
		}
	}

	// Pages without a <header> element still get credit for a phone number
	// near the top of the document.
	if !ci.HasPhoneInHeader {
		top := p.html
		if cut := len(top) * 15 / 100; cut < len(top) {
			top = top[:cut]
		}
		ci.HasPhoneInHeader = phoneRe.MatchString(top)
	}

	return ci
}

func extractAEOIndicators(p pageDoc) AEOIndicators {
	return AEOIndicators{
		HasDefinitiveAnswers:   p.containsAny("what is", "how to", "the answer", "in short", "simply put"),
		HasServiceDescriptions: p.containsAny("we offer", "our services", "we provide", "we specialize"),
		HasProcessExplanation:  p.containsAny("step 1", "our process", "how it works", "step-by-step"),
		HasExpertiseSignals:    p.containsAny("years of experience", "certified", "licensed", "award-winning", "expert"),
		HasStatistics:          statRe.MatchString(p.html),
		HasLists:               p.containsAny("<ul", "<ol"),
		HasQAFormat:            questionH2Re.MatchString(p.html) || p.containsAny("q&a", "question:"),
		HasComparisons:         p.containsAny(" vs ", " vs.", "compared to", "comparison"),
		HasPricingInfo:         priceRe.MatchString(p.html) || p.containsAny("pricing", "our rates"),
		HasGuarantees:          p.containsAny("guarantee", "warranty", "money back"),
	}
}

func extractAccessibility(p pageDoc) AccessibilitySignals {
	as := AccessibilitySignals{
		HasSkipLink:        p.containsAny("skip to content", "skip to main", "skip-nav", `href="#main`),
		HasAriaLandmarks:   p.containsAny("<main", "<nav", `role="main"`, `role="navigation"`, `role="banner"`),
		HasLightTextColors: lightColorRe.MatchString(p.html),
		HasFocusStyles:     p.contains(":focus"),
	}

	if p.doc == nil {
		return as
	}

	imgs := p.doc.Find("img")
	as.TotalImages = imgs.Length()
	imgs.Each(func(_ int, s *goquery.Selection) {
		if alt, exists := s.Attr("alt"); exists && strings.TrimSpace(alt) != "" {
			as.ImagesWithAlt++
		}
	})

	as.HasForms = p.doc.Find("form").Length() > 0
	if as.HasForms {
		as.HasFormLabels = p.doc.Find("label").Length() > 0 ||
			p.doc.Find("input[aria-label], textarea[aria-label]").Length() > 0
	}

	if _, exists := p.doc.Find("html").First().Attr("lang"); exists {
		as.HasLangAttribute = true
	}

	return as
}

// AltTextRatio returns the share of images carrying alt text, treating a
// page with no images as fully compliant.
func (a AccessibilitySignals) AltTextRatio() float64 {
	if a.TotalImages == 0 {
		return 1.0
	}
	return float64(a.ImagesWithAlt) / float64(a.TotalImages)
}
