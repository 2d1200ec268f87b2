package scoring

import (
	"strings"

	"github.com/bizscope/backend/signals"
)

// ScoreSecurity grades transport security and response-header hygiene.
//
// Allocation (sums to 100): HTTPS 25, HSTS 15, CSP 15, clickjacking
// protection 10, MIME-sniffing protection 10, referrer policy 5,
// permissions policy 5, no mixed content 10, server-info non-disclosure 5.
func ScoreSecurity(sig signals.SignalSet) CategoryScore {
	if !sig.Extracted {
		return unavailable("Website could not be fetched, so security headers could not be evaluated.")
	}

	b := newBuilder()
	sec := sig.Security

	https := DetailedCheck{
		Name:         "HTTPS",
		MaxScore:     25,
		WhyItMatters: "Everything else assumes an encrypted transport; without it, traffic can be read and altered in transit.",
	}
	if sec.IsSecureTransport {
		https.Score = 25
	} else {
		https.Details = []string{"Site served over plain HTTP"}
		https.Recommendation = "Install a TLS certificate and redirect all HTTP traffic to HTTPS."
		b.issue("The site is served over unencrypted HTTP.")
		b.recommend(https.Recommendation)
	}
	b.add(https)

	hsts := DetailedCheck{
		Name:         "HSTS",
		MaxScore:     15,
		WhyItMatters: "Strict-Transport-Security stops browsers from ever downgrading to HTTP.",
	}
	if sec.HSTS != "" {
		hsts.Score = 15
	} else {
		hsts.Details = []string{"Strict-Transport-Security header missing"}
		hsts.Recommendation = "Add a Strict-Transport-Security header with a max-age of at least one year."
		b.issue("No HSTS header is set.")
		b.recommend(hsts.Recommendation)
	}
	b.add(hsts)

	// A CSP carrying unsafe-inline or unsafe-eval still mitigates some
	// injection classes, so it earns partial credit rather than full.
	csp := DetailedCheck{
		Name:         "Content Security Policy",
		MaxScore:     15,
		WhyItMatters: "CSP is the main defense-in-depth control against injected scripts.",
	}
	switch cspValue := strings.ToLower(sec.CSP); {
	case cspValue == "":
		csp.Details = []string{"Content-Security-Policy header missing"}
		csp.Recommendation = "Add a Content-Security-Policy header restricting script sources."
		b.issue("No Content-Security-Policy header is set.")
		b.recommend(csp.Recommendation)
	case strings.Contains(cspValue, "unsafe-inline") || strings.Contains(cspValue, "unsafe-eval"):
		csp.Score = 8
		csp.Status = StatusPartial
		csp.Details = []string{"CSP present but allows unsafe-inline or unsafe-eval"}
		csp.Recommendation = "Tighten the CSP by removing unsafe-inline and unsafe-eval."
		b.recommend(csp.Recommendation)
	default:
		csp.Score = 15
	}
	b.add(csp)

	clickjack := DetailedCheck{
		Name:         "Clickjacking Protection",
		MaxScore:     10,
		WhyItMatters: "Frame controls stop other sites from overlaying your pages in invisible iframes.",
	}
	if sec.XFrameOptions != "" || strings.Contains(strings.ToLower(sec.CSP), "frame-ancestors") {
		clickjack.Score = 10
	} else {
		clickjack.Details = []string{"Neither X-Frame-Options nor frame-ancestors set"}
		clickjack.Recommendation = "Add X-Frame-Options: DENY or a frame-ancestors CSP directive."
		b.issue("The site has no clickjacking protection.")
		b.recommend(clickjack.Recommendation)
	}
	b.add(clickjack)

	mime := DetailedCheck{
		Name:         "MIME Sniffing Protection",
		MaxScore:     10,
		WhyItMatters: "nosniff stops browsers from reinterpreting uploads as executable content.",
	}
	if sec.XContentTypeOptions != "" {
		mime.Score = 10
	} else {
		mime.Details = []string{"X-Content-Type-Options header missing"}
		mime.Recommendation = "Add X-Content-Type-Options: nosniff."
		b.recommend(mime.Recommendation)
	}
	b.add(mime)

	referrer := DetailedCheck{
		Name:     "Referrer Policy",
		MaxScore: 5,
	}
	if sec.ReferrerPolicy != "" {
		referrer.Score = 5
	} else {
		referrer.Details = []string{"Referrer-Policy header missing"}
		referrer.Recommendation = "Add a Referrer-Policy header (e.g. strict-origin-when-cross-origin)."
		b.recommend(referrer.Recommendation)
	}
	b.add(referrer)

	permissions := DetailedCheck{
		Name:     "Permissions Policy",
		MaxScore: 5,
	}
	if sec.PermissionsPolicy != "" {
		permissions.Score = 5
	} else {
		permissions.Details = []string{"Permissions-Policy header missing"}
		permissions.Recommendation = "Add a Permissions-Policy header disabling unused browser features."
		b.recommend(permissions.Recommendation)
	}
	b.add(permissions)

	// Mixed content only applies to HTTPS origins; an HTTP site cannot earn
	// the point but is not additionally penalized here.
	mixed := DetailedCheck{
		Name:         "No Mixed Content",
		MaxScore:     10,
		WhyItMatters: "A single http:// resource on an HTTPS page breaks the padlock and can be tampered with.",
	}
	switch {
	case !sec.IsSecureTransport:
		mixed.Details = []string{"Not applicable: site is not served over HTTPS"}
	case sec.HasMixedContent:
		mixed.Details = []string{"Page references http:// resources"}
		mixed.Recommendation = "Load all scripts, styles, and images over HTTPS."
		b.issue("The page loads mixed (insecure) content.")
		b.recommend(mixed.Recommendation)
	default:
		mixed.Score = 10
	}
	b.add(mixed)

	serverInfo := DetailedCheck{
		Name:     "Server Info Disclosure",
		MaxScore: 5,
	}
	if disclosesServerInfo(sec) {
		serverInfo.Details = []string{"Server or X-Powered-By header reveals software details"}
		serverInfo.Recommendation = "Strip version details from the Server header and remove X-Powered-By."
		b.recommend(serverInfo.Recommendation)
	} else {
		serverInfo.Score = 5
	}
	b.add(serverInfo)

	return b.build()
}

// disclosesServerInfo reports whether the response advertises its software
// stack. A bare product name is tolerated; versions and X-Powered-By are not.
func disclosesServerInfo(sec signals.SecuritySignals) bool {
	if sec.XPoweredBy != "" {
		return true
	}
	return strings.ContainsAny(sec.Server, "0123456789")
}

// SecurityGrade maps a security score to its letter grade.
func SecurityGrade(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}
