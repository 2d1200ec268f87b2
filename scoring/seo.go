package scoring

import (
	"fmt"

	"github.com/bizscope/backend/fetch"
	"github.com/bizscope/backend/signals"
)

// ScoreSEO grades classic on-page search optimization.
//
// Allocation: title 15 (10 present, +5 for 30-60 chars), description 15
// (10, +5 for 120-160 chars), H1 15 (exactly one), structured data 15,
// HTTPS 10, canonical 10, mobile lab score >= 0.5 for 10, Open Graph 10.
func ScoreSEO(sig signals.SignalSet, mobile *fetch.PerformanceReport, biz BusinessContext) CategoryScore {
	if !sig.Extracted {
		return unavailable("Website could not be fetched, so SEO could not be evaluated.")
	}

	b := newBuilder()

	title := DetailedCheck{
		Name:         "Title Tag",
		MaxScore:     15,
		WhyItMatters: "The title tag is the headline of your search result.",
	}
	titleLen := len(sig.MetaTags.Title)
	switch {
	case titleLen == 0:
		title.Details = []string{"No title tag found"}
		title.Recommendation = "Add a descriptive title tag of 30-60 characters."
		b.issue("The page has no title tag.")
		b.recommend(title.Recommendation)
	case titleLen >= 30 && titleLen <= 60:
		title.Score = 15
		title.Details = []string{fmt.Sprintf("Title present, %d characters", titleLen)}
	default:
		title.Score = 10
		title.Details = []string{fmt.Sprintf("Title present but %d characters (ideal is 30-60)", titleLen)}
		title.Recommendation = "Adjust the title tag length to 30-60 characters."
		b.recommend(title.Recommendation)
	}
	b.add(title)

	desc := DetailedCheck{
		Name:         "Meta Description",
		MaxScore:     15,
		WhyItMatters: "The meta description is your one chance to pitch the click.",
	}
	descLen := len(sig.MetaTags.Description)
	switch {
	case descLen == 0:
		desc.Details = []string{"No meta description found"}
		desc.Recommendation = "Add a meta description of 120-160 characters."
		b.issue("The page has no meta description.")
		b.recommend(desc.Recommendation)
	case descLen >= 120 && descLen <= 160:
		desc.Score = 15
		desc.Details = []string{fmt.Sprintf("Description present, %d characters", descLen)}
	default:
		desc.Score = 10
		desc.Details = []string{fmt.Sprintf("Description present but %d characters (ideal is 120-160)", descLen)}
		desc.Recommendation = "Adjust the meta description length to 120-160 characters."
		b.recommend(desc.Recommendation)
	}
	b.add(desc)

	h1 := DetailedCheck{
		Name:         "H1 Heading",
		MaxScore:     15,
		WhyItMatters: "A single clear H1 tells engines what the page is about.",
	}
	switch h1Count := len(sig.Headings.H1); {
	case h1Count == 1:
		h1.Score = 15
		h1.Details = []string{fmt.Sprintf("One H1: %q", sig.Headings.H1[0])}
	case h1Count > 1:
		h1.Score = 5
		h1.Status = StatusPartial
		h1.Details = []string{fmt.Sprintf("%d H1 headings found", h1Count)}
		h1.Recommendation = "Keep exactly one H1 per page; demote the others to H2."
		b.issue(fmt.Sprintf("The page has %d H1 headings; it should have exactly one.", h1Count))
		b.recommend(h1.Recommendation)
	default:
		h1.Details = []string{"No H1 heading found"}
		h1.Recommendation = "Add one H1 heading naming your primary service and location."
		b.issue("The page has no H1 heading.")
		b.recommend(h1.Recommendation)
	}
	b.add(h1)

	schema := DetailedCheck{
		Name:         "Structured Data",
		MaxScore:     15,
		WhyItMatters: "Schema markup unlocks rich results and knowledge panels.",
	}
	if sig.SchemaMarkup.Found {
		schema.Score = 15
		schema.Details = []string{fmt.Sprintf("%d structured data block(s)", sig.SchemaMarkup.Count)}
	} else {
		schema.Details = []string{"No structured data found"}
		schema.Recommendation = "Add JSON-LD schema markup for your business."
		b.recommend(schema.Recommendation)
	}
	b.add(schema)

	https := DetailedCheck{
		Name:         "HTTPS",
		MaxScore:     10,
		WhyItMatters: "HTTPS is a confirmed ranking signal and a trust baseline.",
	}
	if sig.Security.IsSecureTransport {
		https.Score = 10
	} else {
		https.Details = []string{"Page served over plain HTTP"}
		https.Recommendation = "Serve the site over HTTPS."
		b.issue("The site is not served over HTTPS.")
		b.recommend(https.Recommendation)
	}
	b.add(https)

	canonical := DetailedCheck{
		Name:         "Canonical URL",
		MaxScore:     10,
		WhyItMatters: "A canonical link prevents duplicate-content dilution.",
	}
	if sig.MetaTags.Canonical != "" {
		canonical.Score = 10
	} else {
		canonical.Details = []string{"No canonical link found"}
		canonical.Recommendation = "Add a rel=canonical link to the page head."
		b.recommend(canonical.Recommendation)
	}
	b.add(canonical)

	mobilePerf := DetailedCheck{
		Name:         "Mobile Performance",
		MaxScore:     10,
		WhyItMatters: "Mobile page speed feeds directly into mobile-first ranking.",
	}
	switch {
	case mobile == nil || mobile.Score == nil:
		mobilePerf.Details = []string{"Mobile lab data unavailable"}
	case *mobile.Score >= 0.5:
		mobilePerf.Score = 10
		mobilePerf.Details = []string{fmt.Sprintf("Mobile performance score %.0f/100", *mobile.Score*100)}
	default:
		mobilePerf.Details = []string{fmt.Sprintf("Mobile performance score %.0f/100", *mobile.Score*100)}
		mobilePerf.Recommendation = "Improve mobile load performance (optimize images, reduce scripts)."
		b.issue("Mobile performance is below the acceptable threshold.")
		b.recommend(mobilePerf.Recommendation)
	}
	b.add(mobilePerf)

	og := DetailedCheck{
		Name:         "Open Graph",
		MaxScore:     10,
		WhyItMatters: "Open Graph tags control how the page looks when shared or previewed.",
	}
	hasOGTitle := sig.MetaTags.OGTitle != ""
	hasOGDesc := sig.MetaTags.OGDescription != ""
	switch {
	case hasOGTitle && hasOGDesc:
		og.Score = 10
	case hasOGTitle || hasOGDesc:
		og.Score = 5
		og.Details = []string{"Only one of og:title / og:description present"}
		og.Recommendation = "Add both og:title and og:description tags."
		b.recommend(og.Recommendation)
	default:
		og.Details = []string{"No Open Graph tags found"}
		og.Recommendation = "Add Open Graph title and description tags."
		b.recommend(og.Recommendation)
	}
	b.add(og)

	return b.build()
}
