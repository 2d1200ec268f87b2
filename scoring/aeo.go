package scoring

import (
	"fmt"

	"github.com/bizscope/backend/signals"
)

// ScoreAEO grades answer-engine / generative-engine optimization: how easily
// an AI assistant can extract, trust, and cite the page's content.
//
// Allocation: structured data 20 (10+5+5), FAQ content 15, local signals 15
// (5 each), clear answers 20 (8+7+5), expertise 15 (10+5), formatting 15
// (15 both, 8 one). Clamped to 100.
func ScoreAEO(sig signals.SignalSet, biz BusinessContext) CategoryScore {
	if !sig.Extracted {
		return unavailable("Website could not be fetched, so answer-engine optimization could not be evaluated.")
	}

	b := newBuilder()

	b.add(structuredDataCheck(sig.SchemaMarkup, b))

	// FAQ content: full credit needs both visible FAQ text and FAQPage
	// schema; either one alone earns partial credit.
	faq := DetailedCheck{
		Name:         "FAQ Content",
		MaxScore:     15,
		WhyItMatters: "FAQ content in question-and-answer form is the easiest material for answer engines to quote.",
	}
	switch {
	case sig.HasFAQ && sig.SchemaMarkup.HasFAQSchema:
		faq.Score = 15
		faq.Details = []string{"FAQ content with FAQPage schema"}
	case sig.HasFAQ || sig.SchemaMarkup.HasFAQSchema:
		faq.Score = 10
		if sig.HasFAQ {
			faq.Details = []string{"FAQ content present but not marked up with FAQPage schema"}
			faq.Recommendation = "Wrap the existing FAQ section in FAQPage schema markup."
		} else {
			faq.Details = []string{"FAQPage schema present but no visible FAQ section"}
			faq.Recommendation = "Publish the FAQ content the schema markup describes."
		}
		b.recommend(faq.Recommendation)
	default:
		faq.Details = []string{"No FAQ section found"}
		faq.Recommendation = "Add an FAQ section answering the questions customers actually ask."
		b.issue("The site has no FAQ content for answer engines to draw from.")
		b.recommend(faq.Recommendation)
	}
	b.add(faq)

	local := DetailedCheck{
		Name:         "Local Signals",
		MaxScore:     15,
		WhyItMatters: "Assistants answering \"near me\" queries need a phone number, address, and opening hours on the page.",
	}
	var missing []string
	if sig.LocalBusinessInfo.Phone != "" {
		local.Score += 5
	} else {
		missing = append(missing, "phone number")
	}
	if sig.LocalBusinessInfo.HasAddress {
		local.Score += 5
	} else {
		missing = append(missing, "address")
	}
	if sig.LocalBusinessInfo.HasHours {
		local.Score += 5
	} else {
		missing = append(missing, "business hours")
	}
	if len(missing) > 0 {
		local.Details = missing
		local.Recommendation = fmt.Sprintf("Publish your %s where crawlers can read them as text.", joinAnd(missing))
		b.issue(fmt.Sprintf("Missing local business signals: %s.", joinAnd(missing)))
		b.recommend(local.Recommendation)
	} else {
		local.Details = []string{"Phone, address, and hours all present"}
	}
	b.add(local)

	answers := DetailedCheck{
		Name:         "Clear Answers",
		MaxScore:     20,
		WhyItMatters: "Definitive statements about what you do and how are what generative engines lift into answers.",
	}
	ind := sig.AEOIndicators
	if ind.HasDefinitiveAnswers {
		answers.Score += 8
	}
	if ind.HasServiceDescriptions {
		answers.Score += 7
	}
	if ind.HasProcessExplanation {
		answers.Score += 5
	}
	if answers.Score < answers.MaxScore {
		answers.Recommendation = "Add plain-language statements of what you do, which services you offer, and how your process works."
		b.recommend(answers.Recommendation)
	}
	b.add(answers)

	expertise := DetailedCheck{
		Name:         "Expertise & Trust",
		MaxScore:     15,
		WhyItMatters: "Credentials and concrete numbers are the E-E-A-T signals engines use to decide whom to cite.",
	}
	if ind.HasExpertiseSignals {
		expertise.Score += 10
	}
	if ind.HasStatistics {
		expertise.Score += 5
	}
	if expertise.Score == 0 {
		b.issue("No expertise or trust signals (certifications, experience, statistics) found.")
		expertise.Recommendation = "Mention certifications, years of experience, and concrete results with numbers."
		b.recommend(expertise.Recommendation)
	}
	b.add(expertise)

	// Formatting: both lists and Q&A structure earn 15; exactly one earns 8.
	format := DetailedCheck{
		Name:         "Structured Formatting",
		MaxScore:     15,
		WhyItMatters: "Lists and question-shaped headings give engines clean extraction boundaries.",
	}
	switch {
	case ind.HasLists && ind.HasQAFormat:
		format.Score = 15
	case ind.HasLists || ind.HasQAFormat:
		format.Score = 8
		format.Recommendation = "Use both bulleted lists and question-style headings to structure key content."
		b.recommend(format.Recommendation)
	default:
		format.Recommendation = "Break content into bulleted lists and question-and-answer sections."
		b.issue("Content is not structured for extraction (no lists or Q&A formatting).")
		b.recommend(format.Recommendation)
	}
	b.add(format)

	return b.build()
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		out := ""
		for i, item := range items {
			switch {
			case i == 0:
				out = item
			case i == len(items)-1:
				out += ", and " + item
			default:
				out += ", " + item
			}
		}
		return out
	}
}
