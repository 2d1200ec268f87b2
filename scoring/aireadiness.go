package scoring

import (
	"fmt"
	"strings"

	"github.com/bizscope/backend/signals"
)

// ScoreAIReadiness grades how ready a business site is for AI-driven
// customer interaction: chat, voice, self-service tooling, and the
// structured data that lets assistants understand the business.
//
// Allocation: chatbot 30, voice agent 25, calculator 25, structured data
// 10 (+5 LocalBusiness, +5 FAQPage). Clamped to 100.
func ScoreAIReadiness(sig signals.SignalSet, biz BusinessContext) CategoryScore {
	if !sig.Extracted {
		return unavailable("Website could not be fetched, so AI readiness could not be evaluated.")
	}

	b := newBuilder()
	industry := industryLabel(biz)

	chatbot := DetailedCheck{
		Name:         "AI Chatbot",
		MaxScore:     30,
		WhyItMatters: "A chatbot answers visitor questions instantly, around the clock, and captures leads you would otherwise lose.",
	}
	if sig.Chatbot.Detected {
		chatbot.Score = 30
		chatbot.Details = []string{fmt.Sprintf("Detected: %s", strings.Join(sig.Chatbot.Providers, ", "))}
	} else {
		chatbot.Details = []string{"No chat widget detected"}
		chatbot.Recommendation = fmt.Sprintf("Add a live chat or AI chatbot so %s visitors can get answers without calling.", industry)
		b.issue("No AI chatbot or live chat widget found on the site.")
		b.recommend(chatbot.Recommendation)
	}
	b.add(chatbot)

	voice := DetailedCheck{
		Name:         "Voice Agent",
		MaxScore:     25,
		WhyItMatters: "Voice AI answers calls that would otherwise go to voicemail, booking appointments while you work.",
	}
	if sig.VoiceAgent.Detected {
		voice.Score = 25
		voice.Details = []string{fmt.Sprintf("Detected: %s", strings.Join(sig.VoiceAgent.Providers, ", "))}
	} else {
		voice.Details = []string{"No voice agent integration detected"}
		voice.Recommendation = "Consider an AI voice agent to handle after-hours and overflow calls."
		b.issue("No AI voice agent detected.")
		b.recommend(voice.Recommendation)
	}
	b.add(voice)

	calc := DetailedCheck{
		Name:         "Interactive Calculator",
		MaxScore:     25,
		WhyItMatters: "Instant estimates keep price-shoppers on your site instead of a competitor's.",
	}
	if sig.Calculator.Detected {
		calc.Score = 25
		calc.Details = []string{fmt.Sprintf("Detected: %s (confidence: %s)", strings.Join(sig.Calculator.Types, ", "), sig.Calculator.Confidence)}
	} else {
		calc.Details = []string{"No pricing or quote calculator detected"}
		calc.Recommendation = fmt.Sprintf("Add an instant quote or pricing calculator for %s services.", industry)
		b.issue("No interactive pricing or quote calculator found.")
		b.recommend(calc.Recommendation)
	}
	b.add(calc)

	b.add(structuredDataCheck(sig.SchemaMarkup, b))

	return b.build()
}

// structuredDataCheck is shared between the AI-readiness and AEO scorers:
// 10 points for any valid JSON-LD, +5 for LocalBusiness, +5 for FAQPage.
func structuredDataCheck(sm signals.SchemaMarkup, b *builder) DetailedCheck {
	check := DetailedCheck{
		Name:         "Structured Data",
		MaxScore:     20,
		WhyItMatters: "Schema markup is how search engines and AI assistants read facts about your business directly.",
	}

	if !sm.Found {
		check.Details = []string{"No JSON-LD structured data found"}
		check.Recommendation = "Add LocalBusiness and FAQPage schema markup to the home page."
		b.issue("The site has no structured data (schema markup).")
		b.recommend(check.Recommendation)
		return check
	}

	check.Score = 10
	check.Details = []string{fmt.Sprintf("%d structured data block(s): %s", sm.Count, strings.Join(sm.Schemas, ", "))}
	if sm.HasLocalBusiness {
		check.Score += 5
	} else {
		b.recommend("Add LocalBusiness schema so AI assistants can cite your hours, address, and phone number.")
	}
	if sm.HasFAQSchema {
		check.Score += 5
	} else {
		b.recommend("Add FAQPage schema so your answers are eligible for AI-generated responses.")
	}

	return check
}

func industryLabel(biz BusinessContext) string {
	if biz.Industry != "" {
		return biz.Industry
	}
	return "your"
}
