package insights

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/solywsh/chatgpt"

	"github.com/bizscope/backend/scoring"
	"github.com/bizscope/backend/signals"
)

// ChatClient is the slice of the generative client the producer needs.
// Satisfied by *chatgpt.ChatGPT; tests substitute a mock.
type ChatClient interface {
	Chat(question string) (string, error)
}

// Producer turns a scored analysis into owner-facing narrative insights.
// The generative client is constructed once and injected; the producer never
// reads credentials or process-wide state itself.
type Producer struct {
	chat ChatClient
}

// NewProducer builds a Producer backed by the ChatGPT API. An empty API key
// returns a producer that always falls back deterministically.
func NewProducer(apiKey string, timeout time.Duration) *Producer {
	if apiKey == "" {
		return &Producer{}
	}
	return &Producer{chat: chatgpt.New(apiKey, "", timeout)}
}

// NewProducerWithClient wires an explicit client, used by tests.
func NewProducerWithClient(chat ChatClient) *Producer {
	return &Producer{chat: chat}
}

// Generate asks the model for insights and validates the response against
// the strict schema. Any failure - client missing, transport error, non-JSON
// reply, schema violation - yields the deterministic fallback instead.
func (p *Producer) Generate(analysis scoring.Analysis, sig signals.SignalSet, biz scoring.BusinessContext) Report {
	if p.chat == nil {
		return Fallback(analysis, biz)
	}

	answer, err := p.chat.Chat(buildPrompt(analysis, sig, biz))
	if err != nil {
		log.Printf("insight generation failed, using fallback: %v", err)
		return Fallback(analysis, biz)
	}

	report, err := parseReport(answer)
	if err != nil {
		log.Printf("insight response rejected, using fallback: %v", err)
		return Fallback(analysis, biz)
	}

	report.Generated = true
	return report
}

// parseReport extracts and validates the JSON object from a model reply,
// tolerating surrounding prose and markdown code fences.
func parseReport(answer string) (Report, error) {
	start := strings.Index(answer, "{")
	end := strings.LastIndex(answer, "}")
	if start < 0 || end <= start {
		return Report{}, fmt.Errorf("insights: no JSON object in response")
	}

	var report Report
	if err := json.Unmarshal([]byte(answer[start:end+1]), &report); err != nil {
		return Report{}, fmt.Errorf("insights: invalid JSON: %w", err)
	}
	if err := report.validate(); err != nil {
		return Report{}, err
	}
	return report, nil
}

func buildPrompt(analysis scoring.Analysis, sig signals.SignalSet, biz scoring.BusinessContext) string {
	var sb strings.Builder

	sb.WriteString("You are a digital-presence consultant for local businesses. ")
	fmt.Fprintf(&sb, "Analyze this website audit for %s", orDefault(biz.CompanyName, "a local business"))
	if biz.Industry != "" {
		fmt.Fprintf(&sb, ", a %s business", biz.Industry)
	}
	if biz.City != "" {
		fmt.Fprintf(&sb, " in %s", biz.City)
	}
	sb.WriteString(".\n\nScores out of 100:\n")
	fmt.Fprintf(&sb, "- AI readiness: %d\n", analysis.AIReadiness.Score)
	fmt.Fprintf(&sb, "- Answer engine optimization: %d\n", analysis.AEO.Score)
	fmt.Fprintf(&sb, "- SEO: %d\n", analysis.SEO.Score)
	fmt.Fprintf(&sb, "- Security: %d (grade %s)\n", analysis.Security.Score, analysis.SecurityGrade)
	fmt.Fprintf(&sb, "- Accessibility: %d\n", analysis.Accessibility.Score)

	sb.WriteString("\nDetected features:\n")
	fmt.Fprintf(&sb, "- Chatbot: %v %v\n", sig.Chatbot.Detected, sig.Chatbot.Providers)
	fmt.Fprintf(&sb, "- Voice agent: %v %v\n", sig.VoiceAgent.Detected, sig.VoiceAgent.Providers)
	fmt.Fprintf(&sb, "- Calculator: %v %v\n", sig.Calculator.Detected, sig.Calculator.Types)
	fmt.Fprintf(&sb, "- Structured data: %v %v\n", sig.SchemaMarkup.Found, sig.SchemaMarkup.Schemas)

	sb.WriteString("\nOutstanding issues:\n")
	for _, cat := range []scoring.CategoryScore{analysis.AIReadiness, analysis.AEO, analysis.SEO, analysis.Security, analysis.Accessibility} {
		for _, issue := range cat.Issues {
			fmt.Fprintf(&sb, "- %s\n", issue)
		}
	}

	sb.WriteString(`
Respond with ONLY a JSON object, no other text, in exactly this shape:
{
  "executiveSummary": "two to three sentences for the owner",
  "topIssues": [{"title": "...", "impact": "high|medium|low", "description": "..."}],
  "quickWins": [{"title": "...", "description": "...", "timeEstimate": "e.g. 1-2 hours"}],
  "industryInsight": "one paragraph on what this means in their industry",
  "llmRecommendation": "the single highest-leverage next step"
}`)

	return sb.String()
}

func orDefault(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
