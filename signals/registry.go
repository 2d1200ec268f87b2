package signals

// fingerprint is one (label, pattern) pair in a detector registry. Pattern is
// matched case-insensitively as a substring of the raw HTML. Concrete marks
// loader-script/global-object fingerprints; a concrete match grades the
// detection "high", a loose match only "medium". Adding a vendor is a data
// change, not a code change.
type fingerprint struct {
	Label    string
	Pattern  string
	Concrete bool
}

// chatbotRegistry identifies chat-widget vendors by their loader scripts and
// injected globals rather than by keyword mentions, to bound false positives.
var chatbotRegistry = []fingerprint{
	{Label: "Intercom", Pattern: "widget.intercom.io", Concrete: true},
	{Label: "Intercom", Pattern: "window.intercomsettings", Concrete: true},
	{Label: "Drift", Pattern: "js.driftt.com", Concrete: true},
	{Label: "Zendesk Chat", Pattern: "static.zdassets.com", Concrete: true},
	{Label: "Zendesk Chat", Pattern: "zopim", Concrete: true},
	{Label: "Tawk.to", Pattern: "embed.tawk.to", Concrete: true},
	{Label: "LiveChat", Pattern: "cdn.livechatinc.com", Concrete: true},
	{Label: "HubSpot Chat", Pattern: "js.hs-scripts.com", Concrete: true},
	{Label: "Crisp", Pattern: "client.crisp.chat", Concrete: true},
	{Label: "Crisp", Pattern: "$crisp", Concrete: true},
	{Label: "Tidio", Pattern: "code.tidio.co", Concrete: true},
	{Label: "Freshchat", Pattern: "wchat.freshchat.com", Concrete: true},
	{Label: "Olark", Pattern: "static.olark.com", Concrete: true},
	{Label: "Chatbot Widget", Pattern: "chat-widget", Concrete: false},
	{Label: "Chatbot Widget", Pattern: "chatbot", Concrete: false},
}

// voiceAgentRegistry identifies embedded voice/phone AI agents.
var voiceAgentRegistry = []fingerprint{
	{Label: "ElevenLabs", Pattern: "elevenlabs-convai", Concrete: true},
	{Label: "ElevenLabs", Pattern: "elevenlabs.io/convai", Concrete: true},
	{Label: "Vapi", Pattern: "vapi.ai", Concrete: true},
	{Label: "Vapi", Pattern: "vapisdk", Concrete: true},
	{Label: "Retell", Pattern: "retellai.com", Concrete: true},
	{Label: "Retell", Pattern: "retell-client", Concrete: true},
	{Label: "Bland", Pattern: "chat.bland.ai", Concrete: true},
	{Label: "Synthflow", Pattern: "synthflow.ai", Concrete: true},
	{Label: "Play.ai", Pattern: "play.ai/agent", Concrete: true},
	{Label: "Voice Agent", Pattern: "voice-agent", Concrete: false},
	{Label: "Voice Agent", Pattern: "voice assistant", Concrete: false},
}

// calculatorRegistry mixes embed vendors (concrete) with generic markup
// conventions (loose). Labels name the calculator type exposed to callers.
var calculatorRegistry = []fingerprint{
	{Label: "Calconic", Pattern: "calconic.com", Concrete: true},
	{Label: "Outgrow", Pattern: "outgrow.co", Concrete: true},
	{Label: "Involve.me", Pattern: "involve.me/embed", Concrete: true},
	{Label: "ConvertCalculator", Pattern: "convertcalculator.co", Concrete: true},
	{Label: "uCalc", Pattern: "ucalc.pro", Concrete: true},
	{Label: "Pricing Calculator", Pattern: "pricing-calculator", Concrete: false},
	{Label: "Quote Calculator", Pattern: "quote-calculator", Concrete: false},
	{Label: "Cost Estimator", Pattern: "cost-estimator", Concrete: false},
	{Label: "Loan Calculator", Pattern: "loan-calculator", Concrete: false},
	{Label: "ROI Calculator", Pattern: "roi-calculator", Concrete: false},
	{Label: "Calculator", Pattern: `class="calculator`, Concrete: false},
	{Label: "Calculator", Pattern: `id="calculator`, Concrete: false},
}

// schema.org type-name sets for the aggregate structured-data flags.
var (
	localBusinessTypes = map[string]bool{
		"localbusiness":        true,
		"restaurant":           true,
		"store":                true,
		"professionalservice":  true,
		"medicalorganization":  true,
		"legalservice":         true,
		"homeandconstructionbusiness": true,
		"autorepair":           true,
		"dentist":              true,
		"plumber":              true,
		"electrician":          true,
		"realestateagent":      true,
	}
	faqTypes = map[string]bool{
		"faqpage": true,
	}
	reviewTypes = map[string]bool{
		"review":          true,
		"aggregaterating": true,
	}
	serviceTypes = map[string]bool{
		"service": true,
		"offer":   true,
	}
)
