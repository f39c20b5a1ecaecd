package usecase

// Log prefixes
const (
	LogPrefixResolve = "internal.assistant.Resolve"
	LogPrefixChat    = "internal.assistant.Chat"
)

// Resolver configuration
const (
	ResolverTemperature = 0.2
	ResolverMaxTokens   = 256

	DefaultHistorySize  = 1024
	DefaultHistoryTurns = 6

	HelpConfidence = 0.2
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "generative tier failed, falling back to keywords"
	ErrMsgEmptyResponse   = "empty LLM response"
	ErrMsgJSONParseFailed = "failed to parse LLM JSON"
)

// Role knowledge blocks injected into the prompt.
const (
	PromptPatientKnowledge = `The user is a senior patient. Their app has: a home dashboard with today's tasks and vitals, a medicines screen with dosage times and refills, a personal profile, community connections, a notifications inbox, an SOS emergency button, and reminders they can add by voice.`

	PromptGuardianKnowledge = `The user is a guardian caring for a senior patient. Their app has: a guardian dashboard, daily vitals updates, the patient's medical profile, preferences, community connections, a notifications inbox, a printable medical report, and a settings panel.`

	PromptUnityKnowledge = `The user is a community-hub member (volunteer or NGO). Their app has: community connections and a notifications inbox.`
)

// PromptResolverSystem is the JSON-only classification prompt.
// Arguments: knowledge block, role, action list, reply language, history, message.
const PromptResolverSystem = `You are Sage, the warm in-app voice assistant of a senior care application.

%s

The user's role is %q. You may only use these actions:
%s

Rules:
- Reply in %s with one short, caring sentence.
- Pick the single best action for the request, or null for small talk.
- Never use an action outside the list above.
%s
Current message: %q

Return JSON only, with this format:
{
  "reply": "string",
  "action": "ACTION_NAME or null",
  "confidence": 0.0-1.0
}`

const PromptHistoryPrefix = "Recent conversation:\n"
