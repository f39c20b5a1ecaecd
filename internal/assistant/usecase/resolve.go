package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"goldensage/internal/assistant"
	"goldensage/internal/model"
	"goldensage/pkg/gemini"
)

// Resolve maps one utterance to a reply, an action, and a confidence.
// The generative tier runs first when configured; any failure there demotes
// the request to the keyword tier so the caller never sees an LLM error.
func (uc *implUseCase) Resolve(ctx context.Context, utt assistant.Utterance) (assistant.IntentResult, error) {
	utt.Text = strings.TrimSpace(utt.Text)
	if utt.Text == "" {
		return assistant.IntentResult{}, assistant.ErrEmptyInput
	}
	utt.Role = roleOrDefault(utt.Role)

	if uc.llm != nil {
		result, err := uc.resolveGenerative(ctx, utt)
		if err == nil {
			return result, nil
		}
		uc.l.Warnf(ctx, "%s: %s: %v", LogPrefixResolve, ErrMsgLLMCallFailed, err)
	}

	return uc.resolveKeywords(ctx, utt), nil
}

// roleOrDefault normalizes unknown roles to patient, the most restrictive
// navigation surface.
func roleOrDefault(role model.Role) model.Role {
	switch role {
	case model.RoleGuardian, model.RoleUnity:
		return role
	default:
		return model.RolePatient
	}
}

// llmReply is the structured output expected from the generative tier.
type llmReply struct {
	Reply      string  `json:"reply"`
	Action     *string `json:"action"`
	Confidence float64 `json:"confidence"`
}

func (uc *implUseCase) resolveGenerative(ctx context.Context, utt assistant.Utterance) (assistant.IntentResult, error) {
	prompt := uc.buildPrompt(utt)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: prompt}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     ResolverTemperature,
			MaxOutputTokens: ResolverMaxTokens,
		},
	})
	if err != nil {
		return assistant.IntentResult{}, err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return assistant.IntentResult{}, fmt.Errorf("%s", ErrMsgEmptyResponse)
	}

	responseText := stripCodeFences(resp.Candidates[0].Content.Parts[0].Text)

	var out llmReply
	if err := json.Unmarshal([]byte(responseText), &out); err != nil {
		return assistant.IntentResult{}, fmt.Errorf("%s: %w", ErrMsgJSONParseFailed, err)
	}

	action := assistant.ActionNone
	if out.Action != nil {
		candidate := assistant.Action(strings.ToUpper(strings.TrimSpace(*out.Action)))
		if candidate == "NULL" || candidate == "NONE" {
			candidate = assistant.ActionNone
		}
		if assistant.IsPermitted(utt.Role, candidate) {
			action = candidate
		} else {
			uc.l.Warnf(ctx, "%s: dropping out-of-set action %q for role %s", LogPrefixResolve, candidate, utt.Role)
		}
	}

	reply := strings.TrimSpace(out.Reply)
	if reply == "" {
		reply = uc.replies.helpText(utt.Language)
	}

	confidence := out.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	uc.l.Infof(ctx, "%s: generative tier resolved %q (confidence %.2f)", LogPrefixResolve, action, confidence)
	return assistant.IntentResult{
		Reply:      reply,
		Action:     action,
		Confidence: confidence,
	}, nil
}

// stripCodeFences removes a surrounding markdown block (```json ... ```) if
// the model wrapped its JSON in one.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}

func (uc *implUseCase) buildPrompt(utt assistant.Utterance) string {
	knowledge := PromptPatientKnowledge
	switch utt.Role {
	case model.RoleGuardian:
		knowledge = PromptGuardianKnowledge
	case model.RoleUnity:
		knowledge = PromptUnityKnowledge
	}

	actions := assistant.PermittedActions(utt.Role)
	actionLines := make([]string, len(actions))
	for i, a := range actions {
		actionLines[i] = fmt.Sprintf("- %s", a)
	}

	historyContext := ""
	if len(utt.History) > 0 {
		historyContext = PromptHistoryPrefix
		for _, turn := range utt.History {
			historyContext += fmt.Sprintf("User: %s\nSage: %s\n", turn.User, turn.Bot)
		}
		historyContext += "\n"
	}

	language := langKey(utt.Language)

	return fmt.Sprintf(PromptResolverSystem,
		knowledge,
		string(utt.Role),
		strings.Join(actionLines, "\n"),
		language,
		historyContext,
		utt.Text,
	)
}
