package http

import (
	"goldensage/internal/assistant"
	"goldensage/internal/model"
)

// --- Request DTOs ---

type chatTurn struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

type chatReq struct {
	Text     string     `json:"text"`
	LangName string     `json:"lang_name"`
	History  []chatTurn `json:"history"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput(userID string, role model.Role) assistant.ChatInput {
	history := make([]assistant.Turn, len(r.History))
	for i, turn := range r.History {
		history[i] = assistant.Turn{User: turn.User, Bot: turn.Bot}
	}
	return assistant.ChatInput{
		UserID:   userID,
		Role:     role,
		Text:     r.Text,
		Language: r.LangName,
		History:  history,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Reply  string  `json:"reply"`
	Action *string `json:"action"`
	URL    string  `json:"url,omitempty"`
	Tab    string  `json:"tab,omitempty"`
	JSCall string  `json:"js_call,omitempty"`
}

func newChatResp(out assistant.ChatOutput) chatResp {
	resp := chatResp{
		Reply:  out.Reply,
		URL:    out.Target.URL,
		Tab:    out.Target.Tab,
		JSCall: out.Target.JSCall,
	}
	if out.Action != assistant.ActionNone {
		action := string(out.Action)
		resp.Action = &action
	}
	return resp
}
