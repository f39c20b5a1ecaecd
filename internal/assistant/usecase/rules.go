package usecase

import (
	"context"
	"strings"

	"goldensage/internal/assistant"
	"goldensage/internal/model"
)

// rule is one entry of the keyword fallback cascade. Rules are evaluated in
// order, first match wins.
type rule struct {
	action     assistant.Action
	confidence float64
	roles      map[model.Role]bool // nil = all roles
	keywords   []string
	catchAll   bool                      // fires on role alone, no keyword needed
	guard      func(lowered string) bool // extra veto, nil = none
}

func roleSet(roles ...model.Role) map[model.Role]bool {
	set := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return set
}

// helpEchoFragments identify the assistant's own greeting text. Users who
// repeat it back must not fire the SOS rule on the literal word "SOS".
var helpEchoFragments = []string{
	"try: go home",
	"कहिए: होम",
	"म्हणा: होम",
}

func notHelpEcho(lowered string) bool {
	for _, fragment := range helpEchoFragments {
		if strings.Contains(lowered, fragment) {
			return false
		}
	}
	return true
}

// Keyword groups. Matching is substring containment over lowercased text,
// so transliterations like "dawa" also catch "dawai".
var (
	kwSOS            = []string{"sos", "emergency", "help", "danger", "bachao", "madad", "alarm", "बचाओ", "मदद"}
	kwLogout         = []string{"logout", "log out", "sign out", "bahar", "niklo"}
	kwNotifications  = []string{"notif", "alert", "reminder", "suchna", "सूचना"}
	kwConnections    = []string{"connect", "volunteer", "unity", "ngo", "community", "jodo"}
	kwReminder       = []string{"remind me", "yaad dila", "याद दिला"}
	kwPrint          = []string{"print", "report", "medical"}
	kwSettings       = []string{"setting", "dark", "mode", "preference"}
	kwVitals         = []string{"vital", "update", "daily", "blood", "heart", "pressure", "sugar"}
	kwPatientProfile = []string{"patient profile", "identity", "record", "allergy"}
	kwPreferences    = []string{"preference", "prefer"}
	kwMedicine       = []string{"medicine", "medic", "dawa", "dawai", "dava", "pill", "tablet", "pharmacy", "refill", "दवा", "औषध"}
	kwProfile        = []string{"profile", "account", "personal", "mera", "details", "मेरा"}
	kwHome           = []string{"home", "dashboard", "ghar", "my day", "aaj", "today", "main", "घर"}
)

// keywordRules encodes the priority cascade: safety first, account actions,
// shared surfaces, then guardian screens ending in the guardian dashboard
// default, then patient navigation, then the reminder trigger, then the
// generic help reply. Navigation keywords outrank "remind me": a patient
// asking to be reminded about medicine is sent to the medicine screen.
var keywordRules = []rule{
	{action: assistant.ActionTriggerSOS, confidence: 0.95, roles: roleSet(model.RolePatient, model.RoleUnity), keywords: kwSOS, guard: notHelpEcho},
	{action: assistant.ActionLogout, confidence: 0.9, keywords: kwLogout},
	{action: assistant.ActionNavigateNotifications, confidence: 0.9, keywords: kwNotifications},
	{action: assistant.ActionNavigateConnections, confidence: 0.9, keywords: kwConnections},
	{action: assistant.ActionPrintReport, confidence: 0.9, roles: roleSet(model.RoleGuardian), keywords: kwPrint},
	{action: assistant.ActionOpenSettings, confidence: 0.9, roles: roleSet(model.RoleGuardian), keywords: kwSettings},
	{action: assistant.ActionNavigateDailyUpdates, confidence: 0.9, roles: roleSet(model.RoleGuardian), keywords: kwVitals},
	{action: assistant.ActionNavigatePatientProfile, confidence: 0.9, roles: roleSet(model.RoleGuardian), keywords: kwPatientProfile},
	{action: assistant.ActionNavigatePreferences, confidence: 0.9, roles: roleSet(model.RoleGuardian), keywords: kwPreferences},
	{action: assistant.ActionNavigateGuardianHome, confidence: 0.7, roles: roleSet(model.RoleGuardian), catchAll: true},
	{action: assistant.ActionNavigateMedicine, confidence: 0.9, roles: roleSet(model.RolePatient), keywords: kwMedicine},
	{action: assistant.ActionNavigateProfile, confidence: 0.9, roles: roleSet(model.RolePatient), keywords: kwProfile},
	{action: assistant.ActionNavigateHome, confidence: 0.9, roles: roleSet(model.RolePatient), keywords: kwHome},
	{action: assistant.ActionAddReminder, confidence: 0.9, roles: roleSet(model.RolePatient), keywords: kwReminder},
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// resolveKeywords runs the deterministic cascade. It always produces a
// result; unmatched text gets the help reply with no action.
func (uc *implUseCase) resolveKeywords(ctx context.Context, utt assistant.Utterance) assistant.IntentResult {
	lowered := strings.ToLower(utt.Text)

	for _, r := range keywordRules {
		if r.roles != nil && !r.roles[utt.Role] {
			continue
		}
		if r.guard != nil && !r.guard(lowered) {
			continue
		}
		if !r.catchAll && !containsAny(lowered, r.keywords) {
			continue
		}

		uc.l.Debugf(ctx, "%s: keyword tier matched %s", LogPrefixResolve, r.action)
		return assistant.IntentResult{
			Reply:      uc.replies.forAction(r.action, utt.Language),
			Action:     r.action,
			Confidence: r.confidence,
		}
	}

	return assistant.IntentResult{
		Reply:      uc.replies.helpText(utt.Language),
		Action:     assistant.ActionNone,
		Confidence: HelpConfidence,
	}
}
