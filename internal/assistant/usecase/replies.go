package usecase

import (
	"strings"

	"goldensage/internal/assistant"
)

// Language keys of the reply catalog. English is the guaranteed fallback.
const (
	langEnglish = "english"
	langHindi   = "hindi"
	langMarathi = "marathi"
)

// replyCatalog is the immutable action → language → text table, built once
// at process start.
type replyCatalog struct {
	byAction map[assistant.Action]map[string]string
	help     map[string]string
	failure  map[string]string
}

func newReplyCatalog() replyCatalog {
	return replyCatalog{
		byAction: map[assistant.Action]map[string]string{
			assistant.ActionTriggerSOS: {
				langEnglish: "Sending SOS to your guardian now!",
				langHindi:   "आपके अभिभावक को अभी SOS भेजा जा रहा है!",
				langMarathi: "तुमच्या पालकांना आत्ता SOS पाठवला जात आहे!",
			},
			assistant.ActionLogout: {
				langEnglish: "Signing you out. Take care!",
				langHindi:   "आपको लॉग आउट किया जा रहा है। ध्यान रखिए!",
				langMarathi: "तुम्हाला लॉग आउट केले जात आहे. काळजी घ्या!",
			},
			assistant.ActionNavigateNotifications: {
				langEnglish: "Opening your notifications.",
				langHindi:   "आपकी सूचनाएं खोली जा रही हैं।",
				langMarathi: "तुमच्या सूचना उघडल्या जात आहेत.",
			},
			assistant.ActionNavigateConnections: {
				langEnglish: "Opening community connections.",
				langHindi:   "कम्युनिटी कनेक्शन खोले जा रहे हैं।",
				langMarathi: "कम्युनिटी कनेक्शन उघडले जात आहेत.",
			},
			assistant.ActionPrintReport: {
				langEnglish: "Printing the medical report.",
				langHindi:   "मेडिकल रिपोर्ट प्रिंट की जा रही है।",
				langMarathi: "वैद्यकीय अहवाल प्रिंट होत आहे.",
			},
			assistant.ActionOpenSettings: {
				langEnglish: "Opening settings.",
				langHindi:   "सेटिंग्स खोली जा रही हैं।",
				langMarathi: "सेटिंग्ज उघडल्या जात आहेत.",
			},
			assistant.ActionNavigateDailyUpdates: {
				langEnglish: "Opening daily updates.",
				langHindi:   "डेली अपडेट्स खोले जा रहे हैं।",
				langMarathi: "दैनंदिन अपडेट्स उघडले जात आहेत.",
			},
			assistant.ActionNavigatePatientProfile: {
				langEnglish: "Opening the patient profile.",
				langHindi:   "पेशेंट प्रोफ़ाइल खोली जा रही है।",
				langMarathi: "पेशंट प्रोफाइल उघडली जात आहे.",
			},
			assistant.ActionNavigatePreferences: {
				langEnglish: "Opening preferences.",
				langHindi:   "प्राथमिकताएं खोली जा रही हैं।",
				langMarathi: "प्राधान्ये उघडली जात आहेत.",
			},
			assistant.ActionNavigateGuardianHome: {
				langEnglish: "Taking you to your dashboard.",
				langHindi:   "आपको आपके डैशबोर्ड पर ले जाया जा रहा है।",
				langMarathi: "तुम्हाला तुमच्या डॅशबोर्डवर नेले जात आहे.",
			},
			assistant.ActionNavigateMedicine: {
				langEnglish: "Opening your medicines.",
				langHindi:   "आपकी दवाइयां खोली जा रही हैं।",
				langMarathi: "तुमची औषधे उघडली जात आहेत.",
			},
			assistant.ActionNavigateProfile: {
				langEnglish: "Opening your profile.",
				langHindi:   "आपकी प्रोफ़ाइल खोली जा रही है।",
				langMarathi: "तुमची प्रोफाइल उघडली जात आहे.",
			},
			assistant.ActionNavigateHome: {
				langEnglish: "Taking you home.",
				langHindi:   "आपको होम पर ले जाया जा रहा है।",
				langMarathi: "तुम्हाला होमवर नेले जात आहे.",
			},
			assistant.ActionAddReminder: {
				langEnglish: "Reminder added for today!",
				langHindi:   "आज के लिए रिमाइंडर जोड़ दिया गया है!",
				langMarathi: "आजसाठी रिमाइंडर जोडला आहे!",
			},
		},
		help: map[string]string{
			langEnglish: "I'm here! Try: go home, medicines, my profile, notifications, or SOS.",
			langHindi:   "मैं यहां हूं! कहिए: होम, दवाइयां, मेरी प्रोफ़ाइल, सूचनाएं, या SOS।",
			langMarathi: "मी इथे आहे! म्हणा: होम, औषधे, माझी प्रोफाइल, सूचना, किंवा SOS.",
		},
		failure: map[string]string{
			langEnglish: "I had a small problem. Please try again.",
			langHindi:   "मुझे थोड़ी समस्या हुई। कृपया फिर से कोशिश करें।",
			langMarathi: "मला थोडी अडचण आली. कृपया पुन्हा प्रयत्न करा.",
		},
	}
}

// langKey normalizes a display language name. Unrecognized names resolve to
// English.
func langKey(language string) string {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case langHindi:
		return langHindi
	case langMarathi:
		return langMarathi
	default:
		return langEnglish
	}
}

func (rc replyCatalog) forAction(action assistant.Action, language string) string {
	texts, ok := rc.byAction[action]
	if !ok {
		return rc.helpText(language)
	}
	if text, ok := texts[langKey(language)]; ok {
		return text
	}
	return texts[langEnglish]
}

func (rc replyCatalog) helpText(language string) string {
	if text, ok := rc.help[langKey(language)]; ok {
		return text
	}
	return rc.help[langEnglish]
}

func (rc replyCatalog) failureText(language string) string {
	if text, ok := rc.failure[langKey(language)]; ok {
		return text
	}
	return rc.failure[langEnglish]
}
