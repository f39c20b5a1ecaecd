package assistant

// Target tells the client what to do with a resolved action: navigate to a
// URL (optionally selecting a tab) or invoke a named client function.
// At most one of URL and JSCall is set.
type Target struct {
	URL    string
	Tab    string
	JSCall string
}

// actionTargets is the fixed routing table. TRIGGER_SOS and ADD_REMINDER are
// executed server-side during Chat and carry no client target.
var actionTargets = map[Action]Target{
	ActionNavigateHome:           {URL: "/patient-dashboard", Tab: "p-home"},
	ActionNavigateMedicine:       {URL: "/patient-dashboard", Tab: "p-medicine"},
	ActionNavigateProfile:        {URL: "/patient-dashboard", Tab: "p-profile"},
	ActionNavigateGuardianHome:   {URL: "/guardian-dashboard", Tab: "home-view"},
	ActionNavigateDailyUpdates:   {URL: "/guardian-dashboard", Tab: "daily-updates-view"},
	ActionNavigatePatientProfile: {URL: "/guardian-dashboard", Tab: "patient-profile"},
	ActionNavigatePreferences:    {URL: "/guardian-dashboard", Tab: "preferences-view"},
	ActionNavigateConnections:    {URL: "/connection"},
	ActionNavigateNotifications:  {URL: "/notifications"},
	ActionLogout:                 {URL: "/signout"},
	ActionPrintReport:            {JSCall: "printMedicalReport()"},
	ActionOpenSettings:           {JSCall: "openSettings()"},
}

// Route maps an action to its client target. Unknown actions and ActionNone
// map to the zero Target.
func Route(action Action) Target {
	return actionTargets[action]
}
