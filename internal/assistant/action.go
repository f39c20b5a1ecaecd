package assistant

import "goldensage/internal/model"

// Action is an app navigation or side-effect command the assistant can emit.
type Action string

const (
	ActionNone Action = ""

	ActionNavigateHome           Action = "NAVIGATE_HOME"
	ActionNavigateMedicine       Action = "NAVIGATE_MEDICINE"
	ActionNavigateProfile        Action = "NAVIGATE_PROFILE"
	ActionNavigateConnections    Action = "NAVIGATE_CONNECTIONS"
	ActionNavigateNotifications  Action = "NAVIGATE_NOTIFICATIONS"
	ActionNavigateGuardianHome   Action = "NAVIGATE_GUARDIAN_HOME"
	ActionNavigateDailyUpdates   Action = "NAVIGATE_DAILY_UPDATES"
	ActionNavigatePatientProfile Action = "NAVIGATE_PATIENT_PROFILE"
	ActionNavigatePreferences    Action = "NAVIGATE_PREFERENCES"
	ActionPrintReport            Action = "PRINT_REPORT"
	ActionOpenSettings           Action = "OPEN_SETTINGS"
	ActionTriggerSOS             Action = "TRIGGER_SOS"
	ActionAddReminder            Action = "ADD_REMINDER"
	ActionLogout                 Action = "LOGOUT"
)

// permittedActions lists the actions each role may receive.
// Guardians never get TRIGGER_SOS; unity members only get the shared surface.
var permittedActions = map[model.Role][]Action{
	model.RolePatient: {
		ActionNavigateHome,
		ActionNavigateMedicine,
		ActionNavigateProfile,
		ActionNavigateConnections,
		ActionNavigateNotifications,
		ActionTriggerSOS,
		ActionAddReminder,
		ActionLogout,
	},
	model.RoleGuardian: {
		ActionNavigateGuardianHome,
		ActionNavigateDailyUpdates,
		ActionNavigatePatientProfile,
		ActionNavigatePreferences,
		ActionNavigateConnections,
		ActionNavigateNotifications,
		ActionPrintReport,
		ActionOpenSettings,
		ActionLogout,
	},
	model.RoleUnity: {
		ActionNavigateConnections,
		ActionNavigateNotifications,
		ActionTriggerSOS,
		ActionLogout,
	},
}

// PermittedActions returns the actions allowed for a role.
// Unknown roles get the patient set.
func PermittedActions(role model.Role) []Action {
	if actions, ok := permittedActions[role]; ok {
		return actions
	}
	return permittedActions[model.RolePatient]
}

// IsPermitted reports whether a role may receive the given action.
// ActionNone is always permitted.
func IsPermitted(role model.Role, action Action) bool {
	if action == ActionNone {
		return true
	}
	for _, a := range PermittedActions(role) {
		if a == action {
			return true
		}
	}
	return false
}
