package assistant

import (
	"testing"

	"goldensage/internal/model"
)

func TestRoute(t *testing.T) {
	t.Run("navigation actions carry a URL", func(t *testing.T) {
		cases := map[Action]Target{
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
		}
		for action, want := range cases {
			if got := Route(action); got != want {
				t.Errorf("Route(%s) = %+v, want %+v", action, got, want)
			}
		}
	})

	t.Run("client-function actions carry a js call", func(t *testing.T) {
		if got := Route(ActionPrintReport); got.JSCall != "printMedicalReport()" {
			t.Errorf("Route(PRINT_REPORT) = %+v", got)
		}
		if got := Route(ActionOpenSettings); got.JSCall != "openSettings()" {
			t.Errorf("Route(OPEN_SETTINGS) = %+v", got)
		}
	})

	t.Run("server-side actions and unknowns map to zero target", func(t *testing.T) {
		for _, action := range []Action{ActionTriggerSOS, ActionAddReminder, ActionNone, Action("BOGUS")} {
			if got := Route(action); got != (Target{}) {
				t.Errorf("Route(%q) = %+v, want zero", action, got)
			}
		}
	})

	t.Run("no target sets both URL and js call", func(t *testing.T) {
		for action, target := range actionTargets {
			if target.URL != "" && target.JSCall != "" {
				t.Errorf("action %s has both URL and JSCall", action)
			}
		}
	})
}

func TestPermittedActions(t *testing.T) {
	t.Run("guardians never get TRIGGER_SOS or ADD_REMINDER", func(t *testing.T) {
		for _, a := range PermittedActions(model.RoleGuardian) {
			if a == ActionTriggerSOS || a == ActionAddReminder {
				t.Errorf("guardian set contains %s", a)
			}
		}
	})

	t.Run("patients get TRIGGER_SOS", func(t *testing.T) {
		if !IsPermitted(model.RolePatient, ActionTriggerSOS) {
			t.Error("patient set is missing TRIGGER_SOS")
		}
	})

	t.Run("unknown roles fall back to the patient set", func(t *testing.T) {
		if !IsPermitted(model.Role("mystery"), ActionNavigateMedicine) {
			t.Error("unknown role should use the patient set")
		}
		if IsPermitted(model.Role("mystery"), ActionPrintReport) {
			t.Error("unknown role should not get guardian actions")
		}
	})

	t.Run("null action is always permitted", func(t *testing.T) {
		if !IsPermitted(model.RoleGuardian, ActionNone) {
			t.Error("ActionNone must be permitted for every role")
		}
	})
}
