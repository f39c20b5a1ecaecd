package http

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"goldensage/internal/model"
	"goldensage/pkg/response"
)

func TestNotificationRespTimestampFormat(t *testing.T) {
	ts := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

	raw, err := json.Marshal(newNotificationResp(model.Notification{
		Message:   "refill requested",
		Timestamp: ts,
	}))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	want := ts.Local().Format(response.DateTimeFormat)
	if !strings.Contains(string(raw), `"timestamp":"`+want+`"`) {
		t.Errorf("body = %s, want timestamp %q", raw, want)
	}
}
