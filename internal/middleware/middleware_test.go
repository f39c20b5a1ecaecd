package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"goldensage/internal/model"
	"goldensage/pkg/scope"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(mw Middleware, register func(*gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)
	return r
}

func TestAuth(t *testing.T) {
	manager := scope.NewManager("test-secret", time.Hour)
	mw := New(&mockLogger{}, manager)

	r := newTestRouter(mw, func(r *gin.Engine) {
		r.GET("/whoami", mw.Auth(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"user_id": GetUserID(c),
				"role":    string(GetRole(c)),
			})
		})
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := manager.Issue(scope.Payload{UserID: "user-1", Role: "guardian"})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "user-1") || !strings.Contains(body, "guardian") {
			t.Errorf("body = %s", body)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	manager := scope.NewManager("test-secret", time.Hour)
	mw := New(&mockLogger{}, manager)

	r := newTestRouter(mw, func(r *gin.Engine) {
		r.GET("/patient-only", mw.Auth(), mw.RequireRole(model.RolePatient), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	})

	perform := func(role string) int {
		token, err := manager.Issue(scope.Payload{UserID: "user-1", Role: role})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/patient-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := perform("patient"); code != http.StatusOK {
		t.Errorf("patient status = %d, want 200", code)
	}
	if code := perform("guardian"); code != http.StatusForbidden {
		t.Errorf("guardian status = %d, want 403", code)
	}
}

func TestRateLimit(t *testing.T) {
	manager := scope.NewManager("test-secret", time.Hour)
	mw := New(&mockLogger{}, manager)

	r := newTestRouter(mw, func(r *gin.Engine) {
		r.GET("/limited", mw.RateLimit(3), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	})

	// The bucket holds a burst of perMin tokens; the fourth request in a
	// tight loop must be rejected.
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", w.Code)
	}
}
