package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type healthBody struct {
	Status string            `json:"status"`
	Deps   map[string]string `json:"deps"`
	Time   string            `json:"time"`
}

func callHealth(t *testing.T, checks map[string]Check) (int, healthBody) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	if err := NewHandler(checks).Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}
	return rec.Code, body
}

func TestHealth(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	cases := []struct {
		name   string
		checks map[string]Check
		code   int
		status string
	}{
		{"no checks", nil, http.StatusOK, "ok"},
		{"all up", map[string]Check{"mysql": up, "redis": up}, http.StatusOK, "ok"},
		{"redis down", map[string]Check{"mysql": up, "redis": down}, http.StatusServiceUnavailable, "degraded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := callHealth(t, tc.checks)
			if code != tc.code || body.Status != tc.status {
				t.Fatalf("got %d %q, want %d %q", code, body.Status, tc.code, tc.status)
			}
			if len(body.Deps) != len(tc.checks) {
				t.Fatalf("deps: %+v", body.Deps)
			}
			ts, err := time.Parse(time.RFC3339Nano, body.Time)
			if err != nil || ts.Location() != time.UTC {
				t.Fatalf("time %q: %v", body.Time, err)
			}
		})
	}
}

func TestHealth_ReportsFailingDependency(t *testing.T) {
	_, body := callHealth(t, map[string]Check{
		"mysql": func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				return errors.New("no deadline")
			}
			return nil
		},
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})
	if body.Deps["mysql"] != "ok" || body.Deps["redis"] != "connection refused" {
		t.Fatalf("deps: %+v", body.Deps)
	}
}
