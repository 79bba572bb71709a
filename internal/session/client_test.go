package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBind)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchSessionsAndActions(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	var gotActions []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodPost {
			gotActions = append(gotActions, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if r.URL.Path == "/api/sessions" {
			_ = json.NewEncoder(w).Encode(ListResponse{Sessions: []Session{
				{ID: "shell-2", Label: "python countdown", Status: StatusRunning, Log: []string{"T-20"}},
			}})
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	sessions, err := c.FetchSessions(ctx)
	if err != nil {
		t.Fatalf("FetchSessions returned error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != "shell-2" {
		t.Fatalf("FetchSessions = %#v, want 1 session shell-2", sessions)
	}

	if err := c.Kill(ctx, "shell-2"); err != nil {
		t.Fatalf("Kill returned error: %v", err)
	}
	if err := c.Resume(ctx, "shell-2"); err != nil {
		t.Fatalf("Resume returned error: %v", err)
	}
	if err := c.Promote(ctx, "shell-2"); err != nil {
		t.Fatalf("Promote returned error: %v", err)
	}
	if err := c.Diagnostics(ctx, "shell-2"); err != nil {
		t.Fatalf("Diagnostics returned error: %v", err)
	}

	want := []string{
		"/api/sessions/shell-2/kill",
		"/api/sessions/shell-2/resume",
		"/api/sessions/shell-2/promote",
		"/api/sessions/shell-2/diagnostics",
	}
	if len(gotActions) != len(want) {
		t.Fatalf("actions = %v, want %v", gotActions, want)
	}
	for i := range want {
		if gotActions[i] != want[i] {
			t.Fatalf("action[%d] = %q, want %q", i, gotActions[i], want[i])
		}
	}

	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "shellpanel/") {
		t.Fatalf("User-Agent = %q, want shellpanel/*", gotUserAgent)
	}
}

func TestClient_ActionRequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.Kill(context.Background(), "  "); err == nil {
		t.Fatalf("Kill with blank id returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			http.Error(w, "nope", http.StatusConflict)
		default:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchSessions(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchSessions error = %v, want decode response error", err)
	}

	err = c.Kill(context.Background(), "shell-1")
	if err == nil || !strings.Contains(err.Error(), "returned status 409") {
		t.Fatalf("Kill error = %v, want status 409 error", err)
	}
}
