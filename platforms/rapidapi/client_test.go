package rapidapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Three events in the three payload shapes the provider has been seen to
// send, plus one with no usable fields.
const gamesResponse = `{
	"response": [
		{
			"game": {
				"id": 7001,
				"week": "Week 2",
				"date": {"timestamp": 1757900000}
			},
			"teams": {
				"home": {"name": "San Francisco 49ers"},
				"away": {"name": "Seattle Seahawks"}
			},
			"scores": {
				"home": {"total": 24},
				"away": {"total": 17}
			},
			"status": {"short": "FT"}
		},
		{
			"id": "7002",
			"week": 2,
			"date": {"timestamp": 1757910000},
			"home": {"name": "Green Bay Packers"},
			"away": {"name": "Chicago Bears"},
			"scores": {"home": 3, "away": 0},
			"status": "live"
		},
		{
			"fixture": {
				"id": 7003,
				"week": "2",
				"timestamp": 1757920000
			},
			"participants": [
				{"name": "Dallas Cowboys"},
				{"name": "New York Giants"}
			],
			"goals": {"home": null, "away": null},
			"status": {"state": "scheduled"}
		},
		{
			"status": "cancelled"
		}
	]
}`

func newTestServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(headerRapidApiKey) == "" {
			t.Errorf("request is missing the %s header", headerRapidApiKey)
		}
		if r.URL.Query().Get("season") != "2025" {
			w.Write([]byte(`{"response": []}`))
			return
		}
		w.Write([]byte(gamesResponse))
	}))
}

func TestLoadGames(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	c := NewForTest(server.URL)
	events, err := c.LoadGames(context.Background(), 2025)
	if err != nil {
		t.Fatalf("error loading games: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got: %d", len(events))
	}

	tests := []struct {
		wantID     string
		wantWeek   string
		wantEpoch  int64
		wantHome   string
		wantAway   string
		wantHomeSc *int
		wantAwaySc *int
		wantStatus string
	}{
		{wantID: "7001", wantWeek: "Week 2", wantEpoch: 1757900000, wantHome: "San Francisco 49ers", wantAway: "Seattle Seahawks", wantHomeSc: intPtr(24), wantAwaySc: intPtr(17), wantStatus: "FT"},
		{wantID: "7002", wantWeek: "2", wantEpoch: 1757910000, wantHome: "Green Bay Packers", wantAway: "Chicago Bears", wantHomeSc: intPtr(3), wantAwaySc: intPtr(0), wantStatus: "live"},
		{wantID: "7003", wantWeek: "2", wantEpoch: 1757920000, wantHome: "Dallas Cowboys", wantAway: "New York Giants", wantStatus: "scheduled"},
		{wantStatus: "cancelled"},
	}

	for i, tc := range tests {
		e := &events[i]
		if got := e.GameID(); got != tc.wantID {
			t.Errorf("event %d id incorrect, wanted: %q, got: %q", i, tc.wantID, got)
		}
		if got := e.WeekToken(); got != tc.wantWeek {
			t.Errorf("event %d week incorrect, wanted: %q, got: %q", i, tc.wantWeek, got)
		}
		if got := e.Kickoff(); got != tc.wantEpoch {
			t.Errorf("event %d kickoff incorrect, wanted: %d, got: %d", i, tc.wantEpoch, got)
		}
		if got := e.HomeName(); got != tc.wantHome {
			t.Errorf("event %d home incorrect, wanted: %q, got: %q", i, tc.wantHome, got)
		}
		if got := e.AwayName(); got != tc.wantAway {
			t.Errorf("event %d away incorrect, wanted: %q, got: %q", i, tc.wantAway, got)
		}
		if !intPtrEquals(e.HomeScore(), tc.wantHomeSc) {
			t.Errorf("event %d home score incorrect", i)
		}
		if !intPtrEquals(e.AwayScore(), tc.wantAwaySc) {
			t.Errorf("event %d away score incorrect", i)
		}
		if got := e.StatusToken(); got != tc.wantStatus {
			t.Errorf("event %d status incorrect, wanted: %q, got: %q", i, tc.wantStatus, got)
		}
	}
}

func TestLoadGames_emptySeason(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	c := NewForTest(server.URL)
	events, err := c.LoadGames(context.Background(), 1999)
	if err != nil {
		t.Fatalf("error loading games: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got: %d", len(events))
	}
}

func TestLoadGames_upstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message": "rate limited"}`))
	}))
	defer server.Close()

	c := NewForTest(server.URL)
	_, err := c.LoadGames(context.Background(), 2025)
	if err == nil {
		t.Fatalf("expected an error from a 429 response")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("error should carry the status and body, got: %v", err)
	}
}

func TestNew_missingKey(t *testing.T) {
	if _, err := New(""); err != ErrMissingAPIKey {
		t.Errorf("expected ErrMissingAPIKey, got: %v", err)
	}
}

func intPtr(v int) *int {
	return &v
}

func intPtrEquals(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
