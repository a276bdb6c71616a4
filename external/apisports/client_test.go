package apisports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestClient_RequestShapes(t *testing.T) {
	fixedNow := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		call      func(c *Client) ([]byte, error)
		wantPath  string
		wantQuery url.Values
	}{
		{
			name:      "upcoming uses today and current season",
			call:      func(c *Client) ([]byte, error) { return c.UpcomingMatches(context.Background(), "") },
			wantPath:  "/games",
			wantQuery: url.Values{"date": {"2026-10-17"}, "league": {"12"}, "season": {"2025-2026"}},
		},
		{
			name:      "previous uses trailing week",
			call:      func(c *Client) ([]byte, error) { return c.PreviousMatches(context.Background(), time.Time{}, time.Time{}, "") },
			wantPath:  "/games",
			wantQuery: url.Values{"dates[]": {"2026-10-10", "2026-10-17"}, "league": {"12"}, "season": {"2025-2026"}},
		},
		{
			name: "today formats the UTC date",
			call: func(c *Client) ([]byte, error) {
				lateEvening := time.Date(2026, 10, 17, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60))
				return c.TodayMatches(context.Background(), lateEvening, "2025-2026")
			},
			wantPath:  "/games",
			wantQuery: url.Values{"date": {"2026-10-18"}, "league": {"12"}, "season": {"2025-2026"}},
		},
		{
			name:      "competition games",
			call:      func(c *Client) ([]byte, error) { return c.CompetitionMatches(context.Background(), "12", "2023-2024") },
			wantPath:  "/games",
			wantQuery: url.Values{"league": {"12"}, "season": {"2023-2024"}},
		},
		{
			name:      "standings",
			call:      func(c *Client) ([]byte, error) { return c.Standings(context.Background(), "12", "2023-2024") },
			wantPath:  "/standings",
			wantQuery: url.Values{"league": {"12"}, "season": {"2023-2024"}},
		},
		{
			name:      "top scorers",
			call:      func(c *Client) ([]byte, error) { return c.Scorers(context.Background(), "12", "") },
			wantPath:  "/players/topscorers",
			wantQuery: url.Values{"league": {"12"}, "season": {"2025-2026"}},
		},
		{
			name:      "game by id",
			call:      func(c *Client) ([]byte, error) { return c.Match(context.Background(), "8213") },
			wantPath:  "/games",
			wantQuery: url.Values{"id": {"8213"}},
		},
		{
			name:      "team by id",
			call:      func(c *Client) ([]byte, error) { return c.Team(context.Background(), "133") },
			wantPath:  "/teams",
			wantQuery: url.Values{"id": {"133"}},
		},
		{
			name:      "head to head",
			call:      func(c *Client) ([]byte, error) { return c.HeadToHead(context.Background(), "133", "145") },
			wantPath:  "/games/h2h",
			wantQuery: url.Values{"h2h": {"133-145"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotPath, gotKey string
			var gotQuery url.Values
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.Query()
				gotKey = r.Header.Get("x-apisports-key")
				_, _ = w.Write([]byte(`{"response":[]}`))
			}))
			defer server.Close()

			client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "key-1"})
			client.now = func() time.Time { return fixedNow }

			if _, err := tc.call(client); err != nil {
				t.Fatalf("call: %v", err)
			}
			if gotPath != tc.wantPath {
				t.Fatalf("path=%s want %s", gotPath, tc.wantPath)
			}
			if gotQuery.Encode() != tc.wantQuery.Encode() {
				t.Fatalf("query=%s want %s", gotQuery.Encode(), tc.wantQuery.Encode())
			}
			if gotKey != "key-1" {
				t.Fatalf("unexpected api key header: %q", gotKey)
			}
		})
	}
}
