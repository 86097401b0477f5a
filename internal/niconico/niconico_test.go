package niconico

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
	tu "github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/testing"
)

// envelopeHandler wraps data in the nvapi response envelope.
func envelopeHandler(status int, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"meta": map[string]any{"status": status},
			"data": data,
		})
	}
}

func TestClient(t *testing.T) {
	t.Run("NewClient", func(t *testing.T) {
		t.Run("with custom base URL and client", func(t *testing.T) {
			customClient := &http.Client{}
			client := NewClient("http://example.com", "session", customClient)

			if client.baseURL != "http://example.com" {
				t.Errorf("expected baseURL http://example.com, got %s", client.baseURL)
			}
			if client.httpClient != customClient {
				t.Error("expected custom client to be used")
			}
		})

		t.Run("with empty base URL", func(t *testing.T) {
			client := NewClient("", "session", nil)

			if client.baseURL != defaultBaseURL {
				t.Errorf("expected default baseURL %s, got %s", defaultBaseURL, client.baseURL)
			}
			if client.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})
	})

	t.Run("doRequest", func(t *testing.T) {
		t.Run("sets frontend headers and session cookie", func(t *testing.T) {
			var gotRequest *http.Request
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotRequest = r.Clone(r.Context())
				envelopeHandler(http.StatusOK, map[string]any{})(w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "secret_session", nil)
			var result map[string]any
			if err := client.doRequest(context.Background(), "/v1/test", &result); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if gotRequest.Header.Get("X-Frontend-Id") != "6" {
				t.Errorf("expected X-Frontend-Id 6, got %s", gotRequest.Header.Get("X-Frontend-Id"))
			}

			cookie, err := gotRequest.Cookie("user_session")
			if err != nil {
				t.Fatalf("expected user_session cookie: %v", err)
			}
			if cookie.Value != "secret_session" {
				t.Errorf("expected cookie value secret_session, got %s", cookie.Value)
			}
		})

		t.Run("omits cookie without session", func(t *testing.T) {
			var gotRequest *http.Request
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotRequest = r.Clone(r.Context())
				envelopeHandler(http.StatusOK, map[string]any{})(w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "", nil)
			if err := client.doRequest(context.Background(), "/v1/test", nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if _, err := gotRequest.Cookie("user_session"); err == nil {
				t.Error("expected no user_session cookie without a session")
			}
		})

		t.Run("unauthorized status", func(t *testing.T) {
			server := httptest.NewServer(envelopeHandler(http.StatusUnauthorized, nil))
			defer server.Close()

			client := NewClient(server.URL, "bad", nil)
			err := client.doRequest(context.Background(), "/v1/test", nil)

			if !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated, got %v", err)
			}
		})

		t.Run("api error with errorCode", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"meta":{"status":404,"errorCode":"NOT_FOUND"}}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, "session", nil)
			err := client.doRequest(context.Background(), "/v1/test", nil)

			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
			if !strings.Contains(err.Error(), "NOT_FOUND") {
				t.Errorf("expected error code in message, got %v", err)
			}
		})

		t.Run("malformed envelope", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("not json"))
			}))
			defer server.Close()

			client := NewClient(server.URL, "session", nil)
			err := client.doRequest(context.Background(), "/v1/test", nil)

			if err == nil {
				t.Error("expected error for malformed envelope")
			}
		})

		t.Run("transport failure", func(t *testing.T) {
			httpClient := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("connection failed")),
			}

			client := NewClient("http://example.com", "session", httpClient)
			err := client.doRequest(context.Background(), "/v1/test", nil)

			if err == nil {
				t.Error("expected error for failed request")
			}
			if !strings.Contains(err.Error(), "request failed") {
				t.Errorf("expected 'request failed' error, got %v", err)
			}
		})

		t.Run("with canceled context", func(t *testing.T) {
			server := httptest.NewServer(envelopeHandler(http.StatusOK, nil))
			defer server.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			client := NewClient(server.URL, "session", nil)
			if err := client.doRequest(ctx, "/v1/test", nil); err == nil {
				t.Error("expected error for canceled context")
			}
		})
	})

	t.Run("VerifySession", func(t *testing.T) {
		t.Run("returns user profile", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/users/me" {
					t.Errorf("expected path /v1/users/me, got %s", r.URL.Path)
				}
				envelopeHandler(http.StatusOK, map[string]any{
					"user": map[string]any{"id": 68461151, "nickname": "fixturebot"},
				})(w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "session", nil)
			user, err := client.VerifySession(context.Background())

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.ID != 68461151 {
				t.Errorf("expected user ID 68461151, got %d", user.ID)
			}
			if user.Nickname != "fixturebot" {
				t.Errorf("expected nickname fixturebot, got %s", user.Nickname)
			}
		})

		t.Run("rejected session", func(t *testing.T) {
			server := httptest.NewServer(envelopeHandler(http.StatusUnauthorized, nil))
			defer server.Close()

			client := NewClient(server.URL, "expired", nil)
			_, err := client.VerifySession(context.Background())

			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})
	})

	t.Run("GetWatchData", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/watch/sm45285955" {
				t.Errorf("expected path /v1/watch/sm45285955, got %s", r.URL.Path)
			}
			envelopeHandler(http.StatusOK, map[string]any{
				"response": map[string]any{
					"video": map[string]any{"id": "sm45285955", "title": "test video"},
					"media": map[string]any{
						"domand": map[string]any{
							"audios": []map[string]any{
								{"id": "audio-aac-64kbps", "isAvailable": true, "qualityLevel": 1},
							},
						},
					},
				},
			})(w, r)
		}))
		defer server.Close()

		client := NewClient(server.URL, "session", nil)
		watchData, err := client.GetWatchData(context.Background(), "sm45285955")

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if watchData.Video.ID != "sm45285955" {
			t.Errorf("expected video ID sm45285955, got %s", watchData.Video.ID)
		}
		if len(watchData.Media.Domand.Audios) != 1 {
			t.Fatalf("expected 1 audio, got %d", len(watchData.Media.Domand.Audios))
		}
	})

	t.Run("GetUserVideos", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v3/users/68461151/videos" {
				t.Errorf("expected path /v3/users/68461151/videos, got %s", r.URL.Path)
			}
			if r.URL.Query().Get("pageSize") != "1" {
				t.Errorf("expected pageSize 1, got %s", r.URL.Query().Get("pageSize"))
			}
			envelopeHandler(http.StatusOK, map[string]any{
				"totalCount": 1,
				"items":      []map[string]any{{"essential": map[string]any{"id": "sm45285955"}}},
			})(w, r)
		}))
		defer server.Close()

		client := NewClient(server.URL, "session", nil)
		data, err := client.GetUserVideos(context.Background(), "68461151", 1, 1)

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if data.TotalCount != 1 {
			t.Errorf("expected total count 1, got %d", data.TotalCount)
		}
		if len(data.Items) != 1 || data.Items[0].Essential.ID != "sm45285955" {
			t.Errorf("unexpected items: %+v", data.Items)
		}
	})

	t.Run("GetMylist", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v2/mylists/78597499" {
				t.Errorf("expected path /v2/mylists/78597499, got %s", r.URL.Path)
			}
			envelopeHandler(http.StatusOK, map[string]any{
				"mylist": map[string]any{"id": 78597499, "name": "test mylist"},
			})(w, r)
		}))
		defer server.Close()

		client := NewClient(server.URL, "session", nil)
		mylist, err := client.GetMylist(context.Background(), "78597499", 1, 1)

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if mylist.ID != 78597499 {
			t.Errorf("expected mylist ID 78597499, got %d", mylist.ID)
		}
	})

	t.Run("Search", func(t *testing.T) {
		t.Run("keyword search sets query params", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if q.Get("keyword") != "APIテスト68461151-45285955" {
					t.Errorf("unexpected keyword: %s", q.Get("keyword"))
				}
				if q.Get("sortKey") != "registeredAt" {
					t.Errorf("expected sortKey registeredAt, got %s", q.Get("sortKey"))
				}
				if q.Get("sortOrder") != "asc" {
					t.Errorf("expected sortOrder asc, got %s", q.Get("sortOrder"))
				}
				envelopeHandler(http.StatusOK, map[string]any{
					"searchId": "abc", "totalCount": 1, "items": []map[string]any{{"id": "sm45285955"}},
				})(w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "session", nil)
			opts := SearchOpts{SortKey: "registeredAt", SortOrder: "asc", PageSize: 1}
			data, err := client.SearchVideosByKeyword(context.Background(), "APIテスト68461151-45285955", opts)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if data.SearchID != "abc" {
				t.Errorf("expected searchId abc, got %s", data.SearchID)
			}
		})

		t.Run("tag search uses tag param", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("tag") == "" {
					t.Error("expected tag query param")
				}
				if r.URL.Query().Get("keyword") != "" {
					t.Error("tag search must not set keyword")
				}
				envelopeHandler(http.StatusOK, map[string]any{"items": []map[string]any{}})(w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "session", nil)
			if _, err := client.SearchVideosByTag(context.Background(), "タグ", SearchOpts{}); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("list search sets types", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("types") != "series" {
					t.Errorf("expected types series, got %s", r.URL.Query().Get("types"))
				}
				envelopeHandler(http.StatusOK, map[string]any{
					"items": []map[string]any{{"type": "series", "id": 527007}},
				})(w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "session", nil)
			data, err := client.SearchLists(context.Background(), "テスト", "series", SearchOpts{})

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(data.Items) != 1 || data.Items[0].ID != 527007 {
				t.Errorf("unexpected items: %+v", data.Items)
			}
		})
	})

	t.Run("SelectBestAudio", func(t *testing.T) {
		t.Run("picks highest available quality", func(t *testing.T) {
			audios := []DomandAudio{
				{ID: "low", IsAvailable: true, QualityLevel: 1},
				{ID: "high", IsAvailable: true, QualityLevel: 3},
				{ID: "unavailable", IsAvailable: false, QualityLevel: 5},
			}

			best := SelectBestAudio(audios)
			if best == nil {
				t.Fatal("expected an audio to be selected")
			}
			if best.ID != "high" {
				t.Errorf("expected high, got %s", best.ID)
			}
		})

		t.Run("nil when none available", func(t *testing.T) {
			audios := []DomandAudio{
				{ID: "a", IsAvailable: false, QualityLevel: 1},
			}

			if best := SelectBestAudio(audios); best != nil {
				t.Errorf("expected nil, got %+v", best)
			}
		})

		t.Run("nil for empty slice", func(t *testing.T) {
			if best := SelectBestAudio(nil); best != nil {
				t.Errorf("expected nil, got %+v", best)
			}
		})
	})
}
