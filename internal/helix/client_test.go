package helix

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{
		Token:    "oauth:secret",
		ClientID: "cid",
		BaseURL:  srv.URL,
		AuthURL:  srv.URL,
	})
}

func TestClient_SendsAuthHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer secret")
		}
		if got := r.Header.Get("Client-Id"); got != "cid" {
			t.Errorf("Client-Id = %q, want cid", got)
		}
		io.WriteString(w, `{"data":[]}`)
	})

	if _, err := c.GetUsers(context.Background(), nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_ValidateToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/validate" {
			t.Errorf("path = %s, want /validate", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "OAuth secret" {
			t.Errorf("Authorization = %q, want %q", got, "OAuth secret")
		}
		io.WriteString(w, `{"client_id":"validated","login":"streamer","user_id":"42","scopes":["channel:manage:broadcast"],"expires_in":3600}`)
	})
	c.clientID = ""

	info, err := c.ValidateToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.UserID != "42" || info.Login != "streamer" {
		t.Errorf("info = %+v", info)
	}
	if c.ClientID() != "validated" {
		t.Errorf("ClientID() = %q, want adopted client id", c.ClientID())
	}
}

func TestClient_ValidateToken_Invalid(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"status":401,"message":"invalid access token"}`)
	})

	_, err := c.ValidateToken(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid access token") {
		t.Errorf("error %q lacks server message", err)
	}
}

func TestClient_GetAllStreamTags(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tags/streams" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("first") != "100" {
			t.Errorf("first = %s, want 100", q.Get("first"))
		}
		if q.Get("after") == "" {
			io.WriteString(w, `{"data":[{"tag_id":"a","is_auto":false,"localization_names":{"en-us":"English"}}],"pagination":{"cursor":"next"}}`)
			return
		}
		io.WriteString(w, `{"data":[{"tag_id":"b","is_auto":true,"localization_names":{"en-us":"Speedrun"}}],"pagination":{}}`)
	})

	tags, cursor, err := c.GetAllStreamTags(context.Background(), "", 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 1 || tags[0].ID != "a" || cursor != "next" {
		t.Fatalf("first page = %+v, cursor %q", tags, cursor)
	}
	if name, ok := tags[0].Name("en-us"); !ok || name != "English" {
		t.Errorf("Name(en-us) = %q, %v", name, ok)
	}

	tags, cursor, err = c.GetAllStreamTags(context.Background(), cursor, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 1 || !tags[0].IsAuto || cursor != "" {
		t.Errorf("second page = %+v, cursor %q", tags, cursor)
	}
}

func TestClient_ReplaceStreamTags(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Query().Get("broadcaster_id") != "42" {
			t.Errorf("broadcaster_id = %s", r.URL.Query().Get("broadcaster_id"))
		}
		var body struct {
			TagIDs []string `json:"tag_ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		if len(body.TagIDs) != 2 || body.TagIDs[0] != "a" {
			t.Errorf("tag_ids = %v", body.TagIDs)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.ReplaceStreamTags(context.Background(), "42", []string{"a", "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_GetUsers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q["login"]; len(got) != 2 || got[0] != "one" || got[1] != "two" {
			t.Errorf("login = %v", got)
		}
		if got := q["id"]; len(got) != 1 || got[0] != "7" {
			t.Errorf("id = %v", got)
		}
		io.WriteString(w, `{"data":[{"id":"1","login":"one","display_name":"One"}]}`)
	})

	users, err := c.GetUsers(context.Background(), []string{"one", "two"}, []string{"7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 || users[0].DisplayName != "One" {
		t.Errorf("users = %+v", users)
	}
}

func TestClient_SearchCategories_ClampsLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  string
	}{
		{limit: 0, want: "1"},
		{limit: 20, want: "20"},
		{limit: 1000, want: "100"},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("first"); got != tt.want {
				t.Errorf("limit %d: first = %s, want %s", tt.limit, got, tt.want)
			}
			io.WriteString(w, `{"data":[{"id":"509658","name":"Just Chatting"}]}`)
		})
		if _, err := c.SearchCategories(context.Background(), "chat", tt.limit); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestClient_SearchCategory_None(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[]}`)
	})

	cat, err := c.SearchCategory(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat != nil {
		t.Errorf("expected nil category, got %+v", cat)
	}
}

func TestClient_UpdateCustomReward(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Query().Get("id") != "r1" {
			t.Errorf("id = %s", r.URL.Query().Get("id"))
		}
		raw, _ := io.ReadAll(r.Body)
		if strings.Contains(string(raw), "title") {
			t.Errorf("unset title sent: %s", raw)
		}
		if !strings.Contains(string(raw), `"is_enabled":false`) {
			t.Errorf("is_enabled=false not sent: %s", raw)
		}
		io.WriteString(w, `{"data":[{"id":"r1","title":"Hydrate","cost":500,"is_enabled":false}]}`)
	})

	disabled := false
	reward, err := c.UpdateCustomReward(context.Background(), "42", "r1", RewardBody{IsEnabled: &disabled})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reward.ID != "r1" || reward.IsEnabled {
		t.Errorf("reward = %+v", reward)
	}
}

func TestClient_CreateCustomReward_RequiresTitleAndCost(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	title := "Hydrate"
	if _, err := c.CreateCustomReward(context.Background(), "42", RewardBody{Title: &title}); err == nil {
		t.Error("expected error without cost")
	}
}

func TestClient_ModifyChannelInformation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]string
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		if body["title"] != "New title" || body["game_id"] != "509658" {
			t.Errorf("body = %v", body)
		}
		if _, ok := body["broadcaster_language"]; ok {
			t.Errorf("empty language sent: %v", body)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.ModifyChannelInformation(context.Background(), "42", ChannelInfo{Title: "New title", CategoryID: "509658"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"Not Found","status":404,"message":""}`)
	})

	_, err := c.GetCustomRewards(context.Background(), "42")
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if IsUnauthorized(err) {
		t.Error("404 reported as unauthorized")
	}
	if !strings.Contains(err.Error(), "Not Found") {
		t.Errorf("error %q should fall back to the error field", err)
	}
}
