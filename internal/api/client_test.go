package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("127.0.0.1:8000")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != "127.0.0.1:8000" {
		t.Fatalf("host = %q, want 127.0.0.1:8000", u.Host)
	}

	u, err = parseBaseURL("https://example.com/app?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("  "); err == nil {
		t.Fatal("parseBaseURL(blank) = nil error, want error")
	}
}

func TestNewClient_RequiresCredential(t *testing.T) {
	if _, err := NewClient("127.0.0.1:8000", "  "); err == nil {
		t.Fatal("NewClient with blank credential = nil error, want error")
	}
}

func TestClient_AttachesCredentialAndDecodesPayloads(t *testing.T) {
	t.Parallel()

	var gotHeader string
	var gotAuthBody struct {
		InitData string `json:"init_data"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(credentialHeader)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/users/auth/telegram":
			_ = json.NewDecoder(r.Body).Decode(&gotAuthBody)
			_ = json.NewEncoder(w).Encode(User{ID: 7, FirstName: "Ann"})
		case "/users/me":
			_ = json.NewEncoder(w).Encode(User{ID: 7, Gifts: []Gift{{ID: 1, Name: "Book"}}})
		case "/users/me/friends":
			_ = json.NewEncoder(w).Encode([]User{{ID: 8, FirstName: "Bob"}})
		case "/users/me/friend-requests":
			_ = json.NewEncoder(w).Encode([]FriendRequest{{SenderID: 9, SenderName: "Cleo"}})
		case "/users/9/gifts":
			_ = json.NewEncoder(w).Encode([]Gift{{ID: 3, UserID: 9}})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "init-data-blob")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	me, err := c.Authenticate(ctx)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if me.ID != 7 || me.FirstName != "Ann" {
		t.Fatalf("Authenticate payload = %#v, want id=7 Ann", me)
	}
	if gotAuthBody.InitData != "init-data-blob" {
		t.Fatalf("auth body init_data = %q, want init-data-blob", gotAuthBody.InitData)
	}
	if gotHeader != "init-data-blob" {
		t.Fatalf("credential header = %q, want init-data-blob", gotHeader)
	}

	user, err := c.FetchCurrentUser(ctx)
	if err != nil {
		t.Fatalf("FetchCurrentUser returned error: %v", err)
	}
	if len(user.Gifts) != 1 || user.Gifts[0].Name != "Book" {
		t.Fatalf("FetchCurrentUser gifts = %#v, want embedded Book", user.Gifts)
	}

	friends, err := c.FetchFriends(ctx)
	if err != nil {
		t.Fatalf("FetchFriends returned error: %v", err)
	}
	if len(friends) != 1 || friends[0].ID != 8 {
		t.Fatalf("FetchFriends = %#v, want one friend id=8", friends)
	}

	requests, err := c.FetchPendingRequests(ctx)
	if err != nil {
		t.Fatalf("FetchPendingRequests returned error: %v", err)
	}
	if len(requests) != 1 || requests[0].SenderID != 9 {
		t.Fatalf("FetchPendingRequests = %#v, want one request from 9", requests)
	}

	gifts, err := c.FetchUserGifts(ctx, 9)
	if err != nil {
		t.Fatalf("FetchUserGifts returned error: %v", err)
	}
	if len(gifts) != 1 || gifts[0].ID != 3 {
		t.Fatalf("FetchUserGifts = %#v, want one gift id=3", gifts)
	}
}

func TestClient_NoContentIsSuccess(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "blob")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if err := c.DeleteGift(context.Background(), 42); err != nil {
		t.Fatalf("DeleteGift returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/gifts/42" {
		t.Fatalf("request = %s %s, want DELETE /gifts/42", gotMethod, gotPath)
	}

	if err := c.DeleteFriend(context.Background(), 8); err != nil {
		t.Fatalf("DeleteFriend returned error: %v", err)
	}
	if gotPath != "/users/me/friends/8" {
		t.Fatalf("path = %q, want /users/me/friends/8", gotPath)
	}
}

func TestClient_ErrorDetailExtraction(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/me/friends/99":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"not found"}`))
		case "/gifts/1":
			// Error without a body falls back to the status message.
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "blob")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	err = c.DeleteFriend(context.Background(), 99)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("DeleteFriend error = %T, want *Error", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "not found" {
		t.Fatalf("error = %#v, want status 404 detail 'not found'", apiErr)
	}

	err = c.DeleteGift(context.Background(), 1)
	if !errors.As(err, &apiErr) {
		t.Fatalf("DeleteGift error = %T, want *Error", err)
	}
	if apiErr.Message != "HTTP 500" {
		t.Fatalf("message = %q, want HTTP 500", apiErr.Message)
	}
}

func TestClient_TransportFailureYieldsError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Refuse connections.

	c, err := NewClient(server.URL, "blob")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	err = c.SendFriendRequest(context.Background(), 5)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if apiErr.Status != 0 || apiErr.Message == "" {
		t.Fatalf("error = %#v, want zero status with transport message", apiErr)
	}
}
