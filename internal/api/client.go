package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Gateway defines the wishlist service operations the UI depends on.
// This interface is implemented by *Client and can be used for testing.
type Gateway interface {
	Authenticate(ctx context.Context) (*User, error)
	FetchCurrentUser(ctx context.Context) (*User, error)
	FetchFriends(ctx context.Context) ([]User, error)
	FetchPendingRequests(ctx context.Context) ([]FriendRequest, error)
	SendFriendRequest(ctx context.Context, receiverID int64) error
	AcceptFriendRequest(ctx context.Context, senderID int64) error
	RejectFriendRequest(ctx context.Context, senderID int64) error
	DeleteFriend(ctx context.Context, friendID int64) error
	FetchUser(ctx context.Context, userID int64) (*User, error)
	FetchUserGifts(ctx context.Context, userID int64) ([]Gift, error)
	CreateGift(ctx context.Context, draft GiftDraft) (*Gift, error)
	DeleteGift(ctx context.Context, giftID int64) error
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

// Error is the uniform failure value for any remote call: HTTP errors
// carry the status and the server's detail message when one is present,
// transport failures carry the transport message with a zero status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// credentialHeader carries the opaque session credential on every request.
const credentialHeader = "X-Telegram-Init-Data"

// Client talks to the wishlist service HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	initData  string
	userAgent string
}

const (
	defaultUserAgent = "telewish/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL. The initData value
// is the per-session credential attached to every outbound request; it
// is never refreshed for the lifetime of the client.
func NewClient(baseURL, initData string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(initData) == "" {
		return nil, fmt.Errorf("session credential is empty")
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		initData:  initData,
		userAgent: defaultUserAgent,
	}, nil
}

// Authenticate signs the session in, creating the account on first
// sight. The returned user carries the embedded wishlist.
func (c *Client) Authenticate(ctx context.Context) (*User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := struct {
		InitData string `json:"init_data"`
	}{InitData: c.initData}
	var payload User
	if err := c.do(ctx, http.MethodPost, "/users/auth/telegram", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchCurrentUser retrieves the signed-in user with their wishlist.
func (c *Client) FetchCurrentUser(ctx context.Context) (*User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchFriends retrieves the accepted friend list.
func (c *Client) FetchFriends(ctx context.Context) ([]User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []User
	if err := c.do(ctx, http.MethodGet, "/users/me/friends", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchPendingRequests retrieves incoming friend requests still pending.
func (c *Client) FetchPendingRequests(ctx context.Context) ([]FriendRequest, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []FriendRequest
	if err := c.do(ctx, http.MethodGet, "/users/me/friend-requests", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// SendFriendRequest asks the service to create a pending request toward
// the receiver. The sender never observes the request afterwards.
func (c *Client) SendFriendRequest(ctx context.Context, receiverID int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/users/me/friend-requests/"+formatID(receiverID), nil, nil)
}

// AcceptFriendRequest accepts a pending request from the sender.
func (c *Client) AcceptFriendRequest(ctx context.Context, senderID int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/users/me/friend-requests/"+formatID(senderID)+"/accept", nil, nil)
}

// RejectFriendRequest rejects a pending request from the sender.
func (c *Client) RejectFriendRequest(ctx context.Context, senderID int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/users/me/friend-requests/"+formatID(senderID)+"/reject", nil, nil)
}

// DeleteFriend removes an accepted friend. The service answers 204.
func (c *Client) DeleteFriend(ctx context.Context, friendID int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, "/users/me/friends/"+formatID(friendID), nil, nil)
}

// FetchUser retrieves a user profile by id.
func (c *Client) FetchUser(ctx context.Context, userID int64) (*User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload User
	if err := c.do(ctx, http.MethodGet, "/users/"+formatID(userID), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchUserGifts retrieves a user's wishlist by id.
func (c *Client) FetchUserGifts(ctx context.Context, userID int64) ([]Gift, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Gift
	if err := c.do(ctx, http.MethodGet, "/users/"+formatID(userID)+"/gifts", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// CreateGift adds a gift to the signed-in user's wishlist.
func (c *Client) CreateGift(ctx context.Context, draft GiftDraft) (*Gift, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Gift
	if err := c.do(ctx, http.MethodPost, "/gifts", draft, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DeleteGift removes a gift by id. The service answers 204.
func (c *Client) DeleteGift(ctx context.Context, giftID int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, "/gifts/"+formatID(giftID), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(credentialHeader, c.initData)

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if dest == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError extracts the server's detail message when the error body
// carries one, falling back to a generic status-based message.
func decodeError(resp *http.Response) *Error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP %d", resp.StatusCode),
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && strings.TrimSpace(body.Detail) != "" {
		apiErr.Message = body.Detail
	}
	return apiErr
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("base url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
