package api

import (
	"net/url"
	"time"
)

// User mirrors the payload returned by /users/me and /users/{id}.
// The service embeds the user's wishlist in the same payload, so a
// current-user refresh always carries a consistent gift collection.
type User struct {
	ID        int64   `json:"tg_id"`
	Username  string  `json:"tg_username"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	AvatarURL string  `json:"avatar_url"`
	Gifts     []Gift  `json:"gifts"`
	Birthday  *string `json:"birthday"`
}

// DisplayName joins first and last name, skipping a missing last name.
func (u User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Avatar returns the user's avatar URL, falling back to a generated
// avatar keyed by first name when none is set.
func (u User) Avatar() string {
	if u.AvatarURL != "" {
		return u.AvatarURL
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(u.FirstName) +
		"&size=200&background=0088cc&color=fff"
}

// Gift describes a wishlist entry in transport-friendly form. Gifts are
// immutable from the client's perspective; edits are delete+recreate on
// the server side.
type Gift struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Price     *int   `json:"price"`
	WishRate  *int   `json:"wish_rate"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
}

// ParsedCreatedAt returns the creation timestamp as time.Time when possible.
func (g Gift) ParsedCreatedAt() time.Time {
	return parseTime(g.CreatedAt)
}

// GiftDraft is the payload for creating a gift.
type GiftDraft struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	WishRate *int   `json:"wish_rate,omitempty"`
	Price    *int   `json:"price,omitempty"`
	Note     string `json:"note,omitempty"`
}

// FriendRequest describes a pending incoming request. Accepted or
// rejected requests never appear here; the server removes them from the
// pending set on transition.
type FriendRequest struct {
	SenderID       int64  `json:"sender_tg_id"`
	SenderName     string `json:"sender_name"`
	SenderUsername string `json:"sender_username"`
}

const fallbackTimestampLayout = "2006-01-02 15:04:05"

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(fallbackTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
