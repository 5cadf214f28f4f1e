package api

import (
	"strings"
	"testing"
	"time"
)

func TestUser_DisplayName(t *testing.T) {
	u := User{FirstName: "Ann"}
	if got := u.DisplayName(); got != "Ann" {
		t.Fatalf("DisplayName = %q, want Ann", got)
	}
	u.LastName = "Lee"
	if got := u.DisplayName(); got != "Ann Lee" {
		t.Fatalf("DisplayName = %q, want Ann Lee", got)
	}
}

func TestUser_AvatarFallback(t *testing.T) {
	u := User{FirstName: "Ann Marie", AvatarURL: "https://cdn.example/a.png"}
	if got := u.Avatar(); got != "https://cdn.example/a.png" {
		t.Fatalf("Avatar = %q, want explicit url", got)
	}

	u.AvatarURL = ""
	got := u.Avatar()
	if !strings.Contains(got, "ui-avatars.com") {
		t.Fatalf("Avatar = %q, want generated fallback", got)
	}
	if !strings.Contains(got, "name=Ann+Marie") {
		t.Fatalf("Avatar = %q, want first name escaped into query", got)
	}
}

func TestGift_ParsedCreatedAt(t *testing.T) {
	g := Gift{CreatedAt: "2025-06-01T10:30:00Z"}
	want := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	if got := g.ParsedCreatedAt(); !got.Equal(want) {
		t.Fatalf("ParsedCreatedAt = %v, want %v", got, want)
	}

	g = Gift{CreatedAt: ""}
	if got := g.ParsedCreatedAt(); !got.IsZero() {
		t.Fatalf("ParsedCreatedAt(empty) = %v, want zero", got)
	}

	g = Gift{CreatedAt: "2025-06-01 10:30:00"}
	if got := g.ParsedCreatedAt(); got.IsZero() {
		t.Fatal("ParsedCreatedAt(fallback layout) = zero, want parsed")
	}
}
