package view

import (
	"reflect"
	"testing"

	"github.com/telewish/telewish/internal/api"
	"github.com/telewish/telewish/internal/order"
	"github.com/telewish/telewish/internal/state"
)

func intp(v int) *int { return &v }

func TestMyGifts_EmptyStateKeepsSortControl(t *testing.T) {
	st := state.New()
	st.SetCurrentUser(&api.User{ID: 7, FirstName: "Ann"})
	st.SetMyGiftsSort(order.ByPrice)

	gv := MyGifts(st)
	if !gv.Empty {
		t.Fatal("Empty = false, want true for an empty wishlist")
	}
	if gv.EmptyText != EmptyMyGifts {
		t.Fatalf("EmptyText = %q, want %q", gv.EmptyText, EmptyMyGifts)
	}
	if gv.SortBy != order.ByPrice {
		t.Fatalf("SortBy = %v, want price even when empty", gv.SortBy)
	}
	if len(gv.Cards) != 0 {
		t.Fatalf("Cards = %#v, want none", gv.Cards)
	}
}

func TestMyGifts_CardsAreSortedAndDeletable(t *testing.T) {
	st := state.New()
	st.SetCurrentUser(&api.User{ID: 7, Gifts: []api.Gift{
		{ID: 1, Name: "cheap", Price: intp(100)},
		{ID: 2, Name: "dear", Price: intp(5000)},
		{ID: 3, Name: "unpriced"},
	}})
	st.SetMyGiftsSort(order.ByPrice)

	gv := MyGifts(st)
	got := make([]string, len(gv.Cards))
	for i, c := range gv.Cards {
		got[i] = c.Name
		if !c.CanDelete {
			t.Fatalf("card %q CanDelete = false, want delete affordance on own gifts", c.Name)
		}
	}
	want := []string{"dear", "cheap", "unpriced"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cards = %v, want %v", got, want)
	}
	if gv.Cards[0].Price != "5,000" {
		t.Fatalf("Price = %q, want 5,000", gv.Cards[0].Price)
	}
	if gv.Cards[2].Price != "" {
		t.Fatalf("Price = %q, want empty for unpriced gift", gv.Cards[2].Price)
	}
}

func TestFriendGifts_NeverOfferDelete(t *testing.T) {
	st := state.New()
	st.SetFriendProfile(&api.User{ID: 8}, []api.Gift{{ID: 3, Name: "Kite", WishRate: intp(8)}})

	gv := FriendGifts(st)
	if len(gv.Cards) != 1 {
		t.Fatalf("cards = %#v, want one", gv.Cards)
	}
	if gv.Cards[0].CanDelete {
		t.Fatal("CanDelete = true, want no delete affordance on friend gifts")
	}
	if gv.Cards[0].WishRate != "8/10" {
		t.Fatalf("WishRate = %q, want 8/10", gv.Cards[0].WishRate)
	}
}

func TestProfile_IdentityBlock(t *testing.T) {
	st := state.New()
	st.SetCurrentUser(&api.User{ID: 7, FirstName: "Ann", LastName: "Lee", Username: "annlee"})

	pv := Profile(st)
	if pv.Name != "Ann Lee" {
		t.Fatalf("Name = %q, want Ann Lee", pv.Name)
	}
	if pv.Handle != "@annlee" {
		t.Fatalf("Handle = %q, want @annlee", pv.Handle)
	}
	if pv.ID != 7 {
		t.Fatalf("ID = %d, want 7", pv.ID)
	}
	if pv.AvatarURL == "" {
		t.Fatal("AvatarURL empty, want generated fallback")
	}
}

func TestProfile_IdempotentOverUnchangedState(t *testing.T) {
	st := state.New()
	st.SetCurrentUser(&api.User{ID: 7, FirstName: "Ann", Gifts: []api.Gift{
		{ID: 1, Name: "a", Price: intp(10)},
		{ID: 2, Name: "b"},
	}})

	first := Profile(st)
	second := Profile(st)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Profile not idempotent:\nfirst  %#v\nsecond %#v", first, second)
	}
}

func TestFriends_HandleFallsBackToID(t *testing.T) {
	st := state.New()
	st.SetFriends([]api.User{
		{ID: 8, FirstName: "Bob", Username: "bobby"},
		{ID: 9, FirstName: "Cleo"},
	})

	fv := Friends(st)
	if fv.Empty {
		t.Fatal("Empty = true, want cards")
	}
	if fv.Cards[0].Handle != "@bobby" {
		t.Fatalf("Handle = %q, want @bobby", fv.Cards[0].Handle)
	}
	if fv.Cards[1].Handle != "ID 9" {
		t.Fatalf("Handle = %q, want ID 9", fv.Cards[1].Handle)
	}
}

func TestFriends_EmptyState(t *testing.T) {
	st := state.New()
	fv := Friends(st)
	if !fv.Empty || fv.EmptyText != EmptyFriends {
		t.Fatalf("view = %#v, want empty state %q", fv, EmptyFriends)
	}
}

func TestRequests_UsernameElseID(t *testing.T) {
	st := state.New()
	st.SetRequests([]api.FriendRequest{
		{SenderID: 9, SenderName: "Cleo", SenderUsername: "cleo"},
		{SenderID: 10},
	})

	rv := Requests(st)
	if rv.Cards[0].Handle != "@cleo" {
		t.Fatalf("Handle = %q, want @cleo", rv.Cards[0].Handle)
	}
	if rv.Cards[1].Handle != "ID 10" {
		t.Fatalf("Handle = %q, want ID 10", rv.Cards[1].Handle)
	}
	if rv.Cards[1].Name != "User" {
		t.Fatalf("Name = %q, want generic fallback", rv.Cards[1].Name)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{5000, "5,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Fatalf("FormatPrice(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
