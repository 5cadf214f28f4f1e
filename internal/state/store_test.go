package state

import (
	"testing"

	"github.com/telewish/telewish/internal/api"
	"github.com/telewish/telewish/internal/order"
)

func TestStore_CurrentUserCarriesGiftsFromSameFetch(t *testing.T) {
	s := New()

	s.SetCurrentUser(&api.User{ID: 7, FirstName: "Ann", Gifts: []api.Gift{{ID: 1, Name: "Book"}}})

	user := s.CurrentUser()
	if user == nil || user.ID != 7 {
		t.Fatalf("CurrentUser = %#v, want id=7", user)
	}
	gifts := s.MyGifts()
	if len(gifts) != 1 || gifts[0].Name != "Book" {
		t.Fatalf("MyGifts = %#v, want the embedded wishlist", gifts)
	}
}

func TestStore_AccessorsReturnIndependentCopies(t *testing.T) {
	s := New()
	s.SetCurrentUser(&api.User{ID: 7, Gifts: []api.Gift{{ID: 1}}})
	s.SetFriends([]api.User{{ID: 8}})
	s.SetRequests([]api.FriendRequest{{SenderID: 9}})

	gifts := s.MyGifts()
	gifts[0].ID = 999
	if s.MyGifts()[0].ID != 1 {
		t.Fatal("MyGifts should clone; stored gift changed via returned slice")
	}

	friends := s.Friends()
	friends[0].ID = 999
	if s.Friends()[0].ID != 8 {
		t.Fatal("Friends should clone; stored friend changed via returned slice")
	}

	requests := s.Requests()
	requests[0].SenderID = 999
	if s.Requests()[0].SenderID != 9 {
		t.Fatal("Requests should clone; stored request changed via returned slice")
	}

	user := s.CurrentUser()
	user.Gifts[0].ID = 999
	if s.MyGifts()[0].ID != 1 {
		t.Fatal("CurrentUser should deep-clone the embedded wishlist")
	}
}

func TestStore_SettersOwnTheirInput(t *testing.T) {
	s := New()

	in := []api.User{{ID: 8, FirstName: "Bob"}}
	s.SetFriends(in)
	in[0].FirstName = "Mallory"
	if s.Friends()[0].FirstName != "Bob" {
		t.Fatal("SetFriends should clone its input")
	}
}

func TestStore_FriendProfileAssignedAsPair(t *testing.T) {
	s := New()

	s.SetFriendProfile(&api.User{ID: 8, FirstName: "Bob"}, []api.Gift{{ID: 3, UserID: 8}})

	friend := s.SelectedFriend()
	gifts := s.SelectedFriendGifts()
	if friend == nil || friend.ID != 8 {
		t.Fatalf("SelectedFriend = %#v, want id=8", friend)
	}
	if len(gifts) != 1 || gifts[0].UserID != 8 {
		t.Fatalf("SelectedFriendGifts = %#v, want the same friend's gifts", gifts)
	}

	// Re-assignment replaces both halves together.
	s.SetFriendProfile(&api.User{ID: 9}, nil)
	if s.SelectedFriend().ID != 9 {
		t.Fatalf("SelectedFriend = %#v, want id=9 after reassignment", s.SelectedFriend())
	}
	if got := s.SelectedFriendGifts(); got != nil {
		t.Fatalf("SelectedFriendGifts = %#v, want nil after reassignment", got)
	}
}

func TestStore_SortPreferencesAreIndependent(t *testing.T) {
	s := New()

	if s.MyGiftsSort() != order.ByDate || s.FriendGiftsSort() != order.ByDate {
		t.Fatalf("defaults = %v/%v, want date/date", s.MyGiftsSort(), s.FriendGiftsSort())
	}

	s.SetMyGiftsSort(order.ByPrice)
	if s.MyGiftsSort() != order.ByPrice {
		t.Fatalf("MyGiftsSort = %v, want price", s.MyGiftsSort())
	}
	if s.FriendGiftsSort() != order.ByDate {
		t.Fatalf("FriendGiftsSort = %v, want date untouched", s.FriendGiftsSort())
	}

	s.SetFriendGiftsSort(order.ByWishRate)
	if s.MyGiftsSort() != order.ByPrice {
		t.Fatalf("MyGiftsSort = %v, want price untouched", s.MyGiftsSort())
	}
}

func TestStore_NilUserBeforeBootstrap(t *testing.T) {
	s := New()
	if s.CurrentUser() != nil {
		t.Fatal("CurrentUser before bootstrap should be nil")
	}
	if s.MyGifts() != nil {
		t.Fatal("MyGifts before bootstrap should be nil")
	}
}
