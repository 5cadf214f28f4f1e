package state

import (
	"github.com/telewish/telewish/internal/api"
	"github.com/telewish/telewish/internal/order"
)

// Store is the single source of truth for one signed-in session: the
// current user (with their embedded wishlist), the friend graph, the
// currently viewed friend, and the two sort preferences. It is scoped
// to one session and passed explicitly to its consumers, never held as
// a package global.
//
// All mutation happens on the program's single update goroutine, so the
// store carries no locking. Setters replace collections wholesale with
// freshly fetched authoritative data and clone slices both ways, so the
// store exclusively owns everything it holds.
type Store struct {
	user     *api.User
	friends  []api.User
	requests []api.FriendRequest

	selectedFriend      *api.User
	selectedFriendGifts []api.Gift

	myGiftsSort     order.By
	friendGiftsSort order.By
}

// New returns a store with default sort preferences.
func New() *Store {
	return &Store{
		myGiftsSort:     order.ByDate,
		friendGiftsSort: order.ByDate,
	}
}

// SetCurrentUser replaces the signed-in user and, with it, the "my
// gifts" collection embedded in the same payload. A user and their
// gifts always come from the same fetch.
func (s *Store) SetCurrentUser(user *api.User) {
	s.user = cloneUser(user)
}

// CurrentUser returns a copy of the signed-in user, or nil before
// bootstrap completes.
func (s *Store) CurrentUser() *api.User {
	return cloneUser(s.user)
}

// MyGifts returns a copy of the signed-in user's wishlist.
func (s *Store) MyGifts() []api.Gift {
	if s.user == nil {
		return nil
	}
	return cloneGifts(s.user.Gifts)
}

// SetFriends replaces the accepted friend list.
func (s *Store) SetFriends(friends []api.User) {
	s.friends = cloneUsers(friends)
}

// Friends returns a copy of the accepted friend list.
func (s *Store) Friends() []api.User {
	return cloneUsers(s.friends)
}

// SetRequests replaces the pending incoming request set.
func (s *Store) SetRequests(requests []api.FriendRequest) {
	s.requests = cloneRequests(requests)
}

// Requests returns a copy of the pending incoming request set.
func (s *Store) Requests() []api.FriendRequest {
	return cloneRequests(s.requests)
}

// SetFriendProfile assigns the viewed friend and their wishlist as a
// pair. This is the only way to set either: a friend is never shown
// with another friend's gifts.
func (s *Store) SetFriendProfile(friend *api.User, gifts []api.Gift) {
	s.selectedFriend = cloneUser(friend)
	s.selectedFriendGifts = cloneGifts(gifts)
}

// SelectedFriend returns a copy of the viewed friend, or nil.
func (s *Store) SelectedFriend() *api.User {
	return cloneUser(s.selectedFriend)
}

// SelectedFriendGifts returns a copy of the viewed friend's wishlist.
func (s *Store) SelectedFriendGifts() []api.Gift {
	return cloneGifts(s.selectedFriendGifts)
}

// MyGiftsSort returns the sort preference for the own-gifts view.
func (s *Store) MyGiftsSort() order.By {
	return s.myGiftsSort
}

// SetMyGiftsSort records the sort preference for the own-gifts view.
// Sort preferences are pure UI state and never touch the network.
func (s *Store) SetMyGiftsSort(by order.By) {
	s.myGiftsSort = by
}

// FriendGiftsSort returns the sort preference for the friend-gifts view.
func (s *Store) FriendGiftsSort() order.By {
	return s.friendGiftsSort
}

// SetFriendGiftsSort records the sort preference for the friend-gifts view.
func (s *Store) SetFriendGiftsSort(by order.By) {
	s.friendGiftsSort = by
}

func cloneUser(user *api.User) *api.User {
	if user == nil {
		return nil
	}
	dup := *user
	dup.Gifts = cloneGifts(user.Gifts)
	return &dup
}

func cloneUsers(users []api.User) []api.User {
	if len(users) == 0 {
		return nil
	}
	dup := make([]api.User, len(users))
	for i := range users {
		dup[i] = *cloneUser(&users[i])
	}
	return dup
}

func cloneGifts(gifts []api.Gift) []api.Gift {
	if len(gifts) == 0 {
		return nil
	}
	dup := make([]api.Gift, len(gifts))
	copy(dup, gifts)
	return dup
}

func cloneRequests(requests []api.FriendRequest) []api.FriendRequest {
	if len(requests) == 0 {
		return nil
	}
	dup := make([]api.FriendRequest, len(requests))
	copy(dup, requests)
	return dup
}
