package view

import (
	"strconv"

	"github.com/telewish/telewish/internal/api"
	"github.com/telewish/telewish/internal/order"
	"github.com/telewish/telewish/internal/state"
)

// Empty-state texts rendered in place of the respective grids.
const (
	EmptyMyGifts     = "No gifts in the wishlist yet"
	EmptyFriendGifts = "This friend has no gifts in their wishlist yet"
	EmptyFriends     = "No friends yet"
	EmptyRequests    = "No incoming friend requests"
)

// ProfileView is the identity block plus a gift sub-view, used for both
// the own profile and a friend's profile.
type ProfileView struct {
	Name      string
	Handle    string // "@username" or "" when unset
	ID        int64
	AvatarURL string
	Gifts     GiftsView
}

// GiftsView is the sorted projection of one gift collection. The sort
// control is present even when the collection is empty.
type GiftsView struct {
	SortBy    order.By
	Empty     bool
	EmptyText string
	Cards     []GiftCard
}

// GiftCard carries the display fields for one gift.
type GiftCard struct {
	ID        int64
	Name      string
	URL       string
	Price     string // formatted, "" when unset
	WishRate  string // "8/10", "" when unset
	Note      string
	AddedOn   string // YYYY-MM-DD, "" when the timestamp is unparseable
	CanDelete bool
}

// FriendsView lists accepted friends.
type FriendsView struct {
	Empty     bool
	EmptyText string
	Cards     []FriendCard
}

// FriendCard carries the display fields for one friend, with a
// click-through to that friend's profile by ID.
type FriendCard struct {
	ID        int64
	Name      string
	Handle    string // "@username" or "ID <n>"
	AvatarURL string
}

// RequestsView lists pending incoming friend requests.
type RequestsView struct {
	Empty     bool
	EmptyText string
	Cards     []RequestCard
}

// RequestCard carries the display fields for one pending request.
type RequestCard struct {
	SenderID int64
	Name     string
	Handle   string // "@username" or "ID <n>"
}

// Profile projects the signed-in user's profile with the "my gifts"
// sub-view. Every card carries a delete affordance.
func Profile(st *state.Store) ProfileView {
	user := st.CurrentUser()
	return profileView(user, st.MyGifts(), st.MyGiftsSort(), EmptyMyGifts, true)
}

// FriendProfile projects the viewed friend's profile. Friend gift cards
// never offer delete.
func FriendProfile(st *state.Store) ProfileView {
	return profileView(st.SelectedFriend(), st.SelectedFriendGifts(), st.FriendGiftsSort(), EmptyFriendGifts, false)
}

// MyGifts projects only the own-gifts sub-view.
func MyGifts(st *state.Store) GiftsView {
	return giftsView(st.MyGifts(), st.MyGiftsSort(), EmptyMyGifts, true)
}

// FriendGifts projects only the friend-gifts sub-view.
func FriendGifts(st *state.Store) GiftsView {
	return giftsView(st.SelectedFriendGifts(), st.FriendGiftsSort(), EmptyFriendGifts, false)
}

// Friends projects the accepted friend list.
func Friends(st *state.Store) FriendsView {
	friends := st.Friends()
	if len(friends) == 0 {
		return FriendsView{Empty: true, EmptyText: EmptyFriends}
	}
	cards := make([]FriendCard, len(friends))
	for i, f := range friends {
		cards[i] = FriendCard{
			ID:        f.ID,
			Name:      f.DisplayName(),
			Handle:    handleOrID(f.Username, f.ID),
			AvatarURL: f.Avatar(),
		}
	}
	return FriendsView{Cards: cards}
}

// Requests projects the pending incoming request set.
func Requests(st *state.Store) RequestsView {
	requests := st.Requests()
	if len(requests) == 0 {
		return RequestsView{Empty: true, EmptyText: EmptyRequests}
	}
	cards := make([]RequestCard, len(requests))
	for i, r := range requests {
		name := r.SenderName
		if name == "" {
			name = "User"
		}
		cards[i] = RequestCard{
			SenderID: r.SenderID,
			Name:     name,
			Handle:   handleOrID(r.SenderUsername, r.SenderID),
		}
	}
	return RequestsView{Cards: cards}
}

func profileView(user *api.User, gifts []api.Gift, by order.By, emptyText string, canDelete bool) ProfileView {
	pv := ProfileView{Gifts: giftsView(gifts, by, emptyText, canDelete)}
	if user == nil {
		return pv
	}
	pv.Name = user.DisplayName()
	if user.Username != "" {
		pv.Handle = "@" + user.Username
	}
	pv.ID = user.ID
	pv.AvatarURL = user.Avatar()
	return pv
}

func giftsView(gifts []api.Gift, by order.By, emptyText string, canDelete bool) GiftsView {
	gv := GiftsView{SortBy: by}
	if len(gifts) == 0 {
		gv.Empty = true
		gv.EmptyText = emptyText
		return gv
	}
	sorted := order.Gifts(gifts, by)
	gv.Cards = make([]GiftCard, len(sorted))
	for i, g := range sorted {
		card := GiftCard{
			ID:        g.ID,
			Name:      g.Name,
			URL:       g.URL,
			Note:      g.Note,
			CanDelete: canDelete,
		}
		if g.Price != nil {
			card.Price = FormatPrice(*g.Price)
		}
		if g.WishRate != nil {
			card.WishRate = strconv.Itoa(*g.WishRate) + "/10"
		}
		if ts := g.ParsedCreatedAt(); !ts.IsZero() {
			card.AddedOn = ts.Format("2006-01-02")
		}
		gv.Cards[i] = card
	}
	return gv
}

// FormatPrice groups digits in thousands, e.g. 1234567 -> "1,234,567".
func FormatPrice(price int) string {
	raw := strconv.Itoa(price)
	sign := ""
	if price < 0 {
		sign = "-"
		raw = raw[1:]
	}
	n := len(raw)
	if n <= 3 {
		return sign + raw
	}
	out := make([]byte, 0, n+(n-1)/3)
	lead := n % 3
	if lead > 0 {
		out = append(out, raw[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, raw[i:i+3]...)
	}
	return sign + string(out)
}

func handleOrID(username string, id int64) string {
	if username != "" {
		return "@" + username
	}
	return "ID " + strconv.FormatInt(id, 10)
}
