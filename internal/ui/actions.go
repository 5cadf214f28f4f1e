package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/telewish/telewish/internal/api"
)

// Every mutating action has the same shape: gateway call, then an
// authoritative re-fetch of the collections the action touched, carried
// back in one message. On any failure nothing is assigned into the
// store; the error surfaces as an acknowledgment with its message.
// Once issued a command always runs to completion; there is no
// cancellation.

// bootstrapCmd authenticates and performs the initial full load.
func (m *Model) bootstrapCmd() tea.Cmd {
	gw := m.gateway
	ctx := m.ctx
	return func() tea.Msg {
		user, err := gw.Authenticate(ctx)
		if err != nil {
			return bootstrapFailedMsg{err: err}
		}
		friends, err := gw.FetchFriends(ctx)
		if err != nil {
			return bootstrapFailedMsg{err: err}
		}
		requests, err := gw.FetchPendingRequests(ctx)
		if err != nil {
			return bootstrapFailedMsg{err: err}
		}
		return bootstrapDoneMsg{user: user, friends: friends, requests: requests}
	}
}

func (m *Model) addGiftCmd(draft api.GiftDraft) tea.Cmd {
	gw := m.gateway
	ctx := m.ctx
	return func() tea.Msg {
		if _, err := gw.CreateGift(ctx, draft); err != nil {
			return actionFailedMsg{err: err}
		}
		user, err := gw.FetchCurrentUser(ctx)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		return wishlistRefreshedMsg{user: user, notice: "Gift added to the wishlist"}
	}
}

func (m *Model) deleteGiftCmd(giftID int64) tea.Cmd {
	gw := m.gateway
	ctx := m.ctx
	return func() tea.Msg {
		if err := gw.DeleteGift(ctx, giftID); err != nil {
			return actionFailedMsg{err: err}
		}
		user, err := gw.FetchCurrentUser(ctx)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		return wishlistRefreshedMsg{user: user, notice: "Gift deleted"}
	}
}

// sendFriendRequestCmd fires the request and nothing else: the sender
// never observes the pending request, so there is no re-fetch.
func (m *Model) sendFriendRequestCmd(receiverID int64) tea.Cmd {
	gw := m.gateway
	ctx := m.ctx
	return func() tea.Msg {
		if err := gw.SendFriendRequest(ctx, receiverID); err != nil {
			return actionFailedMsg{err: err}
		}
		return friendRequestSentMsg{}
	}
}

func (m *Model) acceptRequestCmd(senderID int64) tea.Cmd {
	gw := m.gateway
	ctx := m.ctx
	return func() tea.Msg {
		if err := gw.AcceptFriendRequest(ctx, senderID); err != nil {
			return actionFailedMsg{err: err}
		}
		requests, err := gw.FetchPendingRequests(ctx)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		friends, err := gw.FetchFriends(ctx)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		return requestsResolvedMsg{
			requests:    requests,
			friends:     friends,
			withFriends: true,
			notice:      "Request accepted, user added to friends",
		}
	}
}

func (m *Model) rejectRequestCmd(senderID int64) tea.Cmd {
	gw := m.gateway
	ctx := m.ctx
	return func() tea.Msg {
		if err := gw.RejectFriendRequest(ctx, senderID); err != nil {
			return actionFailedMsg{err: err}
		}
		requests, err := gw.FetchPendingRequests(ctx)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		return requestsResolvedMsg{requests: requests, notice: "Request rejected"}
	}
}

func (m *Model) deleteFriendCmd(friendID int64) tea.Cmd {
	gw := m.gateway
	ctx := m.ctx
	return func() tea.Msg {
		if err := gw.DeleteFriend(ctx, friendID); err != nil {
			return actionFailedMsg{err: err}
		}
		friends, err := gw.FetchFriends(ctx)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		return friendsRefreshedMsg{friends: friends, notice: "User removed from friends"}
	}
}

// openFriendProfileCmd fetches the friend and their wishlist together;
// the pair is delivered in one message and assigned atomically.
func (m *Model) openFriendProfileCmd(friendID int64) tea.Cmd {
	gw := m.gateway
	ctx := m.ctx
	return func() tea.Msg {
		friend, err := gw.FetchUser(ctx, friendID)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		gifts, err := gw.FetchUserGifts(ctx, friendID)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		return friendProfileMsg{friend: friend, gifts: gifts}
	}
}
