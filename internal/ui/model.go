package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/telewish/telewish/internal/api"
	"github.com/telewish/telewish/internal/order"
	"github.com/telewish/telewish/internal/prefs"
	"github.com/telewish/telewish/internal/state"
)

// screen is the coarse lifecycle phase: a loading view at bootstrap, the
// main tabbed view afterwards, or a terminal error view.
type screen int

const (
	screenLoading screen = iota
	screenMain
	screenFatal
)

// tab names the primary views. Exactly one is active at a time.
type tab int

const (
	tabProfile tab = iota
	tabFriends
	tabRequests
	tabFriendProfile
)

// overlay names the modal views that stack on top of the active tab
// without deactivating it.
type overlay int

const (
	overlayNone overlay = iota
	overlayAddGift
	overlayAddFriend
	overlayConfirm
	overlayNotice
	overlayHelp
)

// confirmKind identifies which destructive action a confirm dialog gates.
type confirmKind int

const (
	confirmDeleteGift confirmKind = iota
	confirmDeleteFriend
)

// pendingConfirm holds a destructive action awaiting explicit
// confirmation. It is dispatched only on confirm; dismissal discards it.
type pendingConfirm struct {
	kind     confirmKind
	targetID int64
	title    string
	message  string
}

type notice struct {
	title   string
	message string
	isError bool
}

// validationError is a pre-check failure caught before any network call.
type validationError string

func (e validationError) Error() string { return string(e) }

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	Gateway   api.Gateway
	Store     *state.Store
	Theme     Theme
	PrefsPath string
	Prefs     prefs.Prefs
	// FatalErr pre-empts bootstrap: when set the UI starts on the
	// terminal error view (e.g. missing session credential).
	FatalErr string
}

// Model is the Bubble Tea model for the telewish UI.
type Model struct {
	ctx     context.Context
	gateway api.Gateway
	store   *state.Store

	theme  Theme
	styles Styles
	keys   keyMap

	prefsPath string
	prefs     prefs.Prefs

	width  int
	height int

	screen  screen
	tab     tab
	overlay overlay

	// busy serializes mutating actions: while one is in flight the UI
	// rejects starting another.
	busy bool

	fatalErr string

	giftIndex    int
	friendIndex  int
	requestIndex int

	giftForm   giftForm
	friendForm friendForm

	confirm pendingConfirm
	notice  notice
}

// New builds the UI model. The store's sort preferences are seeded from
// the persisted prefs.
func New(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	st := opts.Store
	if st == nil {
		st = state.New()
	}
	st.SetMyGiftsSort(order.Parse(opts.Prefs.MyGiftsSort))
	st.SetFriendGiftsSort(order.Parse(opts.Prefs.FriendGiftsSort))

	m := &Model{
		ctx:       ctx,
		gateway:   opts.Gateway,
		store:     st,
		theme:     opts.Theme,
		styles:    opts.Theme.Styles(),
		keys:      DefaultKeyMap(),
		prefsPath: opts.PrefsPath,
		prefs:     opts.Prefs,
		screen:    screenLoading,
	}
	if opts.FatalErr != "" {
		m.screen = screenFatal
		m.fatalErr = opts.FatalErr
	}
	return m
}

// Run starts the UI and blocks until the user quits or ctx is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Init issues the bootstrap command unless startup already failed.
func (m *Model) Init() tea.Cmd {
	if m.screen == screenFatal {
		return nil
	}
	return m.bootstrapCmd()
}

// Messages carrying authoritative re-fetch results. Each mutating
// action produces exactly one of these on success; Update assigns the
// payload into the store and acknowledges.

type bootstrapDoneMsg struct {
	user     *api.User
	friends  []api.User
	requests []api.FriendRequest
}

type bootstrapFailedMsg struct {
	err error
}

// wishlistRefreshedMsg follows add-gift and delete-gift: the current
// user (with the embedded wishlist) re-fetched after the mutation.
type wishlistRefreshedMsg struct {
	user   *api.User
	notice string
}

// requestsResolvedMsg follows accept (friends re-fetched too) and
// reject (pending only).
type requestsResolvedMsg struct {
	requests    []api.FriendRequest
	friends     []api.User
	withFriends bool
	notice      string
}

type friendsRefreshedMsg struct {
	friends []api.User
	notice  string
}

type friendRequestSentMsg struct{}

// friendProfileMsg carries the viewed friend and their wishlist as an
// atomic pair; no render ever sees one without the other.
type friendProfileMsg struct {
	friend *api.User
	gifts  []api.Gift
}

type actionFailedMsg struct {
	err error
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case bootstrapDoneMsg:
		m.store.SetCurrentUser(msg.user)
		m.store.SetFriends(msg.friends)
		m.store.SetRequests(msg.requests)
		m.screen = screenMain
		m.tab = tabProfile
		return m, nil

	case bootstrapFailedMsg:
		m.screen = screenFatal
		m.fatalErr = msg.err.Error()
		return m, nil

	case wishlistRefreshedMsg:
		m.busy = false
		m.store.SetCurrentUser(msg.user)
		m.clampSelections()
		m.showNotice("Success", msg.notice, false)
		return m, nil

	case requestsResolvedMsg:
		m.busy = false
		m.store.SetRequests(msg.requests)
		if msg.withFriends {
			m.store.SetFriends(msg.friends)
		}
		m.clampSelections()
		m.showNotice("Success", msg.notice, false)
		return m, nil

	case friendsRefreshedMsg:
		m.busy = false
		m.store.SetFriends(msg.friends)
		m.clampSelections()
		m.showNotice("Success", msg.notice, false)
		return m, nil

	case friendRequestSentMsg:
		m.busy = false
		m.showNotice("Success", "Friend request sent", false)
		return m, nil

	case friendProfileMsg:
		m.busy = false
		m.store.SetFriendProfile(msg.friend, msg.gifts)
		m.tab = tabFriendProfile
		return m, nil

	case actionFailedMsg:
		m.busy = false
		m.showNotice("Error", msg.err.Error(), true)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The terminal error view only exits.
	if m.screen == screenFatal {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Quit) && m.overlay == overlayNone {
		return m, tea.Quit
	}
	if m.screen == screenLoading {
		return m, nil
	}

	if m.overlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
	case key.Matches(msg, m.keys.Tab):
		m.cycleTab(1)
	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleTab(-1)
	case key.Matches(msg, m.keys.TabProfile):
		m.tab = tabProfile
	case key.Matches(msg, m.keys.TabFriends):
		m.tab = tabFriends
	case key.Matches(msg, m.keys.TabRequests):
		m.tab = tabRequests
	case key.Matches(msg, m.keys.Escape):
		if m.tab == tabFriendProfile {
			// Navigating away clears the profile implicitly; the
			// stored pair is simply replaced on the next visit.
			m.tab = tabFriends
		}
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Sort):
		m.cycleSort()
	case key.Matches(msg, m.keys.CopyID):
		if m.tab == tabProfile {
			m.copyOwnID()
		}
	case key.Matches(msg, m.keys.Open):
		return m, m.handleOpen()
	case key.Matches(msg, m.keys.Add):
		return m, m.handleAdd()
	case key.Matches(msg, m.keys.Reject):
		if m.tab == tabRequests {
			return m, m.startRejectRequest()
		}
	case key.Matches(msg, m.keys.Delete):
		m.startDelete()
	}
	return m, nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayNotice:
		// Any key acknowledges.
		m.overlay = overlayNone
		return m, nil

	case overlayHelp:
		m.overlay = overlayNone
		return m, nil

	case overlayConfirm:
		return m.handleConfirmKey(msg)

	case overlayAddGift:
		return m.handleGiftFormKey(msg)

	case overlayAddFriend:
		return m.handleFriendFormKey(msg)
	}
	return m, nil
}

// handleConfirmKey resolves the confirm dialog: the dialog is a
// suspension point and the gated call proceeds only on explicit
// confirmation, never on dismissal.
func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.overlay = overlayNone
		pending := m.confirm
		m.confirm = pendingConfirm{}
		return m, m.dispatchConfirmed(pending)
	case "n", "esc":
		m.overlay = overlayNone
		m.confirm = pendingConfirm{}
	}
	return m, nil
}

func (m *Model) dispatchConfirmed(pending pendingConfirm) tea.Cmd {
	if !m.beginAction() {
		return nil
	}
	switch pending.kind {
	case confirmDeleteGift:
		return m.deleteGiftCmd(pending.targetID)
	case confirmDeleteFriend:
		return m.deleteFriendCmd(pending.targetID)
	}
	m.busy = false
	return nil
}

func (m *Model) handleOpen() tea.Cmd {
	switch m.tab {
	case tabFriends:
		return m.startOpenFriendProfile()
	case tabRequests:
		return m.startAcceptRequest()
	}
	return nil
}

func (m *Model) handleAdd() tea.Cmd {
	switch m.tab {
	case tabProfile:
		m.openGiftForm()
	case tabFriends:
		m.openFriendForm()
	case tabRequests:
		return m.startAcceptRequest()
	}
	return nil
}

func (m *Model) startOpenFriendProfile() tea.Cmd {
	friends := m.store.Friends()
	if m.friendIndex >= len(friends) {
		return nil
	}
	if !m.beginAction() {
		return nil
	}
	return m.openFriendProfileCmd(friends[m.friendIndex].ID)
}

func (m *Model) startAcceptRequest() tea.Cmd {
	requests := m.store.Requests()
	if m.requestIndex >= len(requests) {
		return nil
	}
	if !m.beginAction() {
		return nil
	}
	return m.acceptRequestCmd(requests[m.requestIndex].SenderID)
}

func (m *Model) startRejectRequest() tea.Cmd {
	requests := m.store.Requests()
	if m.requestIndex >= len(requests) {
		return nil
	}
	if !m.beginAction() {
		return nil
	}
	return m.rejectRequestCmd(requests[m.requestIndex].SenderID)
}

// startDelete raises the destructive-confirm dialog for the selected
// gift or friend.
func (m *Model) startDelete() {
	switch m.tab {
	case tabProfile:
		cards := m.sortedGiftIDs()
		if m.giftIndex >= len(cards) {
			return
		}
		m.confirm = pendingConfirm{
			kind:     confirmDeleteGift,
			targetID: cards[m.giftIndex],
			title:    "Delete gift?",
			message:  "Are you sure you want to delete this gift from the wishlist?",
		}
		m.overlay = overlayConfirm
	case tabFriends:
		friends := m.store.Friends()
		if m.friendIndex >= len(friends) {
			return
		}
		m.confirm = pendingConfirm{
			kind:     confirmDeleteFriend,
			targetID: friends[m.friendIndex].ID,
			title:    "Remove friend?",
			message:  "Are you sure you want to remove this user from your friends?",
		}
		m.overlay = overlayConfirm
	}
}

// sortedGiftIDs returns own gift ids in display order, so the selection
// index maps onto the rendered grid.
func (m *Model) sortedGiftIDs() []int64 {
	sorted := order.Gifts(m.store.MyGifts(), m.store.MyGiftsSort())
	ids := make([]int64, len(sorted))
	for i, g := range sorted {
		ids[i] = g.ID
	}
	return ids
}

// cycleSort advances the sort preference for whichever gift view is
// active. This is pure UI state: it re-renders from already-held data
// and never touches the network.
func (m *Model) cycleSort() {
	switch m.tab {
	case tabProfile:
		next := m.store.MyGiftsSort().Cycle()
		m.store.SetMyGiftsSort(next)
		m.prefs.MyGiftsSort = string(next)
	case tabFriendProfile:
		next := m.store.FriendGiftsSort().Cycle()
		m.store.SetFriendGiftsSort(next)
		m.prefs.FriendGiftsSort = string(next)
	default:
		return
	}
	// Best effort: a failed prefs write never interrupts the session.
	_ = prefs.Save(m.prefsPath, m.prefs)
}

// copyOwnID writes the user's numeric ID to the system clipboard. When
// the clipboard is unavailable the notice shows the ID for manual copy.
func (m *Model) copyOwnID() {
	user := m.store.CurrentUser()
	if user == nil {
		return
	}
	id := strconv.FormatInt(user.ID, 10)
	if err := clipboard.WriteAll(id); err != nil {
		m.showNotice("Your ID", id, false)
		return
	}
	m.showNotice("Copied!", "Your ID "+id+" is in the clipboard", false)
}

func (m *Model) cycleTab(delta int) {
	// Friend profile is not part of the rotation; it is reached by
	// opening a friend and left with escape.
	if m.tab == tabFriendProfile {
		m.tab = tabFriends
		return
	}
	next := (int(m.tab) + delta + 3) % 3
	m.tab = tab(next)
}

func (m *Model) moveSelection(delta int) {
	switch m.tab {
	case tabProfile:
		m.giftIndex = clampIndex(m.giftIndex+delta, len(m.store.MyGifts()))
	case tabFriends:
		m.friendIndex = clampIndex(m.friendIndex+delta, len(m.store.Friends()))
	case tabRequests:
		m.requestIndex = clampIndex(m.requestIndex+delta, len(m.store.Requests()))
	}
}

func (m *Model) clampSelections() {
	m.giftIndex = clampIndex(m.giftIndex, len(m.store.MyGifts()))
	m.friendIndex = clampIndex(m.friendIndex, len(m.store.Friends()))
	m.requestIndex = clampIndex(m.requestIndex, len(m.store.Requests()))
}

// beginAction claims the single in-flight slot. A second mutating
// action while one is running is rejected with a notice instead of
// racing the first one's re-fetch.
func (m *Model) beginAction() bool {
	if m.busy {
		m.showNotice("Please wait", "Another action is still in progress", true)
		return false
	}
	m.busy = true
	return true
}

func (m *Model) showNotice(title, message string, isError bool) {
	m.notice = notice{title: title, message: message, isError: isError}
	m.overlay = overlayNotice
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

