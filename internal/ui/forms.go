package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/telewish/telewish/internal/api"
)

// giftForm collects the fields for a new gift. Only the name is
// required; price and wish rate must be numeric when present.
type giftForm struct {
	inputs []textinput.Model
	focus  int
}

const (
	giftFieldName = iota
	giftFieldURL
	giftFieldPrice
	giftFieldWishRate
	giftFieldNote
	giftFieldCount
)

func newGiftForm() giftForm {
	labels := [giftFieldCount]string{"Name", "URL", "Price", "Wish rate (1-10)", "Note"}
	inputs := make([]textinput.Model, giftFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = labels[i]
		in.CharLimit = 200
		inputs[i] = in
	}
	inputs[giftFieldName].Focus()
	return giftForm{inputs: inputs}
}

func (f *giftForm) setFocus(i int) {
	f.focus = (i + giftFieldCount) % giftFieldCount
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *giftForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// draft validates the form and builds the creation payload.
func (f *giftForm) draft(userID int64) (api.GiftDraft, error) {
	name := f.value(giftFieldName)
	if name == "" {
		return api.GiftDraft{}, validationError("Gift name is required")
	}
	draft := api.GiftDraft{
		UserID: userID,
		Name:   name,
		URL:    f.value(giftFieldURL),
		Note:   f.value(giftFieldNote),
	}
	if raw := f.value(giftFieldPrice); raw != "" {
		price, err := strconv.Atoi(raw)
		if err != nil {
			return api.GiftDraft{}, validationError("Price must be a number")
		}
		draft.Price = &price
	}
	if raw := f.value(giftFieldWishRate); raw != "" {
		rate, err := strconv.Atoi(raw)
		if err != nil {
			return api.GiftDraft{}, validationError("Wish rate must be a number")
		}
		draft.WishRate = &rate
	}
	return draft, nil
}

// friendForm collects the target ID for a friend request.
type friendForm struct {
	input textinput.Model
}

func newFriendForm() friendForm {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Friend ID"
	in.CharLimit = 20
	in.Focus()
	return friendForm{input: in}
}

// targetID validates the entered ID, including the self-add pre-check.
// Pre-check failures surface before any network call is made.
func (f *friendForm) targetID(ownID int64) (int64, error) {
	raw := strings.TrimSpace(f.input.Value())
	if raw == "" {
		return 0, validationError("Friend ID is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validationError("Friend ID must be a number")
	}
	if id == ownID {
		return 0, validationError("You can not add yourself to the friend list")
	}
	return id, nil
}

func (m *Model) openGiftForm() {
	m.giftForm = newGiftForm()
	m.overlay = overlayAddGift
}

func (m *Model) openFriendForm() {
	m.friendForm = newFriendForm()
	m.overlay = overlayAddFriend
}

func (m *Model) handleGiftFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "tab", "down":
		m.giftForm.setFocus(m.giftForm.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.giftForm.setFocus(m.giftForm.focus - 1)
		return m, nil
	case "enter":
		return m, m.submitGiftForm()
	}

	var cmd tea.Cmd
	m.giftForm.inputs[m.giftForm.focus], cmd = m.giftForm.inputs[m.giftForm.focus].Update(msg)
	return m, cmd
}

func (m *Model) submitGiftForm() tea.Cmd {
	user := m.store.CurrentUser()
	if user == nil {
		return nil
	}
	draft, err := m.giftForm.draft(user.ID)
	if err != nil {
		m.showNotice("Error", err.Error(), true)
		return nil
	}
	if !m.beginAction() {
		return nil
	}
	m.overlay = overlayNone
	return m.addGiftCmd(draft)
}

func (m *Model) handleFriendFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "enter":
		return m, m.submitFriendForm()
	}

	var cmd tea.Cmd
	m.friendForm.input, cmd = m.friendForm.input.Update(msg)
	return m, cmd
}

func (m *Model) submitFriendForm() tea.Cmd {
	user := m.store.CurrentUser()
	if user == nil {
		return nil
	}
	id, err := m.friendForm.targetID(user.ID)
	if err != nil {
		m.showNotice("Error", err.Error(), true)
		return nil
	}
	if !m.beginAction() {
		return nil
	}
	m.overlay = overlayNone
	return m.sendFriendRequestCmd(id)
}
