package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/telewish/telewish/internal/view"
)

// View renders the current screen.
func (m *Model) View() string {
	switch m.screen {
	case screenLoading:
		return m.renderCentered(m.styles.Muted.Render("Connecting to telewish..."))
	case screenFatal:
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Danger.Render("Startup failed"),
			"",
			m.styles.Text.Render(m.fatalErr),
			"",
			m.styles.Muted.Render("Press any key to exit"),
		)
		return m.renderCentered(m.styles.Modal.Render(body))
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		m.renderTab(),
		"",
		m.renderFooter(),
	)
	if m.overlay != overlayNone {
		return m.renderOverlay(main)
	}
	return main
}

func (m *Model) renderCentered(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderTabs() string {
	names := []string{"Profile", "Friends", "Requests"}
	parts := make([]string, len(names))
	for i, name := range names {
		if tab(i) == m.tab {
			parts[i] = m.styles.TabActive.Render(name)
		} else {
			parts[i] = m.styles.Tab.Render(name)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if m.tab == tabFriendProfile {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, m.styles.TabActive.Render("Friend"))
	}
	return row
}

func (m *Model) renderTab() string {
	switch m.tab {
	case tabProfile:
		return m.renderProfile(view.Profile(m.store), m.giftIndex)
	case tabFriends:
		return m.renderFriends(view.Friends(m.store))
	case tabRequests:
		return m.renderRequests(view.Requests(m.store))
	case tabFriendProfile:
		return m.renderProfile(view.FriendProfile(m.store), -1)
	}
	return ""
}

func (m *Model) renderProfile(pv view.ProfileView, selected int) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(pv.Name))
	b.WriteString("\n")
	if pv.Handle != "" {
		b.WriteString(m.styles.Muted.Render(pv.Handle))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("ID " + strconv.FormatInt(pv.ID, 10)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("Sort: " + pv.Gifts.SortBy.Label()))
	b.WriteString("\n\n")
	b.WriteString(m.renderGifts(pv.Gifts, selected))
	return b.String()
}

func (m *Model) renderGifts(gv view.GiftsView, selected int) string {
	if gv.Empty {
		return m.styles.Muted.Render(gv.EmptyText)
	}
	cards := make([]string, len(gv.Cards))
	for i, card := range gv.Cards {
		cards[i] = m.renderGiftCard(card, i == selected)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m *Model) renderGiftCard(card view.GiftCard, selected bool) string {
	var lines []string
	lines = append(lines, m.styles.Text.Render(card.Name))
	var meta []string
	if card.Price != "" {
		meta = append(meta, card.Price)
	}
	if card.WishRate != "" {
		meta = append(meta, "wish "+card.WishRate)
	}
	if card.AddedOn != "" {
		meta = append(meta, "added "+card.AddedOn)
	}
	if len(meta) > 0 {
		lines = append(lines, m.styles.Muted.Render(strings.Join(meta, "  ")))
	}
	if card.URL != "" {
		lines = append(lines, m.styles.Muted.Render(card.URL))
	}
	if card.Note != "" {
		lines = append(lines, m.styles.Muted.Render(card.Note))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if selected {
		return m.styles.CardSelected.Render(body)
	}
	return m.styles.Card.Render(body)
}

func (m *Model) renderFriends(fv view.FriendsView) string {
	if fv.Empty {
		return m.styles.Muted.Render(fv.EmptyText)
	}
	cards := make([]string, len(fv.Cards))
	for i, card := range fv.Cards {
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Text.Render(card.Name),
			m.styles.Muted.Render(card.Handle),
		)
		if i == m.friendIndex {
			cards[i] = m.styles.CardSelected.Render(body)
		} else {
			cards[i] = m.styles.Card.Render(body)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m *Model) renderRequests(rv view.RequestsView) string {
	if rv.Empty {
		return m.styles.Muted.Render(rv.EmptyText)
	}
	cards := make([]string, len(rv.Cards))
	for i, card := range rv.Cards {
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Text.Render(card.Name),
			m.styles.Muted.Render(card.Handle),
		)
		if i == m.requestIndex {
			cards[i] = m.styles.CardSelected.Render(body)
		} else {
			cards[i] = m.styles.Card.Render(body)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m *Model) renderFooter() string {
	hints := m.footerHints()
	if m.busy {
		hints = append(hints, "working...")
	}
	return m.styles.Help.Render(strings.Join(hints, "  •  "))
}

func (m *Model) footerHints() []string {
	switch m.tab {
	case tabProfile:
		return []string{"a add gift", "d delete", "s sort", "c copy id", "tab switch", "? help", "q quit"}
	case tabFriends:
		return []string{"enter open", "a add friend", "d remove", "tab switch", "? help", "q quit"}
	case tabRequests:
		return []string{"enter accept", "r reject", "tab switch", "? help", "q quit"}
	case tabFriendProfile:
		return []string{"s sort", "esc back", "? help", "q quit"}
	}
	return nil
}

func (m *Model) renderOverlay(under string) string {
	var body string
	switch m.overlay {
	case overlayNotice:
		title := m.styles.Success.Render(m.notice.title)
		if m.notice.isError {
			title = m.styles.Danger.Render(m.notice.title)
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			m.styles.Text.Render(m.notice.message),
			"",
			m.styles.Muted.Render("Press any key to close"),
		)
	case overlayConfirm:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Danger.Render(m.confirm.title),
			"",
			m.styles.Text.Render(m.confirm.message),
			"",
			m.styles.Muted.Render("y confirm  •  n cancel"),
		)
	case overlayHelp:
		body = m.renderHelp()
	case overlayAddGift:
		body = m.renderGiftForm()
	case overlayAddFriend:
		body = m.renderFriendForm()
	default:
		return under
	}
	modal := m.styles.Modal.Render(body)
	if m.width == 0 || m.height == 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m *Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"1/2/3", "switch to profile / friends / requests"},
		{"tab", "next tab"},
		{"j/k", "move selection"},
		{"enter", "open friend or accept request"},
		{"a", "add gift or friend"},
		{"d", "delete gift or remove friend"},
		{"r", "reject request"},
		{"s", "cycle gift sort"},
		{"c", "copy your ID"},
		{"esc", "close or go back"},
		{"q", "quit"},
	}
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, m.styles.Title.Render("Keys"), "")
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s  %s",
			m.styles.Text.Render(fmt.Sprintf("%-7s", r.key)),
			m.styles.Muted.Render(r.desc)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderGiftForm() string {
	lines := []string{m.styles.Title.Render("Add gift"), ""}
	labels := []string{"Name", "URL", "Price", "Wish rate", "Note"}
	for i, in := range m.giftForm.inputs {
		label := m.styles.Muted.Render(fmt.Sprintf("%-10s", labels[i]))
		lines = append(lines, label+in.View())
	}
	lines = append(lines, "", m.styles.Muted.Render("enter submit  •  tab next field  •  esc cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderFriendForm() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Add friend"),
		"",
		m.styles.Text.Render("Enter your friend's numeric ID:"),
		m.friendForm.input.View(),
		"",
		m.styles.Muted.Render("enter send request  •  esc cancel"),
	)
}
