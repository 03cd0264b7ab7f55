package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/andre0707/pfterm/internal/pf"
	"github.com/andre0707/pfterm/internal/timefmt"
)

// summaryHeight is the number of lines the view uses besides the entry table.
const summaryHeight = 12

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.current == viewLogin {
		return m.loginView()
	}
	return m.dayView()
}

func (m Model) loginView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pfterm — sign in"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab: next field • enter: sign in • esc: back • ctrl+c: quit"))
	return boxStyle.Render(b.String())
}

func (m Model) dayView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pfterm — " + timefmt.Day(m.date)))
	if m.loading {
		b.WriteString(helpStyle.Render("  reading..."))
	}
	b.WriteString("\n\n")

	totals := m.snap.Totals
	unbooked := "-"
	if totals.HasUnbooked {
		unbooked = timefmt.Duration(totals.Unbooked)
	}
	rows := []struct{ label, value string }{
		{"Login", timefmt.Clock(totals.Login)},
		{"Logout", timefmt.Clock(totals.Logout)},
		{"Break", timefmt.Minutes(totals.Break)},
		{"Unbooked", unbooked},
		{"Booked", fmt.Sprintf("%s (billable %s)", timefmt.HHMM(totals.Total), timefmt.HHMM(totals.Billable))},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("←/→: change day • t: today • r: reload • i: sign in • q: quit"))
	return b.String()
}

func newEntryTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Duration", Width: 9},
		{Title: "Billable", Width: 9},
		{Title: "Ticket", Width: 8},
		{Title: "Description", Width: 48},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)
	return t
}

func entryRows(entries []pf.TimeEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		ticket := "-"
		if e.TicketID != 0 {
			ticket = strconv.Itoa(e.TicketID)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(e.ID),
			timefmt.HHMM(e.Duration),
			timefmt.HHMM(e.Billable),
			ticket,
			e.Description,
		})
	}
	return rows
}
