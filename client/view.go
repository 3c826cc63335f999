package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245"))

	formStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	faintStyle = lipgloss.NewStyle().
			Faint(true).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	helpStyle = lipgloss.NewStyle().
			Faint(true).
			MarginTop(1)
)

// View renders the submission form above the report list, wrapped to
// the terminal width.
func (m Model) View() string {
	var b strings.Builder

	formBox, cardBox := formStyle, cardStyle
	noticeOK, noticeErr := successStyle, errorStyle
	help := helpStyle
	if m.width > 4 {
		// Bordered boxes gain two cells of border on top of their
		// content width.
		formBox = formBox.Width(m.width - 2)
		cardBox = cardBox.Width(m.width - 2)
		noticeOK = noticeOK.Width(m.width)
		noticeErr = noticeErr.Width(m.width)
		help = help.Width(m.width)
	}

	b.WriteString(titleStyle.Render("Queue Reporter"))
	b.WriteString("\n")

	form := []string{
		labelStyle.Render("Location (auto-detected): ") + m.location,
		labelStyle.Render("Expected Wait Time (HH:MM): ") + m.wait.View(),
		labelStyle.Render("Name or ID: ") + m.name.View(),
		labelStyle.Render("Date: ") + m.date,
	}
	b.WriteString(formBox.Render(strings.Join(form, "\n")))
	b.WriteString("\n")

	if m.notice != "" {
		style := noticeOK
		if m.noticeIsErr {
			style = noticeErr
		}
		b.WriteString(style.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("Submitted Reports"))
	b.WriteString("\n")
	if m.haveFetched {
		b.WriteString(faintStyle.Render("Last updated: " + m.lastUpdated.Format("15:04:05")))
		b.WriteString("\n")
	}

	if len(m.reports) == 0 {
		b.WriteString("No reports yet\n")
	} else {
		now := m.now()
		for _, r := range m.reports {
			card := strings.Join([]string{
				labelStyle.Render(r.Location),
				"Reported By: " + orDefault(r.ReporterName, "Anonymous"),
				"Expected Wait: " + r.Minutes,
				fmt.Sprintf("Report: %d", r.Report),
				"Date: " + orNA(r.Date),
				"Reported: " + TimeAgo(r.Timestamp, now),
			}, "\n")
			b.WriteString(cardBox.Render(card))
			b.WriteString("\n")
		}
	}

	b.WriteString(help.Render("tab: switch field • enter: submit • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func orNA(s string) string {
	return orDefault(s, "N/A")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
