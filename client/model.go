// Package client is the terminal UI for the queue reporter: a report
// submission form on top of a self-refreshing list of recent reports.
package client

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mohdivswa-71124/Queue-Reporter/config"
	"github.com/Mohdivswa-71124/Queue-Reporter/geocode"
	"github.com/Mohdivswa-71124/Queue-Reporter/models"
)

// Placeholder and fallback strings for the location field.
const (
	locationPending     = "Fetching..."
	locationUnavailable = "Geolocation not supported"
)

// noticeFadeDelay is how long a transient status notice stays visible.
const noticeFadeDelay = 3 * time.Second

// QueueAPI is the server surface the model talks to.
type QueueAPI interface {
	SubmitReport(ctx context.Context, args models.ReportArgs) error
	FetchQueues(ctx context.Context) ([]models.QueueReport, error)
}

// AddressResolver turns a coordinate into a display address.
type AddressResolver interface {
	Resolve(ctx context.Context, lat, lon float64) geocode.Result
}

// refreshTickMsg drives the periodic report list refresh.
type refreshTickMsg struct{}

// queuesMsg delivers the result of a report list fetch.
type queuesMsg struct {
	reports []models.QueueReport
	err     error
}

// submitResultMsg delivers the outcome of a report submission.
type submitResultMsg struct {
	err error
}

// locationMsg delivers the resolved location for the form field.
type locationMsg struct {
	result geocode.Result
}

// noticeFadeMsg clears the status notice it was scheduled for. The id
// guards against an old fade wiping a newer notice.
type noticeFadeMsg struct {
	id int
}

// FocusField identifies which form input has keyboard focus.
type FocusField int

const (
	FocusWait FocusField = iota
	FocusName
)

// Model is the bubbletea model for the queue reporter client.
type Model struct {
	api      QueueAPI
	resolver AddressResolver
	cfg      *config.ClientConfig
	now      func() time.Time

	// Form state. Location and date are read-only; the user edits
	// only the expected wait time and their name.
	location string
	wait     textinput.Model
	name     textinput.Model
	date     string
	openTime string // HH:MM when the form was shown; lower bound for wait.
	focus    FocusField

	// Report list state.
	reports     []models.QueueReport
	lastUpdated time.Time
	haveFetched bool

	notice      string
	noticeIsErr bool
	noticeID    int

	width int
}

// New builds the client model from configuration. The form opens with
// the wait time prefilled to the current clock and the date fixed to
// today.
func New(cfg *config.ClientConfig, api QueueAPI, resolver AddressResolver) Model {
	return NewWithClock(cfg, api, resolver, time.Now)
}

// NewWithClock is New with an injected clock, for tests.
func NewWithClock(cfg *config.ClientConfig, api QueueAPI, resolver AddressResolver, now func() time.Time) Model {
	openedAt := now()

	wait := textinput.New()
	wait.Placeholder = "HH:MM"
	wait.CharLimit = 5
	wait.Width = 20
	wait.SetValue(openedAt.Format("15:04"))
	wait.Focus()

	name := textinput.New()
	name.Placeholder = "Name or Card Number"
	name.Width = 30

	location := locationPending
	if !cfg.HasPosition {
		location = locationUnavailable
	}

	return Model{
		api:      api,
		resolver: resolver,
		cfg:      cfg,
		now:      now,
		location: location,
		wait:     wait,
		name:     name,
		date:     openedAt.Format("2006-01-02"),
		openTime: openedAt.Format("15:04"),
		focus:    FocusWait,
	}
}

// Init issues the first fetch immediately, starts the refresh timer,
// and kicks off location resolution in the background.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchQueues(), m.scheduleRefresh()}
	if m.cfg.HasPosition {
		cmds = append(cmds, m.resolveLocation())
	}
	return tea.Batch(cmds...)
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case refreshTickMsg:
		// Reschedule first so a slow fetch never stalls the cadence.
		return m, tea.Batch(m.scheduleRefresh(), m.fetchQueues())

	case queuesMsg:
		if msg.err != nil {
			// Keep the current view; the loop carries on.
			return m.showError("Could not load queue data.")
		}
		m.reports = msg.reports
		m.lastUpdated = m.now()
		m.haveFetched = true
		return m, nil

	case locationMsg:
		m.location = msg.result.Address
		return m, nil

	case submitResultMsg:
		if msg.err != nil {
			if _, ok := msg.err.(*NetworkError); ok {
				return m.showError("Network error. Could not submit report.")
			}
			return m.showError("Failed to submit report. Try again.")
		}
		m.name.SetValue("")
		next, cmd := m.showSuccess("Report submitted successfully!")
		return next, tea.Batch(cmd, next.fetchQueues())

	case noticeFadeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "shift+tab", "up", "down":
		if m.focus == FocusWait {
			m.focus = FocusName
			m.wait.Blur()
			m.name.Focus()
		} else {
			m.focus = FocusWait
			m.name.Blur()
			m.wait.Focus()
		}
		return m, nil

	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	if m.focus == FocusWait {
		m.wait, cmd = m.wait.Update(msg)
	} else {
		m.name, cmd = m.name.Update(msg)
	}
	return m, cmd
}

// submit validates the required fields, then posts the report. The
// wait time must be a wall-clock HH:MM no earlier than the clock at
// form open.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.wait.Value() == "" || m.name.Value() == "" {
		return m.showError("Expected wait time and name are required.")
	}
	waitAt, err := time.Parse("15:04", m.wait.Value())
	if err != nil {
		return m.showError("Expected wait time must be a valid HH:MM.")
	}
	openAt, _ := time.Parse("15:04", m.openTime)
	if waitAt.Before(openAt) {
		return m.showError("Expected wait time cannot be earlier than " + m.openTime + ".")
	}

	args := models.ReportArgs{
		Location: m.location,
		// Re-rendered from the parsed value so an unpadded entry
		// like 9:30 goes over the wire as 09:30.
		Minutes:  waitAt.Format("15:04"),
		Category: m.name.Value(),
		Date:     m.date,
	}
	api := m.api
	return m, func() tea.Msg {
		return submitResultMsg{err: api.SubmitReport(context.Background(), args)}
	}
}

// fetchQueues returns a command that loads the full report list.
func (m Model) fetchQueues() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		reports, err := api.FetchQueues(context.Background())
		return queuesMsg{reports: reports, err: err}
	}
}

// scheduleRefresh arms the next periodic refresh tick.
func (m Model) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.cfg.RefreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// resolveLocation resolves the configured coordinates off the event
// loop. The resolver degrades to a coordinate fallback on its own, so
// this always produces a usable location string.
func (m Model) resolveLocation() tea.Cmd {
	resolver := m.resolver
	lat, lon := m.cfg.Latitude, m.cfg.Longitude
	return func() tea.Msg {
		return locationMsg{result: resolver.Resolve(context.Background(), lat, lon)}
	}
}

func (m Model) showError(text string) (Model, tea.Cmd) {
	return m.showNotice(text, true)
}

func (m Model) showSuccess(text string) (Model, tea.Cmd) {
	return m.showNotice(text, false)
}

func (m Model) showNotice(text string, isErr bool) (Model, tea.Cmd) {
	m.notice = text
	m.noticeIsErr = isErr
	m.noticeID++
	id := m.noticeID
	return m, tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{id: id}
	})
}
