package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"cadence/internal/habits"
	"cadence/internal/ui/theme"
)

// FocusZone identifies which pane receives navigation keys.
type FocusZone int

const (
	FocusList FocusZone = iota
	FocusDetail
)

const (
	minListHeight = 3

	errorToastDuration  = 10 * time.Second
	createToastDuration = 7 * time.Second
	deleteToastDuration = 5 * time.Second
	copyToastDuration   = 5 * time.Second
	themeToastDuration  = 3 * time.Second
	notesToastDuration  = 5 * time.Second

	backendCallTimeout = 5 * time.Second
)

// Config carries the runtime options for the TUI.
type Config struct {
	Client          habits.Client
	UserID          string
	DBPath          string
	MarkdownStyle   string
	AutoRefresh     bool
	RefreshInterval time.Duration
	Version         string
}

// App is the root Bubble Tea model.
type App struct {
	client        habits.Client
	userID        string
	dbPath        string
	markdownStyle string
	version       string

	width  int
	height int
	ready  bool

	habits    []habits.Habit
	doneToday map[string]bool
	visible   []int // indexes into habits after filtering
	cursor    int   // index into visible

	filterInput textinput.Model
	filtering   bool
	filterText  string

	showDetails bool
	focus       FocusZone
	viewport    viewport.Model
	spinner     spinner.Model
	history     map[string][]habits.Completion

	keys     KeyMap
	showHelp bool

	createOverlay *CreateOverlay
	deleteOverlay *DeleteOverlay
	notesOverlay  *NotesOverlay

	autoRefresh      bool
	refreshInterval  time.Duration
	refreshInFlight  bool
	lastDBModTime    time.Time
	lastRefreshTime  time.Time
	lastRefreshStats string

	lastError       string
	showErrorToast  bool
	errorToastStart time.Time

	createToastVisible bool
	createToastStart   time.Time
	createToastHabitID string
	createToastTitle   string

	deleteToastVisible bool
	deleteToastStart   time.Time
	deleteToastHabitID string

	copyToastVisible bool
	copyToastStart   time.Time
	copiedHabitID    string

	themeToastVisible bool
	themeToastStart   time.Time
	themeToastName    string

	notesToastVisible bool
	notesToastStart   time.Time
	notesToastHabitID string
}

// NewApp builds the root model. The first data load happens in Init.
func NewApp(cfg Config) *App {
	fi := textinput.New()
	fi.Placeholder = "Filter habits"
	fi.Prompt = "/ "
	fi.CharLimit = 60

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &App{
		client:          cfg.Client,
		userID:          cfg.UserID,
		dbPath:          cfg.DBPath,
		markdownStyle:   cfg.MarkdownStyle,
		version:         cfg.Version,
		doneToday:       map[string]bool{},
		history:         map[string][]habits.Completion{},
		filterInput:     fi,
		spinner:         sp,
		keys:            NewKeyMap(),
		autoRefresh:     cfg.AutoRefresh,
		refreshInterval: interval,
	}
}

// Init implements tea.Model.
func (m *App) Init() tea.Cmd {
	cmds := []tea.Cmd{m.forceRefresh(), m.spinner.Tick}
	if m.autoRefresh {
		cmds = append(cmds, scheduleTick(m.refreshInterval))
	}
	return tea.Batch(cmds...)
}

// overlayActive reports whether any modal currently captures key input.
func (m *App) overlayActive() bool {
	return m.createOverlay != nil || m.deleteOverlay != nil || m.notesOverlay != nil
}

// currentHabit returns the habit under the cursor, if any.
func (m *App) currentHabit() (habits.Habit, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return habits.Habit{}, false
	}
	return m.habits[m.visible[m.cursor]], true
}

// recalcVisible rebuilds the filtered index list and clamps the cursor.
func (m *App) recalcVisible() {
	m.visible = m.visible[:0]
	needle := strings.ToLower(strings.TrimSpace(m.filterText))
	for i, h := range m.habits {
		if needle == "" || strings.Contains(strings.ToLower(h.Title), needle) {
			m.visible = append(m.visible, i)
		}
	}
	m.clampCursor()
}

func (m *App) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectHabitByID moves the cursor to the habit with the given ID if it is
// visible. Used to keep the selection stable across refreshes.
func (m *App) selectHabitByID(id string) {
	for pos, idx := range m.visible {
		if m.habits[idx].ID == id {
			m.cursor = pos
			return
		}
	}
}

// cycleTheme switches to the next theme and shows the confirmation toast.
func (m *App) cycleTheme() tea.Cmd {
	name := theme.CycleTheme()
	m.themeToastVisible = true
	m.themeToastStart = time.Now()
	m.themeToastName = name
	return scheduleThemeToastTick()
}
