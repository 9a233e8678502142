package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/annedawson/amphibians/internal/logging"
	"github.com/annedawson/amphibians/internal/logtail"
	"github.com/annedawson/amphibians/internal/photos"
	"github.com/annedawson/amphibians/internal/prefs"
	"github.com/annedawson/amphibians/internal/state"
)

// PhotoSource is the state machine the UI observes and drives.
// *state.PhotosViewModel implements it.
type PhotoSource interface {
	State() state.UIState
	Subscribe() (<-chan state.UIState, func())
	Refresh() <-chan struct{}
}

// View represents the current active view.
type View int

const (
	ViewPhotos View = iota
	ViewLogs
)

const (
	logLineLimit = 500
	retryEvery   = 500 * time.Millisecond
	retryBurst   = 2
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Photos    PhotoSource
	Prefs     prefs.Prefs
	PrefsPath string
	LogFile   string
	BaseURL   string
	Logger    logrus.FieldLogger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	photos      PhotoSource
	sub         <-chan state.UIState
	unsubscribe func()
	prefs       prefs.Prefs
	prefsPath   string
	logFile     string
	baseURL     string
	log         logrus.FieldLogger
	limiter     *rate.Limiter

	// UI state
	keys        keyMap
	help        help.Model
	theme       Theme
	styles      Styles
	currentView View
	width       int
	height      int
	ready       bool
	notice      string

	// Data state
	state       state.UIState
	lastUpdated time.Time
	selected    int

	// Components
	spinner spinner.Model
	detail  viewport.Model
	logView viewport.Model
	logErr  error
}

// New creates a new Bubble Tea model and subscribes it to opts.Photos.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Default().Theme
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(p.Theme)
	styles := theme.Styles()

	sub, unsubscribe := opts.Photos.Subscribe()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.AccentText

	return Model{
		ctx:         ctx,
		photos:      opts.Photos,
		sub:         sub,
		unsubscribe: unsubscribe,
		prefs:       p,
		prefsPath:   prefsPath,
		logFile:     opts.LogFile,
		baseURL:     opts.BaseURL,
		log:         log,
		limiter:     rate.NewLimiter(rate.Every(retryEvery), retryBurst),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		theme:       theme,
		styles:      styles,
		currentView: ViewPhotos,
		state:       opts.Photos.State(),
		spinner:     sp,
		detail:      viewport.New(0, 0),
		logView:     viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForState(m.sub),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.layout()
		return m, nil

	case stateMsg:
		m.state = msg.state
		m.lastUpdated = time.Now()
		m.selected = clamp(m.selected, 0, len(m.photoList())-1)
		m.updateDetail()
		return m, waitForState(m.sub)

	case subscriptionClosedMsg:
		return m, tea.Quit

	case logLinesMsg:
		m.logErr = msg.err
		m.logView.SetContent(m.renderLogLines(msg.lines))
		m.logView.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.spinner.Style = m.styles.AccentText
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.updateDetail()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewPhotos
		return m, nil

	case key.Matches(msg, m.keys.ViewLogs):
		m.currentView = ViewLogs
		return m, readLogsCmd(m.logFile)

	case key.Matches(msg, m.keys.Retry):
		if m.currentView == ViewLogs {
			return m, readLogsCmd(m.logFile)
		}
		return m.retry()

	case key.Matches(msg, m.keys.ToggleDetails):
		m.prefs.HideDetails = !m.prefs.HideDetails
		m.savePrefs()
		m.layout()
		return m, nil
	}

	switch m.currentView {
	case ViewPhotos:
		return m.handlePhotosKey(msg)
	case ViewLogs:
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handlePhotosKey moves the selection through the photo list.
func (m Model) handlePhotosKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.photoList())
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.selected = clamp(m.selected+1, 0, count-1)
	case key.Matches(msg, m.keys.Up):
		m.selected = clamp(m.selected-1, 0, count-1)
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	default:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	m.updateDetail()
	return m, nil
}

// retry asks the state machine for a fresh fetch. Presses beyond the limiter's
// budget are dropped so holding the key does not flood the server.
func (m Model) retry() (tea.Model, tea.Cmd) {
	if !m.limiter.Allow() {
		m.notice = "reload ignored: slow down"
		return m, nil
	}
	m.notice = ""
	m.log.WithField("state", m.state.String()).Debug("reload requested")
	m.photos.Refresh()
	return m, nil
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.WithError(err).Warn("save prefs failed")
	}
}

// photoList returns the photos of a Success state, nil otherwise.
func (m Model) photoList() []photos.Photo {
	return state.Match(m.state,
		func() []photos.Photo { return nil },
		func(items []photos.Photo) []photos.Photo { return items },
		func() []photos.Photo { return nil },
	)
}

// Messages

type stateMsg struct {
	state state.UIState
}

type subscriptionClosedMsg struct{}

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func waitForState(ch <-chan state.UIState) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return subscriptionClosedMsg{}
		}
		return stateMsg{state: s}
	}
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logLineLimit)
		return logLinesMsg{lines: lines, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	defer m.unsubscribe()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
