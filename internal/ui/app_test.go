package ui

import (
	"bytes"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annedawson/amphibians/internal/photos"
	"github.com/annedawson/amphibians/internal/prefs"
	"github.com/annedawson/amphibians/internal/state"
)

type fakeSource struct {
	mu        sync.Mutex
	current   state.UIState
	ch        chan state.UIState
	refreshes int
	cancelled bool
}

func newFakeSource(initial state.UIState) *fakeSource {
	return &fakeSource{current: initial, ch: make(chan state.UIState, 4)}
}

func (f *fakeSource) State() state.UIState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeSource) Subscribe() (<-chan state.UIState, func()) {
	return f.ch, func() {
		f.mu.Lock()
		f.cancelled = true
		f.mu.Unlock()
	}
}

func (f *fakeSource) Refresh() <-chan struct{} {
	f.mu.Lock()
	f.refreshes++
	f.mu.Unlock()
	done := make(chan struct{})
	close(done)
	return done
}

func (f *fakeSource) Refreshes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshes
}

var frogs = []photos.Photo{
	{ID: "1", Name: "Great Basin Spadefoot", Type: "Toad", Description: "This toad spends most of its life underground.", ImgSrc: "https://example.com/spadefoot.png"},
	{ID: "2", Name: "Pacific Chorus Frog", Type: "Frog", Description: "Also known as the Pacific Treefrog.", ImgSrc: "https://example.com/chorus.png"},
}

func newTestModel(t *testing.T, src *fakeSource) Model {
	t.Helper()
	m := New(Options{
		Photos:    src,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		LogFile:   filepath.Join(t.TempDir(), "amphibians.log"),
		BaseURL:   "https://example.com/",
	})
	return resize(m, 110, 30)
}

func resize(m Model, w, h int) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(m Model, keys string) (Model, tea.Cmd) {
	return send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
}

func TestModelViewBeforeWindowSize(t *testing.T) {
	m := New(Options{Photos: newFakeSource(state.Loading{})})
	assert.Equal(t, "Loading...", m.View())
}

func TestModelEmptyThemeKeepsOtherPrefs(t *testing.T) {
	m := New(Options{
		Photos:    newFakeSource(state.Success{Photos: frogs}),
		Prefs:     prefs.Prefs{HideDetails: true},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	assert.Equal(t, prefs.Default().Theme, m.theme.Name)
	assert.True(t, m.prefs.HideDetails)

	m = resize(m, 110, 30)
	assert.NotContains(t, m.View(), "underground")
}

func TestModelInitWaitsForState(t *testing.T) {
	src := newFakeSource(state.Loading{})
	m := newTestModel(t, src)
	require.NotNil(t, m.Init())

	src.ch <- state.Success{Photos: frogs}
	msg := waitForState(src.ch)()
	got, ok := msg.(stateMsg)
	require.True(t, ok)
	assert.Equal(t, "success(2)", got.state.String())
}

func TestModelRendersEachState(t *testing.T) {
	cases := []struct {
		name  string
		state state.UIState
		want  []string
	}{
		{"loading", state.Loading{}, []string{"Loading amphibians", "LOADING"}},
		{"success", state.Success{Photos: frogs}, []string{"Amphibians (2)", "Great Basin Spadefoot (Toad)", "Pacific Chorus Frog (Frog)", "READY"}},
		{"empty", state.Success{Photos: []photos.Photo{}}, []string{"No amphibians found."}},
		{"error", state.Error{}, []string{"Couldn't load amphibians.", "press r to retry", "ERROR"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, newFakeSource(state.Loading{}))
			m, cmd := send(m, stateMsg{state: tc.state})
			assert.NotNil(t, cmd, "model keeps listening after a state")

			view := m.View()
			for _, want := range tc.want {
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestModelInitialStateComesFromSource(t *testing.T) {
	m := newTestModel(t, newFakeSource(state.Error{}))
	assert.Contains(t, m.View(), "Couldn't load amphibians.")
}

func TestModelSelectionShowsDetail(t *testing.T) {
	m := newTestModel(t, newFakeSource(state.Success{Photos: frogs}))
	assert.Contains(t, m.View(), "underground")

	m, _ = press(m, "j")
	assert.Equal(t, 1, m.selected)
	assert.Contains(t, m.View(), "Pacific Treefrog")

	m, _ = press(m, "j")
	assert.Equal(t, 1, m.selected, "selection stops at the last row")

	m, _ = press(m, "k")
	assert.Equal(t, 0, m.selected)

	m, _ = press(m, "G")
	assert.Equal(t, 1, m.selected)
}

func TestModelSelectionClampedWhenListShrinks(t *testing.T) {
	m := newTestModel(t, newFakeSource(state.Success{Photos: frogs}))
	m, _ = press(m, "j")
	require.Equal(t, 1, m.selected)

	m, _ = send(m, stateMsg{state: state.Success{Photos: frogs[:1]}})
	assert.Equal(t, 0, m.selected)
}

func TestModelRetryCallsRefresh(t *testing.T) {
	src := newFakeSource(state.Error{})
	m := newTestModel(t, src)

	m, _ = press(m, "r")
	assert.Equal(t, 1, src.Refreshes())
	assert.Empty(t, m.notice)
}

func TestModelRetryIsRateLimited(t *testing.T) {
	src := newFakeSource(state.Error{})
	m := newTestModel(t, src)

	for i := 0; i < retryBurst+3; i++ {
		m, _ = press(m, "r")
	}
	assert.Equal(t, retryBurst, src.Refreshes())
	assert.Contains(t, m.View(), "reload ignored")
}

func TestModelCycleThemeSavesPrefs(t *testing.T) {
	src := newFakeSource(state.Loading{})
	m := newTestModel(t, src)
	require.Equal(t, "Marsh", m.theme.Name)

	m, _ = press(m, "T")
	assert.Equal(t, "Pond", m.theme.Name)
	assert.Equal(t, "Pond", prefs.Load(m.prefsPath).Theme)
}

func TestModelToggleDetailsSavesPrefs(t *testing.T) {
	m := newTestModel(t, newFakeSource(state.Success{Photos: frogs}))

	m, _ = press(m, "d")
	assert.True(t, m.prefs.HideDetails)
	assert.True(t, prefs.Load(m.prefsPath).HideDetails)
	assert.NotContains(t, m.View(), "underground")
}

func TestModelLogView(t *testing.T) {
	m := newTestModel(t, newFakeSource(state.Loading{}))

	m, cmd := press(m, "l")
	require.NotNil(t, cmd)
	assert.Equal(t, ViewLogs, m.currentView)

	m, _ = send(m, logLinesMsg{lines: []string{
		`time="2026-10-18T09:12:01Z" level=warning msg="refresh failed" kind=transport`,
	}})
	view := m.View()
	assert.Contains(t, view, "refresh failed")
	assert.Contains(t, view, "kind=transport")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewPhotos, m.currentView)
}

func TestModelLogViewEmpty(t *testing.T) {
	m := newTestModel(t, newFakeSource(state.Loading{}))
	m, _ = press(m, "l")
	m, _ = send(m, logLinesMsg{})
	assert.Contains(t, m.View(), "No log entries yet.")
}

func TestModelQuitsWhenSubscriptionCloses(t *testing.T) {
	m := newTestModel(t, newFakeSource(state.Loading{}))
	_, cmd := send(m, subscriptionClosedMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t, newFakeSource(state.Loading{}))
	_, cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderPlain(t *testing.T) {
	cases := []struct {
		name  string
		state state.UIState
		want  []string
	}{
		{"loading", state.Loading{}, []string{"Loading amphibians"}},
		{"success", state.Success{Photos: frogs}, []string{"2 amphibians", "Great Basin Spadefoot (Toad)", "https://example.com/chorus.png"}},
		{"empty", state.Success{}, []string{"No amphibians found."}},
		{"error", state.Error{}, []string{"Couldn't load amphibians."}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderPlain(&buf, tc.state))
			for _, want := range tc.want {
				assert.Contains(t, buf.String(), want)
			}
			assert.True(t, strings.HasSuffix(buf.String(), "\n"))
		})
	}
}
