// Package teaui hosts the Bubble Tea program for the flashq quiz.
package teaui

import (
	"context"
	"errors"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/flashq/pkg/app"
	"tableflip.dev/flashq/pkg/dataset"
	"tableflip.dev/flashq/pkg/manifest"
	"tableflip.dev/flashq/pkg/navigator"
	"tableflip.dev/flashq/pkg/tui/theme"
)

// DefaultSwipeThreshold is the drag distance, in cells, that counts as a
// swipe.
const DefaultSwipeThreshold = 4

// Options tune a quiz run.
type Options struct {
	// Mode is preselected on the settings screen.
	Mode navigator.Mode
	// Seed fixes random draws when non-zero.
	Seed int64
	// Columns is a column spec such as "math.csv=Q,A" applied after loading.
	Columns string
	// Preselect names topics to load right away, skipping the topic screen.
	Preselect      []string
	SwipeThreshold int
	// Debug receives a trace of phase changes, moves and errors.
	Debug io.Writer
}

type topicsLoadedMsg struct {
	topics []app.Topic
}

type datasetsLoadedMsg struct {
	datasets []*dataset.Dataset
}

type loadFailedMsg struct {
	err error
}

type renamedMsg struct {
	topic app.Topic
}

type errMsg struct {
	err error
}

type watchStartedMsg struct {
	ch     <-chan manifest.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event manifest.Event
}

type watchStoppedMsg struct{}

// Model contains UI state.
type Model struct {
	svc     *app.Service
	ctx     context.Context
	cancel  context.CancelFunc
	opts    Options
	theme   theme.Theme
	logger  *log.Logger
	session *app.Session

	topics         []app.Topic
	topicCursor    int
	settingsCursor int
	rename         *renameOverlay
	preselected    bool

	loading    bool
	fullscreen bool
	fatal      bool
	status     string
	errText    string

	termWidth  int
	termHeight int
	drag       *tea.Mouse

	watchCh     <-chan manifest.Event
	watchCancel context.CancelFunc
}

// New creates a UI model backed by svc.
func New(svc *app.Service, opts Options) *Model {
	if opts.SwipeThreshold <= 0 {
		opts.SwipeThreshold = DefaultSwipeThreshold
	}
	var navOpts []navigator.Option
	if opts.Seed != 0 {
		navOpts = append(navOpts, navigator.WithSeed(opts.Seed))
	}
	out := opts.Debug
	if out == nil {
		out = io.Discard
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		svc:     svc,
		ctx:     ctx,
		cancel:  cancel,
		opts:    opts,
		theme:   theme.Default(),
		logger:  log.New(out, "flashq: ", log.LstdFlags|log.Lmicroseconds),
		session: app.NewSession(navOpts...),
	}
	m.logger.Printf("session %s started", m.session.ID)
	return m
}

// Init loads the topic list and starts watching the data directory.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadTopics(), startWatchCmd(m.ctx, m.svc))
}

func (m *Model) loadTopics() tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		if svc == nil {
			return errMsg{err: errors.New("no service configured")}
		}
		topics, err := svc.Topics(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return topicsLoadedMsg{topics: topics}
	}
}

func (m *Model) loadDatasets(keys []string) tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		ds, err := svc.Load(ctx, keys)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return datasetsLoadedMsg{datasets: ds}
	}
}

func (m *Model) renameTopic(key, name string) tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		t, err := svc.Rename(ctx, key, name)
		if err != nil {
			return errMsg{err: err}
		}
		return renamedMsg{topic: t}
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil || svc.WatchDir == "" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) quit() tea.Cmd {
	m.stopWatch()
	m.cancel()
	m.logger.Printf("session %s finished", m.session.ID)
	return tea.Quit
}

// Update handles messages and key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.rename != nil {
			m.rename.SetWidth(m.termWidth)
		}
	case errMsg:
		m.logger.Printf("error: %v", msg.err)
		m.errText = msg.err.Error()
		if m.rename != nil {
			cmds = append(cmds, m.rename.SetError(msg.err))
		}
	case topicsLoadedMsg:
		m.topics = msg.topics
		if m.topicCursor >= len(m.topics) {
			m.topicCursor = max(len(m.topics)-1, 0)
		}
		if cmd := m.applyPreselect(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case datasetsLoadedMsg:
		m.loading = false
		m.adopt(msg.datasets)
	case loadFailedMsg:
		m.loading = false
		m.logger.Printf("load failed: %v", msg.err)
		m.errText = msg.err.Error()
	case renameSubmitMsg:
		cmds = append(cmds, m.renameTopic(msg.Key, msg.Name))
	case renamedMsg:
		m.rename = nil
		m.replaceTopic(msg.topic)
		m.errText = ""
		m.status = "Renamed " + msg.topic.Key + " to " + msg.topic.DisplayName
		m.logger.Printf("renamed %s to %q", msg.topic.Key, msg.topic.DisplayName)
	case renameCancelledMsg:
		m.rename = nil
	case watchStartedMsg:
		if msg.err != nil {
			m.logger.Printf("watch: %v", msg.err)
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.logger.Printf("data changed: %v", msg.event.Names)
		if m.session.Phase() == app.PhaseTopics {
			cmds = append(cmds, m.loadTopics())
		}
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		if m.rename != nil {
			var cmd tea.Cmd
			m.rename, cmd = m.rename.Update(msg)
			cmds = append(cmds, cmd)
			break
		}
		cmds = append(cmds, m.handleKeyPress(msg))
	case tea.MouseClickMsg:
		cmds = append(cmds, m.handleMouseClick(msg.Mouse()))
	case tea.MouseReleaseMsg:
		cmds = append(cmds, m.handleMouseRelease(msg.Mouse()))
	default:
		if m.rename != nil {
			var cmd tea.Cmd
			m.rename, cmd = m.rename.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}
	switch m.session.Phase() {
	case app.PhaseSettings:
		return m.handleSettingsKey(key)
	case app.PhaseQuiz:
		return m.handleQuizKey(key)
	}
	return m.handleTopicsKey(key)
}

// applyPreselect loads topics named on the command line, once.
func (m *Model) applyPreselect() tea.Cmd {
	if m.preselected || len(m.opts.Preselect) == 0 {
		return nil
	}
	m.preselected = true
	list := make([]manifest.Descriptor, 0, len(m.topics))
	for _, t := range m.topics {
		list = append(list, manifest.Descriptor{Filename: t.Key, DisplayName: t.DisplayName})
	}
	for _, q := range m.opts.Preselect {
		d, err := manifest.Resolve(list, q)
		if err != nil {
			m.errText = err.Error()
			return nil
		}
		if !m.session.IsSelected(d.Filename) {
			if _, err := m.session.ToggleTopic(d.Filename); err != nil {
				m.errText = err.Error()
				return nil
			}
		}
	}
	return m.beginLoad()
}

func (m *Model) beginLoad() tea.Cmd {
	keys := m.session.Selected()
	if len(keys) == 0 {
		m.errText = "Select at least one topic (space)"
		return nil
	}
	m.loading = true
	m.errText = ""
	m.status = "Loading…"
	m.logger.Printf("loading %v", keys)
	return m.loadDatasets(keys)
}

func (m *Model) adopt(ds []*dataset.Dataset) {
	if err := m.session.Adopt(ds); err != nil {
		m.errText = err.Error()
		return
	}
	if err := m.session.SetMode(m.opts.Mode); err != nil {
		m.errText = err.Error()
	}
	if m.opts.Columns != "" {
		if err := m.session.ApplyColumns(m.opts.Columns); err != nil {
			m.errText = err.Error()
		}
	}
	m.settingsCursor = 0
	m.status = ""
	m.logger.Printf("phase %s: %d datasets", m.session.Phase(), len(ds))
}

func (m *Model) replaceTopic(t app.Topic) {
	for i := range m.topics {
		if m.topics[i].Key == t.Key {
			m.topics[i] = t
			return
		}
	}
}

func (m *Model) displayName(key string) string {
	for _, t := range m.topics {
		if t.Key == key {
			return t.DisplayName
		}
	}
	return manifest.DisplayNameFor(key)
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, svc *app.Service, opts Options) error {
	m := New(svc, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	m.stopWatch()
	m.cancel()
	return err
}
