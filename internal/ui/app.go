package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shhac/dnotetea/internal/action"
	"github.com/shhac/dnotetea/internal/demo"
	"github.com/shhac/dnotetea/internal/keymap"
	"github.com/shhac/dnotetea/internal/state"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultTickInterval  = 250 * time.Millisecond
	DefaultFrameInterval = time.Second / 30
)

// Options configures an App.
type Options struct {
	Service           DnoteService
	Keymap            *keymap.Keymap
	TickInterval      time.Duration
	FrameInterval     time.Duration
	MaxActionsPerTick int
	Markdown          bool
	// Demo refuses external commands instead of handing over the terminal.
	Demo bool
	// Version is shown in the help overlay title.
	Version string
}

// App is the root Bubbletea model. It turns terminal events into actions,
// drains them through the panes and paints the settled state.
type App struct {
	state      *state.State
	dispatcher *Dispatcher
	resolver   *keymap.Resolver
	hints      *Hints

	statusBar   StatusBarModel
	helpOverlay HelpOverlayModel

	tickInterval  time.Duration
	frameInterval time.Duration
	demo          bool

	// Layout state
	width  int
	height int

	// paused is set while a foreground program owns the terminal.
	paused    bool
	needsDraw bool
	frame     string

	// cmds collects the commands produced while handling one message.
	cmds []tea.Cmd
}

// NewApp creates the App with its panes registered in layout order:
// Books, Pages, Content. Each pane sees every action after the ones to its
// left, which is what lets Pages load the book Books has just selected.
func NewApp(opts Options) App {
	km := opts.Keymap
	if km == nil {
		km = keymap.Default()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}

	hints := NewHints(km)
	md := NewMarkdownRenderer(opts.Markdown)
	dispatcher := NewDispatcher(&Bus{}, opts.MaxActionsPerTick,
		NewBooksPane(opts.Service, hints),
		NewPagesPane(opts.Service, hints),
		NewContentPane(opts.Service, hints, md),
	)

	m := App{
		state:         state.New(),
		dispatcher:    dispatcher,
		resolver:      keymap.NewResolver(km),
		hints:         hints,
		statusBar:     NewStatusBarModel(),
		helpOverlay:   NewHelpOverlayModel(km, opts.Version),
		tickInterval:  opts.TickInterval,
		frameInterval: opts.FrameInterval,
		demo:          opts.Demo,
	}
	for _, p := range dispatcher.Panes() {
		a, err := p.Init(Area{})
		if err != nil {
			m.bus().Push(action.Error{Message: err.Error()})
			continue
		}
		if a != nil {
			m.bus().Push(a)
		}
	}
	return m
}

func (m App) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.tickInterval), frameCmd(m.frameInterval))
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.cmds = nil

	switch msg := msg.(type) {
	case tickMsg:
		m.bus().Push(action.Tick{})
		m.cmds = append(m.cmds, tickCmd(m.tickInterval))

	case frameMsg:
		m.bus().Push(action.Render{})
		m.cmds = append(m.cmds, frameCmd(m.frameInterval))

	case tea.WindowSizeMsg:
		m.bus().Push(action.Resize{Width: msg.Width, Height: msg.Height})

	case tea.ResumeMsg:
		m.bus().Push(action.Resume{})
		m.bus().Push(action.Refresh{})

	case externalDoneMsg:
		m.paused = false
		m.needsDraw = true
		if msg.Err != nil {
			m.bus().Push(action.Error{Message: msg.Err.Error()})
		}

	case tea.KeyMsg:
		if !m.paused {
			m.handleKey(msg)
		}
	}

	if !m.paused {
		m.drain()
		if m.needsDraw && !m.paused {
			m.draw()
			if m.bus().Len() > 0 {
				m.drain()
			}
		}
	}
	return m, tea.Batch(m.cmds...)
}

func (m App) View() string {
	return m.frame
}

// State exposes the shared state, mainly for tests.
func (m App) State() *state.State { return m.state }

// Paused reports whether a foreground program currently owns the terminal.
func (m App) Paused() bool { return m.paused }

// Pending returns the actions still queued.
func (m App) Pending() []action.Action { return m.bus().Pending() }

func (m *App) bus() *Bus { return m.dispatcher.Bus() }

func (m *App) drain() {
	m.dispatcher.Drain(context.Background(), m.state, m.lifecycle)
}

func (m *App) handleKey(msg tea.KeyMsg) {
	m.needsDraw = true

	if m.helpOverlay.IsVisible() {
		switch msg.String() {
		case "?", "esc", "q":
			m.bus().Push(action.Help{})
		case "ctrl+c":
			m.bus().Push(action.Quit{})
		default:
			m.helpOverlay.Scroll(msg)
		}
		return
	}

	for _, p := range m.dispatcher.Panes() {
		if a, captured := p.HandleEvent(msg, m.state); captured {
			if a != nil {
				m.bus().Push(a)
			}
			return
		}
	}

	if a, ok := m.resolver.Resolve(m.state.Mode, msg.String()); ok {
		m.bus().Push(a)
	}
}

// lifecycle handles the actions that concern the program rather than any
// one pane. It runs before the panes see the action.
func (m *App) lifecycle(a action.Action) (pause bool) {
	switch a := a.(type) {
	case action.Tick:
		m.resolver.Reset()
		m.state.AgeNotice()
	case action.Render:
		m.needsDraw = true
	case action.Resize:
		m.width, m.height = a.Width, a.Height
		m.statusBar.SetWidth(a.Width)
		m.hints.SetWidth(max(0, a.Width-32))
		m.helpOverlay.SetSize(a.Width, a.Height)
		m.needsDraw = true
	case action.Quit:
		m.cmds = append(m.cmds, tea.Quit)
	case action.Suspend:
		m.cmds = append(m.cmds, tea.Suspend)
	case action.Resume:
		m.needsDraw = true
	case action.Refresh:
		m.cmds = append(m.cmds, tea.ClearScreen)
		m.needsDraw = true
	case action.Help:
		m.helpOverlay.Toggle(m.state.Mode)
		m.needsDraw = true
	case action.Error:
		m.state.Notify(a.Message, 0, true)
		m.needsDraw = true
	case action.StatusLine:
		m.state.StatusLine = a.Text
	case action.RunExternalCommand:
		if m.demo {
			m.state.Notify(demo.ErrDemoMode.Error(), 0, true)
			return false
		}
		m.paused = true
		m.cmds = append(m.cmds, runExternal(a.Program, a.Args))
		return true
	}
	return false
}

func (m *App) draw() {
	m.needsDraw = false

	if m.helpOverlay.IsVisible() {
		m.frame = m.helpOverlay.View()
		return
	}

	sizes := CalculatePaneSizes(m.width, m.height)
	if sizes.TooSmall {
		msg := lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Render("Terminal too small. Please resize to at least 70×6.")
		m.frame = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
		return
	}

	areas := sizes.Areas()
	views := make([]string, 0, len(areas))
	for i, p := range m.dispatcher.Panes() {
		if i >= len(areas) {
			break
		}
		out, err := p.Draw(areas[i], m.state)
		if err != nil {
			ioErr := &IOError{Op: "draw", Err: err}
			log.Printf("ui: %v", ioErr)
			m.bus().Push(action.Error{Message: ioErr.Error()})
			continue
		}
		views = append(views, out)
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top, views...)
	bar := m.statusBar.View(m.state, m.resolver.Pending())
	m.frame = lipgloss.JoinVertical(lipgloss.Left, panels, bar)
}
