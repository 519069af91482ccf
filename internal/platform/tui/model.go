package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/highscore"
	"github.com/vovakirdan/tui-2048/internal/savegame"
)

// ScoreSaver records finished plays. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(player string, score int) (int64, error)
}

// PlayOptions configures a play screen.
type PlayOptions struct {
	Settings t2048.Settings
	Player   string
	Config   core.RuntimeConfig

	// Resume, when set, continues a saved play instead of starting fresh.
	Resume *t2048.SavedState

	Store  ScoreSaver          // may be nil
	Board  *highscore.Board    // may be nil
	Save   savegame.ReadWriter // may be nil; receives the play on quit
	Logger *log.Logger
}

// PlayModel is the Bubble Tea model for one player's session.
type PlayModel struct {
	opts   PlayOptions
	ctrl   *t2048.Controller
	keys   KeyMap
	help   help.Model
	screen *core.Screen
	logger *log.Logger

	width  int
	height int

	status    string
	statusID  int
	showGoal  bool
	recorded  bool
	rank      int
	qualifies bool
	quitting  bool
	err       error
}

// NewPlayModel starts or resumes a play.
func NewPlayModel(opts PlayOptions) (PlayModel, error) {
	if opts.Config.Seed == 0 {
		opts.Config.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := PlayModel{
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH),
		logger: opts.Logger,
		width:  opts.Config.ScreenW,
		height: opts.Config.ScreenH,
	}

	rng := t2048.NewRand(opts.Config.Seed)
	var repo *t2048.Repository
	var err error
	if opts.Resume != nil {
		repo, err = t2048.Restore(*opts.Resume, opts.Settings, rng)
	} else {
		repo, err = t2048.NewRepository(opts.Settings, opts.Player, rng)
	}
	if err != nil {
		return m, err
	}

	m.ctrl = t2048.NewController(repo, t2048.WithLogger(opts.Logger))
	return m, nil
}

// Init implements tea.Model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case statusExpiredMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.persist()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.ctrl.State() == t2048.StateEnded {
			return m.restart()
		}
		return m, nil
	}

	m.showGoal = false

	action := m.keys.Action(msg)
	if action == core.ActionUnknown {
		return m, nil
	}
	if action == core.ActionPause && m.ctrl.State() == t2048.StatePaused {
		m.ctrl.Resume()
		return m, nil
	}

	turn, err := m.ctrl.HandleInput(action)
	cmd := m.apply(turn)

	switch {
	case err == nil:
	case errors.Is(err, t2048.ErrGameOver):
		m.record()
	default:
		m.logger.Error("input rejected", "action", action, "err", err)
		m.err = err
	}
	return m, cmd
}

// apply folds a turn's notifications into the view state.
func (m *PlayModel) apply(turn t2048.Turn) tea.Cmd {
	var cmd tea.Cmd
	for _, n := range turn.Notifications {
		switch n := n.(type) {
		case t2048.MoveHappened, t2048.UndoHappened:
			m.status = ""
		case t2048.ErrorHappened:
			cmd = m.setStatus(n.Message)
		case t2048.MiscEvent:
			switch n.Kind {
			case t2048.EventGoalReached:
				m.showGoal = true
			case t2048.EventMaxLivesChanged:
				cmd = m.setStatus(fmt.Sprintf("Stuck! %d lives left", n.Arg))
			}
		}
	}
	return cmd
}

func (m *PlayModel) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusID++
	return expireStatusCmd(m.statusID)
}

// record stores a finished play once.
func (m *PlayModel) record() {
	if m.recorded {
		return
	}
	m.recorded = true

	repo := m.ctrl.Repository()
	name, score := repo.PlayerName(), repo.Score()

	if m.opts.Board != nil {
		m.rank = m.opts.Board.Rank(name, score)
		m.qualifies = m.opts.Board.Qualifies(name, score)
		m.opts.Board.AddNewHighscore(name, score)
	}
	if m.opts.Store != nil && score > 0 {
		if _, err := m.opts.Store.SaveScore(name, score); err != nil {
			m.logger.Warn("could not save score", "player", name, "err", err)
		}
	}
	if m.opts.Save != nil {
		if err := savegame.Clear(m.opts.Save); err != nil {
			m.logger.Warn("could not clear save", "err", err)
		}
	}
}

// persist saves an unfinished play so it can be resumed.
func (m *PlayModel) persist() {
	if m.opts.Save == nil || m.ctrl.State() == t2048.StateEnded {
		return
	}
	if err := savegame.Save(m.opts.Save, m.ctrl.Repository().State()); err != nil {
		m.logger.Warn("could not save play", "err", err)
		return
	}
	m.logger.Info("play saved", "player", m.ctrl.Repository().PlayerName())
}

// restart begins a fresh play with the same rules.
func (m PlayModel) restart() (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.Resume = nil
	opts.Config.Seed = time.Now().UnixNano()
	opts.Config.ScreenW, opts.Config.ScreenH = m.width, m.height

	next, err := NewPlayModel(opts)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	next.help = m.help
	return next, nil
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	helpView := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(helpView), 0))

	best := 0
	if m.opts.Board != nil && m.opts.Board.Len() > 0 {
		best = m.opts.Board.Entries()[0].Score
	}

	drawPlay(m.screen, playView{
		snap:      m.ctrl.Snapshot(),
		best:      best,
		status:    m.status,
		showGoal:  m.showGoal,
		rank:      m.rank,
		qualifies: m.qualifies,
	})

	return RenderScreen(m.screen) + "\n" + centerText(helpView, m.width)
}

// Snapshot exposes the play summary, e.g. for a final report.
func (m PlayModel) Snapshot() t2048.Snapshot {
	return m.ctrl.Snapshot()
}

// Err returns an unexpected error that stopped the play, if any.
func (m PlayModel) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a local play and returns the final model.
func Run(opts PlayOptions) (PlayModel, error) {
	model, err := NewPlayModel(opts)
	if err != nil {
		return model, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(PlayModel); ok {
		return fm, fm.Err()
	}
	return model, nil
}
