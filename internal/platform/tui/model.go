package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-harvest/internal/core"
	"github.com/vovakirdan/tui-harvest/internal/game"
	"github.com/vovakirdan/tui-harvest/internal/storage"
)

// Board placement on the screen buffer.
const (
	boardLeft = 2
	boardTop  = 3
)

// Model is the Bubble Tea model for playing a round. The board is
// event-driven (the player moves on key presses); ticks only refresh the
// elapsed-time display.
type Model struct {
	game        *game.Game
	controls    RuleControls
	ruleID      string
	title       string
	store       *storage.Store
	screen      *core.Screen
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	roundsSaved int           // Rounds already persisted for this game
	lastRound   time.Duration // Last completed round time, 0 if none yet
	exitOnBack  bool          // Standalone play treats Back as quit
	quitting    bool
	backToMenu  bool
}

// NewModel creates a play model for an already constructed game.
func NewModel(ruleID, title string, g *game.Game, controls RuleControls, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:      g,
		controls:  controls,
		ruleID:    ruleID,
		title:     title,
		store:     store,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the tick loop that drives the elapsed-time display.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionConfirm:
		m.game.Start()

	case core.ActionRestart:
		m.game.Reset()
		m.lastRound = 0

	case core.ActionBack:
		m.backToMenu = true
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}

	case core.ActionToggleFill:
		if m.controls.ToggleFill != nil {
			m.controls.ToggleFill()
		}

	case core.ActionToggleTrail:
		if m.controls.ToggleTrail != nil {
			m.controls.ToggleTrail()
		}

	default:
		if dir := Direction(action); dir != game.DirNone {
			m.move(dir, IsDash(action))
		}
	}

	return m, nil
}

// move applies a movement key. The first movement of a round starts the
// clock; a dash repeats the step until the boundary.
func (m *Model) move(dir game.Direction, dash bool) {
	if m.game.State() == game.StateReady {
		m.game.Start()
	}

	if dash {
		// The board is small enough that one grid span covers any dash.
		m.game.MovePlayerMultiple(dir, core.Max(game.GridWidth, game.GridHeight))
	} else {
		m.game.MovePlayer(dir)
	}

	// A completed round resets the board in place; persist it once.
	if m.game.RoundsCompleted() > m.roundsSaved {
		m.roundsSaved = m.game.RoundsCompleted()
		m.lastRound = m.game.CurrentScore()
		if m.store != nil {
			//nolint:errcheck // Best-effort save, play continues regardless
			m.store.SaveRound(m.ruleID, m.lastRound)
		}
	}
}

// View renders the board and HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// render draws the current state into the screen buffer.
func (m Model) render() {
	s := m.screen
	s.Clear()

	s.DrawTextColored(boardLeft, 1, m.title, core.ColorBrightYellow)

	// Board frame with one cell of padding around the grid.
	s.DrawBox(core.NewRect(boardLeft-1, boardTop-1, game.GridWidth+2, game.GridHeight+2))

	plugin := m.game.Plugin()
	for y := 0; y < game.GridHeight; y++ {
		for x := 0; x < game.GridWidth; x++ {
			pos := game.Position{X: x, Y: y}
			sx, sy := boardLeft+x, boardTop+y

			if m.game.UncollectedDroppableAt(pos) {
				s.SetCell(sx, sy, '*', core.ColorBrightRed)
				continue
			}

			visual := plugin.CellVisualState(pos, m.game)
			switch {
			case visual.Filled:
				s.SetCell(sx, sy, '#', core.ColorGreen)
			case visual.Visited:
				s.SetCell(sx, sy, '.', core.ColorCyan)
			default:
				s.Set(sx, sy, ' ')
			}
		}
	}

	player := m.game.PlayerPosition()
	s.SetCell(boardLeft+player.X, boardTop+player.Y, '@', core.ColorBrightYellow)

	m.renderHUD()
}

// renderHUD draws the status column to the right of the board.
func (m Model) renderHUD() {
	s := m.screen
	x := boardLeft + game.GridWidth + 4
	y := boardTop

	switch m.game.State() {
	case game.StatePlaying:
		s.DrawTextColored(x, y, "PLAYING", core.ColorBrightGreen)
		s.DrawText(x, y+1, fmt.Sprintf("time  %s", FormatDuration(time.Since(m.game.StartedAt()))))
	default:
		s.DrawTextColored(x, y, "READY", core.ColorGray)
		s.DrawText(x, y+1, "move to start")
	}

	s.DrawText(x, y+2, fmt.Sprintf("left  %d/%d", m.game.RemainingDroppables(), m.game.DroppableCount()))
	s.DrawText(x, y+3, fmt.Sprintf("rounds %d", m.game.RoundsCompleted()))

	if m.lastRound > 0 {
		s.DrawText(x, y+5, fmt.Sprintf("last  %s", FormatDuration(m.lastRound)))
	}
	if best := m.game.BestScore(); best > 0 {
		s.DrawTextColored(x, y+6, fmt.Sprintf("best  %s", FormatDuration(best)), core.ColorBrightCyan)
	}

	if m.controls.HUD != nil {
		s.DrawTextColored(x, y+8, m.controls.HUD(), core.ColorYellow)
	}

	footer := "wasd/arrows: move  shift: dash  r: reset  q: quit"
	switch {
	case m.controls.ToggleFill != nil:
		footer = "wasd: move  f: fill mode  r: reset  b: menu  q: quit"
	case m.controls.ToggleTrail != nil:
		footer = "wasd: move  t: trail  r: reset  b: menu  q: quit"
	}
	s.DrawText(boardLeft, boardTop+game.GridHeight+2, footer)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// FormatDuration renders a round time as seconds with centisecond
// precision, e.g. "12.34s".
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// Run plays a single rule set until the user quits.
func Run(ruleID, title string, g *game.Game, controls RuleControls, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(ruleID, title, g, controls, store, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
