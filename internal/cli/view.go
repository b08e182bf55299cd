package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/cli/formatter"
	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse and plant the garden interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("view needs an interactive terminal; use 'garden show' instead")
			}
			p := tea.NewProgram(newGardenViewModel(cmd.Context(), app), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}

// ── keys ─────────────────────────────────────────────────────────────────────

type gardenKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextWeek  key.Binding
	PrevWeek  key.Binding
	NextPlant key.Binding
	PrevPlant key.Binding
	Plant     key.Binding
	Remove    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newGardenKeyMap() gardenKeyMap {
	return gardenKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		NextWeek:  key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]", "next week")),
		PrevWeek:  key.NewBinding(key.WithKeys("[", "b"), key.WithHelp("[", "prev week")),
		NextPlant: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next plant")),
		PrevPlant: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev plant")),
		Plant:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "plant here")),
		Remove:    key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "remove")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k gardenKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextWeek, k.PrevWeek, k.NextPlant, k.Plant, k.Remove, k.Help, k.Quit}
}

func (k gardenKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextWeek, k.PrevWeek},
		{k.NextPlant, k.PrevPlant, k.Plant, k.Remove},
		{k.Help, k.Quit},
	}
}

// ── messages ─────────────────────────────────────────────────────────────────

// stateLoadedMsg carries a fresh state after a load or a successful action.
type stateLoadedMsg struct {
	state domain.GardenState
	note  string
	err   error
}

// actionFailedMsg reports a rejected edit. The stored state is unchanged.
type actionFailedMsg struct {
	err error
}

// ── model ────────────────────────────────────────────────────────────────────

// gardenViewModel shows the grid for the current week with a cell cursor.
// Every edit goes through the garden service and reloads the stored state.
type gardenViewModel struct {
	ctx  context.Context
	app  *App
	keys gardenKeyMap
	help help.Model

	state  domain.GardenState
	loaded bool
	cursor domain.Position
	plant  int

	note string
	err  error
}

func newGardenViewModel(ctx context.Context, app *App) *gardenViewModel {
	return &gardenViewModel{
		ctx:  ctx,
		app:  app,
		keys: newGardenKeyMap(),
		help: help.New(),
	}
}

func (m *gardenViewModel) Init() tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		st, err := app.Garden.State(ctx)
		return stateLoadedMsg{state: st, err: err}
	}
}

// act runs an edit and reloads the state when it succeeds.
func (m *gardenViewModel) act(fn func(ctx context.Context) (string, error)) tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		note, err := fn(ctx)
		if err != nil {
			return actionFailedMsg{err: err}
		}
		st, err := app.Garden.State(ctx)
		return stateLoadedMsg{state: st, note: note, err: err}
	}
}

// selectedPlant is the library plant placed by enter, if the library is not
// empty.
func (m *gardenViewModel) selectedPlant() (domain.Plant, bool) {
	names := m.state.Plants.Names()
	if len(names) == 0 {
		return domain.Plant{}, false
	}
	return m.state.Plants.Get(names[m.plant%len(names)])
}

func (m *gardenViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case stateLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.state = msg.state
		m.loaded = true
		m.note = msg.note
		m.err = nil
		m.clamp()
		return m, nil

	case actionFailedMsg:
		m.err = msg.err
		m.note = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *gardenViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if !m.loaded {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor.Y--
	case key.Matches(msg, m.keys.Down):
		m.cursor.Y++
	case key.Matches(msg, m.keys.Left):
		m.cursor.X--
	case key.Matches(msg, m.keys.Right):
		m.cursor.X++
	case key.Matches(msg, m.keys.NextPlant):
		m.plant++
	case key.Matches(msg, m.keys.PrevPlant):
		m.plant--
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextWeek):
		return m, m.moveWeek(1)
	case key.Matches(msg, m.keys.PrevWeek):
		return m, m.moveWeek(-1)
	case key.Matches(msg, m.keys.Plant):
		return m, m.plantHere()
	case key.Matches(msg, m.keys.Remove):
		return m, m.removeHere()
	}
	m.clamp()
	return m, nil
}

func (m *gardenViewModel) moveWeek(delta int) tea.Cmd {
	target := min(max(m.state.CurrentWeek+delta, domain.MinWeek), domain.MaxWeek)
	if target == m.state.CurrentWeek {
		m.note = fmt.Sprintf("Already at week %d", target)
		return nil
	}
	return m.act(func(ctx context.Context) (string, error) {
		_, err := m.app.Garden.Dispatch(ctx, domain.SetCurrentWeek{Week: target})
		return "", err
	})
}

func (m *gardenViewModel) plantHere() tea.Cmd {
	plant, ok := m.selectedPlant()
	if !ok {
		m.note = "The plant library is empty"
		return nil
	}
	x, y := m.cursor.X, m.cursor.Y
	return m.act(func(ctx context.Context) (string, error) {
		p, err := m.app.Garden.DropAt(ctx, x, y, plant.Name)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Planted %s for %s", p.Plant, domain.FormatWeekRange(p.StartWeek, p.EndWeek)), nil
	})
}

func (m *gardenViewModel) removeHere() tea.Cmd {
	x, y := m.cursor.X, m.cursor.Y
	return m.act(func(ctx context.Context) (string, error) {
		p, err := m.app.Garden.RemoveAt(ctx, x, y)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Removed %s (%s)", p.Plant, domain.FormatWeekRange(p.StartWeek, p.EndWeek)), nil
	})
}

// clamp keeps the cursor on the grid and the plant index in the library.
func (m *gardenViewModel) clamp() {
	grid := m.state.Garden.GridSize
	m.cursor.X = min(max(m.cursor.X, 0), max(grid.Width-1, 0))
	m.cursor.Y = min(max(m.cursor.Y, 0), max(grid.Height-1, 0))
	if n := m.state.Plants.Len(); n > 0 {
		m.plant = ((m.plant % n) + n) % n
	} else {
		m.plant = 0
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m *gardenViewModel) View() string {
	if !m.loaded {
		if m.err != nil {
			return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
		}
		return formatter.Dim("Loading garden...") + "\n"
	}

	week := m.state.CurrentWeek
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(fmt.Sprintf("%s · Week %d/%d", m.state.Garden.Name, week, domain.MaxWeek)))
	b.WriteString("\n\n")
	cursor := m.cursor
	b.WriteString(formatter.RenderGrid(m.state, week, formatter.GridOptions{Cursor: &cursor}))
	b.WriteString("\n")
	b.WriteString(m.describeCell())
	b.WriteString("\n")

	if plant, ok := m.selectedPlant(); ok {
		fmt.Fprintf(&b, "Plant: %s %s (%s)\n", formatter.PlantGlyph(plant), plant.Name,
			formatter.Plural(plant.GrowthDuration, "week", "weeks"))
	} else {
		b.WriteString(formatter.Dim("Plant: none in library") + "\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render(m.err.Error()) + "\n")
	case m.note != "":
		b.WriteString(formatter.StyleGreen.Render(m.note) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// describeCell says what sits under the cursor this week.
func (m *gardenViewModel) describeCell() string {
	x, y := m.cursor.X, m.cursor.Y
	where := fmt.Sprintf("(%d,%d)", x, y)

	if at, ok := m.state.PlantAtCell(x, y, m.state.CurrentWeek); ok {
		name := at.Planting.Plant
		if !at.Resolved {
			name += " (missing)"
		}
		return fmt.Sprintf("%s %s: %s, %s", where, at.Slot.Label(), name,
			domain.FormatWeekRange(at.Planting.StartWeek, at.Planting.EndWeek))
	}
	if cs, ok := domain.CellOwnerSlot(x, y, m.state.Garden.Beds); ok {
		return fmt.Sprintf("%s %s #%s: empty", where, cs.Bed.Name, cs.Slot.Number)
	}
	if bed, ok := domain.CellOwnerBed(x, y, m.state.Garden.Beds); ok {
		return fmt.Sprintf("%s %s: no slot", where, bed.Name)
	}
	return formatter.Dim(where + " open ground")
}
