package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

// KeyMap defines the key bindings for the simulation screen.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	Run      key.Binding
	Step     key.Binding
	Reset    key.Binding
	Faster   key.Binding
	Slower   key.Binding
	NewSeed  key.Binding
	EditSeed key.Binding
	Denser   key.Binding
	Sparser  key.Binding
	Bounds   key.Binding
	History  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Step, k.Reset, k.Faster, k.Slower, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Step, k.Reset, k.Faster, k.Slower},
		{k.Up, k.Down, k.Left, k.Right, k.Toggle},
		{k.NewSeed, k.EditSeed, k.Denser, k.Sparser},
		{k.Bounds, k.History, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "cursor right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle cell"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter", "start/pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		NewSeed: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "random seed"),
		),
		EditSeed: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "edit seed"),
		),
		Denser: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "denser"),
		),
		Sparser: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "sparser"),
		),
		Bounds: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bounds"),
		),
		History: key.NewBinding(
			key.WithKeys("H", "tab"),
			key.WithHelp("H", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to simulation actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys  KeyMap
	table []binding
}

type binding struct {
	key    key.Binding
	action core.Action
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		table: []binding{
			{keys.Quit, core.ActionQuit},
			{keys.Up, core.ActionUp},
			{keys.Down, core.ActionDown},
			{keys.Left, core.ActionLeft},
			{keys.Right, core.ActionRight},
			{keys.Toggle, core.ActionToggleCell},
			{keys.Run, core.ActionToggleRun},
			{keys.Step, core.ActionStep},
			{keys.Reset, core.ActionReset},
			{keys.Faster, core.ActionFaster},
			{keys.Slower, core.ActionSlower},
			{keys.NewSeed, core.ActionNewSeed},
			{keys.EditSeed, core.ActionEditSeed},
			{keys.Denser, core.ActionDenser},
			{keys.Sparser, core.ActionSparser},
			{keys.Bounds, core.ActionBounds},
			{keys.History, core.ActionHistory},
		},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.table {
		if key.Matches(msg, b.key) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
