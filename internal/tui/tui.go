// Package tui is the terminal front end of the route game. It drives a
// route.Journey and battle.Engine from key presses; the game packages never
// see input that is not a valid menu choice.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/cory-johannsen/route1/internal/game/battle"
	"github.com/cory-johannsen/route1/internal/game/creature"
	"github.com/cory-johannsen/route1/internal/game/route"
)

// State is the menu the player is currently answering.
type State int

const (
	StateChooseStarter State = iota
	StateChooseDirection
	StateChooseAction
	StateChooseMove
	StateGameOver
)

// narrationLimit bounds how many narration lines View keeps on screen.
const narrationLimit = 14

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))
)

type line struct {
	text   string
	danger bool
}

// Model is the bubbletea model for one journey.
type Model struct {
	journey *route.Journey
	engine  *battle.Engine
	logger  *zap.Logger

	state    State
	battle   *battle.Battle
	lines    []line
	keys     keyMap
	help     help.Model
	err      error
	quitting bool
}

// New returns a Model at the starter menu of a fresh journey.
//
// Precondition: journey, engine, and logger must be non-nil; journey has no starter yet.
func New(journey *route.Journey, engine *battle.Engine, logger *zap.Logger) Model {
	m := Model{
		journey: journey,
		engine:  engine,
		logger:  logger,
		state:   StateChooseStarter,
		keys:    defaultKeys(),
		help:    help.New(),
	}
	m.say("Welcome to the Pokemon World!")
	return m
}

// State returns the menu currently shown.
func (m Model) State() State { return m.state }

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	choice, ok := m.keys.choiceFrom(keyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case StateChooseStarter:
		m.chooseStarter(choice)
	case StateChooseDirection:
		m.chooseDirection(choice)
	case StateChooseAction:
		m.chooseAction(choice)
	case StateChooseMove:
		m.chooseMove(choice)
	}
	return m, nil
}

func (m *Model) chooseStarter(choice int) {
	c, err := m.journey.ChooseStarter(choice)
	if errors.Is(err, creature.ErrInvalidArgument) {
		m.reprompt(len(m.journey.Starters()))
		return
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.say(fmt.Sprintf("You chose %s!", c.Name()))
	m.say("Now, let's start our adventure!")
	m.state = StateChooseDirection
}

func (m *Model) chooseDirection(choice int) {
	direction, err := route.DirectionFromChoice(choice)
	if err != nil {
		m.reprompt(len(route.Directions))
		return
	}
	step, err := m.journey.Step(direction)
	if err != nil {
		m.fail(err)
		return
	}
	if step.Wild == nil {
		m.say(fmt.Sprintf("You moved %s.", direction))
		return
	}

	m.warn(fmt.Sprintf("A wild %s appeared!", step.Wild.Name()))
	if step.Species != nil && step.Species.Description != "" {
		m.say(step.Species.Description)
	}
	b, err := m.engine.Start(m.journey.Player(), step.Wild)
	if err != nil {
		m.fail(err)
		return
	}
	m.battle = b
	m.state = StateChooseAction
}

func (m *Model) chooseAction(choice int) {
	action, err := battle.ActionFromChoice(choice)
	if err != nil {
		m.reprompt(2)
		return
	}
	if action == battle.ActionAttack {
		m.state = StateChooseMove
		return
	}

	turn, err := m.battle.Heal()
	if errors.Is(err, battle.ErrAlreadyFullHealth) {
		m.warn(fmt.Sprintf("Your %s's HP is already full!", m.battle.Player().Name()))
		return
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.afterTurn(turn)
}

func (m *Model) chooseMove(choice int) {
	turn, err := m.battle.Attack(choice)
	if errors.Is(err, creature.ErrInvalidArgument) {
		m.reprompt(len(m.battle.Player().Moves()))
		return
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.afterTurn(turn)
}

func (m *Model) afterTurn(turn battle.Turn) {
	for _, ev := range turn.Events {
		if ev.Type == battle.EventFaint && ev.Player {
			m.warn(ev.Narrative)
			continue
		}
		m.say(ev.Narrative)
	}
	if !m.battle.Over() {
		m.state = StateChooseAction
		return
	}

	if err := m.journey.Finish(m.battle.Outcome()); err != nil {
		m.fail(err)
		return
	}
	m.battle = nil
	if m.journey.Over() {
		m.warn("Your Pokemon fainted! Game Over.")
		m.state = StateGameOver
		return
	}
	m.state = StateChooseDirection
}

func (m *Model) reprompt(n int) {
	m.warn(fmt.Sprintf("Please enter a number between 1 and %d.", n))
}

func (m *Model) fail(err error) {
	m.logger.Error("journey aborted", zap.Error(err))
	m.err = err
	m.warn(fmt.Sprintf("Error: %v", err))
	m.state = StateGameOver
}

func (m *Model) say(text string)  { m.lines = append(m.lines, line{text: text}) }
func (m *Model) warn(text string) { m.lines = append(m.lines, line{text: text, danger: true}) }

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Route 1"))
	b.WriteString("\n\n")

	lines := m.lines
	if len(lines) > narrationLimit {
		lines = lines[len(lines)-narrationLimit:]
	}
	for _, l := range lines {
		style := textStyle
		if l.danger {
			style = dangerStyle
		}
		b.WriteString(style.Render(l.text))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if status := m.status(); status != "" {
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n\n")
	}
	b.WriteString(textStyle.Render(m.prompt()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) status() string {
	if m.battle != nil {
		p, o := m.battle.Player(), m.battle.Opponent()
		return fmt.Sprintf("Your %s HP: %d/%d\nOpponent's %s HP: %d/%d",
			p.Name(), p.CurrentHealth(), p.MaxHealth(),
			o.Name(), o.CurrentHealth(), o.MaxHealth())
	}
	if p := m.journey.Player(); p != nil {
		return fmt.Sprintf("%s  steps %d  wins %d", p, m.journey.Steps(), m.journey.Wins())
	}
	return ""
}

func (m Model) prompt() string {
	var opts []string
	switch m.state {
	case StateChooseStarter:
		for _, s := range m.journey.Starters() {
			opts = append(opts, fmt.Sprintf("%s (%s)", s.Name, s.Affinity))
		}
		return menu("Choose your Pokemon:", opts)
	case StateChooseDirection:
		for _, d := range route.Directions {
			opts = append(opts, strings.ToUpper(string(d[:1]))+string(d[1:]))
		}
		return menu("You're on Route 1. Which direction would you like to go?", opts)
	case StateChooseAction:
		return menu("Choose your action:", []string{"Attack", "Heal"})
	case StateChooseMove:
		for _, mv := range m.battle.Player().Moves() {
			opts = append(opts, fmt.Sprintf("%s (%s, %d)", mv.Name(), mv.Affinity(), mv.Power()))
		}
		return menu("Choose your attack:", opts)
	default:
		return fmt.Sprintf("Your journey ended after %d steps and %d wins. Press q to quit.", m.journey.Steps(), m.journey.Wins())
	}
}

func menu(title string, opts []string) string {
	var b strings.Builder
	b.WriteString(title)
	for i, o := range opts {
		fmt.Fprintf(&b, "\n%d. %s", i+1, o)
	}
	return b.String()
}
