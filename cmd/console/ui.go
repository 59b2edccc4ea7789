package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/hallwright/scenario-workbench/internal/config"
	"github.com/hallwright/scenario-workbench/pkg/export"
	"github.com/hallwright/scenario-workbench/pkg/prompts"
	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

const PlaceHolderText = "Describe what to generate, or AUTO_CREATE / AUTO_UPDATE..."

type tabID int

const (
	tabOutline tabID = iota
	tabTimeline
	tabCast
	tabItems
	tabMap
	tabWall
	tabExport
	tabCount
)

var tabNames = [tabCount]string{"Outline", "Timeline", "Cast", "Items", "Map", "Clue Wall", "Export"}

// generation section per tab; tabs without one cannot generate.
var tabSections = map[tabID]prompts.Section{
	tabOutline:  prompts.SectionOutline,
	tabTimeline: prompts.SectionTimeline,
	tabCast:     prompts.SectionCharacters,
	tabItems:    prompts.SectionItems,
	tabMap:      prompts.SectionMap,
}

// ConsoleUI is the BubbleTea model that runs the workbench console.
type ConsoleUI struct {
	cfg *config.ClientConfig
	api *APIClient
	doc *scenario.Scenario

	tab      tabID
	viewport viewport.Model
	input    textinput.Model
	mapView  *BoardView
	wallView *BoardView

	ready  bool
	width  int
	height int
	busy   bool
	status string
	err    error
}

type generateResultMsg struct {
	doc *scenario.Scenario
	err error
}

type saveResultMsg struct {
	err error
}

type copyResultMsg struct {
	err error
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	busyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(cfg *config.ClientConfig, api *APIClient, doc *scenario.Scenario) ConsoleUI {
	input := textinput.New()
	input.Placeholder = PlaceHolderText
	input.CharLimit = 500
	input.Focus()

	return ConsoleUI{
		cfg:      cfg,
		api:      api,
		doc:      doc,
		input:    input,
		mapView:  NewMapView(),
		wallView: NewWallView(),
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width - 4
		m.viewport.Height = m.height - 6
		m.input.Width = m.width - 10
		m.mapView.Resize(m.width-4, m.height-7)
		m.wallView.Resize(m.width-4, m.height-7)
		m.ready = true
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		if view := m.activeBoard(); view != nil && !m.busy {
			if placed := view.HandleMouse(msg, m.doc); placed != nil {
				m.status = fmt.Sprintf("Placed %q at %.0f%%, %.0f%%", placed.Name, placed.X, placed.Y)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case generateResultMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.doc = msg.doc
		m.status = "Generation merged."
		m.refreshContent()
		return m, nil

	case saveResultMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "Saved."
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "Export copied to clipboard."
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ConsoleUI) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.tab = (m.tab + 1) % tabCount
		m.refreshContent()
		return m, nil

	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.refreshContent()
		return m, nil

	case "ctrl+s":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Saving..."
		return m, m.saveCmd()

	case "ctrl+y":
		if m.tab == tabExport {
			return m, m.copyCmd()
		}

	case "enter":
		if section, ok := tabSections[m.tab]; ok && !m.busy {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.busy = true
			m.err = nil
			m.status = "Consulting the author..."
			m.input.Reset()
			return m, m.generateCmd(section, text)
		}
	}

	if view := m.activeBoard(); view != nil {
		if view.HandleKey(msg.String()) {
			return m, nil
		}
	}

	var tiCmd, vpCmd tea.Cmd
	m.input, tiCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m *ConsoleUI) activeBoard() *BoardView {
	switch m.tab {
	case tabMap:
		return m.mapView
	case tabWall:
		return m.wallView
	}
	return nil
}

func (m *ConsoleUI) refreshContent() {
	if !m.ready {
		return
	}
	switch m.tab {
	case tabOutline:
		m.viewport.SetContent(wordwrap.String(renderOutline(m.doc), m.viewport.Width))
	case tabTimeline:
		m.viewport.SetContent(wordwrap.String(renderTimeline(m.doc), m.viewport.Width))
	case tabCast:
		m.viewport.SetContent(wordwrap.String(renderCast(m.doc), m.viewport.Width))
	case tabItems:
		m.viewport.SetContent(wordwrap.String(renderItems(m.doc), m.viewport.Width))
	case tabExport:
		m.viewport.SetContent(wordwrap.String(export.Markdown(m.doc), m.viewport.Width))
	}
	m.viewport.GotoTop()
}

func (m ConsoleUI) generateCmd(section prompts.Section, input string) tea.Cmd {
	api, doc, tone := m.api, m.doc, m.cfg.Tone
	return func() tea.Msg {
		merged, err := api.Generate(doc, section, input, tone, "")
		return generateResultMsg{doc: merged, err: err}
	}
}

func (m ConsoleUI) saveCmd() tea.Cmd {
	api, doc := m.api, m.doc
	slot := m.cfg.SaveSlot
	if slot == "" {
		slot = "default"
	}
	name := doc.Outline.Title
	if name == "" {
		name = "Untitled Scenario"
	}
	return func() tea.Msg {
		return saveResultMsg{err: api.PutSave(slot, name, doc)}
	}
}

func (m ConsoleUI) copyCmd() tea.Cmd {
	doc := m.doc
	return func() tea.Msg {
		return copyResultMsg{err: clipboard.WriteAll(export.Markdown(doc))}
	}
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Scenario Workbench"))
	b.WriteString("  ")
	for i := tabID(0); i < tabCount; i++ {
		if i == m.tab {
			b.WriteString(activeTabStyle.Render("[" + tabNames[i] + "]"))
		} else {
			b.WriteString(tabStyle.Render(" " + tabNames[i] + " "))
		}
	}
	b.WriteString("\n\n")

	if view := m.activeBoard(); view != nil {
		b.WriteString(view.Render(m.doc))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(view.Hint()))
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	if _, ok := tabSections[m.tab]; ok {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.busy:
		b.WriteString(busyStyle.Render(m.status))
	case m.status != "":
		b.WriteString(hintStyle.Render(m.status))
	default:
		b.WriteString(hintStyle.Render("tab: switch view • enter: generate • ctrl+s: save • ctrl+y: copy export • ctrl+c: quit"))
	}

	return b.String()
}

func renderOutline(s *scenario.Scenario) string {
	var b strings.Builder
	title := s.Outline.Title
	if title == "" {
		title = "Untitled Scenario"
	}
	b.WriteString(headingStyle.Render(title) + "\n\n")
	pair := func(label, value string) {
		if value != "" {
			b.WriteString(labelStyle.Render(label+": ") + value + "\n\n")
		}
	}
	pair("Template", string(s.Outline.Template))
	pair("Era", s.Outline.Era)
	pair("Player Briefing", s.Outline.PlayerInfo)
	pair("The Truth", s.Outline.Truth)
	pair("Act One", s.Outline.Act1)
	pair("Act Two", s.Outline.Act2)
	pair("Act Three", s.Outline.Act3)
	pair("Act Four", s.Outline.Act4)
	pair("Keeper FAQ", s.Outline.FAQ)
	return b.String()
}

func renderTimeline(s *scenario.Scenario) string {
	if len(s.Timeline) == 0 {
		return "No timeline events yet. Type a prompt below, or AUTO_UPDATE to derive the timeline from the outline."
	}
	var b strings.Builder
	for _, e := range s.Timeline {
		marker := "•"
		if e.IsInterventionPoint {
			marker = "⚑"
		}
		b.WriteString(fmt.Sprintf("%s %s — %s (%s)\n", marker, e.Date, headingStyle.Render(e.Title), e.Kind))
		if e.Content != "" {
			b.WriteString("  " + e.Content + "\n")
		}
		if e.ReadAloud != "" {
			b.WriteString("  " + labelStyle.Render("Read aloud: ") + e.ReadAloud + "\n")
		}
		if e.EndingCondition != "" {
			b.WriteString("  " + labelStyle.Render("Condition: ") + e.EndingCondition + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderCast(s *scenario.Scenario) string {
	if len(s.Characters) == 0 {
		return "No characters yet. Type a prompt below, or AUTO_CREATE to derive the cast from the outline."
	}
	var b strings.Builder
	for i := range s.Characters {
		c := &s.Characters[i]
		b.WriteString(headingStyle.Render(c.Name))
		if c.Occupation != "" {
			b.WriteString(" — " + c.Occupation)
		}
		b.WriteString("\n")
		if c.Description != "" {
			b.WriteString("  " + c.Description + "\n")
		}
		if c.Secret != "" {
			b.WriteString("  " + labelStyle.Render("Secret: ") + c.Secret + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderItems(s *scenario.Scenario) string {
	if len(s.Items) == 0 {
		return "No items yet. Type a prompt below, or AUTO_CREATE to derive the catalog from the outline."
	}
	var b strings.Builder
	for i := range s.Items {
		it := &s.Items[i]
		b.WriteString(headingStyle.Render(it.Name) + " (" + string(it.Category) + ")\n")
		if it.Description != "" {
			b.WriteString("  " + it.Description + "\n")
		}
		if it.FoundLocation != "" {
			b.WriteString("  " + labelStyle.Render("Found at: ") + it.FoundLocation + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
