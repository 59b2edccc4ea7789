package main

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hallwright/scenario-workbench/pkg/board"
	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

// boardTop is the terminal row where the canvas starts: the tab bar and
// the blank line under it. Mouse coordinates are translated through the
// canvas rect, so this offset must match the View layout.
const boardTop = 2

var nodeGlyphs = map[board.NodeKind]string{
	board.NodeCharacter: "C",
	board.NodeLocation:  "◉",
	board.NodeItem:      "I",
	board.NodeEvent:     "E",
}

var nodeStyles = map[board.NodeKind]lipgloss.Style{
	board.NodeCharacter: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	board.NodeLocation:  lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	board.NodeItem:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	board.NodeEvent:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
}

var selectedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("231")).
	Background(lipgloss.Color("62")).
	Bold(true)

// BoardView renders one canvas (map or clue wall) as a character grid
// and feeds terminal mouse events through the interaction session.
// Terminal cells stand in for pixels; the session does not care.
type BoardView struct {
	session *board.Session
	width   int
	height  int
}

func NewMapView() *BoardView {
	return &BoardView{session: board.NewMapSession()}
}

func NewWallView() *BoardView {
	return &BoardView{session: board.NewWallSession()}
}

func (v *BoardView) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

func (v *BoardView) rect() board.Rect {
	return board.Rect{
		X: 0,
		Y: boardTop,
		W: float64(v.width),
		H: float64(v.height),
	}
}

// visible reports whether a node belongs on this canvas: the map shows
// only location pins, the wall shows every card.
func (v *BoardView) visible(kind board.NodeKind) bool {
	return v.session.Board == board.BoardWall || kind == board.NodeLocation
}

// HandleMouse drives the session from one terminal mouse event. When an
// add-mode click places a location, it is returned for the status line.
func (v *BoardView) HandleMouse(msg tea.MouseMsg, doc *scenario.Scenario) *scenario.Location {
	p := board.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.session.Camera.ZoomIn()
		return nil
	case tea.MouseButtonWheelDown:
		v.session.Camera.ZoomOut()
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		// A press on a card never falls through to the canvas.
		if ref, ok := v.hitTest(p, doc); ok {
			v.session.NodeDown(ref)
			return nil
		}
		v.session.PointerDown(p)
	case tea.MouseActionMotion:
		v.session.PointerMove(p, v.rect(), doc)
	case tea.MouseActionRelease:
		return v.session.PointerUp(p, v.rect(), doc)
	}
	return nil
}

// hitTest finds the card under the pointer, within one cell.
func (v *BoardView) hitTest(p board.Point, doc *scenario.Scenario) (board.NodeRef, bool) {
	rect := v.rect()
	for _, n := range board.Nodes(doc) {
		if !v.visible(n.Kind) {
			continue
		}
		sp := v.session.Camera.PercentToScreen(n.X, n.Y, rect)
		if math.Abs(sp.X-p.X) <= 1 && math.Abs(sp.Y-p.Y) <= 1 {
			return board.NodeRef{Kind: n.Kind, ID: n.ID}, true
		}
	}
	return board.NodeRef{}, false
}

// HandleKey handles the canvas tool keys. It reports whether the key was
// consumed.
func (v *BoardView) HandleKey(key string) bool {
	switch key {
	case "a":
		v.session.SetMode(board.ModeAdd)
	case "m":
		v.session.SetMode(board.ModeMove)
	case "p":
		v.session.SetMode(board.ModePan)
	case "+", "=":
		v.session.Camera.ZoomIn()
	case "-":
		v.session.Camera.ZoomOut()
	case "left":
		v.session.Camera.Pan.X += 4
	case "right":
		v.session.Camera.Pan.X -= 4
	case "up":
		v.session.Camera.Pan.Y += 2
	case "down":
		v.session.Camera.Pan.Y -= 2
	default:
		return false
	}
	return true
}

// Render draws the canvas grid with one glyph per card.
func (v *BoardView) Render(doc *scenario.Scenario) string {
	if v.width < 1 || v.height < 1 {
		return ""
	}

	type cell struct {
		glyph    string
		style    lipgloss.Style
		selected bool
	}
	cells := make(map[[2]int]cell)

	rect := v.rect()
	for _, n := range board.Nodes(doc) {
		if !v.visible(n.Kind) {
			continue
		}
		sp := v.session.Camera.PercentToScreen(n.X, n.Y, rect)
		col := int(math.Round(sp.X - rect.X))
		row := int(math.Round(sp.Y - rect.Y))
		if col < 0 || col >= v.width || row < 0 || row >= v.height {
			continue
		}
		sel := v.session.Selected != nil && v.session.Selected.ID == n.ID && v.session.Selected.Kind == n.Kind
		cells[[2]int{row, col}] = cell{glyph: nodeGlyphs[n.Kind], style: nodeStyles[n.Kind], selected: sel}
	}

	var b strings.Builder
	for row := 0; row < v.height; row++ {
		for col := 0; col < v.width; col++ {
			if c, ok := cells[[2]int{row, col}]; ok {
				if c.selected {
					b.WriteString(selectedStyle.Render(c.glyph))
				} else {
					b.WriteString(c.style.Render(c.glyph))
				}
				continue
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Hint is the canvas status line: tool, zoom, selection and string count.
func (v *BoardView) Hint() string {
	tools := "m: move • p: pan"
	if v.session.Board == board.BoardMap {
		tools = "a: add • " + tools
	}
	sel := ""
	if v.session.Selected != nil {
		id := v.session.Selected.ID
		if len(id) > 8 {
			id = id[:8]
		}
		sel = fmt.Sprintf(" • selected: %s %s", v.session.Selected.Kind, id)
	}
	return fmt.Sprintf("[%s] zoom %.1f • %s • +/-: zoom • arrows: pan%s", v.session.Mode, v.session.Camera.Zoom, tools, sel)
}
