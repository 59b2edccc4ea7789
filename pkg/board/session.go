package board

import "github.com/hallwright/scenario-workbench/pkg/scenario"

// Mode is the current interaction tool. Modes are mutually exclusive and
// change only by explicit selection, never automatically.
type Mode string

const (
	ModeAdd  Mode = "add" // map only: click places a location
	ModeMove Mode = "move"
	ModePan  Mode = "pan"
)

// BoardKind distinguishes the two canvases.
type BoardKind string

const (
	BoardMap  BoardKind = "map"
	BoardWall BoardKind = "wall"
)

// NodeRef identifies a card under the pointer.
type NodeRef struct {
	Kind NodeKind
	ID   string
}

// Session is the pointer interaction state machine for one canvas. One
// pointer is modeled; at most one of a pan drag or a node drag is active
// at a time, and both are cleared unconditionally on pointer-up or
// pointer-leave so the cursor can never wedge a stale drag.
type Session struct {
	Board  BoardKind
	Camera *Camera
	Mode   Mode

	Selected *NodeRef // last card pressed, map detail panel follows this

	panning  bool
	anchor   Point // pointer position minus pan at drag start
	dragNode *NodeRef
	down     bool
	moved    bool
}

// NewMapSession returns the map canvas session, starting in add mode.
func NewMapSession() *Session {
	return &Session{Board: BoardMap, Camera: NewMapCamera(), Mode: ModeAdd}
}

// NewWallSession returns the clue wall session, starting in move mode.
func NewWallSession() *Session {
	return &Session{Board: BoardWall, Camera: NewWallCamera(), Mode: ModeMove}
}

// SetMode switches tools. Add is only honored on the map.
func (s *Session) SetMode(m Mode) {
	if m == ModeAdd && s.Board != BoardMap {
		return
	}
	s.Mode = m
}

// Dragging reports whether a pan or node drag is in progress.
func (s *Session) Dragging() bool {
	return s.panning || s.dragNode != nil
}

// PointerDown handles a press on empty canvas space. In pan mode it
// anchors the drag at the pointer position minus the current pan, so the
// canvas follows the pointer without jumping.
func (s *Session) PointerDown(p Point) {
	s.down = true
	s.moved = false
	if s.Mode == ModePan {
		s.panning = true
		s.anchor = Point{X: p.X - s.Camera.Pan.X, Y: p.Y - s.Camera.Pan.Y}
	}
}

// NodeDown handles a press that lands on a card. It always records the
// card as selected; in move mode it also starts a node drag. It returns
// true when the press was consumed, in which case the host must not also
// deliver PointerDown for the same press (the stop-propagation contract:
// a node press never starts a pan underneath).
func (s *Session) NodeDown(ref NodeRef) bool {
	r := ref
	s.Selected = &r
	if s.Mode != ModeMove {
		return false
	}
	s.down = true
	s.moved = false
	d := ref
	s.dragNode = &d
	return true
}

// PointerMove advances whichever drag is active. Pan is unclamped while
// dragging. A node drag converts the pointer through the camera and
// writes the entity's stored percent position; conversions against an
// unmeasured rect are dropped, and the write clamps per axis.
func (s *Session) PointerMove(p Point, rect Rect, sc *scenario.Scenario) {
	if s.down {
		s.moved = true
	}
	if s.panning {
		s.Camera.Pan = Point{X: p.X - s.anchor.X, Y: p.Y - s.anchor.Y}
		return
	}
	if s.dragNode == nil {
		return
	}
	x, y, ok := s.Camera.ScreenToPercent(p, rect)
	if !ok {
		return
	}
	switch s.dragNode.Kind {
	case NodeCharacter:
		sc.MoveCharacterCard(s.dragNode.ID, x, y)
	case NodeLocation:
		sc.MoveLocation(s.dragNode.ID, x, y)
	case NodeItem:
		sc.MoveItemCard(s.dragNode.ID, x, y)
	case NodeEvent:
		sc.MoveEventCard(s.dragNode.ID, x, y)
	}
}

// PointerUp ends the press. On the map in add mode, a plain click (no
// motion since the press, no drag consumed elsewhere) places a new
// location at the clicked spot and selects it; the created location is
// returned. All drag state is cleared regardless.
func (s *Session) PointerUp(p Point, rect Rect, sc *scenario.Scenario) *scenario.Location {
	var placed *scenario.Location
	if s.Board == BoardMap && s.Mode == ModeAdd && s.down && !s.moved && s.dragNode == nil {
		if x, y, ok := s.Camera.ScreenToPercent(p, rect); ok {
			l := sc.PlaceLocation(x, y)
			placed = &l
			s.Selected = &NodeRef{Kind: NodeLocation, ID: l.ID}
		}
	}
	s.clearDrag()
	return placed
}

// PointerLeave clears any active drag, same as pointer-up, so leaving the
// canvas mid-drag never leaves a stuck drag behind.
func (s *Session) PointerLeave() {
	s.clearDrag()
}

func (s *Session) clearDrag() {
	s.panning = false
	s.dragNode = nil
	s.down = false
	s.moved = false
}
