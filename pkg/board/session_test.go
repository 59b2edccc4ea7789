package board

import (
	"testing"

	"github.com/hallwright/scenario-workbench/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapRect() Rect {
	return Rect{W: MapCanvasWidth, H: MapCanvasHeight}
}

func TestSession_PanFollowsPointerWithoutJumping(t *testing.T) {
	s := scenario.New()
	sess := NewMapSession()
	sess.SetMode(ModePan)
	sess.Camera.Pan = Point{X: 100, Y: 50}

	sess.PointerDown(Point{X: 300, Y: 300})
	sess.PointerMove(Point{X: 310, Y: 290}, mapRect(), s)

	assert.Equal(t, Point{X: 110, Y: 40}, sess.Camera.Pan)

	sess.PointerMove(Point{X: 250, Y: 400}, mapRect(), s)
	assert.Equal(t, Point{X: 50, Y: 150}, sess.Camera.Pan, "pan is unclamped during drag")

	sess.PointerUp(Point{X: 250, Y: 400}, mapRect(), s)
	assert.False(t, sess.Dragging())
}

func TestSession_MoveDragClampsOverflowingAxisOnly(t *testing.T) {
	s := scenario.New()
	l := s.AddLocation(scenario.Location{Name: "Docks", X: 10, Y: 10})
	sess := NewMapSession()
	sess.SetMode(ModeMove)

	require.True(t, sess.NodeDown(NodeRef{Kind: NodeLocation, ID: l.ID}))

	// Pointer at 150% x, 50% y: off the canvas to the right.
	sess.PointerMove(Point{X: MapCanvasWidth * 1.5, Y: MapCanvasHeight * 0.5}, mapRect(), s)

	got := s.Location(l.ID)
	assert.Equal(t, 100.0, got.X)
	assert.Equal(t, 50.0, got.Y)
}

func TestSession_MoveDragDroppedWhenRectUnmeasured(t *testing.T) {
	s := scenario.New()
	l := s.AddLocation(scenario.Location{Name: "Docks", X: 10, Y: 10})
	sess := NewMapSession()
	sess.SetMode(ModeMove)
	sess.NodeDown(NodeRef{Kind: NodeLocation, ID: l.ID})

	sess.PointerMove(Point{X: 500, Y: 400}, Rect{}, s)

	got := s.Location(l.ID)
	assert.Equal(t, 10.0, got.X, "event against an unmeasured canvas is a no-op")
	assert.Equal(t, 10.0, got.Y)
}

func TestSession_AddClickPlacesAndSelectsLocation(t *testing.T) {
	s := scenario.New()
	sess := NewMapSession() // map starts in add mode

	sess.PointerDown(Point{X: MapCanvasWidth / 2, Y: MapCanvasHeight / 4})
	placed := sess.PointerUp(Point{X: MapCanvasWidth / 2, Y: MapCanvasHeight / 4}, mapRect(), s)

	require.NotNil(t, placed)
	assert.Equal(t, 50.0, placed.X)
	assert.Equal(t, 25.0, placed.Y)
	require.NotNil(t, sess.Selected)
	assert.Equal(t, placed.ID, sess.Selected.ID)
	require.Len(t, s.Locations, 1)
}

func TestSession_DragIsNotAClick(t *testing.T) {
	s := scenario.New()
	sess := NewMapSession()

	sess.PointerDown(Point{X: 100, Y: 100})
	sess.PointerMove(Point{X: 140, Y: 100}, mapRect(), s)
	placed := sess.PointerUp(Point{X: 140, Y: 100}, mapRect(), s)

	assert.Nil(t, placed)
	assert.Empty(t, s.Locations)
}

func TestSession_AddIsMapOnly(t *testing.T) {
	wall := NewWallSession()
	assert.Equal(t, ModeMove, wall.Mode)
	wall.SetMode(ModeAdd)
	assert.Equal(t, ModeMove, wall.Mode, "the wall has no add tool")
}

func TestSession_NodePressDoesNotStartPan(t *testing.T) {
	s := scenario.New()
	c := s.AddCharacter(scenario.Character{Name: "Ada"})
	sess := NewWallSession()
	sess.SetMode(ModeMove)

	consumed := sess.NodeDown(NodeRef{Kind: NodeCharacter, ID: c.ID})
	require.True(t, consumed, "host must stop propagation and skip PointerDown")

	pan := sess.Camera.Pan
	sess.PointerMove(Point{X: 800, Y: 600}, Rect{W: WallCanvasWidth, H: WallCanvasHeight}, s)
	assert.Equal(t, pan, sess.Camera.Pan, "a node drag never pans the canvas")
	require.NotNil(t, s.Character(c.ID).BoardX)
}

func TestSession_SelectionFollowsNodePressInAnyMode(t *testing.T) {
	s := scenario.New()
	l := s.AddLocation(scenario.Location{Name: "Chapel", X: 5, Y: 5})
	sess := NewMapSession() // add mode

	consumed := sess.NodeDown(NodeRef{Kind: NodeLocation, ID: l.ID})
	assert.False(t, consumed, "outside move mode the press selects but starts no drag")
	require.NotNil(t, sess.Selected)
	assert.Equal(t, l.ID, sess.Selected.ID)
}

func TestSession_PointerLeaveClearsDrag(t *testing.T) {
	s := scenario.New()
	i := s.AddItem(scenario.Item{Name: "Key", Category: scenario.ItemClue})
	sess := NewWallSession()
	sess.NodeDown(NodeRef{Kind: NodeItem, ID: i.ID})
	require.True(t, sess.Dragging())

	sess.PointerLeave()
	assert.False(t, sess.Dragging())

	// Motion after leave must not move anything.
	before := *s.Item(i.ID)
	sess.PointerMove(Point{X: 999, Y: 999}, Rect{W: WallCanvasWidth, H: WallCanvasHeight}, s)
	assert.Equal(t, before, *s.Item(i.ID))
}

func TestSession_EventCardDragWritesBoardPosition(t *testing.T) {
	s := scenario.New()
	ev := s.AddEvent(scenario.TimelineEvent{Title: "Ritual"})
	sess := NewWallSession()
	rect := Rect{W: WallCanvasWidth, H: WallCanvasHeight}

	sess.NodeDown(NodeRef{Kind: NodeEvent, ID: ev.ID})
	sess.PointerMove(Point{X: WallCanvasWidth * 0.8, Y: WallCanvasHeight * 0.2}, rect, s)

	got := s.Event(ev.ID)
	require.NotNil(t, got.BoardX)
	assert.InDelta(t, 80, *got.BoardX, 1e-9)
	assert.InDelta(t, 20, *got.BoardY, 1e-9)
}
