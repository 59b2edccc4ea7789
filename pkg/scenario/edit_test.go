package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLink_DoubleToggleRestoresOrder(t *testing.T) {
	s := New()
	ev := s.AddEvent(TimelineEvent{Title: "The séance", Kind: EventScenario})
	i1 := s.AddItem(Item{Name: "Silver key", Category: ItemClue})
	i2 := s.AddItem(Item{Name: "Revolver", Category: ItemWeapon})
	i3 := s.AddItem(Item{Name: "Diary", Category: ItemDocument})

	s.ToggleLink(ev.ID, LinkItem, i1.ID)
	s.ToggleLink(ev.ID, LinkItem, i2.ID)
	s.ToggleLink(ev.ID, LinkItem, i3.ID)

	before := append([]string(nil), s.Event(ev.ID).LinkedItemIDs...)

	// Toggle the middle entry out and back in.
	s.ToggleLink(ev.ID, LinkItem, i2.ID)
	assert.Equal(t, []string{i1.ID, i3.ID}, s.Event(ev.ID).LinkedItemIDs)
	s.ToggleLink(ev.ID, LinkItem, i2.ID)

	got := s.Event(ev.ID).LinkedItemIDs
	assert.ElementsMatch(t, before, got, "double toggle must restore membership")
	assert.Equal(t, []string{i1.ID, i3.ID, i2.ID}, got, "re-added id appends")
}

func TestToggleLink_UnknownEventIsNoop(t *testing.T) {
	s := New()
	s.ToggleLink("nope", LinkCharacter, "c1")
	assert.Empty(t, s.Timeline)
}

func TestRemoveCharacter_LeavesDanglingLinks(t *testing.T) {
	s := New()
	c := s.AddCharacter(Character{Name: "Prof. Webb"})
	ev := s.AddEvent(TimelineEvent{Title: "Disappearance"})
	s.ToggleLink(ev.ID, LinkCharacter, c.ID)

	s.RemoveCharacter(c.ID)

	require.Nil(t, s.Character(c.ID))
	assert.Equal(t, []string{c.ID}, s.Event(ev.ID).LinkedCharacterIDs,
		"deleting an entity must not prune link lists")
}

func TestMoveLocation_ClampsPerAxis(t *testing.T) {
	s := New()
	l := s.AddLocation(Location{Name: "Docks", X: 10, Y: 10})

	s.MoveLocation(l.ID, 150, 50)

	got := s.Location(l.ID)
	assert.Equal(t, 100.0, got.X, "overflowing axis pins to the edge")
	assert.Equal(t, 50.0, got.Y, "in-range axis is untouched")

	s.MoveLocation(l.ID, -3, 120)
	got = s.Location(l.ID)
	assert.Equal(t, 0.0, got.X)
	assert.Equal(t, 100.0, got.Y)
}

func TestMoveCharacterCard_SetsBoardPosition(t *testing.T) {
	s := New()
	c := s.AddCharacter(Character{Name: "Ada"})
	require.Nil(t, s.Character(c.ID).BoardX)

	s.MoveCharacterCard(c.ID, 42.5, 17)

	got := s.Character(c.ID)
	require.NotNil(t, got.BoardX)
	assert.Equal(t, 42.5, *got.BoardX)
	assert.Equal(t, 17.0, *got.BoardY)
}

func TestUpdateCharacter_IDIsImmutable(t *testing.T) {
	s := New()
	c := s.AddCharacter(Character{Name: "Ada"})

	s.UpdateCharacter(c.ID, func(ch *Character) {
		ch.ID = "hijacked"
		ch.Name = "Ada Mason"
	})

	require.NotNil(t, s.Character(c.ID))
	assert.Equal(t, "Ada Mason", s.Character(c.ID).Name)
	assert.Nil(t, s.Character("hijacked"))
}

func TestReducers_CopyOnWrite(t *testing.T) {
	s := New()
	s.AddItem(Item{Name: "Lantern", Category: ItemTool})
	before := s.Items

	s.UpdateItem(before[0].ID, func(i *Item) { i.Name = "Broken lantern" })

	assert.Equal(t, "Lantern", before[0].Name, "prior collection value must not change")
	assert.Equal(t, "Broken lantern", s.Items[0].Name)
}

func TestAddItem_DefaultsCategory(t *testing.T) {
	s := New()
	i := s.AddItem(Item{Name: "Scrap", Category: "Gadget"})
	assert.Equal(t, ItemClue, i.Category)
}

func TestAddEvent_DefaultsKind(t *testing.T) {
	s := New()
	e := s.AddEvent(TimelineEvent{Title: "???", Kind: "mystery"})
	assert.Equal(t, EventScenario, e.Kind)
}

func TestPlaceLocation_UsesClickedSpot(t *testing.T) {
	s := New()
	l := s.PlaceLocation(33.3, 66.6)
	assert.Equal(t, "New location", l.Name)
	assert.Equal(t, 33.3, l.X)
	assert.Equal(t, 66.6, l.Y)
	assert.NotEmpty(t, l.ID)
}
