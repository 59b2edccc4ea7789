package scenario

// Board position writes. Every interactive move is clamped to [0,100] on
// each axis independently; an off-canvas drag pins the overflowing axis to
// the edge and leaves the other axis alone.

// MoveLocation sets a location's shared map/wall position.
func (s *Scenario) MoveLocation(id string, x, y float64) {
	s.UpdateLocation(id, func(l *Location) {
		l.X = Clamp(x)
		l.Y = Clamp(y)
	})
}

// MoveCharacterCard sets a character's clue wall position.
func (s *Scenario) MoveCharacterCard(id string, x, y float64) {
	s.UpdateCharacter(id, func(c *Character) {
		cx, cy := Clamp(x), Clamp(y)
		c.BoardX, c.BoardY = &cx, &cy
	})
}

// MoveItemCard sets an item's clue wall position.
func (s *Scenario) MoveItemCard(id string, x, y float64) {
	s.UpdateItem(id, func(i *Item) {
		cx, cy := Clamp(x), Clamp(y)
		i.BoardX, i.BoardY = &cx, &cy
	})
}

// MoveEventCard sets a timeline event's clue wall position.
func (s *Scenario) MoveEventCard(id string, x, y float64) {
	s.UpdateEvent(id, func(e *TimelineEvent) {
		cx, cy := Clamp(x), Clamp(y)
		e.BoardX, e.BoardY = &cx, &cy
	})
}
