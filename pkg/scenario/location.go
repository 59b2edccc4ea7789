package scenario

// Location is a pin on the map. X and Y are percent coordinates in
// [0,100] of the map canvas, and they double as the location's clue wall
// position: moving a location on either board moves it on both.
type Location struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	NPCs        []string `json:"npcs"`
	ImageData   string   `json:"image_data,omitempty"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
}
