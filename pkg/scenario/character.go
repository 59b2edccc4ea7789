package scenario

// Character is a dossier entry for one NPC or key figure. Board position
// is where the card hangs on the clue wall, in percent of the wall's size;
// nil means the card has never been placed and renders at the default spot.
type Character struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Age         string `json:"age,omitempty"`
	Occupation  string `json:"occupation,omitempty"`
	Description string `json:"description,omitempty"`
	Personality string `json:"personality,omitempty"`
	Belief      string `json:"belief,omitempty"`
	Backstory   string `json:"backstory,omitempty"`
	Goal        string `json:"goal,omitempty"`
	ActionStyle string `json:"action_style,omitempty"`
	Skills      string `json:"skills,omitempty"`
	Secret      string `json:"secret,omitempty"` // keeper-only
	ImageData   string `json:"image_data,omitempty"`

	BoardX *float64 `json:"board_x,omitempty"`
	BoardY *float64 `json:"board_y,omitempty"`
}

// ReferenceEntry is a bookmark on the reference shelf.
type ReferenceEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Note  string `json:"note,omitempty"`
}
