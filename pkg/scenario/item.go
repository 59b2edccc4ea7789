package scenario

// ItemCategory is the closed set of item kinds.
type ItemCategory string

const (
	ItemClue     ItemCategory = "Clue"
	ItemWeapon   ItemCategory = "Weapon"
	ItemTool     ItemCategory = "Tool"
	ItemArtifact ItemCategory = "Artifact"
	ItemDocument ItemCategory = "Document"
)

// ItemCategories lists every valid category in display order.
var ItemCategories = []ItemCategory{ItemClue, ItemWeapon, ItemTool, ItemArtifact, ItemDocument}

// Valid reports whether c is one of the known categories.
func (c ItemCategory) Valid() bool {
	switch c {
	case ItemClue, ItemWeapon, ItemTool, ItemArtifact, ItemDocument:
		return true
	}
	return false
}

// Item is a catalog entry for a prop, clue or piece of equipment.
type Item struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Category      ItemCategory `json:"category"`
	Description   string       `json:"description,omitempty"`
	Attributes    string       `json:"attributes,omitempty"`
	Owner         string       `json:"owner,omitempty"`
	FoundLocation string       `json:"found_location,omitempty"`
	ImageData     string       `json:"image_data,omitempty"`

	BoardX *float64 `json:"board_x,omitempty"`
	BoardY *float64 `json:"board_y,omitempty"`
}
