package board

import "github.com/hallwright/scenario-workbench/pkg/scenario"

// NodeKind says which collection a clue wall node came from.
type NodeKind string

const (
	NodeCharacter NodeKind = "character"
	NodeLocation  NodeKind = "location"
	NodeItem      NodeKind = "item"
	NodeEvent     NodeKind = "event"
)

// Unplaced cards land on a default spot per kind so a fresh wall is
// readable instead of a single pile.
const (
	defaultCharacterX, defaultCharacterY = 10.0, 10.0
	defaultItemX, defaultItemY           = 20.0, 20.0
	defaultEventX, defaultEventY         = 30.0, 30.0
)

// Node is one card on the clue wall, in percent coordinates.
type Node struct {
	Kind  NodeKind `json:"kind"`
	ID    string   `json:"id"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Label string   `json:"label"`
}

// Edge is one derived string between an event card and a linked card, in
// percent coordinates. Edges are recomputed from entity positions on
// every render and never stored, so moving a card moves every string
// touching it with no invalidation step.
type Edge struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

func boardPos(x, y *float64, dx, dy float64) (float64, float64) {
	if x == nil || y == nil {
		return dx, dy
	}
	return *x, *y
}

// Nodes flattens the scenario's collections into clue wall cards.
// Locations contribute their shared map position, so a pin moved on the
// map moves here too.
func Nodes(s *scenario.Scenario) []Node {
	nodes := make([]Node, 0, len(s.Characters)+len(s.Locations)+len(s.Items)+len(s.Timeline))
	for _, c := range s.Characters {
		x, y := boardPos(c.BoardX, c.BoardY, defaultCharacterX, defaultCharacterY)
		nodes = append(nodes, Node{Kind: NodeCharacter, ID: c.ID, X: x, Y: y, Label: c.Name})
	}
	for _, l := range s.Locations {
		nodes = append(nodes, Node{Kind: NodeLocation, ID: l.ID, X: l.X, Y: l.Y, Label: l.Name})
	}
	for _, i := range s.Items {
		x, y := boardPos(i.BoardX, i.BoardY, defaultItemX, defaultItemY)
		nodes = append(nodes, Node{Kind: NodeItem, ID: i.ID, X: x, Y: y, Label: i.Name})
	}
	for _, e := range s.Timeline {
		x, y := boardPos(e.BoardX, e.BoardY, defaultEventX, defaultEventY)
		nodes = append(nodes, Node{Kind: NodeEvent, ID: e.ID, X: x, Y: y, Label: e.Title})
	}
	return nodes
}

// Edges resolves every event's link lists against the current collections
// and returns one edge per resolvable link. Ids that no longer match a
// live entity contribute nothing and are not reported.
func Edges(s *scenario.Scenario) []Edge {
	index := make(map[NodeKind]map[string]Node)
	for _, n := range Nodes(s) {
		m := index[n.Kind]
		if m == nil {
			m = make(map[string]Node)
			index[n.Kind] = m
		}
		m[n.ID] = n
	}

	var edges []Edge
	addEdges := func(from Node, kind NodeKind, ids []string) {
		for _, id := range ids {
			to, found := index[kind][id]
			if !found {
				continue
			}
			edges = append(edges, Edge{X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y})
		}
	}

	for _, e := range s.Timeline {
		from, found := index[NodeEvent][e.ID]
		if !found {
			continue
		}
		addEdges(from, NodeCharacter, e.LinkedCharacterIDs)
		addEdges(from, NodeLocation, e.LinkedLocationIDs)
		addEdges(from, NodeItem, e.LinkedItemIDs)
	}
	return edges
}
