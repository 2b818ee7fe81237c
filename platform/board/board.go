package board

import "errors"

// Kind is the closed set of tile types on the board.
type Kind int

const (
	Go Kind = iota
	Street
	Railroad
	Utility
	Chance
	Chest
	TaxIncome
	TaxLuxury
	Free
	JailVisit
	GoToJail
)

// Group identifies a colour set or the railroad/utility groupings.
type Group int

const (
	GroupNone Group = iota
	Brown
	LightBlue
	Pink
	Orange
	Red
	Yellow
	Green
	DarkBlue
	Railroads
	Utilities
)

const (
	// Size is the number of tiles on the board.
	Size = 40
	// JailPos is where GoToJail sends a player.
	JailPos = 10

	IncomeTaxAmount = 200
	LuxuryTaxAmount = 100
)

var ErrOutOfRange = errors.New("tile position out of range")

// Tile is one board position. Cost and Rents are only meaningful for
// purchasable kinds; Rents is indexed by house count (5 = hotel).
type Tile struct {
	Name  string
	Kind  Kind
	Group Group
	Cost  int
	Rents [6]int
}

// Purchasable reports whether the tile can be owned.
func (t Tile) Purchasable() bool {
	return t.Kind == Street || t.Kind == Railroad || t.Kind == Utility
}

var groupTiles = map[Group][]int{
	Brown:     {1, 3},
	LightBlue: {6, 8, 9},
	Pink:      {11, 13, 14},
	Orange:    {16, 18, 19},
	Red:       {21, 23, 24},
	Yellow:    {26, 27, 29},
	Green:     {31, 32, 34},
	DarkBlue:  {37, 39},
	Railroads: {5, 15, 25, 35},
	Utilities: {12, 28},
}

// Building a house costs the same on every street of a colour set.
var buildCosts = map[Group]int{
	Brown:     100,
	LightBlue: 150,
	Pink:      300,
	Orange:    300,
	Red:       450,
	Yellow:    450,
	Green:     600,
	DarkBlue:  400,
}

// TileAt returns the tile at the given board position.
func TileAt(pos int) (Tile, error) {
	if pos < 0 || pos >= Size {
		return Tile{}, ErrOutOfRange
	}
	return tiles[pos], nil
}

// MustTileAt is TileAt for positions already known to be on the board.
func MustTileAt(pos int) Tile {
	t, err := TileAt(pos)
	if err != nil {
		panic(err)
	}
	return t
}

// GroupOf returns the positions sharing the tile's group, including the
// tile itself. Nil for ungrouped tiles or positions off the board.
func GroupOf(pos int) []int {
	if pos < 0 || pos >= Size {
		return nil
	}
	return groupTiles[tiles[pos].Group]
}

// BuildCost returns the per-house cost for a colour group, 0 for
// groups that can't be built on.
func BuildCost(g Group) int {
	return buildCosts[g]
}
