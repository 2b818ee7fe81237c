package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTileAtRange(t *testing.T) {
	_, err := TileAt(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = TileAt(Size)
	require.ErrorIs(t, err, ErrOutOfRange)

	first, err := TileAt(0)
	require.NoError(t, err)
	require.Equal(t, "GO", first.Name)

	last, err := TileAt(Size - 1)
	require.NoError(t, err)
	require.Equal(t, "Mayfair", last.Name)
}

func TestBoardShape(t *testing.T) {
	streets, railroads, utilities := 0, 0, 0
	for pos := 0; pos < Size; pos++ {
		tile := MustTileAt(pos)
		switch tile.Kind {
		case Street:
			streets++
			require.Positive(t, tile.Cost, "street %d has no price", pos)
			require.Positive(t, tile.Rents[0], "street %d has no base rent", pos)
		case Railroad:
			railroads++
			require.Equal(t, 200, tile.Cost)
		case Utility:
			utilities++
			require.Equal(t, 150, tile.Cost)
		}
	}
	require.Equal(t, 22, streets)
	require.Equal(t, 4, railroads)
	require.Equal(t, 2, utilities)
}

func TestGroupsPartitionTheirTiles(t *testing.T) {
	seen := map[int]Group{}
	for group, members := range groupTiles {
		for _, pos := range members {
			prev, dup := seen[pos]
			require.False(t, dup, "tile %d in groups %v and %v", pos, prev, group)
			seen[pos] = group
			require.Equal(t, group, MustTileAt(pos).Group)
		}
	}
}

func TestGroupOf(t *testing.T) {
	require.ElementsMatch(t, []int{1, 3}, GroupOf(1))
	require.ElementsMatch(t, []int{5, 15, 25, 35}, GroupOf(5))
	require.ElementsMatch(t, []int{12, 28}, GroupOf(28))
	require.Empty(t, GroupOf(0))
	require.Empty(t, GroupOf(-5))
}

func TestBuildCost(t *testing.T) {
	require.Equal(t, 100, BuildCost(Brown))
	require.Equal(t, 400, BuildCost(DarkBlue))
	require.Zero(t, BuildCost(Railroads))
	require.Zero(t, BuildCost(GroupNone))
}

func TestPurchasable(t *testing.T) {
	require.True(t, MustTileAt(1).Purchasable())
	require.True(t, MustTileAt(5).Purchasable())
	require.True(t, MustTileAt(12).Purchasable())
	require.False(t, MustTileAt(0).Purchasable())
	require.False(t, MustTileAt(4).Purchasable())
	require.False(t, MustTileAt(30).Purchasable())
}
