package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rentPlayers(ownerOwns map[int]int) (landing *Player, players []*Player) {
	owner := NewPlayer(1, "alice")
	for pos, houses := range ownerOwns {
		owner.Ownership[pos] = houses
	}
	landing = NewPlayer(2, "bob")
	return landing, []*Player{owner, landing}
}

func TestRentUnownedAndSelfOwned(t *testing.T) {
	landing, players := rentPlayers(nil)
	require.Zero(t, CalculateRent(1, landing, players, 0))

	landing.Ownership[1] = 0
	require.Zero(t, CalculateRent(1, landing, players, 0))
}

func TestRentStreetBase(t *testing.T) {
	landing, players := rentPlayers(map[int]int{1: 0})
	require.Equal(t, 2, CalculateRent(1, landing, players, 0))
}

func TestRentStreetMonopolyDoublesBase(t *testing.T) {
	landing, players := rentPlayers(map[int]int{1: 0, 3: 0})
	require.Equal(t, 4, CalculateRent(1, landing, players, 0))
	require.Equal(t, 8, CalculateRent(3, landing, players, 0))
}

func TestRentStreetHousesUseScheduleOnly(t *testing.T) {
	// Schedule value from two houses up; the monopoly bonus never
	// stacks on top of it.
	landing, players := rentPlayers(map[int]int{1: 2, 3: 0})
	require.Equal(t, 30, CalculateRent(1, landing, players, 0))

	players[0].Ownership[1] = 4
	require.Equal(t, 160, CalculateRent(1, landing, players, 0))

	players[0].Ownership[1] = 5
	require.Equal(t, 250, CalculateRent(1, landing, players, 0))
}

func TestRentStreetSingleHouseFallsBack(t *testing.T) {
	landing, players := rentPlayers(map[int]int{1: 1})
	require.Equal(t, 2, CalculateRent(1, landing, players, 0))

	players[0].Ownership[3] = 0
	require.Equal(t, 4, CalculateRent(1, landing, players, 0))
}

func TestRentRailroadDoublesPerStation(t *testing.T) {
	stations := []int{5, 15, 25, 35}
	expected := []int{25, 50, 100, 200}
	landing, players := rentPlayers(nil)
	for i, pos := range stations {
		players[0].Ownership[pos] = 0
		require.Equal(t, expected[i], CalculateRent(5, landing, players, 0),
			"rent with %d station(s)", i+1)
	}
}

func TestRentUtility(t *testing.T) {
	landing, players := rentPlayers(map[int]int{12: 0})
	require.Equal(t, 28, CalculateRent(12, landing, players, 7))

	players[0].Ownership[28] = 0
	require.Equal(t, 70, CalculateRent(12, landing, players, 7))
}
