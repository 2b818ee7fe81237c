package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chatopoly/monopoly-bot/app/models"
)

// scriptedDice replays a fixed sequence of throws.
type scriptedDice struct {
	rolls [][2]int
	next  int
}

func dice(rolls ...[2]int) *scriptedDice {
	return &scriptedDice{rolls: rolls}
}

func (d *scriptedDice) Roll() (int, int) {
	if d.next >= len(d.rolls) {
		panic("scripted dice exhausted")
	}
	r := d.rolls[d.next]
	d.next++
	return r[0], r[1]
}

var testEntries = []models.LobbyEntry{
	{UserId: 1, Username: "alice"},
	{UserId: 2, Username: "bob"},
	{UserId: 3, Username: "carol"},
}

func newTestGame(t *testing.T, d Dice, players int) *Game {
	t.Helper()
	g, err := NewGame(testEntries[:players], d)
	require.NoError(t, err)
	return g
}
