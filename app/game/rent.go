package game

import "github.com/chatopoly/monopoly-bot/platform/board"

const baseRailroadRent = 25

// CalculateRent is the rent owed by landing on pos, given the full
// roster. 0 when the tile is unowned or owned by landing themselves.
// utilityRoll is a fresh dice sum, independent of the movement roll; it
// is only read for utility tiles.
//
// Streets: from two houses up the schedule value applies; a full colour
// set doubles the base rent; the two bonuses never stack. Railroads pay
// 25 doubled per extra railroad the owner holds. Utilities pay the roll
// times 4, or times 10 with both utilities.
func CalculateRent(pos int, landing *Player, players []*Player, utilityRoll int) int {
	var owner *Player
	for _, p := range players {
		if _, ok := p.Ownership[pos]; ok {
			owner = p
			break
		}
	}
	if owner == nil || owner.UserId == landing.UserId {
		return 0
	}

	tile := board.MustTileAt(pos)
	switch tile.Kind {
	case board.Street:
		houses := owner.Ownership[pos]
		if houses >= 2 {
			return tile.Rents[houses]
		}
		if owner.ownsGroup(pos) {
			return tile.Rents[0] * 2
		}
		return tile.Rents[0]
	case board.Railroad:
		owned := 0
		for _, sibling := range board.GroupOf(pos) {
			if _, ok := owner.Ownership[sibling]; ok {
				owned++
			}
		}
		return baseRailroadRent << (owned - 1)
	case board.Utility:
		multiplier := 4
		if owner.ownsGroup(pos) {
			multiplier = 10
		}
		return utilityRoll * multiplier
	}
	return 0
}
