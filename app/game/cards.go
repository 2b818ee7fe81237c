package game

// Chance and Community Chest are reduced to cash effects so their whole
// outcome fits the flattened rows. The draw comes from the shared dice
// source to stay deterministic under test.

type card struct {
	note   string
	amount int
}

var chanceCards = []card{
	{note: "Bank pays you dividend of 50.", amount: 50},
	{note: "Speeding fine, pay 15.", amount: -15},
	{note: "Your building loan matures, collect 150.", amount: 150},
	{note: "Pay school fees of 150.", amount: -150},
	{note: "You have won a crossword competition, collect 100.", amount: 100},
	{note: "Drunk in charge, pay a fine of 20.", amount: -20},
}

var chestCards = []card{
	{note: "Bank error in your favour, collect 200.", amount: 200},
	{note: "Doctor's fee, pay 50.", amount: -50},
	{note: "From sale of stock you get 50.", amount: 50},
	{note: "Holiday fund matures, collect 100.", amount: 100},
	{note: "Pay hospital fees of 100.", amount: -100},
	{note: "Income tax refund, collect 20.", amount: 20},
	{note: "You inherit 100.", amount: 100},
	{note: "Pay your insurance premium of 50.", amount: -50},
}

func (g *Game) drawCard(p *Player, deck []card) string {
	d1, d2 := g.dice.Roll()
	c := deck[((d1-1)*6+(d2-1))%len(deck)]
	p.Cash += c.amount
	return "Drew a card: " + c.note
}
