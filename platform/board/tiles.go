package board

// The classic UK board. Values are game rules, not configuration: rent
// math depends on them matching exactly, so they live in code.
var tiles = [Size]Tile{
	{Name: "GO", Kind: Go},
	{Name: "Old Kent Road", Kind: Street, Group: Brown, Cost: 60, Rents: [6]int{2, 10, 30, 90, 160, 250}},
	{Name: "Community Chest", Kind: Chest},
	{Name: "Whitechapel Road", Kind: Street, Group: Brown, Cost: 60, Rents: [6]int{4, 20, 60, 180, 320, 450}},
	{Name: "Income Tax", Kind: TaxIncome},
	{Name: "Kings Cross Station", Kind: Railroad, Group: Railroads, Cost: 200},
	{Name: "The Angel, Islington", Kind: Street, Group: LightBlue, Cost: 100, Rents: [6]int{6, 30, 90, 270, 400, 550}},
	{Name: "Chance", Kind: Chance},
	{Name: "Euston Road", Kind: Street, Group: LightBlue, Cost: 100, Rents: [6]int{6, 30, 90, 270, 400, 550}},
	{Name: "Pentonville Road", Kind: Street, Group: LightBlue, Cost: 120, Rents: [6]int{8, 40, 100, 300, 450, 600}},
	{Name: "Jail Visiting", Kind: JailVisit},
	{Name: "Pall Mall", Kind: Street, Group: Pink, Cost: 140, Rents: [6]int{10, 50, 150, 450, 625, 750}},
	{Name: "Electric Company", Kind: Utility, Group: Utilities, Cost: 150},
	{Name: "Whitehall", Kind: Street, Group: Pink, Cost: 140, Rents: [6]int{10, 50, 150, 450, 625, 750}},
	{Name: "Northumberland Avenue", Kind: Street, Group: Pink, Cost: 160, Rents: [6]int{12, 60, 180, 500, 700, 900}},
	{Name: "Marylebone Station", Kind: Railroad, Group: Railroads, Cost: 200},
	{Name: "Bow Street", Kind: Street, Group: Orange, Cost: 180, Rents: [6]int{14, 70, 200, 550, 750, 950}},
	{Name: "Community Chest", Kind: Chest},
	{Name: "Marlborough Street", Kind: Street, Group: Orange, Cost: 180, Rents: [6]int{14, 70, 200, 550, 750, 950}},
	{Name: "Vine Street", Kind: Street, Group: Orange, Cost: 200, Rents: [6]int{16, 80, 220, 600, 800, 1000}},
	{Name: "Free Parking", Kind: Free},
	{Name: "Strand", Kind: Street, Group: Red, Cost: 220, Rents: [6]int{18, 90, 250, 700, 875, 1050}},
	{Name: "Chance", Kind: Chance},
	{Name: "Fleet Street", Kind: Street, Group: Red, Cost: 220, Rents: [6]int{18, 90, 250, 700, 875, 1050}},
	{Name: "Trafalgar Square", Kind: Street, Group: Red, Cost: 220, Rents: [6]int{20, 100, 300, 750, 925, 1100}},
	{Name: "Fenchurch St Station", Kind: Railroad, Group: Railroads, Cost: 200},
	{Name: "Leicester Square", Kind: Street, Group: Yellow, Cost: 260, Rents: [6]int{22, 110, 330, 800, 975, 1150}},
	{Name: "Coventry Street", Kind: Street, Group: Yellow, Cost: 260, Rents: [6]int{22, 110, 330, 800, 975, 1150}},
	{Name: "Water Works", Kind: Utility, Group: Utilities, Cost: 150},
	{Name: "Piccadilly", Kind: Street, Group: Yellow, Cost: 280, Rents: [6]int{24, 120, 360, 850, 1025, 1200}},
	{Name: "Go To Jail", Kind: GoToJail},
	{Name: "Regent Street", Kind: Street, Group: Green, Cost: 300, Rents: [6]int{26, 130, 390, 900, 1100, 1275}},
	{Name: "Oxford Street", Kind: Street, Group: Green, Cost: 300, Rents: [6]int{26, 130, 390, 900, 1100, 1275}},
	{Name: "Community Chest", Kind: Chest},
	{Name: "Bond Street", Kind: Street, Group: Green, Cost: 300, Rents: [6]int{28, 150, 450, 1000, 1200, 1400}},
	{Name: "Liverpool Street Station", Kind: Railroad, Group: Railroads, Cost: 200},
	{Name: "Chance", Kind: Chance},
	{Name: "Park Lane", Kind: Street, Group: DarkBlue, Cost: 350, Rents: [6]int{35, 175, 500, 1100, 1300, 1500}},
	{Name: "Super Tax", Kind: TaxLuxury},
	{Name: "Mayfair", Kind: Street, Group: DarkBlue, Cost: 400, Rents: [6]int{50, 100, 600, 1400, 1700, 2000}},
}
