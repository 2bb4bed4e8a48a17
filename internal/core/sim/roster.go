package sim

// Fixed rosters shared read-only across all sessions. The home list is the
// Richmond squad; the away list stands in for whoever the opponent is named.
var richmondPlayers = []Player{
	{Name: "Sam Obisanya", Number: 24, Position: "Forward"},
	{Name: "Jamie Tartt", Number: 9, Position: "Forward"},
	{Name: "Dani Rojas", Number: 10, Position: "Midfielder"},
	{Name: "Roy Kent", Number: 6, Position: "Midfielder"},
	{Name: "Isaac McAdoo", Number: 5, Position: "Defender"},
	{Name: "Colin Hughes", Number: 7, Position: "Midfielder"},
	{Name: "Richard Montlaur", Number: 3, Position: "Defender"},
	{Name: "Jan Maas", Number: 4, Position: "Defender"},
	{Name: "Moe Bumbercatch", Number: 11, Position: "Midfielder"},
	{Name: "Zoreaux", Number: 1, Position: "Goalkeeper"},
}

var awayPlayers = []Player{
	{Name: "Marcus Sterling", Number: 9, Position: "Forward"},
	{Name: "João Silva", Number: 10, Position: "Midfielder"},
	{Name: "Ahmed Hassan", Number: 7, Position: "Forward"},
	{Name: "Oliver Thompson", Number: 8, Position: "Midfielder"},
	{Name: "David Campbell", Number: 4, Position: "Defender"},
	{Name: "Michael Brown", Number: 5, Position: "Defender"},
	{Name: "James Wilson", Number: 3, Position: "Defender"},
	{Name: "Patrick O'Brien", Number: 6, Position: "Midfielder"},
	{Name: "Thomas Mueller", Number: 11, Position: "Midfielder"},
	{Name: "Carlos Ramirez", Number: 1, Position: "Goalkeeper"},
}

// Roster returns the fixed ten-player list for a side.
func Roster(side Side) []Player {
	if side == SideHome {
		return richmondPlayers
	}
	return awayPlayers
}
