package teams

import (
	"sort"
	"strings"
)

// DefaultCode is used whenever a request names an unknown team.
const DefaultCode = "TOR"

// Entry pairs a team code with its full name.
type Entry struct {
	Code string
	Name string
}

var registry = map[string]string{
	"ANA": "Anaheim Ducks",
	"BOS": "Boston Bruins",
	"BUF": "Buffalo Sabres",
	"CAR": "Carolina Hurricanes",
	"CBJ": "Columbus Blue Jackets",
	"CGY": "Calgary Flames",
	"CHI": "Chicago Blackhawks",
	"COL": "Colorado Avalanche",
	"DAL": "Dallas Stars",
	"DET": "Detroit Red Wings",
	"EDM": "Edmonton Oilers",
	"FLA": "Florida Panthers",
	"LAK": "Los Angeles Kings",
	"MIN": "Minnesota Wild",
	"MTL": "Montreal Canadiens",
	"NJD": "New Jersey Devils",
	"NSH": "Nashville Predators",
	"NYI": "New York Islanders",
	"NYR": "New York Rangers",
	"OTT": "Ottawa Senators",
	"PHI": "Philadelphia Flyers",
	"PIT": "Pittsburgh Penguins",
	"SEA": "Seattle Kraken",
	"SJS": "San Jose Sharks",
	"STL": "St. Louis Blues",
	"TBL": "Tampa Bay Lightning",
	"TOR": "Toronto Maple Leafs",
	"UTA": "Utah Mammoth",
	"VAN": "Vancouver Canucks",
	"VGK": "Vegas Golden Knights",
	"WPG": "Winnipeg Jets",
	"WSH": "Washington Capitals",
}

// Valid reports whether code names a registered team.
func Valid(code string) bool {
	_, ok := registry[code]
	return ok
}

// Normalize upper-cases the code and falls back to DefaultCode when it is unknown.
func Normalize(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if Valid(code) {
		return code
	}
	return DefaultCode
}

// Name returns the full team name for a code, or the code itself when unknown.
func Name(code string) string {
	if name, ok := registry[code]; ok {
		return name
	}
	return code
}

// All lists every registered team sorted by code.
func All() []Entry {
	out := make([]Entry, 0, len(registry))
	for code, name := range registry {
		out = append(out, Entry{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
