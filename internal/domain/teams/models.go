package teams

// Team is the side of a game as reported by the scores provider.
// Kept in its own package so the registry and game models can share it.
type Team struct {
	Abbreviation string `json:"abbreviation"`
	TeamName     string `json:"teamName"`
	LocationName string `json:"locationName,omitempty"`
}

// DisplayName returns the team's full display name, falling back to whatever is known.
func (t Team) DisplayName() string {
	switch {
	case t.LocationName != "" && t.TeamName != "":
		return t.LocationName + " " + t.TeamName
	case t.TeamName != "":
		return t.TeamName
	default:
		return t.Abbreviation
	}
}
