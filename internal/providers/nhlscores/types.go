package nhlscores

import (
	"strings"

	sonic "github.com/bytedance/sonic"
)

type dayResponse struct {
	Date  dateResponse   `json:"date"`
	Games []gameResponse `json:"games"`
}

type dateResponse struct {
	Raw    string `json:"raw"`
	Pretty string `json:"pretty"`
}

type gameResponse struct {
	Status    statusResponse     `json:"status"`
	StartTime string             `json:"startTime"`
	Goals     []goalResponse     `json:"goals"`
	Scores    map[string]any     `json:"scores"`
	Teams     matchupResponse    `json:"teams"`
	GameStats *gameStatsResponse `json:"gameStats"`
	Links     linksResponse      `json:"links"`
}

type statusResponse struct {
	State    string            `json:"state"`
	Progress *progressResponse `json:"progress"`
}

type progressResponse struct {
	CurrentPeriod              int                   `json:"currentPeriod"`
	CurrentPeriodOrdinal       string                `json:"currentPeriodOrdinal"`
	CurrentPeriodTimeRemaining timeRemainingResponse `json:"currentPeriodTimeRemaining"`
}

type timeRemainingResponse struct {
	Pretty string `json:"pretty"`
	Min    int    `json:"min"`
	Sec    int    `json:"sec"`
}

type matchupResponse struct {
	Away teamResponse `json:"away"`
	Home teamResponse `json:"home"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	LocationName string `json:"locationName"`
	ShortName    string `json:"shortName"`
	TeamName     string `json:"teamName"`
}

type goalResponse struct {
	Period   periodValue      `json:"period"`
	Min      int              `json:"min"`
	Sec      int              `json:"sec"`
	Scorer   playerResponse   `json:"scorer"`
	Assists  []playerResponse `json:"assists"`
	Team     string           `json:"team"`
	Strength string           `json:"strength"`
	EmptyNet bool             `json:"emptyNet"`
}

type playerResponse struct {
	Player      string `json:"player"`
	SeasonTotal int    `json:"seasonTotal"`
}

type gameStatsResponse struct {
	Blocked   map[string]int               `json:"blocked"`
	Giveaways map[string]int               `json:"giveaways"`
	Hits      map[string]int               `json:"hits"`
	PIM       map[string]int               `json:"pim"`
	PowerPlay map[string]powerPlayResponse `json:"powerPlay"`
	Shots     map[string]int               `json:"shots"`
	Takeaways map[string]int               `json:"takeaways"`
}

type powerPlayResponse struct {
	Goals         int `json:"goals"`
	Opportunities int `json:"opportunities"`
}

type linksResponse struct {
	GameCenter string `json:"gameCenter"`
	VideoRecap string `json:"videoRecap"`
}

// periodValue accepts the period as either a JSON string ("OT") or number (2).
type periodValue string

func (p *periodValue) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "" || raw == "null":
		*p = ""
	case raw[0] == '"':
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = periodValue(s)
	default:
		*p = periodValue(raw)
	}
	return nil
}
