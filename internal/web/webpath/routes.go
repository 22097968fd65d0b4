package webpath

const (
	Home = "/"

	Api        = "/api"
	ApiPlayers = Api + "/players"
	ApiPlayer  = ApiPlayers + "/:id"
	ApiTeams   = Api + "/teams"
	ApiLadder  = Api + "/ladder"
	ApiReport  = Api + "/report"
	ApiRuns    = Api + "/runs"
)

func Path() map[string]string {
	return map[string]string{
		"Players": ApiPlayers,
		"Player":  ApiPlayer,
		"Teams":   ApiTeams,
		"Ladder":  ApiLadder,
		"Report":  ApiReport,
		"Runs":    ApiRuns,
	}
}
