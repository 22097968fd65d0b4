package loader

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLoader() *Loader {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return New(l)
}

const gamesCSV = `grade,round,date,home_team,home_team_id,away_team,away_team_id,home_score,away_score,forfeit,box_score_link
A Grade,Round 1,2024-05-04,Hawks,hawks,Owls,owls,50.0,40,False,https://example.org/1
A Grade,Round 1,2024-05-04,Eagles,eagles,Crows,crows,,,True,
B Grade,Round 1,"Saturday, 4 May 2024",Kites,kites,Larks,larks,33,35,,
A Grade,Round 2,not a date,Hawks,hawks,Eagles,eagles,10,12,False,
A Grade,Round 2,2024-05-11,Hawks,hawks,Hawks,hawks,10,12,False,
A Grade,Round 2,2024-05-11,Owls,owls,Crows,crows,10,,False,
`

const linesCSV = `grade,game_date,round,team,player_id,player_name,jersey,points,1PM,2PM,3PM,fouls
A Grade,2024-05-04,Round 1,hawks,p1,Ann Lee,4,20,2,9,0,1
A Grade,2024-05-04,Round 1,owls,p2,Bo Chan,,12.0,0,6,0,
A Grade,04/05/2024,Round 1,owls,,Nobody,7,3,1,1,0,0
A Grade,2024-05-04,Round 1,owls,p3,Cy,5,-2,0,0,0,0
`

func TestReadGames(t *testing.T) {
	games, malformed, err := quietLoader().ReadGames(strings.NewReader(gamesCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, malformed)
	require.Len(t, games, 3)

	first := games[0]
	assert.Equal(t, "A Grade", first.Grade)
	assert.Equal(t, "hawks", first.HomeTeamID)
	assert.Equal(t, "Hawks", first.HomeTeamName)
	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), first.Date)
	require.NotNil(t, first.HomeScore)
	assert.Equal(t, 50, *first.HomeScore)
	assert.Equal(t, 40, *first.AwayScore)
	assert.False(t, first.Forfeited)
	assert.Equal(t, "hawks", first.Winner())
	assert.Equal(t, 2, first.Row)

	forfeit := games[1]
	assert.True(t, forfeit.Forfeited)
	assert.Nil(t, forfeit.HomeScore)
	assert.Nil(t, forfeit.AwayScore)

	long := games[2]
	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), long.Date)
	assert.Equal(t, "larks", long.Winner())
}

func TestReadGamesBlankScoresMeanForfeit(t *testing.T) {
	data := "date,home_team,away_team,home_score,away_score\n2024-05-04,a,b,,\n"
	games, malformed, err := quietLoader().ReadGames(strings.NewReader(data))
	require.NoError(t, err)
	assert.Zero(t, malformed)
	require.Len(t, games, 1)
	assert.True(t, games[0].Forfeited)
	// without id columns the name doubles as the id
	assert.Equal(t, "a", games[0].HomeTeamID)
	assert.Empty(t, games[0].HomeTeamName)
}

func TestReadGamesMissingColumn(t *testing.T) {
	_, _, err := quietLoader().ReadGames(strings.NewReader("grade,home_team,away_team\nA,a,b\n"))
	require.ErrorIs(t, err, ErrMissingColumn)

	_, _, err = quietLoader().ReadGames(strings.NewReader(""))
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestReadLines(t *testing.T) {
	lines, malformed, err := quietLoader().ReadLines(strings.NewReader(linesCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, malformed)
	require.Len(t, lines, 2)

	assert.Equal(t, "p1", lines[0].PlayerID)
	assert.Equal(t, "Ann Lee", lines[0].PlayerName)
	assert.Equal(t, 20, lines[0].Points)
	assert.Equal(t, 2, lines[0].Made1)
	assert.Equal(t, 9, lines[0].Made2)
	assert.Equal(t, 1, lines[0].Fouls)

	assert.Equal(t, 12, lines[1].Points)
	assert.Zero(t, lines[1].Fouls)
	assert.Empty(t, lines[1].Jersey)
}

func TestReadLinesHeaderOrderAndCase(t *testing.T) {
	data := "\ufeffPLAYER_ID, Team ,Game_Date,Points\nx1,hawks,2024-05-04,8\n"
	lines, malformed, err := quietLoader().ReadLines(strings.NewReader(data))
	require.NoError(t, err)
	assert.Zero(t, malformed)
	require.Len(t, lines, 1)
	assert.Equal(t, "x1", lines[0].PlayerID)
	assert.Equal(t, "hawks", lines[0].TeamID)
	assert.Equal(t, 8, lines[0].Points)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	gamesPath := filepath.Join(dir, "games.csv")
	linesPath := filepath.Join(dir, "lines.csv")
	require.NoError(t, os.WriteFile(gamesPath, []byte(gamesCSV), 0o600))
	require.NoError(t, os.WriteFile(linesPath, []byte(linesCSV), 0o600))

	in, err := quietLoader().LoadFiles(gamesPath, linesPath)
	require.NoError(t, err)
	assert.Len(t, in.Games, 3)
	assert.Len(t, in.Lines, 2)
	assert.Equal(t, []string{"A Grade", "B Grade"}, in.Grades)
	assert.Equal(t, 3, in.MalformedGames)
	assert.Equal(t, 2, in.MalformedLines)

	_, err = quietLoader().LoadFiles(filepath.Join(dir, "missing.csv"), linesPath)
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{
		"2024-05-04",
		"2024-05-04 18:30:00",
		"2024-05-04T18:30:00Z",
		"4/5/2024",
		"Saturday, 4 May 2024",
		"Sat, 4 May 2024",
		"4 May 2024",
	} {
		got, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParseDate("")
	assert.Error(t, err)
	_, err = ParseDate("May the fourth")
	assert.Error(t, err)
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		present bool
		wantErr bool
	}{
		{"", 0, false, false},
		{"nan", 0, false, false},
		{"7", 7, true, false},
		{" 50.0 ", 50, true, false},
		{"2.5", 0, false, true},
		{"-1", 0, false, true},
		{"abc", 0, false, true},
	}
	for _, tt := range tests {
		got, present, err := parseCount(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.present, present, tt.in)
	}
}
