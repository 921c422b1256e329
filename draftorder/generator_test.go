package draftorder

import (
	"errors"
	"testing"

	"github.com/Dosada05/fantasy-draft/models"
)

func testLeague(mode models.OrderingMode, maxTeams, rosterSize int) *models.League {
	return &models.League{
		ID:           1,
		OrderingMode: mode,
		MaxTeams:     maxTeams,
		RosterSize:   rosterSize,
	}
}

func testTeams(ids ...int) []*models.FantasyTeam {
	teams := make([]*models.FantasyTeam, 0, len(ids))
	for i, id := range ids {
		teams = append(teams, &models.FantasyTeam{ID: id, LeagueID: 1, DraftPosition: i + 1})
	}
	return teams
}

func teamSequence(order []models.TurnAssignment, round int) []int {
	var seq []int
	for _, a := range order {
		if a.Round == round {
			seq = append(seq, a.FantasyTeamID)
		}
	}
	return seq
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestForMode(t *testing.T) {
	for _, mode := range []models.OrderingMode{models.OrderingModeLinear, models.OrderingModeSnake} {
		gen, err := ForMode(mode)
		if err != nil {
			t.Fatalf("ForMode(%s): %v", mode, err)
		}
		if gen.Mode() != mode {
			t.Errorf("ForMode(%s) returned generator with mode %s", mode, gen.Mode())
		}
	}

	if _, err := ForMode(models.OrderingMode("auction")); err == nil {
		t.Error("expected error for unsupported mode, got nil")
	}
}

func TestGenerateOrderInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		teams      []*models.FantasyTeam
		maxTeams   int
		rosterSize int
		wantErr    error
	}{
		{"no teams", testTeams(), 8, 3, ErrNotEnoughTeams},
		{"single team", testTeams(10), 8, 3, ErrNotEnoughTeams},
		{"zero roster size", testTeams(10, 11), 8, 0, ErrInvalidRosterSize},
		{"over capacity", testTeams(10, 11, 12), 2, 3, ErrTooManyTeams},
	}

	for _, gen := range []OrderGenerator{NewLinearGenerator(), NewSnakeGenerator()} {
		for _, tt := range tests {
			t.Run(string(gen.Mode())+"/"+tt.name, func(t *testing.T) {
				params := GenerateOrderParams{
					League: testLeague(gen.Mode(), tt.maxTeams, tt.rosterSize),
					Teams:  tt.teams,
				}
				_, err := gen.GenerateOrder(params)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GenerateOrder() error = %v, want %v", err, tt.wantErr)
				}
			})
		}
	}
}

func TestGenerateOrderShape(t *testing.T) {
	tests := []struct {
		name       string
		mode       models.OrderingMode
		teamIDs    []int
		rosterSize int
	}{
		{"linear 4x3", models.OrderingModeLinear, []int{10, 11, 12, 13}, 3},
		{"snake 4x3", models.OrderingModeSnake, []int{10, 11, 12, 13}, 3},
		{"snake 2x1", models.OrderingModeSnake, []int{10, 11}, 1},
		{"snake partial league", models.OrderingModeSnake, []int{10, 11, 12}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := ForMode(tt.mode)
			if err != nil {
				t.Fatal(err)
			}
			params := GenerateOrderParams{
				League: testLeague(tt.mode, 8, tt.rosterSize),
				Teams:  testTeams(tt.teamIDs...),
			}
			order, err := gen.GenerateOrder(params)
			if err != nil {
				t.Fatalf("GenerateOrder() error = %v", err)
			}

			wantLen := len(tt.teamIDs) * tt.rosterSize
			if len(order) != wantLen {
				t.Fatalf("order length = %d, want %d", len(order), wantLen)
			}

			for i, a := range order {
				if a.OverallPick != i+1 {
					t.Errorf("assignment %d: overall pick = %d, want dense 1-based index %d", i, a.OverallPick, i+1)
				}
				wantRound := i/len(tt.teamIDs) + 1
				wantPick := i%len(tt.teamIDs) + 1
				if a.Round != wantRound || a.PickInRound != wantPick {
					t.Errorf("assignment %d: (round, pick) = (%d, %d), want (%d, %d)", i, a.Round, a.PickInRound, wantRound, wantPick)
				}
			}

			// Every team must appear exactly rosterSize times.
			counts := make(map[int]int)
			for _, a := range order {
				counts[a.FantasyTeamID]++
			}
			for _, id := range tt.teamIDs {
				if counts[id] != tt.rosterSize {
					t.Errorf("team %d has %d assignments, want %d", id, counts[id], tt.rosterSize)
				}
			}
		})
	}
}

func TestLinearOrderRepeatsEveryRound(t *testing.T) {
	gen := NewLinearGenerator()
	params := GenerateOrderParams{
		League: testLeague(models.OrderingModeLinear, 8, 4),
		Teams:  testTeams(10, 11, 12, 13, 14),
	}
	order, err := gen.GenerateOrder(params)
	if err != nil {
		t.Fatal(err)
	}

	first := teamSequence(order, 1)
	for round := 2; round <= 4; round++ {
		if got := teamSequence(order, round); !equalInts(got, first) {
			t.Errorf("round %d sequence = %v, want %v", round, got, first)
		}
	}
}

func TestSnakeOrderReversesEvenRounds(t *testing.T) {
	gen := NewSnakeGenerator()
	params := GenerateOrderParams{
		League: testLeague(models.OrderingModeSnake, 8, 4),
		Teams:  testTeams(10, 11, 12, 13, 14),
	}
	order, err := gen.GenerateOrder(params)
	if err != nil {
		t.Fatal(err)
	}

	for round := 2; round <= 4; round++ {
		prev := teamSequence(order, round-1)
		cur := teamSequence(order, round)
		reversed := make([]int, len(prev))
		for i, id := range prev {
			reversed[len(prev)-1-i] = id
		}
		if !equalInts(cur, reversed) {
			t.Errorf("round %d sequence = %v, want reverse of round %d (%v)", round, cur, round-1, reversed)
		}
	}
}

// Three teams A, B, C with a roster size of two: round one must run
// A,B,C (overall picks 1-3) and round two C,B,A (overall picks 4-6).
func TestSnakeOrderThreeTeamsTwoRounds(t *testing.T) {
	const (
		teamA = 101
		teamB = 102
		teamC = 103
	)

	gen := NewSnakeGenerator()
	params := GenerateOrderParams{
		League: testLeague(models.OrderingModeSnake, 3, 2),
		Teams:  testTeams(teamA, teamB, teamC),
	}
	order, err := gen.GenerateOrder(params)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{teamA, teamB, teamC, teamC, teamB, teamA}
	if len(order) != len(want) {
		t.Fatalf("order length = %d, want %d", len(order), len(want))
	}
	for i, a := range order {
		if a.FantasyTeamID != want[i] {
			t.Errorf("overall pick %d assigned to team %d, want %d", a.OverallPick, a.FantasyTeamID, want[i])
		}
	}
}

func TestGenerateOrderDeterministic(t *testing.T) {
	gen := NewSnakeGenerator()
	params := GenerateOrderParams{
		League: testLeague(models.OrderingModeSnake, 8, 3),
		Teams:  testTeams(10, 11, 12, 13),
	}

	first, err := gen.GenerateOrder(params)
	if err != nil {
		t.Fatal(err)
	}
	second, err := gen.GenerateOrder(params)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("assignment %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
