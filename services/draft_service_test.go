package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/Dosada05/fantasy-draft/models"
	"github.com/Dosada05/fantasy-draft/repositories"
)

// draftStore is a shared in-memory backend for the fake repositories.
// Access is serialized through its mutex so tests can exercise the
// service's concurrent paths.
type draftStore struct {
	mu         sync.Mutex
	leagues    map[int]*models.League
	teams      map[int]*models.FantasyTeam
	order      map[int][]models.TurnAssignment
	picks      map[int][]*models.Pick
	rosters    map[int][]*models.RosterEntry
	nextPickID int
}

func newDraftStore() *draftStore {
	return &draftStore{
		leagues:    make(map[int]*models.League),
		teams:      make(map[int]*models.FantasyTeam),
		order:      make(map[int][]models.TurnAssignment),
		picks:      make(map[int][]*models.Pick),
		rosters:    make(map[int][]*models.RosterEntry),
		nextPickID: 1,
	}
}

type fakeTxRunner struct{}

func (fakeTxRunner) WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(exec repositories.SQLExecutor) error) error {
	return fn(nil)
}

type fakeLeagueRepo struct{ store *draftStore }

func (r *fakeLeagueRepo) Create(ctx context.Context, exec repositories.SQLExecutor, l *models.League) error {
	return errors.New("not implemented")
}

func (r *fakeLeagueRepo) GetByID(ctx context.Context, id int) (*models.League, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	league, ok := r.store.leagues[id]
	if !ok {
		return nil, repositories.ErrLeagueNotFound
	}
	copied := *league
	return &copied, nil
}

func (r *fakeLeagueRepo) GetByInviteCode(ctx context.Context, code string) (*models.League, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeLeagueRepo) ListByMember(ctx context.Context, userID int) ([]*models.League, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeLeagueRepo) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	return errors.New("not implemented")
}

func (r *fakeLeagueRepo) GetForUpdate(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.League, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeLeagueRepo) UpdateDraftState(ctx context.Context, exec repositories.SQLExecutor, id int, status models.DraftStatus, currentRound, currentPick, overallPick int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	league, ok := r.store.leagues[id]
	if !ok {
		return repositories.ErrLeagueNotFound
	}
	league.DraftStatus = status
	league.CurrentRound = currentRound
	league.CurrentPick = currentPick
	league.OverallPick = overallPick
	return nil
}

type fakeTeamRepo struct{ store *draftStore }

func (r *fakeTeamRepo) Create(ctx context.Context, exec repositories.SQLExecutor, team *models.FantasyTeam) error {
	return errors.New("not implemented")
}

func (r *fakeTeamRepo) GetByID(ctx context.Context, id int) (*models.FantasyTeam, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	team, ok := r.store.teams[id]
	if !ok {
		return nil, repositories.ErrFantasyTeamNotFound
	}
	copied := *team
	return &copied, nil
}

func (r *fakeTeamRepo) ListByLeague(ctx context.Context, exec repositories.SQLExecutor, leagueID int) ([]*models.FantasyTeam, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var teams []*models.FantasyTeam
	for _, team := range r.store.teams {
		if team.LeagueID == leagueID {
			copied := *team
			teams = append(teams, &copied)
		}
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].DraftPosition < teams[j].DraftPosition })
	return teams, nil
}

func (r *fakeTeamRepo) CountByLeague(ctx context.Context, exec repositories.SQLExecutor, leagueID int) (int, error) {
	teams, _ := r.ListByLeague(ctx, exec, leagueID)
	return len(teams), nil
}

type fakeOrderRepo struct{ store *draftStore }

func (r *fakeOrderRepo) CreateBatch(ctx context.Context, exec repositories.SQLExecutor, assignments []models.TurnAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	leagueID := assignments[0].LeagueID
	r.store.order[leagueID] = append(r.store.order[leagueID], assignments...)
	return nil
}

func (r *fakeOrderRepo) ListByLeague(ctx context.Context, leagueID int) ([]models.TurnAssignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]models.TurnAssignment, len(r.store.order[leagueID]))
	copy(out, r.store.order[leagueID])
	sort.Slice(out, func(i, j int) bool { return out[i].OverallPick < out[j].OverallPick })
	return out, nil
}

func (r *fakeOrderRepo) GetByOverallPick(ctx context.Context, exec repositories.SQLExecutor, leagueID, overallPick int) (*models.TurnAssignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.order[leagueID] {
		if a.OverallPick == overallPick {
			copied := a
			return &copied, nil
		}
	}
	return nil, repositories.ErrTurnAssignmentNotFound
}

func (r *fakeOrderRepo) DeleteByLeague(ctx context.Context, exec repositories.SQLExecutor, leagueID int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.order, leagueID)
	return nil
}

type fakePickRepo struct{ store *draftStore }

func (r *fakePickRepo) Create(ctx context.Context, exec repositories.SQLExecutor, pick *models.Pick) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.picks[pick.LeagueID] {
		if existing.PlayerID == pick.PlayerID {
			return repositories.ErrPickPlayerConflict
		}
		if existing.OverallPick == pick.OverallPick {
			return repositories.ErrPickSlotConflict
		}
	}
	pick.ID = r.store.nextPickID
	r.store.nextPickID++
	pick.CreatedAt = time.Now()
	copied := *pick
	r.store.picks[pick.LeagueID] = append(r.store.picks[pick.LeagueID], &copied)
	return nil
}

func (r *fakePickRepo) ListByLeague(ctx context.Context, leagueID int) ([]*models.Pick, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var picks []*models.Pick
	for _, pick := range r.store.picks[leagueID] {
		copied := *pick
		picks = append(picks, &copied)
	}
	sort.Slice(picks, func(i, j int) bool { return picks[i].OverallPick < picks[j].OverallPick })
	return picks, nil
}

func (r *fakePickRepo) CountByLeague(ctx context.Context, exec repositories.SQLExecutor, leagueID int) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.picks[leagueID]), nil
}

func (r *fakePickRepo) DeleteByLeague(ctx context.Context, exec repositories.SQLExecutor, leagueID int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.picks, leagueID)
	return nil
}

type fakeRosterRepo struct{ store *draftStore }

func (r *fakeRosterRepo) Create(ctx context.Context, exec repositories.SQLExecutor, entry *models.RosterEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.rosters[entry.LeagueID] {
		if existing.PlayerID == entry.PlayerID {
			return repositories.ErrRosterEntryConflict
		}
	}
	entry.ID = len(r.store.rosters[entry.LeagueID]) + 1
	entry.AcquiredAt = time.Now()
	copied := *entry
	r.store.rosters[entry.LeagueID] = append(r.store.rosters[entry.LeagueID], &copied)
	return nil
}

func (r *fakeRosterRepo) ListByFantasyTeam(ctx context.Context, fantasyTeamID int) ([]*models.RosterEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var entries []*models.RosterEntry
	for _, rosters := range r.store.rosters {
		for _, entry := range rosters {
			if entry.FantasyTeamID == fantasyTeamID {
				copied := *entry
				entries = append(entries, &copied)
			}
		}
	}
	return entries, nil
}

func (r *fakeRosterRepo) CountByLeague(ctx context.Context, exec repositories.SQLExecutor, leagueID int) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.rosters[leagueID]), nil
}

func (r *fakeRosterRepo) DeleteByLeague(ctx context.Context, exec repositories.SQLExecutor, leagueID int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.rosters, leagueID)
	return nil
}

const (
	testLeagueID     = 1
	testCommissioner = 10

	// Seats 1..3: teams 101 (Aces), 102 (Bears), 103 (Comets), owned by
	// users 10, 11, 12.
	teamAces   = 101
	teamBears  = 102
	teamComets = 103

	ownerAces   = 10
	ownerBears  = 11
	ownerComets = 12
)

func newDraftFixture(t *testing.T, mode models.OrderingMode) (DraftService, *draftStore) {
	t.Helper()

	store := newDraftStore()
	store.leagues[testLeagueID] = &models.League{
		ID:             testLeagueID,
		TournamentID:   1,
		CommissionerID: testCommissioner,
		Name:           "Test League",
		OrderingMode:   mode,
		MaxTeams:       3,
		RosterSize:     2,
		DraftStatus:    models.DraftStatusPending,
	}
	store.teams[teamAces] = &models.FantasyTeam{ID: teamAces, LeagueID: testLeagueID, OwnerID: ownerAces, Name: "Aces", DraftPosition: 1}
	store.teams[teamBears] = &models.FantasyTeam{ID: teamBears, LeagueID: testLeagueID, OwnerID: ownerBears, Name: "Bears", DraftPosition: 2}
	store.teams[teamComets] = &models.FantasyTeam{ID: teamComets, LeagueID: testLeagueID, OwnerID: ownerComets, Name: "Comets", DraftPosition: 3}

	svc := NewDraftService(
		fakeTxRunner{},
		&fakeLeagueRepo{store: store},
		&fakeTeamRepo{store: store},
		&fakeOrderRepo{store: store},
		&fakePickRepo{store: store},
		&fakeRosterRepo{store: store},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return svc, store
}

func submit(svc DraftService, teamID, playerID, userID int) (*PickResult, error) {
	return svc.SubmitPick(context.Background(), SubmitPickInput{
		LeagueID:      testLeagueID,
		FantasyTeamID: teamID,
		PlayerID:      playerID,
		UserID:        userID,
	})
}

func TestStartDraft(t *testing.T) {
	svc, store := newDraftFixture(t, models.OrderingModeSnake)

	view, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner)
	if err != nil {
		t.Fatalf("StartDraft() error = %v", err)
	}

	if view.Status != models.DraftStatusActive {
		t.Errorf("status = %q, want %q", view.Status, models.DraftStatusActive)
	}
	if view.TotalPicks != 6 {
		t.Errorf("TotalPicks = %d, want 6", view.TotalPicks)
	}
	if view.Cursor.Round != 1 || view.Cursor.PickInRound != 1 || view.Cursor.OverallPick != 0 {
		t.Errorf("cursor = %+v, want round 1, pick 1, overall 0", view.Cursor)
	}
	if view.Cursor.NextTeamID == nil || *view.Cursor.NextTeamID != teamAces {
		t.Errorf("NextTeamID = %v, want %d", view.Cursor.NextTeamID, teamAces)
	}

	wantTeams := []int{teamAces, teamBears, teamComets, teamComets, teamBears, teamAces}
	if len(view.Order) != len(wantTeams) {
		t.Fatalf("order length = %d, want %d", len(view.Order), len(wantTeams))
	}
	for i, want := range wantTeams {
		if view.Order[i].FantasyTeamID != want {
			t.Errorf("order[%d].FantasyTeamID = %d, want %d", i, view.Order[i].FantasyTeamID, want)
		}
	}

	if got := store.leagues[testLeagueID].DraftStatus; got != models.DraftStatusActive {
		t.Errorf("stored league status = %q, want %q", got, models.DraftStatusActive)
	}
}

func TestStartDraftErrors(t *testing.T) {
	t.Run("not commissioner", func(t *testing.T) {
		svc, _ := newDraftFixture(t, models.OrderingModeLinear)
		if _, err := svc.StartDraft(context.Background(), testLeagueID, ownerBears); !errors.Is(err, ErrCommissionerOnly) {
			t.Errorf("StartDraft() error = %v, want ErrCommissionerOnly", err)
		}
	})

	t.Run("league not found", func(t *testing.T) {
		svc, _ := newDraftFixture(t, models.OrderingModeLinear)
		if _, err := svc.StartDraft(context.Background(), 999, testCommissioner); !errors.Is(err, ErrLeagueNotFound) {
			t.Errorf("StartDraft() error = %v, want ErrLeagueNotFound", err)
		}
	})

	t.Run("already started", func(t *testing.T) {
		svc, _ := newDraftFixture(t, models.OrderingModeLinear)
		if _, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner); err != nil {
			t.Fatalf("first StartDraft() error = %v", err)
		}
		if _, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner); !errors.Is(err, ErrDraftAlreadyStarted) {
			t.Errorf("second StartDraft() error = %v, want ErrDraftAlreadyStarted", err)
		}
	})

	t.Run("too few teams", func(t *testing.T) {
		svc, store := newDraftFixture(t, models.OrderingModeLinear)
		delete(store.teams, teamBears)
		delete(store.teams, teamComets)
		if _, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner); !errors.Is(err, ErrDraftInvalidConfiguration) {
			t.Errorf("StartDraft() error = %v, want ErrDraftInvalidConfiguration", err)
		}
	})
}

func TestSubmitPickFullSnakeDraft(t *testing.T) {
	svc, store := newDraftFixture(t, models.OrderingModeSnake)
	if _, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner); err != nil {
		t.Fatalf("StartDraft() error = %v", err)
	}

	turns := []struct {
		teamID, ownerID, playerID int
	}{
		{teamAces, ownerAces, 201},
		{teamBears, ownerBears, 202},
		{teamComets, ownerComets, 203},
		{teamComets, ownerComets, 204},
		{teamBears, ownerBears, 205},
		{teamAces, ownerAces, 206},
	}

	for i, turn := range turns {
		result, err := submit(svc, turn.teamID, turn.playerID, turn.ownerID)
		if err != nil {
			t.Fatalf("pick %d: SubmitPick() error = %v", i+1, err)
		}
		if result.Pick.OverallPick != i+1 {
			t.Errorf("pick %d: OverallPick = %d, want %d", i+1, result.Pick.OverallPick, i+1)
		}
		if result.NextCursor.OverallPick != i+1 {
			t.Errorf("pick %d: cursor OverallPick = %d, want %d", i+1, result.NextCursor.OverallPick, i+1)
		}
		if result.RosterEntry.PlayerID != turn.playerID {
			t.Errorf("pick %d: roster PlayerID = %d, want %d", i+1, result.RosterEntry.PlayerID, turn.playerID)
		}
		if result.RosterEntry.SlotLabel != models.SlotLabelFlex {
			t.Errorf("pick %d: SlotLabel = %q, want %q", i+1, result.RosterEntry.SlotLabel, models.SlotLabelFlex)
		}

		last := i == len(turns)-1
		if result.Completed != last {
			t.Errorf("pick %d: Completed = %v, want %v", i+1, result.Completed, last)
		}
		if !last {
			wantNext := turns[i+1].teamID
			if result.NextCursor.NextTeamID == nil || *result.NextCursor.NextTeamID != wantNext {
				t.Errorf("pick %d: NextTeamID = %v, want %d", i+1, result.NextCursor.NextTeamID, wantNext)
			}
		} else if result.NextCursor.NextTeamID != nil {
			t.Errorf("final pick: NextTeamID = %v, want nil", result.NextCursor.NextTeamID)
		}
	}

	league := store.leagues[testLeagueID]
	if league.DraftStatus != models.DraftStatusCompleted {
		t.Errorf("league status = %q, want %q", league.DraftStatus, models.DraftStatusCompleted)
	}
	if league.OverallPick != 6 {
		t.Errorf("league OverallPick = %d, want 6", league.OverallPick)
	}

	view, err := svc.GetDraftState(context.Background(), testLeagueID)
	if err != nil {
		t.Fatalf("GetDraftState() error = %v", err)
	}
	if view.Status != models.DraftStatusCompleted {
		t.Errorf("view status = %q, want %q", view.Status, models.DraftStatusCompleted)
	}
	if len(view.Picks) != 6 {
		t.Errorf("view picks = %d, want 6", len(view.Picks))
	}
	if view.Cursor.NextTeamID != nil {
		t.Errorf("view NextTeamID = %v, want nil", view.Cursor.NextTeamID)
	}

	if _, err := submit(svc, teamAces, 299, ownerAces); !errors.Is(err, ErrDraftNotActive) {
		t.Errorf("SubmitPick() after completion error = %v, want ErrDraftNotActive", err)
	}
}

func TestSubmitPickRejections(t *testing.T) {
	t.Run("draft not active", func(t *testing.T) {
		svc, _ := newDraftFixture(t, models.OrderingModeLinear)
		if _, err := submit(svc, teamAces, 201, ownerAces); !errors.Is(err, ErrDraftNotActive) {
			t.Errorf("SubmitPick() error = %v, want ErrDraftNotActive", err)
		}
	})

	t.Run("out of turn mutates nothing", func(t *testing.T) {
		svc, store := newDraftFixture(t, models.OrderingModeLinear)
		if _, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner); err != nil {
			t.Fatalf("StartDraft() error = %v", err)
		}

		if _, err := submit(svc, teamBears, 201, ownerBears); !errors.Is(err, ErrDraftOutOfTurn) {
			t.Fatalf("SubmitPick() error = %v, want ErrDraftOutOfTurn", err)
		}
		if n := len(store.picks[testLeagueID]); n != 0 {
			t.Errorf("picks stored = %d, want 0", n)
		}
		if got := store.leagues[testLeagueID].OverallPick; got != 0 {
			t.Errorf("cursor advanced to %d, want 0", got)
		}
	})

	t.Run("player already drafted", func(t *testing.T) {
		svc, _ := newDraftFixture(t, models.OrderingModeLinear)
		if _, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner); err != nil {
			t.Fatalf("StartDraft() error = %v", err)
		}

		if _, err := submit(svc, teamAces, 201, ownerAces); err != nil {
			t.Fatalf("SubmitPick() error = %v", err)
		}
		if _, err := submit(svc, teamBears, 201, ownerBears); !errors.Is(err, ErrPlayerAlreadyDrafted) {
			t.Errorf("SubmitPick() error = %v, want ErrPlayerAlreadyDrafted", err)
		}
		// The failed attempt must not consume the turn.
		if _, err := submit(svc, teamBears, 202, ownerBears); err != nil {
			t.Errorf("retry SubmitPick() error = %v", err)
		}
	})

	t.Run("not team owner", func(t *testing.T) {
		svc, _ := newDraftFixture(t, models.OrderingModeLinear)
		if _, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner); err != nil {
			t.Fatalf("StartDraft() error = %v", err)
		}
		if _, err := submit(svc, teamAces, 201, ownerBears); !errors.Is(err, ErrNotTeamOwner) {
			t.Errorf("SubmitPick() error = %v, want ErrNotTeamOwner", err)
		}
	})

	t.Run("team from another league", func(t *testing.T) {
		svc, store := newDraftFixture(t, models.OrderingModeLinear)
		store.teams[999] = &models.FantasyTeam{ID: 999, LeagueID: 2, OwnerID: ownerAces, Name: "Strays", DraftPosition: 1}
		if _, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner); err != nil {
			t.Fatalf("StartDraft() error = %v", err)
		}
		if _, err := submit(svc, 999, 201, ownerAces); !errors.Is(err, ErrFantasyTeamNotFound) {
			t.Errorf("SubmitPick() error = %v, want ErrFantasyTeamNotFound", err)
		}
	})
}

func TestResetDraft(t *testing.T) {
	svc, store := newDraftFixture(t, models.OrderingModeSnake)
	if _, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner); err != nil {
		t.Fatalf("StartDraft() error = %v", err)
	}
	if _, err := submit(svc, teamAces, 201, ownerAces); err != nil {
		t.Fatalf("SubmitPick() error = %v", err)
	}
	if _, err := submit(svc, teamBears, 202, ownerBears); err != nil {
		t.Fatalf("SubmitPick() error = %v", err)
	}

	if _, err := svc.ResetDraft(context.Background(), testLeagueID, ownerComets); !errors.Is(err, ErrCommissionerOnly) {
		t.Fatalf("ResetDraft() by non-commissioner error = %v, want ErrCommissionerOnly", err)
	}

	view, err := svc.ResetDraft(context.Background(), testLeagueID, testCommissioner)
	if err != nil {
		t.Fatalf("ResetDraft() error = %v", err)
	}
	if view.Status != models.DraftStatusPending {
		t.Errorf("status = %q, want %q", view.Status, models.DraftStatusPending)
	}
	if view.Cursor.Round != 0 || view.Cursor.PickInRound != 0 || view.Cursor.OverallPick != 0 {
		t.Errorf("cursor = %+v, want zeroed", view.Cursor)
	}
	if len(store.picks[testLeagueID]) != 0 || len(store.rosters[testLeagueID]) != 0 || len(store.order[testLeagueID]) != 0 {
		t.Errorf("reset left data behind: picks=%d rosters=%d order=%d",
			len(store.picks[testLeagueID]), len(store.rosters[testLeagueID]), len(store.order[testLeagueID]))
	}

	// Resetting a pending draft is a no-op success.
	if _, err := svc.ResetDraft(context.Background(), testLeagueID, testCommissioner); err != nil {
		t.Errorf("second ResetDraft() error = %v", err)
	}

	// A fresh start after reset behaves like the first one.
	restarted, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner)
	if err != nil {
		t.Fatalf("StartDraft() after reset error = %v", err)
	}
	if restarted.Cursor.OverallPick != 0 || len(restarted.Order) != 6 {
		t.Errorf("restart view = overall %d, order %d, want 0 and 6", restarted.Cursor.OverallPick, len(restarted.Order))
	}
}

func TestSubmitPickConcurrent(t *testing.T) {
	svc, store := newDraftFixture(t, models.OrderingModeLinear)
	if _, err := svc.StartDraft(context.Background(), testLeagueID, testCommissioner); err != nil {
		t.Fatalf("StartDraft() error = %v", err)
	}

	// Every goroutine submits for the team on the clock but with a
	// different player. Exactly one admission may win; the rest must see
	// the turn already consumed.
	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = submit(svc, teamAces, 300+i, ownerAces)
		}(i)
	}
	wg.Wait()

	var wins, outOfTurn int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrDraftOutOfTurn):
			outOfTurn++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("winners = %d, want exactly 1", wins)
	}
	if outOfTurn != attempts-1 {
		t.Errorf("out-of-turn rejections = %d, want %d", outOfTurn, attempts-1)
	}
	if n := len(store.picks[testLeagueID]); n != 1 {
		t.Errorf("picks stored = %d, want 1", n)
	}
	if got := store.leagues[testLeagueID].OverallPick; got != 1 {
		t.Errorf("league OverallPick = %d, want 1", got)
	}
}
