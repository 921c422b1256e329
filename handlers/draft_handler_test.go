package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/fantasy-draft/middleware"
	"github.com/Dosada05/fantasy-draft/models"
	"github.com/Dosada05/fantasy-draft/services"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
)

var testJWTSecret = []byte("test-secret")

type stubDraftService struct {
	startFn  func(ctx context.Context, leagueID, userID int) (*services.DraftStateView, error)
	submitFn func(ctx context.Context, input services.SubmitPickInput) (*services.PickResult, error)
	stateFn  func(ctx context.Context, leagueID int) (*services.DraftStateView, error)
	resetFn  func(ctx context.Context, leagueID, userID int) (*services.DraftStateView, error)
}

func (s *stubDraftService) StartDraft(ctx context.Context, leagueID, userID int) (*services.DraftStateView, error) {
	return s.startFn(ctx, leagueID, userID)
}

func (s *stubDraftService) SubmitPick(ctx context.Context, input services.SubmitPickInput) (*services.PickResult, error) {
	return s.submitFn(ctx, input)
}

func (s *stubDraftService) GetDraftState(ctx context.Context, leagueID int) (*services.DraftStateView, error) {
	return s.stateFn(ctx, leagueID)
}

func (s *stubDraftService) ResetDraft(ctx context.Context, leagueID, userID int) (*services.DraftStateView, error) {
	return s.resetFn(ctx, leagueID, userID)
}

func newDraftTestRouter(svc services.DraftService) *chi.Mux {
	h := NewDraftHandler(svc)
	router := chi.NewRouter()
	router.Route("/leagues/{leagueID}/draft", func(r chi.Router) {
		r.Use(middleware.Authenticate(testJWTSecret))
		r.Get("/", h.GetState)
		r.Post("/start", h.Start)
		r.Post("/picks", h.SubmitPick)
		r.Post("/reset", h.Reset)
	})
	return router
}

func mintToken(t *testing.T, userID int, role models.UserRole) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testJWTSecret)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func TestDraftHandlerSubmitPick(t *testing.T) {
	var captured services.SubmitPickInput
	nextTeam := 102
	svc := &stubDraftService{
		submitFn: func(ctx context.Context, input services.SubmitPickInput) (*services.PickResult, error) {
			captured = input
			return &services.PickResult{
				Pick: &models.Pick{
					LeagueID:      input.LeagueID,
					FantasyTeamID: input.FantasyTeamID,
					PlayerID:      input.PlayerID,
					Round:         1,
					PickInRound:   1,
					OverallPick:   1,
				},
				NextCursor: services.DraftCursor{Round: 1, PickInRound: 2, OverallPick: 1, NextTeamID: &nextTeam},
			}, nil
		},
	}
	router := newDraftTestRouter(svc)

	body := `{"fantasy_team_id": 101, "player_id": 201, "slot_label": "bowler"}`
	req := httptest.NewRequest(http.MethodPost, "/leagues/7/draft/picks", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+mintToken(t, 10, models.RoleUser))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	want := services.SubmitPickInput{LeagueID: 7, FantasyTeamID: 101, PlayerID: 201, SlotLabel: "bowler", UserID: 10}
	if captured != want {
		t.Errorf("input = %+v, want %+v", captured, want)
	}

	var payload struct {
		Result struct {
			Pick struct {
				OverallPick int `json:"overall_pick"`
			} `json:"pick"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Result.Pick.OverallPick != 1 {
		t.Errorf("overall_pick = %d, want 1", payload.Result.Pick.OverallPick)
	}
}

func TestDraftHandlerSubmitPickErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"out of turn", services.ErrDraftOutOfTurn, http.StatusConflict},
		{"player taken", services.ErrPlayerAlreadyDrafted, http.StatusConflict},
		{"draft not active", services.ErrDraftNotActive, http.StatusConflict},
		{"not team owner", services.ErrNotTeamOwner, http.StatusForbidden},
		{"league missing", services.ErrLeagueNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubDraftService{
				submitFn: func(ctx context.Context, input services.SubmitPickInput) (*services.PickResult, error) {
					return nil, tt.serviceErr
				},
			}
			router := newDraftTestRouter(svc)

			body := `{"fantasy_team_id": 101, "player_id": 201}`
			req := httptest.NewRequest(http.MethodPost, "/leagues/7/draft/picks", strings.NewReader(body))
			req.Header.Set("Authorization", "Bearer "+mintToken(t, 10, models.RoleUser))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestDraftHandlerAuthAndValidation(t *testing.T) {
	svc := &stubDraftService{
		stateFn: func(ctx context.Context, leagueID int) (*services.DraftStateView, error) {
			return &services.DraftStateView{LeagueID: leagueID, Status: models.DraftStatusPending}, nil
		},
		startFn: func(ctx context.Context, leagueID, userID int) (*services.DraftStateView, error) {
			return nil, services.ErrCommissionerOnly
		},
	}
	router := newDraftTestRouter(svc)

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/leagues/7/draft/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("invalid league id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/leagues/abc/draft/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, 10, models.RoleUser))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("start by non-commissioner", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/leagues/7/draft/start", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, 11, models.RoleUser))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusForbidden, rec.Body.String())
		}
	})

	t.Run("get state ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/leagues/7/draft/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, 10, models.RoleUser))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var payload struct {
			Draft struct {
				LeagueID int                `json:"league_id"`
				Status   models.DraftStatus `json:"status"`
			} `json:"draft"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if payload.Draft.LeagueID != 7 || payload.Draft.Status != models.DraftStatusPending {
			t.Errorf("draft = %+v, want league 7 pending", payload.Draft)
		}
	})
}
