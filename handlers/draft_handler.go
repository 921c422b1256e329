package handlers

import (
	"net/http"

	"github.com/Dosada05/fantasy-draft/middleware"
	"github.com/Dosada05/fantasy-draft/services"
)

type DraftHandler struct {
	draftService services.DraftService
}

func NewDraftHandler(draftService services.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// Start activates a pending draft. Commissioner only.
func (h *DraftHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.draftService.StartDraft(r.Context(), leagueID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"draft": state}, nil)
}

type submitPickRequest struct {
	FantasyTeamID int    `json:"fantasy_team_id"`
	PlayerID      int    `json:"player_id"`
	SlotLabel     string `json:"slot_label"`
}

// SubmitPick admits a pick for the team currently on the clock.
func (h *DraftHandler) SubmitPick(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req submitPickRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.draftService.SubmitPick(r.Context(), services.SubmitPickInput{
		LeagueID:      leagueID,
		FantasyTeamID: req.FantasyTeamID,
		PlayerID:      req.PlayerID,
		SlotLabel:     req.SlotLabel,
		UserID:        userID,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, jsonResponse{"result": result}, nil)
}

// GetState returns the full draft state: order, picks, and cursor.
func (h *DraftHandler) GetState(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.draftService.GetDraftState(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"draft": state}, nil)
}

// Reset wipes all draft progress and returns the league to pending.
// Commissioner only.
func (h *DraftHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.draftService.ResetDraft(r.Context(), leagueID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"draft": state}, nil)
}
