package handlers

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/Dosada05/fantasy-draft/middleware"
	"github.com/Dosada05/fantasy-draft/services"
)

type LeagueHandler struct {
	leagueService services.LeagueService
	userService   services.UserService
	emailService  *services.EmailService
}

func NewLeagueHandler(leagueService services.LeagueService, userService services.UserService, emailService *services.EmailService) *LeagueHandler {
	return &LeagueHandler{
		leagueService: leagueService,
		userService:   userService,
		emailService:  emailService,
	}
}

// Create creates a league and the commissioner's fantasy team in one shot.
func (h *LeagueHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input services.CreateLeagueInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	league, err := h.leagueService.CreateLeague(r.Context(), userID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, jsonResponse{"league": league}, nil)
}

// Join claims a seat in a league by invite code.
func (h *LeagueHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input services.JoinLeagueInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.leagueService.JoinLeague(r.Context(), userID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, jsonResponse{"fantasy_team": team}, nil)
}

// GetByID returns a league with its tournament and teams.
func (h *LeagueHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	league, err := h.leagueService.GetLeague(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"league": league}, nil)
}

// ListMine returns every league the authenticated user belongs to.
func (h *LeagueHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	leagues, err := h.leagueService.ListLeaguesByMember(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"leagues": leagues}, nil)
}

// ListTeams returns the fantasy teams in a league, ordered by draft seat.
func (h *LeagueHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.leagueService.ListTeams(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil)
}

// GetTeamRoster returns a fantasy team together with its drafted players.
func (h *LeagueHandler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.leagueService.GetTeamRoster(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"fantasy_team": team}, nil)
}

// ListPicks returns a league's picks in draft order.
func (h *LeagueHandler) ListPicks(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	picks, err := h.leagueService.ListPicks(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"picks": picks}, nil)
}

type inviteRequest struct {
	Email string `json:"email"`
}

// SendInvite emails the league's invite code to a prospective member.
func (h *LeagueHandler) SendInvite(w http.ResponseWriter, r *http.Request) {
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

	var req inviteRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		badRequestResponse(w, r, errors.New("a valid email address is required"))
		return
	}

	league, err := h.leagueService.GetLeague(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if league.CommissionerID != userID {
		forbiddenResponse(w, r, services.ErrCommissionerOnly.Error())
		return
	}

	inviter, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	inviterName := inviter.FirstName + " " + inviter.LastName
	if err := h.emailService.SendLeagueInvite(req.Email, inviterName, league); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, jsonResponse{"message": "invite sent"}, nil)
}

// UploadLogo replaces a league's logo. Commissioner only.
func (h *LeagueHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
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

	file, header, err := r.FormFile("logo")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	league, err := h.leagueService.UploadLogo(r.Context(), leagueID, userID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{"league": league}, nil)
}
