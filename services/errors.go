package services

import "errors"

// Sentinel errors shared across services and the HTTP error mapping.
var (
	// Generic lookup failure
	ErrNotFound = errors.New("requested resource not found")

	// Draft engine taxonomy. Each of these is terminal for the call that
	// produced it and leaves persisted state untouched; none is worth a
	// blind retry with the same arguments.
	ErrDraftInvalidConfiguration = errors.New("draft configuration is invalid")
	ErrDraftAlreadyStarted       = errors.New("draft has already been started")
	ErrDraftNotActive            = errors.New("draft is not active")
	ErrDraftOutOfTurn            = errors.New("it is not this team's turn to pick")
	ErrPlayerAlreadyDrafted      = errors.New("player has already been drafted in this league")

	// Validation and business rules
	ErrValidationFailed          = errors.New("validation failed")
	ErrPasswordTooShort          = errors.New("password is too short")
	ErrLeagueNameRequired        = errors.New("league name is required")
	ErrTeamNameRequired          = errors.New("team name is required")
	ErrLeagueInvalidCapacity     = errors.New("league capacity must be at least 2")
	ErrLeagueInvalidRosterSize   = errors.New("league roster size must be at least 1")
	ErrLeagueInvalidOrderingMode = errors.New("invalid ordering mode")
	ErrTournamentInvalidDates    = errors.New("tournament end date must be after start date")
	ErrTournamentNotJoinable     = errors.New("tournament is no longer open for new leagues")

	// Conflicts
	ErrUserEmailConflict    = errors.New("email address is already in use")
	ErrUserNicknameConflict = errors.New("nickname is already in use")
	ErrLeagueNameConflict   = errors.New("league name is already in use for this tournament")
	ErrLeagueFull           = errors.New("league has no free seats")
	ErrAlreadyInLeague      = errors.New("user already owns a team in this league")
	ErrLeagueDraftStarted   = errors.New("league can no longer be joined: draft already started")

	// Authentication and authorization
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")
	ErrCommissionerOnly       = errors.New("only the league commissioner can perform this action")
	ErrNotTeamOwner           = errors.New("only the team owner can perform this action")

	// Entity-specific lookups (more context than the generic ErrNotFound)
	ErrUserNotFound        = errors.New("user not found")
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrLeagueNotFound      = errors.New("league not found")
	ErrFantasyTeamNotFound = errors.New("fantasy team not found")
)
