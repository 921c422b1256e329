package routes

import (
	"github.com/Dosada05/fantasy-draft/handlers"
	"github.com/Dosada05/fantasy-draft/middleware"
	"github.com/Dosada05/fantasy-draft/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRoutes mounts the full HTTP surface on the given router.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	tournamentHandler *handlers.TournamentHandler,
	leagueHandler *handlers.LeagueHandler,
	draftHandler *handlers.DraftHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler())

	authenticate := middleware.Authenticate(jwtSecret)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	router.Route("/users", func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/me", userHandler.GetProfile)
		r.Put("/me", userHandler.UpdateProfile)
		r.Post("/me/logo", userHandler.UploadLogo)
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.List)
		r.Get("/{tournamentID}", tournamentHandler.GetByID)
		r.Get("/{tournamentID}/players", tournamentHandler.ListPlayers)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)
			r.Post("/", tournamentHandler.Create)
			r.Post("/{tournamentID}/players", tournamentHandler.AddPlayer)
			r.Post("/{tournamentID}/logo", tournamentHandler.UploadLogo)
		})
	})

	router.Route("/leagues", func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/", leagueHandler.Create)
		r.Post("/join", leagueHandler.Join)
		r.Get("/", leagueHandler.ListMine)
		r.Get("/{leagueID}", leagueHandler.GetByID)
		r.Get("/{leagueID}/teams", leagueHandler.ListTeams)
		r.Get("/{leagueID}/picks", leagueHandler.ListPicks)
		r.Post("/{leagueID}/invite", leagueHandler.SendInvite)
		r.Post("/{leagueID}/logo", leagueHandler.UploadLogo)

		r.Route("/{leagueID}/draft", func(r chi.Router) {
			r.Get("/", draftHandler.GetState)
			r.Post("/start", draftHandler.Start)
			r.Post("/picks", draftHandler.SubmitPick)
			r.Post("/reset", draftHandler.Reset)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/{teamID}/roster", leagueHandler.GetTeamRoster)
	})
}
