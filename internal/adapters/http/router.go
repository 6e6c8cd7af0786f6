package httpadapter

import (
	"net/http"

	"github.com/Knick011/BrainBites.v1/internal/adapters/http/handlers"
	"github.com/Knick011/BrainBites.v1/internal/adapters/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter configura as rotas e middlewares.
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	ledgerHandler *handlers.LedgerHandler,
	sessionHandler *handlers.SessionHandler,
	settingsHandler *handlers.SettingsHandler,
	wsHandler *websocket.WebSocketHandler,
) http.Handler {
	r := chi.NewRouter()

	// Middlewares globais
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Configuração CORS (a interface roda em WebView com origem própria)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Rota de Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Fluxo de eventos (creditsAdded, timeUpdate, exhausted, streakMilestone)
	r.Get("/ws", wsHandler.HandleWS)

	// Catálogo de perguntas
	r.Get("/categories", catalogHandler.GetCategories)
	r.Route("/questions", func(r chi.Router) {
		r.Get("/random", catalogHandler.GetRandomQuestion)
		r.Post("/reset", catalogHandler.ResetUsedQuestions)
	})

	// Saldo de tempo
	r.Route("/time", func(r chi.Router) {
		r.Get("/", ledgerHandler.GetTime)
		r.Post("/credits", ledgerHandler.AddCredits)
		r.Post("/start", ledgerHandler.StartSpending)
		r.Post("/stop", ledgerHandler.StopSpending)
	})

	// Sessão de quiz
	r.Route("/session", func(r chi.Router) {
		r.Get("/", sessionHandler.GetSession)
		r.Post("/next", sessionHandler.NextQuestion)
		r.Post("/answer", sessionHandler.SubmitAnswer)
	})

	// Preferências
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", settingsHandler.GetSettings)
		r.Put("/", settingsHandler.UpdateSettings)
		r.Post("/pin", settingsHandler.SetPin)
	})

	return r
}
