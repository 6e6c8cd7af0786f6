package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	httpadapter "github.com/Knick011/BrainBites.v1/internal/adapters/http"
	"github.com/Knick011/BrainBites.v1/internal/adapters/http/handlers"
	"github.com/Knick011/BrainBites.v1/internal/adapters/persistence"
	"github.com/Knick011/BrainBites.v1/internal/adapters/security"
	"github.com/Knick011/BrainBites.v1/internal/adapters/sources"
	"github.com/Knick011/BrainBites.v1/internal/adapters/websocket"
	"github.com/Knick011/BrainBites.v1/internal/application/usecases"
	"github.com/Knick011/BrainBites.v1/internal/infra/config"
	infraDB "github.com/Knick011/BrainBites.v1/internal/infra/db"
	"github.com/Knick011/BrainBites.v1/internal/infra/logger"
	"github.com/Knick011/BrainBites.v1/internal/ports"
)

func main() {
	// 1. Configuração e Logger
	logger.Init()
	cfg := config.Load()

	// 2. Banco de Dados
	db, err := infraDB.NewSQLiteConnection(cfg.Database.DSN)
	if err != nil {
		logger.Error("Não foi possível conectar ao banco", "erro", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := runMigrations(db); err != nil {
		logger.Error("Falha na migração", "erro", err)
		os.Exit(1)
	}

	// 3a. Adapters (Persistence)
	stateRepo := persistence.NewSQLiteStateRepository(db)
	hasher := security.NewBcryptHasher()

	// 3b. Cadeia de fontes de perguntas, na ordem de tentativa
	questionSources := []ports.QuestionSource{
		sources.NewJSONFileSource(cfg.Sources.BundlePath),
		sources.NewCSVFileSource(cfg.Sources.PrimaryCSVPath),
		sources.NewCSVFileSource(cfg.Sources.SecondaryCSVPath),
		sources.NewSeedSource(),
	}

	// 3c. Adapters (WebSocket Hub)
	wsHub := websocket.NewHub()
	// Inicia o Hub em background
	go wsHub.Run()

	// 4. Application (Use Cases) — ordem de inicialização: construir,
	// carregar estado persistido, só então servir requisições.
	catalogUC := usecases.NewCatalogUseCases(
		questionSources, stateRepo,
		cfg.Quiz.ResetThreshold, cfg.Quiz.DefaultCategory,
	)
	catalogUC.LoadQuestions(context.Background())

	ledgerUC := usecases.NewLedgerUseCases(stateRepo, cfg.Timer.TickInterval)
	ledgerUC.LoadSavedTime(context.Background())
	defer ledgerUC.Cleanup()

	// Todo evento do saldo é repassado aos clientes WebSocket
	ledgerUC.AddEventListener(wsHub.Broadcast)

	settingsUC := usecases.NewSettingsUseCases(stateRepo, hasher)
	sessionUC := usecases.NewSessionUseCases(catalogUC, ledgerUC, wsHub, usecases.RewardPolicy{
		BaseSeconds:      cfg.Rewards.BaseSeconds,
		MilestoneSeconds: cfg.Rewards.MilestoneSeconds,
		MilestoneEvery:   cfg.Rewards.MilestoneEvery,
	})

	// 5. Adapters (Handlers)
	catalogHandler := handlers.NewCatalogHandler(catalogUC, settingsUC)
	ledgerHandler := handlers.NewLedgerHandler(ledgerUC, settingsUC)
	sessionHandler := handlers.NewSessionHandler(sessionUC)
	settingsHandler := handlers.NewSettingsHandler(settingsUC)

	wsHandler := websocket.NewWebSocketHandler(wsHub)

	// 6. Router
	router := httpadapter.NewRouter(
		catalogHandler,
		ledgerHandler,
		sessionHandler,
		settingsHandler,
		wsHandler,
	)

	// 7. Servidor
	logger.Info("Iniciando servidor", "porta", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), router); err != nil {
		logger.Error("Falha no servidor HTTP", "erro", err)
	}
}

func runMigrations(db *sql.DB) error {
	files, err := os.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("erro ao ler diretório migrations: %w", err)
	}

	var filenames []string
	for _, f := range files {
		if filepath.Ext(f.Name()) == ".sql" {
			filenames = append(filenames, f.Name())
		}
	}
	sort.Strings(filenames)

	for _, filename := range filenames {
		path := filepath.Join("migrations", filename)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("erro ao ler %s: %w", filename, err)
		}

		logger.Info("Executando migração", "arquivo", filename)
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("erro ao executar %s: %w", filename, err)
		}
	}
	return nil
}
