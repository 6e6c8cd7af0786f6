package config

import (
	"os"
	"strconv"
	"time"
)

// Config contém as configurações da aplicação.
type Config struct {
	Port     string
	Database DatabaseConfig
	Sources  SourcesConfig
	Quiz     QuizConfig
	Rewards  RewardsConfig
	Timer    TimerConfig
}

type DatabaseConfig struct {
	Driver string
	DSN    string // Data Source Name (caminho do arquivo SQLite)
}

// SourcesConfig aponta para as fontes de perguntas, na ordem de tentativa.
type SourcesConfig struct {
	BundlePath       string // JSON empacotado com a aplicação
	PrimaryCSVPath   string // CSV principal
	SecondaryCSVPath string // CSV alternativo
}

// QuizConfig controla a seleção de perguntas.
type QuizConfig struct {
	// ResetThreshold: quando a fração de perguntas não usadas de uma
	// categoria cai abaixo deste valor, o rastreio da categoria é zerado.
	ResetThreshold  float64
	DefaultCategory string
}

// RewardsConfig controla a política de recompensas do fluxo de quiz.
type RewardsConfig struct {
	BaseSeconds      int // recompensa por resposta correta
	MilestoneSeconds int // recompensa ao fechar uma sequência
	MilestoneEvery   int // tamanho da sequência que vale bônus
}

// TimerConfig controla a contagem regressiva do saldo de tempo.
type TimerConfig struct {
	TickInterval time.Duration
}

// Load carrega as configurações das variáveis de ambiente ou usa padrões.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite3"), // ncruces usa "sqlite3"
			DSN:    getEnv("DB_DSN", "./brainbites.db"),
		},
		Sources: SourcesConfig{
			BundlePath:       getEnv("QUESTIONS_BUNDLE", "./data/questions.json"),
			PrimaryCSVPath:   getEnv("QUESTIONS_CSV", "./data/questions.csv"),
			SecondaryCSVPath: getEnv("QUESTIONS_CSV_ALT", "./assets/data/questions.csv"),
		},
		Quiz: QuizConfig{
			ResetThreshold:  getEnvFloat("QUIZ_RESET_THRESHOLD", 0.2),
			DefaultCategory: getEnv("QUIZ_DEFAULT_CATEGORY", "funfacts"),
		},
		Rewards: RewardsConfig{
			BaseSeconds:      getEnvInt("REWARD_BASE_SECONDS", 30),
			MilestoneSeconds: getEnvInt("REWARD_MILESTONE_SECONDS", 120),
			MilestoneEvery:   getEnvInt("REWARD_MILESTONE_EVERY", 5),
		},
		Timer: TimerConfig{
			TickInterval: getEnvDuration("TIMER_TICK_INTERVAL", time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
