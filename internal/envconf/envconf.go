package envconf

import (
	"time"
)

const (
	StoreKindMemory   = "memory"
	StoreKindSQLite   = "sqlite"
	StoreKindPostgres = "postgres"

	GeneratorKindGemini = "gemini"
	GeneratorKindGenAI  = "genai"
)

type DBConf struct {
	StoreKind string `env:"STORE_KIND,default=memory"`

	DBHost     string `env:"DB_HOST,default=postgres"`
	DBPort     int    `env:"DB_PORT,default=5432"`
	DBUser     string `env:"DB_USER,default=ams"`
	DBPass     string `env:"DB_PASS,default=ams"`
	DBName     string `env:"DB_NAME,default=ams"`
	DBSSLMode  string `env:"DB_SSL_MODE,default=disable"`
	SQLitePath string `env:"SQL_LITE_PATH,default=/var/tmp/ams.db"`
}

type GeneratorConf struct {
	GeneratorKind    string `env:"GENERATOR_KIND,default=gemini"`
	GeneratorBaseURL string `env:"GENERATOR_BASE_URL,default=https://generativelanguage.googleapis.com/v1beta"`
	GeneratorModel   string `env:"GENERATOR_MODEL,default=gemini-2.0-flash"`
	GeneratorAPIKey  string `env:"GENERATOR_API_KEY"`

	// RecommendationTimeout bounds a single text-generation call.
	RecommendationTimeout time.Duration `env:"RECOMMENDATION_TIMEOUT,default=30s"`
}

type HealthCheckConf struct {
	HealthCheckDelay       time.Duration `env:"HEALTHCHECK_DELAY,default=0s"`
	HealthCheckProbability float64       `env:"HEALTHCHECK_PROBABILITY,default=0.3"`
	HealthCheckSeed        int64         `env:"HEALTHCHECK_SEED,default=0"`

	// HealthCheckInterval enables the periodic health check when non-zero.
	HealthCheckInterval time.Duration `env:"HEALTHCHECK_INTERVAL,default=0s"`
}

type SessionConf struct {
	SessionTTL           time.Duration `env:"REMINDER_SESSION_TTL,default=12h"`
	SessionSweepInterval time.Duration `env:"REMINDER_SWEEP_INTERVAL,default=10m"`
}

type EnvDecoderConf struct {
	Debug      bool `env:"DEBUG,default=true"`
	ServerPort uint `env:"SERVER_PORT,default=10001"`

	DBConf          DBConf
	GeneratorConf   GeneratorConf
	HealthCheckConf HealthCheckConf
	SessionConf     SessionConf
}
