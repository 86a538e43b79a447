package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DataSourceLive = "live"
	DataSourceDemo = "demo"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Copilot     Copilot     `mapstructure:",squash"`
	Narrative   Narrative   `mapstructure:",squash"`
	Maintenance Maintenance `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

type Copilot struct {
	DataSource       string `mapstructure:"copilot_data_source"`
	DemoFallback     bool   `mapstructure:"copilot_demo_fallback"`
	DefaultLanguage  string `mapstructure:"copilot_default_language"`
	Timezone         string `mapstructure:"copilot_timezone"`
	LookbackMonths   int    `mapstructure:"copilot_lookback_months"`
	ThresholdPercent int    `mapstructure:"copilot_threshold_percent"`
	PropertyName     string `mapstructure:"copilot_property_name"`
}

type Narrative struct {
	Provider string        `mapstructure:"narrative_provider"`
	APIKey   string        `mapstructure:"narrative_api_key"`
	Model    string        `mapstructure:"narrative_model"`
	BaseURL  string        `mapstructure:"narrative_base_url"`
	Timeout  time.Duration `mapstructure:"narrative_timeout"`
}

type Maintenance struct {
	CronSchedule            string `mapstructure:"maintenance_cron"`
	Enabled                 bool   `mapstructure:"maintenance_enabled"`
	RecommendationTTLDays   int    `mapstructure:"maintenance_recommendation_ttl_days"`
	BriefingRetentionDays   int    `mapstructure:"maintenance_briefing_retention_days"`
	GenerateRecommendations bool   `mapstructure:"maintenance_generate_recommendations"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/copilot?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", false)

	viper.SetDefault("COPILOT_DATA_SOURCE", DataSourceLive)
	viper.SetDefault("COPILOT_DEMO_FALLBACK", true) // Mantém a demo funcionando sem banco
	viper.SetDefault("COPILOT_DEFAULT_LANGUAGE", "ka")
	viper.SetDefault("COPILOT_TIMEZONE", "Asia/Tbilisi")
	viper.SetDefault("COPILOT_LOOKBACK_MONTHS", 6)
	viper.SetDefault("COPILOT_THRESHOLD_PERCENT", 20)
	viper.SetDefault("COPILOT_PROPERTY_NAME", "Aparthotel")

	viper.SetDefault("NARRATIVE_PROVIDER", ProviderNone)
	viper.SetDefault("NARRATIVE_API_KEY", "")
	viper.SetDefault("NARRATIVE_MODEL", "")
	viper.SetDefault("NARRATIVE_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("NARRATIVE_TIMEOUT", "8s")

	viper.SetDefault("MAINTENANCE_CRON", "0 4 * * *")              // Todos os dias às 4h da manhã
	viper.SetDefault("MAINTENANCE_ENABLED", false)                 // Sem mutação em background por padrão
	viper.SetDefault("MAINTENANCE_RECOMMENDATION_TTL_DAYS", 30)    // Recomendações ativas expiram em 30 dias
	viper.SetDefault("MAINTENANCE_BRIEFING_RETENTION_DAYS", 90)    // Briefings mantidos por 90 dias
	viper.SetDefault("MAINTENANCE_GENERATE_RECOMMENDATIONS", true) // Gera recomendações a partir das anomalias

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Leitura opcional, os valores já foram carregados pelo godotenv
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = buildDSN(config.Database)

	return config, nil
}

// Location retorna o fuso horário da propriedade (UTC se inválido)
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Copilot.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando UTC", c.Copilot.Timezone)
		return time.UTC
	}
	return loc
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("config: driver de banco inválido: %s", c.Database.Driver)
	}

	switch c.Copilot.DataSource {
	case DataSourceLive, DataSourceDemo:
	default:
		return fmt.Errorf("config: fonte de dados inválida: %s", c.Copilot.DataSource)
	}

	switch c.Narrative.Provider {
	case ProviderOpenAI, ProviderGemini, ProviderNone:
	default:
		return fmt.Errorf("config: provedor de narrativa inválido: %s", c.Narrative.Provider)
	}

	if c.Copilot.LookbackMonths < 2 || c.Copilot.LookbackMonths > 6 {
		return fmt.Errorf("config: COPILOT_LOOKBACK_MONTHS deve estar entre 2 e 6")
	}

	if c.Copilot.ThresholdPercent < 10 || c.Copilot.ThresholdPercent > 50 {
		return fmt.Errorf("config: COPILOT_THRESHOLD_PERCENT deve estar entre 10 e 50")
	}

	return nil
}

func buildDSN(db Database) string {
	if db.Driver == DriverSQLite {
		return db.URL
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
