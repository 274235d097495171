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

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Sync        Sync        `mapstructure:",squash"`
	MetricsSync MetricsSync `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	GoogleAds   GoogleAds   `mapstructure:",squash"`
	TikTok      TikTok      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret                string `mapstructure:"auth_secret"`
	DashboardUser         string `mapstructure:"auth_dashboard_user"`
	DashboardPasswordHash string `mapstructure:"auth_dashboard_password_hash"`
	TokenTTLHours         int    `mapstructure:"auth_token_ttl_hours"`
}

// Sync centraliza os parâmetros do motor de sincronização de métricas.
// Tudo que viveria espalhado como constante em call sites fica aqui,
// substituível em testes.
type Sync struct {
	CacheTTLMinutes      int `mapstructure:"sync_cache_ttl_minutes"`
	FetchTimeoutSeconds  int `mapstructure:"sync_fetch_timeout_seconds"`
	RefreshBufferMinutes int `mapstructure:"sync_refresh_buffer_minutes"`
}

// CacheTTL é a janela de frescor da entrada de cache do dia
func (s Sync) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLMinutes) * time.Minute
}

// FetchTimeout é o timeout de cada chamada externa a uma plataforma
func (s Sync) FetchTimeout() time.Duration {
	return time.Duration(s.FetchTimeoutSeconds) * time.Second
}

// RefreshBuffer é a janela antes da expiração em que o token é renovado
// proativamente
func (s Sync) RefreshBuffer() time.Duration {
	return time.Duration(s.RefreshBufferMinutes) * time.Minute
}

type MetricsSync struct {
	CronSchedule      string `mapstructure:"metrics_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"metrics_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"metrics_sync_enabled"`
}

type Meta struct {
	BaseURL   string `mapstructure:"meta_base_url"`
	Version   string `mapstructure:"meta_version"`
	URL       string `mapstructure:"-"`
	TokenURL  string `mapstructure:"-"`
	AppID     string `mapstructure:"meta_app_id"`
	AppSecret string `mapstructure:"meta_app_secret"`
}

type GoogleAds struct {
	BaseURL        string `mapstructure:"google_ads_base_url"`
	Version        string `mapstructure:"google_ads_version"`
	URL            string `mapstructure:"-"`
	TokenURL       string `mapstructure:"google_ads_token_url"`
	ClientID       string `mapstructure:"google_ads_client_id"`
	ClientSecret   string `mapstructure:"google_ads_client_secret"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
}

type TikTok struct {
	BaseURL   string `mapstructure:"tiktok_base_url"`
	TokenURL  string `mapstructure:"tiktok_token_url"`
	AppID     string `mapstructure:"tiktok_app_id"`
	AppSecret string `mapstructure:"tiktok_app_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsperf")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_DASHBOARD_USER", "dashboard")
	viper.SetDefault("AUTH_DASHBOARD_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 12)

	// Parâmetros do motor de sincronização
	viper.SetDefault("SYNC_CACHE_TTL_MINUTES", 15)      // Frescor do cache do dia
	viper.SetDefault("SYNC_FETCH_TIMEOUT_SECONDS", 12)  // Timeout por chamada externa
	viper.SetDefault("SYNC_REFRESH_BUFFER_MINUTES", 30) // Renovação proativa de tokens

	// Avaliador agendado
	viper.SetDefault("METRICS_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("METRICS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("METRICS_SYNC_ENABLED", false)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("TIKTOK_TOKEN_URL", "https://business-api.tiktok.com/open_api/v1.3/oauth2/access_token/")
	viper.SetDefault("TIKTOK_APP_ID", "your_app_id")
	viper.SetDefault("TIKTOK_APP_SECRET", "your_app_secret")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Meta.TokenURL = fmt.Sprintf("%s/oauth/access_token", config.Meta.URL)
	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
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

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
