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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	Storage         Storage         `mapstructure:",squash"`
	OpenAI          OpenAI          `mapstructure:",squash"`
	Gemini          Gemini          `mapstructure:",squash"`
	ImagineArt      ImagineArt      `mapstructure:",squash"`
	Instagram       Instagram       `mapstructure:",squash"`
	TikTok          TikTok          `mapstructure:",squash"`
	Billing         Billing         `mapstructure:",squash"`
	RateLimit       RateLimit       `mapstructure:",squash"`
	PostMetricsSync PostMetricsSync `mapstructure:",squash"`
	TokenRefresh    TokenRefresh    `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Env         string `mapstructure:"app_env"`
	SandboxMode bool   `mapstructure:"sandbox_mode"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

type Auth struct {
	SecretKey  string        `mapstructure:"secret_key"`
	TokenTTL   time.Duration `mapstructure:"auth_token_ttl"`
	SessionTTL time.Duration `mapstructure:"auth_session_ttl"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type Storage struct {
	Endpoint        string `mapstructure:"storage_endpoint"`
	Region          string `mapstructure:"storage_region"`
	AccessKeyID     string `mapstructure:"storage_access_key_id"`
	SecretAccessKey string `mapstructure:"storage_secret_access_key"`
	Bucket          string `mapstructure:"storage_bucket"`
	PublicBaseURL   string `mapstructure:"storage_public_base_url"`
}

type OpenAI struct {
	APIKey       string `mapstructure:"openai_api_key"`
	BaseURL      string `mapstructure:"openai_base_url"`
	CopyProvider string `mapstructure:"ai_copy_provider"`
}

type Gemini struct {
	APIKey string `mapstructure:"gemini_api_key"`
	Model  string `mapstructure:"gemini_model"`
}

type ImagineArt struct {
	URL    string `mapstructure:"imagine_art_url"`
	APIKey string `mapstructure:"imagine_art_api_key"`
}

type Instagram struct {
	BaseURL      string `mapstructure:"instagram_base_url"`
	URL          string `mapstructure:"-"`
	Version      string `mapstructure:"instagram_version"`
	DialogURL    string `mapstructure:"instagram_dialog_url"`
	ClientID     string `mapstructure:"instagram_client_id"`
	ClientSecret string `mapstructure:"instagram_client_secret"`
}

type TikTok struct {
	BaseURL      string `mapstructure:"tiktok_base_url"`
	URL          string `mapstructure:"-"`
	Version      string `mapstructure:"tiktok_version"`
	AuthorizeURL string `mapstructure:"tiktok_authorize_url"`
	ClientKey    string `mapstructure:"tiktok_client_key"`
	ClientSecret string `mapstructure:"tiktok_client_secret"`
}

type Billing struct {
	APIURL string `mapstructure:"billing_api_url"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"rate_limit_rps"`
	Burst             int     `mapstructure:"rate_limit_burst"`
}

type PostMetricsSync struct {
	CronSchedule        string `mapstructure:"post_metrics_sync_cron"`
	LookbackDays        int    `mapstructure:"post_metrics_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"post_metrics_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"post_metrics_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"post_metrics_sync_enabled"`
}

type TokenRefresh struct {
	CronSchedule  string        `mapstructure:"token_refresh_cron"`
	RefreshWindow time.Duration `mapstructure:"token_refresh_window"`
	Enabled       bool          `mapstructure:"token_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adcreative?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_SESSION_TTL", "168h")

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	viper.SetDefault("STORAGE_ENDPOINT", "")
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_ACCESS_KEY_ID", "")
	viper.SetDefault("STORAGE_SECRET_ACCESS_KEY", "")
	viper.SetDefault("STORAGE_BUCKET", "product-images")
	viper.SetDefault("STORAGE_PUBLIC_BASE_URL", "")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("AI_COPY_PROVIDER", "openai")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")

	viper.SetDefault("IMAGINE_ART_URL", "https://api.imagine.art/v2")
	viper.SetDefault("IMAGINE_ART_API_KEY", "")

	viper.SetDefault("INSTAGRAM_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("INSTAGRAM_VERSION", "v18.0")
	viper.SetDefault("INSTAGRAM_DIALOG_URL", "https://www.facebook.com/v18.0/dialog/oauth")
	viper.SetDefault("INSTAGRAM_CLIENT_ID", "")
	viper.SetDefault("INSTAGRAM_CLIENT_SECRET", "")

	viper.SetDefault("TIKTOK_BASE_URL", "https://open-api.tiktok.com")
	viper.SetDefault("TIKTOK_VERSION", "v1.3")
	viper.SetDefault("TIKTOK_AUTHORIZE_URL", "https://www.tiktok.com/auth/authorize/")
	viper.SetDefault("TIKTOK_CLIENT_KEY", "")
	viper.SetDefault("TIKTOK_CLIENT_SECRET", "")

	viper.SetDefault("BILLING_API_URL", "http://localhost:3001")

	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	viper.SetDefault("POST_METRICS_SYNC_CRON", "0 */6 * * *")       // A cada 6 horas
	viper.SetDefault("POST_METRICS_SYNC_LOOKBACK_DAYS", 30)         // Posts dos últimos 30 dias
	viper.SetDefault("POST_METRICS_SYNC_REQUEST_DELAY_SECONDS", 1)  // 1 segundo entre requisições
	viper.SetDefault("POST_METRICS_SYNC_MAX_CONCURRENT_JOBS", 3)    // 3 jobs concorrentes
	viper.SetDefault("POST_METRICS_SYNC_ENABLED", false)

	viper.SetDefault("TOKEN_REFRESH_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("TOKEN_REFRESH_WINDOW", "72h")
	viper.SetDefault("TOKEN_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SANDBOX_MODE", true)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Build()

	return config, nil
}

// Build preenche os campos derivados de outras variáveis
func (c *Config) Build() {
	c.Instagram.URL = fmt.Sprintf("%s/%s", c.Instagram.BaseURL, c.Instagram.Version)
	c.TikTok.URL = fmt.Sprintf("%s/%s", c.TikTok.BaseURL, c.TikTok.Version)

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}

	if c.Auth.SessionTTL < c.Auth.TokenTTL {
		c.Auth.SessionTTL = c.Auth.TokenTTL
	}
}

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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
