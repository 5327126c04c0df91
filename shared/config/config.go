package config

import (
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	DefaultApiBaseURL = "https://forum-api.dicoding.dev/v1"
	defaultListenAddr = ":8081"
	defaultTimeout    = 15 * time.Second
	defaultTokenPath  = "forum-token.db"
)

type Config struct {
	Public Public
}

type Public struct {
	ApiBaseURL     string        `yaml:"api_base_url" validate:"required,url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	TokenDBPath    string        `yaml:"token_db_path" validate:"required"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	ListenAddr     string   `yaml:"listen_addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	SecureCookies  bool     `yaml:"secure_cookies"` // HTTPS deployment, enables HSTS

	RecentThreadsLimit  int           `yaml:"recent_threads_limit" validate:"gte=0"`
	PopularThreadsLimit int           `yaml:"popular_threads_limit" validate:"gte=0"`
	RefreshInterval     time.Duration `yaml:"refresh_interval"` // background thread list refresh, 0 disables
}

// Defaults returns the configuration used when no file is provided.
func Defaults() Public {
	return Public{
		ApiBaseURL:          DefaultApiBaseURL,
		RequestTimeout:      defaultTimeout,
		TokenDBPath:         defaultTokenPath,
		LogLevel:            "info",
		ListenAddr:          defaultListenAddr,
		AllowedOrigins:      []string{"http://localhost:5173"},
		RecentThreadsLimit:  5,
		PopularThreadsLimit: 5,
	}
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml from configFolder on top of Defaults, applies
// environment overrides and validates the result. It panics on any error.
func MustLoad(configFolder string) *Config {
	public := Defaults()
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	applyEnv(&public)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(public); err != nil {
		panic("invalid config: " + err.Error())
	}
	return &Config{Public: public}
}

// FromEnv returns Defaults with environment overrides applied. Used by tools
// that run without a config folder.
func FromEnv() Public {
	public := Defaults()
	applyEnv(&public)
	return public
}

func applyEnv(p *Public) {
	if v := os.Getenv("FORUM_API_URL"); v != "" {
		p.ApiBaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p.ListenAddr = ":" + v
	}
	if v := os.Getenv("TOKEN_DB_PATH"); v != "" {
		p.TokenDBPath = v
	}
}
