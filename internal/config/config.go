package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type ServerConfig struct {
	Host string `yaml:"host" env:"SERVER_HOST"`
	Port int    `yaml:"port" env:"SERVER_PORT"`
	Env  string `yaml:"env" env:"SERVER_ENV"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DATABASE_DRIVER"` // postgres, mysql, sqlite
	DSN    string `yaml:"url" env:"DATABASE_URL"`
	// AutoMigrate создает/обновляет таблицы при старте
	AutoMigrate  bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE"`
	MaxOpenConns int  `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns int  `yaml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS"`
}

type EmailConfig struct {
	Enabled      bool   `yaml:"enabled" env:"EMAIL_ENABLED"`
	SMTPHost     string `yaml:"smtp_host" env:"SMTP_HOST"`
	SMTPPort     int    `yaml:"smtp_port" env:"SMTP_PORT"`
	SMTPUsername string `yaml:"smtp_user" env:"SMTP_USER"`
	SMTPPassword string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
	FromEmail    string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
	FromName     string `yaml:"from_name" env:"SMTP_FROM_NAME"`
	UseTLS       bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
	QueueSize    int    `yaml:"queue_size" env:"EMAIL_QUEUE_SIZE"`
}

type JWTConfig struct {
	Secret string `yaml:"secret" env:"JWT_SECRET"`
	TTL    int    `yaml:"ttl" env:"JWT_TTL"` // минуты
}

// AdminConfig - единственный администратор сайта
type AdminConfig struct {
	Email        string `yaml:"email" env:"ADMIN_EMAIL"`
	Password     string `yaml:"-" env:"ADMIN_PASSWORD"`
	PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
}

type StorageConfig struct {
	Type     string `yaml:"type" env:"STORAGE_TYPE"`           // local
	BasePath string `yaml:"base_path" env:"STORAGE_BASE_PATH"` // For local storage
	BaseURL  string `yaml:"base_url" env:"STORAGE_BASE_URL"`   // Public URL base
	MaxSize  int64  `yaml:"max_size" env:"STORAGE_MAX_SIZE"`   // bytes
}

// SiteConfig - владелец сайта и параметры страниц
type SiteConfig struct {
	Title              string `yaml:"title" env:"SITE_TITLE"`
	OwnerName          string `yaml:"owner_name" env:"SITE_OWNER_NAME"`
	OperatorEmail      string `yaml:"operator_email" env:"SITE_OPERATOR_EMAIL"`
	ResumeFile         string `yaml:"resume_file" env:"RESUME_PATH"`
	ResumeDownloadName string `yaml:"resume_download_name" env:"RESUME_DOWNLOAD_NAME"`
	ProjectsPerPage    int    `yaml:"projects_per_page" env:"SITE_PROJECTS_PER_PAGE"`
	HomeProjects       int    `yaml:"home_projects" env:"SITE_HOME_PROJECTS"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Email    EmailConfig    `yaml:"email"`
	JWT      JWTConfig      `yaml:"jwt"`
	Admin    AdminConfig    `yaml:"admin"`
	Storage  StorageConfig  `yaml:"storage"`
	Site     SiteConfig     `yaml:"site"`
	CORS     CORSConfig     `yaml:"cors"`
}

var AppConfig *Config

const defaultConfigPath = "config/config.yaml"

// Default возвращает конфигурацию для локального запуска без файла
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Server.Env = "development"

	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "portfolio.db"
	cfg.Database.AutoMigrate = true
	cfg.Database.MaxOpenConns = 10
	cfg.Database.MaxIdleConns = 5

	cfg.Email.SMTPPort = 587
	cfg.Email.UseTLS = true
	cfg.Email.QueueSize = 64

	cfg.JWT.TTL = 60

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./media"
	cfg.Storage.BaseURL = "/media"
	cfg.Storage.MaxSize = 10 * 1024 * 1024 // 10MB

	cfg.Site.Title = "Portfolio"
	cfg.Site.ResumeFile = "resume/resume.pdf"
	cfg.Site.ResumeDownloadName = "Resume.pdf"
	cfg.Site.ProjectsPerPage = 9
	cfg.Site.HomeProjects = 3

	return &cfg
}

// Load собирает конфиг: defaults -> .env -> yaml -> переменные окружения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	configPath := os.Getenv("CONFIG_PATH")
	explicit := configPath != ""
	if !explicit {
		configPath = defaultConfigPath
	}

	if err := loadYAML(configPath, cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		log.Printf("Config file %s not found, using defaults and environment", configPath)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

// Validate проверяет значения, без которых сервер не стартует
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database url is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Site.ProjectsPerPage <= 0 {
		return fmt.Errorf("site.projects_per_page must be positive, got %d", c.Site.ProjectsPerPage)
	}
	if c.Email.Enabled && c.Email.SMTPHost == "" {
		return errors.New("email is enabled but smtp_host is empty")
	}
	return nil
}

// IsDevelopment - true для локальной разработки
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// LoadConfig загружает глобальный AppConfig и завершает процесс при ошибке
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
