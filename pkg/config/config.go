package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apperrors "github.com/devpulse-team/devpulse/errors"
)

// Config holds the full application configuration. It is built once at
// process start and passed by injection; business logic never reads the
// environment directly.
type Config struct {
	LLM        LLMConfig
	GitHub     GitHubConfig
	Jira       JiraConfig
	Redis      RedisConfig
	Storage    StorageConfig
	Server     ServerConfig
	Transcript TranscriptConfig
}

// LLMConfig holds chat-completion endpoint configuration. The only mandatory
// block: startup halts without an API key.
type LLMConfig struct {
	APIKey      string        `envconfig:"LLM_API_KEY"`
	BaseURL     string        `envconfig:"LLM_BASE_URL" default:"https://api.groq.com"`
	Model       string        `envconfig:"LLM_MODEL" default:"llama-3.1-70b-versatile"`
	Temperature float64       `envconfig:"LLM_TEMPERATURE" default:"0.3"`
	MaxTokens   int           `envconfig:"LLM_MAX_TOKENS" default:"4000"`
	Timeout     time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
	CacheTTL    time.Duration `envconfig:"LLM_CACHE_TTL" default:"30m"`
}

// GitHubConfig holds the read-only GitHub collaborator configuration.
// Either a PAT or an App key pair enables the feature.
type GitHubConfig struct {
	Token          string `envconfig:"GITHUB_TOKEN"`
	AppID          string `envconfig:"GITHUB_APP_ID"`
	AppPrivateKey  string `envconfig:"GITHUB_APP_PRIVATE_KEY"`
	InstallationID string `envconfig:"GITHUB_INSTALLATION_ID"`
	Owner          string `envconfig:"GITHUB_OWNER"`
	Repo           string `envconfig:"GITHUB_REPO"`
	BaseURL        string `envconfig:"GITHUB_BASE_URL" default:"https://api.github.com"`
}

// JiraConfig holds ticket-tracker configuration. Priority and issue-type ID
// maps are instance-specific and overridable instead of hardcoded.
type JiraConfig struct {
	BaseURL          string            `envconfig:"JIRA_BASE_URL"`
	Email            string            `envconfig:"JIRA_EMAIL"`
	APIToken         string            `envconfig:"JIRA_API_TOKEN"`
	ProjectKey       string            `envconfig:"JIRA_PROJECT_KEY"`
	PriorityIDs      map[string]string `envconfig:"JIRA_PRIORITY_IDS" default:"High:2,Medium:3,Low:4"`
	IssueTypeIDs     map[string]string `envconfig:"JIRA_ISSUE_TYPE_IDS" default:"Task:10001,Bug:10002,Story:10003"`
	CreateRatePerSec float64           `envconfig:"JIRA_CREATE_RATE" default:"2"`
}

// RedisConfig holds the optional LLM response cache backend
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds the optional object-storage archive mirror
type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"devpulse-transcripts"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// ServerConfig holds the optional local report API
type ServerConfig struct {
	Enabled         bool   `envconfig:"REPORT_API_ENABLED" default:"false"`
	Host            string `envconfig:"REPORT_API_HOST" default:"127.0.0.1"`
	Port            string `envconfig:"REPORT_API_PORT" default:"8080"`
	ShutdownTimeout int    `envconfig:"REPORT_API_SHUTDOWN_TIMEOUT" default:"10"`
}

// TranscriptConfig holds the transcript directory layout
type TranscriptConfig struct {
	IncomingDir   string `envconfig:"TRANSCRIPT_INCOMING_DIR" default:"transcripts/incoming"`
	ProcessingDir string `envconfig:"TRANSCRIPT_PROCESSING_DIR" default:"transcripts/processing"`
	ArchiveDir    string `envconfig:"TRANSCRIPT_ARCHIVE_DIR" default:"transcripts/archive"`
	TemplateDir   string `envconfig:"TRANSCRIPT_TEMPLATE_DIR" default:"transcripts/templates"`
}

// Load builds the configuration from the environment (and .env if present)
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the one mandatory block. Optional integrations are
// reported per-feature via the HasX helpers instead of failing startup.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return apperrors.ErrConfigMissing("LLM_API_KEY")
	}
	return nil
}

// HasGitHub reports whether the GitHub integration is configured
func (c *Config) HasGitHub() bool {
	if c.GitHub.Owner == "" || c.GitHub.Repo == "" {
		return false
	}
	return c.GitHub.Token != "" ||
		(c.GitHub.AppID != "" && c.GitHub.AppPrivateKey != "" && c.GitHub.InstallationID != "")
}

// HasJira reports whether the Jira integration is configured
func (c *Config) HasJira() bool {
	return c.Jira.BaseURL != "" && c.Jira.Email != "" && c.Jira.APIToken != "" && c.Jira.ProjectKey != ""
}

// HasRedis reports whether the Redis cache backend is configured
func (c *Config) HasRedis() bool {
	return c.Redis.Addr != ""
}

// HasStorage reports whether the object-storage archive mirror is configured
func (c *Config) HasStorage() bool {
	return c.Storage.Endpoint != "" && c.Storage.AccessKeyID != "" && c.Storage.SecretAccessKey != ""
}
