package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultDedupWindow       = 5 * time.Minute
	defaultGracePeriod       = 24 * time.Hour
	defaultPushTimeout       = 10 * time.Second
	defaultSettingsTTL       = 5 * time.Minute
	defaultAPIKeyCacheTTL    = 10 * time.Minute
	defaultAdminTokenTTL     = 12 * time.Hour
	defaultBackgroundTimeout = 15 * time.Second
	defaultUserIDPrefix      = "AHC"
	defaultWebhookSource     = "woocommerce"

	defaultUserIDStart int64 = 2601
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	// Redis backs the webhook dedup store. Empty address means in-memory dedup.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for account event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Webhook *WebhookConfig `json:"webhook" yaml:"webhook"`

	Deletion *DeletionConfig `json:"deletion" yaml:"deletion"`

	Push *PushConfig `json:"push" yaml:"push"`

	Settings *SettingsConfig `json:"settings" yaml:"settings"`

	UserID *UserIDConfig `json:"userId" yaml:"userId"`

	Background *BackgroundConfig `json:"background" yaml:"background"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrationConfig controls goose migrations at startup
type MigrationConfig struct {
	AutoApply bool `json:"autoApply" yaml:"autoApply"`
}

// RedisConfig defines the Redis connection used for webhook dedup
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// AuthConfig defines credentials for the mobile and admin surfaces
type AuthConfig struct {
	// bcrypt hashes of the API keys accepted on /api/v1
	APIKeyHashes   []string      `json:"apiKeyHashes" yaml:"apiKeyHashes"`
	APIKeyCacheTTL time.Duration `json:"apiKeyCacheTTL" yaml:"apiKeyCacheTTL"`
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`

	// HMAC secret for admin bearer tokens
	AdminSecret   string        `json:"adminSecret" yaml:"adminSecret"`
	AdminTokenTTL time.Duration `json:"adminTokenTTL" yaml:"adminTokenTTL"`
}

// WebhookConfig defines inbound webhook handling
type WebhookConfig struct {
	// Shared secret. Empty disables signature verification.
	Secret      string        `json:"secret" yaml:"secret"`
	Source      string        `json:"source" yaml:"source"`
	DedupWindow time.Duration `json:"dedupWindow" yaml:"dedupWindow"`
}

// DeletionConfig defines the account deletion lifecycle
type DeletionConfig struct {
	GracePeriod time.Duration `json:"gracePeriod" yaml:"gracePeriod"`

	// Shared secret expected in X-Sweep-Secret
	SweepSecret string `json:"sweepSecret" yaml:"sweepSecret"`

	// When set, Google-signed OIDC tokens with this audience may trigger the sweep
	SweepOIDCAudience string `json:"sweepOidcAudience" yaml:"sweepOidcAudience"`

	// Used by relayctl to reach the sweep endpoint
	SweepURL      string `json:"sweepUrl" yaml:"sweepUrl"`
	SweepSchedule string `json:"sweepSchedule" yaml:"sweepSchedule"`
}

// PushConfig defines outbound push behaviour
type PushConfig struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SettingsConfig defines the app settings cache
type SettingsConfig struct {
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
}

// UserIDConfig defines the format of generated user ids
type UserIDConfig struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Start  int64  `json:"start" yaml:"start"`
}

// BackgroundConfig defines the best-effort task runner
type BackgroundConfig struct {
	TaskTimeout time.Duration `json:"taskTimeout" yaml:"taskTimeout"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers never nil-check them.
// Firebase, PubSub and Redis stay nil when absent: nil means "not configured".
func ApplyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Migration == nil {
		cfg.Migration = &MigrationConfig{}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.APIKeyCacheTTL <= 0 {
		cfg.Auth.APIKeyCacheTTL = defaultAPIKeyCacheTTL
	}
	if cfg.Auth.AdminTokenTTL <= 0 {
		cfg.Auth.AdminTokenTTL = defaultAdminTokenTTL
	}

	if cfg.Webhook == nil {
		cfg.Webhook = &WebhookConfig{}
	}
	if cfg.Webhook.DedupWindow <= 0 {
		cfg.Webhook.DedupWindow = defaultDedupWindow
	}
	if cfg.Webhook.Source == "" {
		cfg.Webhook.Source = defaultWebhookSource
	}

	if cfg.Deletion == nil {
		cfg.Deletion = &DeletionConfig{}
	}
	if cfg.Deletion.GracePeriod <= 0 {
		cfg.Deletion.GracePeriod = defaultGracePeriod
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.Timeout <= 0 {
		cfg.Push.Timeout = defaultPushTimeout
	}

	if cfg.Settings == nil {
		cfg.Settings = &SettingsConfig{}
	}
	if cfg.Settings.CacheTTL <= 0 {
		cfg.Settings.CacheTTL = defaultSettingsTTL
	}

	if cfg.UserID == nil {
		cfg.UserID = &UserIDConfig{}
	}
	if cfg.UserID.Prefix == "" {
		cfg.UserID.Prefix = defaultUserIDPrefix
	}
	if cfg.UserID.Start <= 0 {
		cfg.UserID.Start = defaultUserIDStart
	}

	if cfg.Background == nil {
		cfg.Background = &BackgroundConfig{}
	}
	if cfg.Background.TaskTimeout <= 0 {
		cfg.Background.TaskTimeout = defaultBackgroundTimeout
	}

	if cfg.Redis != nil && strings.TrimSpace(cfg.Redis.Addr) == "" {
		cfg.Redis = nil
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
