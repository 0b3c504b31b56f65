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
	defaultAPIPrefix          = "/api"
	defaultHomeURL            = "/"
	defaultStorageDriver      = "mongo"

	defaultSessionCookieName = "authhub.sid"
	defaultSessionTTL        = 30 * 24 * time.Hour

	defaultOTPTTL         = 10 * time.Minute
	defaultOTPSendLimit   = 5
	defaultOTPSendWindow  = time.Hour
	defaultOTPMaxAttempts = 5

	defaultWhatsAppGraphURL = "https://graph.facebook.com"
	defaultWhatsAppVersion  = "v21.0"
	defaultWhatsAppTemplate = "otp_verification"
	defaultWhatsAppLanguage = "en_US"

	defaultXAuthURL    = "https://twitter.com/i/oauth2/authorize"
	defaultXTokenURL   = "https://api.x.com/2/oauth2/token"
	defaultXAPIBaseURL = "https://api.x.com/2"

	defaultMetricsPath = "/metrics"

	envProduction = "production"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		APIPrefix          string   `json:"apiPrefix" yaml:"apiPrefix"`
		HomeURL            string   `json:"homeUrl" yaml:"homeUrl"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the persistence backend for identities, rate limits and sessions.
	Storage StorageConfig `json:"storage" yaml:"storage"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis backs the OTP send limiter. When nil an in-process limiter is used.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Session SessionConfig `json:"session" yaml:"session"`

	Encryption EncryptionConfig `json:"encryption" yaml:"encryption"`

	EVM EVMConfig `json:"evm" yaml:"evm"`

	X *XConfig `json:"x" yaml:"x"`

	WhatsApp *WhatsAppConfig `json:"whatsapp" yaml:"whatsapp"`

	// PubSub configuration for auth event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type StorageConfig struct {
	// Driver is one of "mongo", "postgres" or "memory".
	Driver string `json:"driver" yaml:"driver"`
}

type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	MaxPoolSize    uint64        `json:"maxPoolSize" yaml:"maxPoolSize"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// SessionConfig defines the server-side session cookie
type SessionConfig struct {
	Secret     string        `json:"secret" yaml:"secret"`
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
}

// EncryptionConfig selects how provider tokens are protected at rest.
// An empty KeeperURL derives an AES key from the session secret.
type EncryptionConfig struct {
	KeeperURL string `json:"keeperUrl" yaml:"keeperUrl"`
}

type EVMConfig struct {
	Chains []ChainConfig `json:"chains" yaml:"chains"`
}

type ChainConfig struct {
	ID     uint64 `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	RPCURL string `json:"rpcUrl" yaml:"rpcUrl"`
}

type XConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	CallbackURL  string   `json:"callbackUrl" yaml:"callbackUrl"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
	AuthURL      string   `json:"authUrl" yaml:"authUrl"`
	TokenURL     string   `json:"tokenUrl" yaml:"tokenUrl"`
	APIBaseURL   string   `json:"apiBaseUrl" yaml:"apiBaseUrl"`
}

type WhatsAppConfig struct {
	GraphURL      string    `json:"graphUrl" yaml:"graphUrl"`
	APIVersion    string    `json:"apiVersion" yaml:"apiVersion"`
	PhoneNumberID string    `json:"phoneNumberId" yaml:"phoneNumberId"`
	AccessToken   string    `json:"accessToken" yaml:"accessToken"`
	Template      string    `json:"template" yaml:"template"`
	Language      string    `json:"language" yaml:"language"`
	OTP           OTPConfig `json:"otp" yaml:"otp"`
}

// OTPConfig bounds OTP lifetime, delivery rate and verification attempts
type OTPConfig struct {
	TTL         time.Duration `json:"ttl" yaml:"ttl"`
	SendLimit   int           `json:"sendLimit" yaml:"sendLimit"`
	SendWindow  time.Duration `json:"sendWindow" yaml:"sendWindow"`
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
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

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// IsProduction reports whether cookies must be marked Secure.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, envProduction)
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// SESSION_COOKIENAME -> session.cookieName, aligned with the YAML keys.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.APIPrefix == "" {
		cfg.HTTP.APIPrefix = defaultAPIPrefix
	}
	if cfg.HTTP.HomeURL == "" {
		cfg.HTTP.HomeURL = defaultHomeURL
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultStorageDriver
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
	if len(cfg.EVM.Chains) == 0 {
		cfg.EVM.Chains = defaultChains()
	}

	if cfg.X != nil {
		if cfg.X.AuthURL == "" {
			cfg.X.AuthURL = defaultXAuthURL
		}
		if cfg.X.TokenURL == "" {
			cfg.X.TokenURL = defaultXTokenURL
		}
		if cfg.X.APIBaseURL == "" {
			cfg.X.APIBaseURL = defaultXAPIBaseURL
		}
		if len(cfg.X.Scopes) == 0 {
			cfg.X.Scopes = []string{"tweet.read", "users.read", "offline.access", "follows.read", "like.read"}
		}
	}

	if cfg.WhatsApp != nil {
		if cfg.WhatsApp.GraphURL == "" {
			cfg.WhatsApp.GraphURL = defaultWhatsAppGraphURL
		}
		if cfg.WhatsApp.APIVersion == "" {
			cfg.WhatsApp.APIVersion = defaultWhatsAppVersion
		}
		if cfg.WhatsApp.Template == "" {
			cfg.WhatsApp.Template = defaultWhatsAppTemplate
		}
		if cfg.WhatsApp.Language == "" {
			cfg.WhatsApp.Language = defaultWhatsAppLanguage
		}
		cfg.WhatsApp.OTP = cfg.WhatsApp.OTP.withDefaults()
	}
}

func defaultChains() []ChainConfig {
	return []ChainConfig{
		{ID: 137, Name: "polygon", RPCURL: "https://polygon-rpc.com"},
		{ID: 11155111, Name: "sepolia", RPCURL: "https://ethereum-sepolia-rpc.publicnode.com"},
	}
}

func (o OTPConfig) withDefaults() OTPConfig {
	if o.TTL <= 0 {
		o.TTL = defaultOTPTTL
	}
	if o.SendLimit <= 0 {
		o.SendLimit = defaultOTPSendLimit
	}
	if o.SendWindow <= 0 {
		o.SendWindow = defaultOTPSendWindow
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultOTPMaxAttempts
	}

	return o
}

// OTPSettings returns the OTP policy, falling back to defaults when WhatsApp is not configured.
func (c *Config) OTPSettings() OTPConfig {
	if c.WhatsApp == nil {
		return OTPConfig{}.withDefaults()
	}

	return c.WhatsApp.OTP.withDefaults()
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("session.secret is required")
	}

	switch c.Storage.Driver {
	case "mongo":
		if c.Mongo == nil || c.Mongo.URI == "" {
			return errors.New("mongo.uri is required for the mongo storage driver")
		}
	case "postgres":
		if c.Postgres == nil {
			return errors.New("postgres section is required for the postgres storage driver")
		}
	case "memory":
	default:
		return errors.Errorf("unknown storage driver: %s", c.Storage.Driver)
	}

	seen := make(map[uint64]struct{}, len(c.EVM.Chains))
	for _, chain := range c.EVM.Chains {
		if _, dup := seen[chain.ID]; dup {
			return errors.Errorf("duplicate chain id %d", chain.ID)
		}
		seen[chain.ID] = struct{}{}
	}

	return nil
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
