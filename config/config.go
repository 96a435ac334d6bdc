package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	// MQTT configures the broker connection for the location bridge.
	MQTT *MQTTConfig `json:"mqtt" yaml:"mqtt"`

	// Forwarder configures the secondary HTTP sink for ingested locations.
	Forwarder *ForwarderConfig `json:"forwarder" yaml:"forwarder"`

	// Retention configures the location retention sweeper.
	Retention *RetentionConfig `json:"retention" yaml:"retention"`

	// Bridge configures the subscriber supervisor.
	Bridge *BridgeConfig `json:"bridge" yaml:"bridge"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PostgresConfig defines the database connection settings.
type PostgresConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"dbName" yaml:"dbName"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`

	// AutoMigrate creates or updates the schema on startup. Meant for
	// development; production schemas are managed externally.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// MQTTConfig defines the broker connection used by the bridge subscriber.
// The original deployment hard-coded these values; they are configuration now.
type MQTTConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Topic    string `json:"topic" yaml:"topic"`
	ClientID string `json:"clientId" yaml:"clientId"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`

	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`

	TLS struct {
		// InsecureSkipVerify disables certificate verification. Only for
		// brokers with self-signed certificates in development.
		InsecureSkipVerify bool `json:"insecureSkipVerify" yaml:"insecureSkipVerify"`
	} `json:"tls" yaml:"tls"`
}

// ForwarderConfig defines the HTTP ingestion endpoint locations are relayed to.
type ForwarderConfig struct {
	URL     string        `json:"url" yaml:"url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// RetentionConfig defines how old a location must be before the sweeper
// deletes it. Horizon is a rolling window measured against created_at.
type RetentionConfig struct {
	Horizon time.Duration `json:"horizon" yaml:"horizon"`

	// SweepInterval enables periodic sweeping inside the bridge process when
	// greater than zero. Zero leaves sweeping to cmd/cleanlocations.
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
}

// BridgeConfig defines supervisor behavior for the subscriber.
type BridgeConfig struct {
	// RestartBackoff is the fixed delay between subscriber restarts.
	RestartBackoff time.Duration `json:"restartBackoff" yaml:"restartBackoff"`
}

const (
	defaultMQTTPort           = 8883
	defaultMQTTConnectTimeout = 30 * time.Second
	defaultForwarderTimeout   = 10 * time.Second
	defaultRetentionHorizon   = 7 * 24 * time.Hour
	defaultRestartBackoff     = 10 * time.Second
)

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
			// Example: MQTT_CLIENTID -> mqtt.clientId (not mqtt.clientid)
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
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MQTT != nil {
		if c.MQTT.Port == 0 {
			c.MQTT.Port = defaultMQTTPort
		}
		if c.MQTT.ConnectTimeout == 0 {
			c.MQTT.ConnectTimeout = defaultMQTTConnectTimeout
		}
	}
	if c.Forwarder != nil && c.Forwarder.Timeout == 0 {
		c.Forwarder.Timeout = defaultForwarderTimeout
	}
	if c.Retention == nil {
		c.Retention = &RetentionConfig{}
	}
	if c.Retention.Horizon == 0 {
		c.Retention.Horizon = defaultRetentionHorizon
	}
	if c.Bridge == nil {
		c.Bridge = &BridgeConfig{}
	}
	if c.Bridge.RestartBackoff == 0 {
		c.Bridge.RestartBackoff = defaultRestartBackoff
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
