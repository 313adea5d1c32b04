// Package config loads service configuration from YAML files with
// environment variable overrides.
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

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMailBaseURL        = "https://api.emailjs.com/api/v1.0/email/send"
	defaultMailTimeout        = 15 * time.Second
	defaultDeliveryMinimum    = "25"
	defaultSessionTTL         = 2 * time.Hour
	defaultSessionSweep       = 5 * time.Minute
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

	// Mail configures the outbound email relay used for order and contact
	// submissions.
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// Order configures the order-flow rules and session lifetime.
	Order *OrderConfig `json:"order" yaml:"order"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MailConfig defines the EmailJS-compatible relay settings. The public key
// identifies the client to the relay; there is no secret, matching the
// relay's browser-oriented API.
type MailConfig struct {
	BaseURL           string        `json:"baseUrl" yaml:"baseUrl"`
	ServiceID         string        `json:"serviceId" yaml:"serviceId"`
	OrderTemplateID   string        `json:"orderTemplateId" yaml:"orderTemplateId"`
	ContactTemplateID string        `json:"contactTemplateId" yaml:"contactTemplateId"`
	PublicKey         string        `json:"publicKey" yaml:"publicKey"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
}

// OrderConfig defines order-flow rules and session lifetime.
type OrderConfig struct {
	// DeliveryMinimum is the inclusive subtotal threshold for delivery
	// orders, in currency units (e.g. "25").
	DeliveryMinimum string `json:"deliveryMinimum" yaml:"deliveryMinimum"`

	// SessionTTL bounds how long an idle order session is kept in memory.
	SessionTTL time.Duration `json:"sessionTtl" yaml:"sessionTtl"`

	// SessionSweepInterval is how often expired sessions are collected.
	SessionSweepInterval time.Duration `json:"sessionSweepInterval" yaml:"sessionSweepInterval"`
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
			// Example: MAIL_SERVICEID -> mail.serviceId (not mail.serviceid)
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{}
	}
	if strings.TrimSpace(cfg.Mail.BaseURL) == "" {
		cfg.Mail.BaseURL = defaultMailBaseURL
	}
	if cfg.Mail.Timeout <= 0 {
		cfg.Mail.Timeout = defaultMailTimeout
	}

	if cfg.Order == nil {
		cfg.Order = &OrderConfig{}
	}
	if strings.TrimSpace(cfg.Order.DeliveryMinimum) == "" {
		cfg.Order.DeliveryMinimum = defaultDeliveryMinimum
	}
	if cfg.Order.SessionTTL <= 0 {
		cfg.Order.SessionTTL = defaultSessionTTL
	}
	if cfg.Order.SessionSweepInterval <= 0 {
		cfg.Order.SessionSweepInterval = defaultSessionSweep
	}

	return cfg, nil
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
