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
	"golang.org/x/crypto/bcrypt"
)

const (
	configName                = "config"
	defaultHTTPPort           = 8080
	defaultMaxRequestBodySize = "100KB"
	defaultBcryptCost         = 10
	defaultAccessTokenTTL     = 15 * time.Minute
	defaultRefreshTokenTTL    = 7 * 24 * time.Hour
	replicaEnvPrefix          = "POSTGRES_REPLICAS_"
)

// searchDirs are tried in order, relative to the working directory, so the
// binary and package tests find the same file.
var searchDirs = []string{".", "config", "../config", "../../config"}

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

	Database DatabaseConfig `json:"database" yaml:"database"`

	// SecretKey signs access and refresh tokens. The two keys must differ so a
	// refresh token can never pass as an access token.
	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

// DatabaseConfig controls schema management at startup.
type DatabaseConfig struct {
	// AutoMigrate creates or alters the marketplace tables when the service starts.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	// SlowQueryThreshold is the statement duration logged as slow. Zero uses the default.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig holds the password hashing cost and token lifetimes.
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// New loads config.yaml, overlays the environment, fills defaults and
// rejects settings the service cannot start with.
func New() (*Config, error) {
	cfg, err := Load[Config](configName, searchDirs...)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load decodes name.yaml from the first directory that has it, then applies
// environment overrides such as POSTGRES_SSLMODE onto the matching keys.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name, dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s failed", path)
	}

	fileKeys := k.Raw()
	overlay := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fileKeys), value
		},
	})
	if err := k.Load(overlay, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s failed", path)
	}

	return cfg, nil
}

func findConfigFile(name string, dirs []string) (string, error) {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	for _, dir := range dirs {
		candidate := filepath.Join(pwd, dir, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in %v", name, dirs)
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL <= 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}
}

func (cfg *Config) validate() error {
	switch {
	case cfg.HTTP.Port < 1 || cfg.HTTP.Port > 65535:
		return errors.Errorf("http.port %d out of range", cfg.HTTP.Port)
	case cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "":
		return errors.New("secretKey.access and secretKey.refresh are required")
	case cfg.SecretKey.Access == cfg.SecretKey.Refresh:
		return errors.New("secretKey.access and secretKey.refresh must differ")
	case cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost:
		return errors.Errorf("auth.bcryptCost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	case cfg.Auth.RefreshTokenTTL <= cfg.Auth.AccessTokenTTL:
		return errors.New("auth.refreshTokenTTL must be longer than auth.accessTokenTTL")
	}

	return nil
}

// canonicalizeEnvKey maps AUTH_ACCESSTOKENTTL to auth.accessTokenTTL by
// walking the keys loaded from the file. Segments the file does not know are
// kept lower-case.
func canonicalizeEnvKey(rawKey string, fileKeys map[string]any) string {
	var path []string
	level := fileKeys

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child, ok := matchKey(level, segment)
		if !ok {
			key, child = segment, nil
		}
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

func matchKey(level map[string]any, segment string) (string, map[string]any, bool) {
	want := foldKey(segment)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

// foldKey drops everything but letters and digits and lower-cases the rest.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{n}_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first replica without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := replicaEnvPrefix + strconv.Itoa(i) + "_"
		replica := postgres.ConnectionConfig{
			Host:     os.Getenv(prefix + "HOST"),
			Port:     os.Getenv(prefix + "PORT"),
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}
		if replica.Host == "" || replica.Port == "" {
			return replicas
		}
		replicas = append(replicas, replica)
	}
}
