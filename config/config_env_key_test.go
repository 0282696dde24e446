package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"bcryptCost":     10,
			"accessTokenTTL": "15m",
		},
		"database": map[string]any{
			"autoMigrate": false,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsAuthSettings(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("BcryptCost = %d, want %d", cfg.Auth.BcryptCost, defaultBcryptCost)
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL || cfg.Auth.RefreshTokenTTL != defaultRefreshTokenTTL {
		t.Fatalf("token TTLs = %s/%s", cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{BcryptCost: 12, AccessTokenTTL: time.Minute}}

	applyDefaults(cfg)

	if cfg.Auth.BcryptCost != 12 || cfg.Auth.AccessTokenTTL != time.Minute {
		t.Fatalf("configured auth values overwritten: %+v", cfg.Auth)
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")

	replicas := buildReplicasFromEnv()

	if len(replicas) != 1 {
		t.Fatalf("len(replicas) = %d, want 1", len(replicas))
	}
	if replicas[0].Host != "replica-0" || replicas[0].UserName != "reader" {
		t.Fatalf("unexpected replica %+v", replicas[0])
	}
}

func validConfig() *Config {
	cfg := &Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	applyDefaults(cfg)

	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "defaults with secrets", mutate: func(*Config) {}},
		{name: "missing refresh secret", mutate: func(cfg *Config) { cfg.SecretKey.Refresh = "" }, wantErr: true},
		{name: "shared secret", mutate: func(cfg *Config) { cfg.SecretKey.Refresh = cfg.SecretKey.Access }, wantErr: true},
		{name: "bcrypt cost too low", mutate: func(cfg *Config) { cfg.Auth.BcryptCost = 2 }, wantErr: true},
		{name: "port out of range", mutate: func(cfg *Config) { cfg.HTTP.Port = 70000 }, wantErr: true},
		{name: "refresh shorter than access", mutate: func(cfg *Config) { cfg.Auth.RefreshTokenTTL = time.Minute }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_LoadsFileAndEnvOverrides(t *testing.T) {
	t.Setenv("AUTH_ACCESSTOKENTTL", "5m")
	t.Setenv("DATABASE_AUTOMIGRATE", "false")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if cfg.Env.ServiceName != "seedshare" {
		t.Fatalf("ServiceName = %q", cfg.Env.ServiceName)
	}
	if cfg.Auth.AccessTokenTTL != 5*time.Minute {
		t.Fatalf("AccessTokenTTL = %s, want 5m", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Database.AutoMigrate {
		t.Fatal("DATABASE_AUTOMIGRATE override ignored")
	}
	if cfg.Database.SlowQueryThreshold != 200*time.Millisecond {
		t.Fatalf("SlowQueryThreshold = %s", cfg.Database.SlowQueryThreshold)
	}
}
