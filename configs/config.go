package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Security struct {
		JWTSecret string        `koanf:"jwt_secret"`
		Issuer    string        `koanf:"issuer"`
		Audience  string        `koanf:"audience"`
		TTL       time.Duration `koanf:"ttl"`
	} `koanf:"security"`

	Auth struct {
		// SubmitDelay simulates backend latency on login/register/verify/reset.
		SubmitDelay time.Duration `koanf:"submit_delay"`
	} `koanf:"auth"`

	Orders struct {
		// ApprovalDelay is how long a wallet order stays pending_approval
		// before it auto-completes.
		ApprovalDelay time.Duration `koanf:"approval_delay"`
	} `koanf:"orders"`

	Chat struct {
		Endpoint string        `koanf:"endpoint"`
		APIKey   string        `koanf:"api_key"`
		Timeout  time.Duration `koanf:"timeout"`
	} `koanf:"chat"`

	Uploads struct {
		MaxBytes int64 `koanf:"max_bytes"`
	} `koanf:"uploads"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// env-specific overlay is optional (local runs use base only)
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// environment variables override everything (prefix DESIGNS4U_, nested with __)
	// e.g. DESIGNS4U_SECURITY__JWT_SECRET, DESIGNS4U_CHAT__API_KEY
	if err := k.Load(env.Provider("DESIGNS4U_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "DESIGNS4U_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "designs4u"
	}
	if c.Security.TTL == 0 {
		c.Security.TTL = 24 * time.Hour
	}
	if c.Auth.SubmitDelay == 0 {
		c.Auth.SubmitDelay = 1500 * time.Millisecond
	}
	if c.Orders.ApprovalDelay == 0 {
		c.Orders.ApprovalDelay = 5 * time.Second
	}
	if c.Chat.Timeout == 0 {
		c.Chat.Timeout = 30 * time.Second
	}
	if c.Uploads.MaxBytes == 0 {
		c.Uploads.MaxBytes = 10 << 20 // 10MB, matches the upload hint in the UI
	}
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret required")
	}
	return nil
}
