package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of the configuration file. The same
// structure is read from JSON and YAML.
type fileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		Environment   string   `json:"environment" yaml:"environment"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress          string   `json:"http_address" yaml:"http_address"`
		GRPCAddress          string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout       Duration `json:"request_timeout" yaml:"request_timeout"`
		CORSOrigins          string   `json:"cors_origins" yaml:"cors_origins"`
		ContactRatePerMinute int      `json:"contact_rate_per_minute" yaml:"contact_rate_per_minute"`
		TrustProxy           bool     `json:"trust_proxy" yaml:"trust_proxy"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		NotifyWebhookURL string   `json:"notify_webhook_url" yaml:"notify_webhook_url"`
		RequestTimeout   Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Admin struct {
		Name              string `json:"name" yaml:"name"`
		Email             string `json:"email" yaml:"email"`
		Password          string `json:"password" yaml:"password"`
		Description       string `json:"description" yaml:"description"`
		FooterDescription string `json:"footer_description" yaml:"footer_description"`
		Title             string `json:"title" yaml:"title"`
		Location          string `json:"location" yaml:"location"`
		LocationLink      string `json:"location_link" yaml:"location_link"`
		Instagram         string `json:"instagram" yaml:"instagram"`
		Linkedin          string `json:"linkedin" yaml:"linkedin"`
		Github            string `json:"github" yaml:"github"`
		About             string `json:"about" yaml:"about"`
	} `json:"admin" yaml:"admin"`
}

// parseFile reads the config file at path. Files ending in .yaml or .yml
// are decoded as YAML, anything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			Environment:   fc.App.Environment,
			Version:       fc.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:          fc.Server.HTTPAddress,
			GRPCAddress:          fc.Server.GRPCAddress,
			RequestTimeout:       time.Duration(fc.Server.RequestTimeout),
			CORSOrigins:          fc.Server.CORSOrigins,
			ContactRatePerMinute: fc.Server.ContactRatePerMinute,
			TrustProxy:           fc.Server.TrustProxy,
		},
		Adapter: Adapter{
			NotifyWebhookURL: fc.Adapter.NotifyWebhookURL,
			RequestTimeout:   time.Duration(fc.Adapter.RequestTimeout),
		},
		Admin: Admin{
			Name:              fc.Admin.Name,
			Email:             fc.Admin.Email,
			Password:          fc.Admin.Password,
			Description:       fc.Admin.Description,
			FooterDescription: fc.Admin.FooterDescription,
			Title:             fc.Admin.Title,
			Location:          fc.Admin.Location,
			LocationLink:      fc.Admin.LocationLink,
			Instagram:         fc.Admin.Instagram,
			Linkedin:          fc.Admin.Linkedin,
			Github:            fc.Admin.Github,
			About:             fc.Admin.About,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "24h" or from a number of nanoseconds, in JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
