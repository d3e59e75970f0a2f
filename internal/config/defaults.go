package config

import "time"

// Built-in defaults applied before every other configuration source.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"

	defaultTokenIssuer          = "go-portfolio"
	defaultTokenDuration        = 24 * time.Hour
	defaultVersion              = "dev"
	defaultHTTPAddress          = ":5000"
	defaultRequestTimeout       = 30 * time.Second
	defaultShutdownTimeout      = 10 * time.Second
	defaultHealthProbeInterval  = 15 * time.Second
	defaultCORSOrigins          = "*"
	defaultContactRatePerMinute = 5
	defaultAdapterTimeout       = 5 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Environment:   EnvironmentDevelopment,
			Version:       defaultVersion,
		},
		Server: Server{
			HTTPAddress:          defaultHTTPAddress,
			RequestTimeout:       defaultRequestTimeout,
			ShutdownTimeout:      defaultShutdownTimeout,
			HealthProbeInterval:  defaultHealthProbeInterval,
			CORSOrigins:          defaultCORSOrigins,
			ContactRatePerMinute: defaultContactRatePerMinute,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterTimeout,
		},
		Admin: Admin{
			Name:              "Portfolio Owner",
			Email:             "admin@example.com",
			Description:       "Software engineer building things for the web.",
			FooterDescription: "Thanks for stopping by.",
			Title:             "Software Engineer",
			Location:          "Earth",
		},
	}
}
