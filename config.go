package droptool

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/trinodb/trino-go-client/trino"
)

const (
	DefaultHost    = "trino.api.dune.com"
	DefaultPort    = 443
	DefaultCatalog = "dune"

	// trinoUser is always 'dune' for the Dune API
	trinoUser = "dune"

	defaultTeam = "dune"
)

// ErrMissingAPIKey is returned when no API key was configured
var ErrMissingAPIKey = errors.New("DUNE_API_KEY environment variable is required")

// Config holds the Trino connection settings
type Config struct {
	APIKey  string
	Host    string
	Port    int
	Catalog string
	Team    string
}

// FromEnv loads connection settings from DUNE_* environment variables,
// falling back to the Dune API defaults.
func FromEnv() Config {
	v := viper.New()
	v.SetEnvPrefix("dune")
	v.AutomaticEnv()
	v.SetDefault("team_name", defaultTeam)

	return Config{
		APIKey:  v.GetString("api_key"),
		Host:    DefaultHost,
		Port:    DefaultPort,
		Catalog: DefaultCatalog,
		Team:    v.GetString("team_name"),
	}
}

// DevPattern is the LIKE pattern matching the team's temporary dev schemas
func (c Config) DevPattern() string {
	return c.Team + "__tmp_%"
}

// ProdSchema is the team's production schema
func (c Config) ProdSchema() string {
	return c.Team
}

// Connect opens a database handle against the Trino endpoint using basic
// auth over https. The handle is lazy; the first query dials the server.
func (c Config) Connect() (*sql.DB, error) {
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	server := url.URL{
		Scheme: "https",
		User:   url.UserPassword(trinoUser, c.APIKey),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
	}

	cfg := trino.Config{
		ServerURI:         server.String(),
		Source:            "droptool",
		Catalog:           c.Catalog,
		SessionProperties: map[string]string{"transformations": "true"},
	}

	dsn, err := cfg.FormatDSN()
	if err != nil {
		return nil, errors.Wrap(err, "building trino dsn")
	}

	db, err := sql.Open("trino", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening trino connection")
	}

	slog.Info("connected to trino endpoint", "host", c.Host, "catalog", c.Catalog)
	return db, nil
}
