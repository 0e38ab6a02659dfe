package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	LogLevel string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs     int
	RouteCacheTTLSec int

	// Naive timestamps from the field are read in this zone.
	ReferenceTZ           string
	StrictTripTransitions bool
	AuditExcludedFields   []string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getbool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads the environment. A .env file in the working directory is
// applied first when present; real environment variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "reefer"),
		MySQLUser: getenv("MYSQL_USER", "reefer"),
		MySQLPass: getenv("MYSQL_PASS", "reefer"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getint("REDIS_DB", 0),

		IdempTTLSecs:     getint("IDEMPOTENCY_TTL_SECONDS", 300),
		RouteCacheTTLSec: getint("ROUTE_CACHE_TTL_SECONDS", 600),

		ReferenceTZ:           getenv("REFERENCE_TZ", "America/Mexico_City"),
		StrictTripTransitions: getbool("STRICT_TRIP_TRANSITIONS", false),
		AuditExcludedFields:   splitList(os.Getenv("AUDIT_EXCLUDED_FIELDS")),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.IdempTTLSecs <= 0 || c.RouteCacheTTLSec <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS and ROUTE_CACHE_TTL_SECONDS must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid REFERENCE_TZ %q: %w", c.ReferenceTZ, err)
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) { return time.LoadLocation(c.ReferenceTZ) }

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) RouteCacheTTL() time.Duration {
	return time.Duration(c.RouteCacheTTLSec) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME; loc=UTC keeps stored instants in UTC
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
