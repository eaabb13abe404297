package config // package config loads application configuration from environment variables

import (
    "log"
    "os"
    "strconv"
)

// Config holds all runtime configuration values.  Each field maps to
// one environment variable.  The tax and admin-fee rates arrive as
// percent values with up to two decimal places (e.g. "10" or "3.50");
// they are validated here once and consumed as plain numbers by the
// booking core.
type Config struct {
    Env                 string  // application environment (e.g. "dev", "prod")
    Port                string  // HTTP port to listen on
    DBUser              string  // database username
    DBPass              string  // database password (optional)
    DBHost              string  // database host address
    DBPort              string  // database port number
    DBName              string  // database name
    JWTSecret           string  // secret used to verify bearer tokens
    TaxRatePercent      float64 // tax applied to booking subtotals, 0..100
    AdminFeeRatePercent float64 // platform cut of subtotals, 0..100
}

// Load reads configuration from environment variables.  Missing or
// malformed required values exit the process with a fatal log message.
func Load() Config {
    return Config{
        Env:                 must("APP_ENV"),
        Port:                must("APP_PORT"),
        DBUser:              must("DB_USER"),
        DBPass:              os.Getenv("DB_PASS"), // empty allowed
        DBHost:              must("DB_HOST"),
        DBPort:              must("DB_PORT"),
        DBName:              must("DB_NAME"),
        JWTSecret:           must("JWT_SECRET"),
        TaxRatePercent:      mustRate("TAX_RATE_PERCENT"),
        AdminFeeRatePercent: mustRate("ADMIN_FEE_RATE_PERCENT"),
    }
}

// must retrieves a required environment variable or exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustRate parses a percentage in [0,100] or exits.
func mustRate(key string) float64 {
    s := must(key)
    f, err := strconv.ParseFloat(s, 64)
    if err != nil || f < 0 || f > 100 {
        log.Fatalf("invalid percentage for %s: %q (want 0..100)", key, s)
    }
    return f
}
