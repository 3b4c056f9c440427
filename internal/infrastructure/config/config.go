package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverSQLite   = "sqlite"
)

var ErrUnknownStorageDriver = errors.New("unknown STORAGE_DRIVER")

// Config is the process configuration, read from the environment.
// cmd entry points load .env first through godotenv/autoload.
type Config struct {
	Port          int
	StorageDriver string
	SQLitePath    string
	DynamoDB      DynamoDB
	Payments      Payments
}

// DynamoDB holds the client settings. Local DynamoDB does not validate
// credentials, but the AWS SDK requires them, hence the "local" defaults.
type DynamoDB struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type Payments struct {
	AccessToken string
	Mock        bool
}

// Load reads the configuration from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - STORAGE_DRIVER (dynamodb | sqlite, default: dynamodb)
//   - SQLITE_PATH (default: ./data/quotations.db)
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - MERCADOPAGO_ACCESS_TOKEN
//   - PAYMENT_GATEWAY_MOCK or MERCADOPAGO_MOCK (1, true, yes, on, mock)
func Load() (Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}

	driver := strings.ToLower(strings.TrimSpace(getenvDefault("STORAGE_DRIVER", DriverDynamoDB)))
	if driver != DriverDynamoDB && driver != DriverSQLite {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, driver)
	}

	return Config{
		Port:          port,
		StorageDriver: driver,
		SQLitePath:    getenvDefault("SQLITE_PATH", "./data/quotations.db"),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Payments: Payments{
			AccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:        envFlag("PAYMENT_GATEWAY_MOCK") || envFlag("MERCADOPAGO_MOCK"),
		},
	}, nil
}

// Addr is the listen address for gin.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFlag(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
