package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	CartBackendPebble = "pebble"
	CartBackendRedis  = "redis"
	CartBackendMemory = "memory"
)

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type Tables struct {
	Products   string
	Orders     string
	OrderRefs  string
	OrderItems string
}

type CartConfig struct {
	Backend   string
	PebbleDir string
	RedisAddr string
	TTL       time.Duration
}

type KafkaConfig struct {
	Brokers    string
	OrderTopic string
}

// Config is the resolved process configuration. Every key can be set from the
// environment; CONFIG_FILE optionally points at a YAML file with the same keys.
type Config struct {
	HTTPPort            string
	AWS                 AWSConfig
	Tables              Tables
	Cart                CartConfig
	Kafka               KafkaConfig
	SagaLogPath         string
	ProjectionTTL       time.Duration
	OTLPEndpoint        string
	Environment         string
	DefaultCustomerName string
	ShipToAddress       string
}

var defaults = map[string]any{
	"HTTP_PORT":                   "8080",
	"AWS_REGION":                  "us-east-1",
	"AWS_ACCESS_KEY_ID":           "local",
	"AWS_SECRET_ACCESS_KEY":       "local",
	"DYNAMODB_ENDPOINT":           "",
	"PRODUCTS_TABLE":              "products",
	"ORDERS_TABLE":                "orders",
	"ORDER_REFS_TABLE":            "order_refs",
	"ORDER_ITEMS_TABLE":           "order_items",
	"CART_BACKEND":                CartBackendPebble,
	"CART_PEBBLE_DIR":             "data/carts",
	"REDIS_ADDR":                  "localhost:6379",
	"CART_TTL":                    "720h",
	"KAFKA_BROKERS":               "",
	"KAFKA_ORDER_TOPIC":           "alu.orders",
	"SAGA_LOG_PATH":               "data/saga.db",
	"ORDER_PROJECTION_MAX_AGE":    "2s",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
	"APP_ENV":                     "local",
	"DEFAULT_CUSTOMER_NAME":       "ABC Construction Co., Ltd.",
	"SHIP_TO_ADDRESS":             "Site 1, Bang Pu Industrial Estate",
}

// Load resolves the configuration from defaults, the optional file and the
// environment, in increasing precedence.
func Load() (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	if file := strings.TrimSpace(v.GetString("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		HTTPPort: v.GetString("HTTP_PORT"),
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Tables: Tables{
			Products:   v.GetString("PRODUCTS_TABLE"),
			Orders:     v.GetString("ORDERS_TABLE"),
			OrderRefs:  v.GetString("ORDER_REFS_TABLE"),
			OrderItems: v.GetString("ORDER_ITEMS_TABLE"),
		},
		Cart: CartConfig{
			Backend:   strings.ToLower(strings.TrimSpace(v.GetString("CART_BACKEND"))),
			PebbleDir: v.GetString("CART_PEBBLE_DIR"),
			RedisAddr: v.GetString("REDIS_ADDR"),
			TTL:       v.GetDuration("CART_TTL"),
		},
		Kafka: KafkaConfig{
			Brokers:    v.GetString("KAFKA_BROKERS"),
			OrderTopic: v.GetString("KAFKA_ORDER_TOPIC"),
		},
		SagaLogPath:         v.GetString("SAGA_LOG_PATH"),
		ProjectionTTL:       v.GetDuration("ORDER_PROJECTION_MAX_AGE"),
		OTLPEndpoint:        v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Environment:         v.GetString("APP_ENV"),
		DefaultCustomerName: v.GetString("DEFAULT_CUSTOMER_NAME"),
		ShipToAddress:       v.GetString("SHIP_TO_ADDRESS"),
	}

	switch cfg.Cart.Backend {
	case CartBackendPebble, CartBackendRedis, CartBackendMemory:
	default:
		return nil, fmt.Errorf("unknown CART_BACKEND %q", cfg.Cart.Backend)
	}
	return cfg, nil
}
