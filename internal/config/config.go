package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceName string `yaml:"service_name"`
	LogLevel    string `yaml:"log_level"`

	MCPTransport    string `yaml:"mcp_transport"`
	HTTPPort        string `yaml:"http_port"`
	MCPEndpointPath string `yaml:"mcp_endpoint_path"`

	APIRateLimitRPS    float64  `yaml:"api_rate_limit_rps"`
	APIRateLimitBurst  int      `yaml:"api_rate_limit_burst"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	APIMaxInFlight        int `yaml:"api_max_in_flight"`
	APIBackpressureWaitMS int `yaml:"api_backpressure_wait_ms"`

	NATSURL     string `yaml:"nats_url"`
	NATSSubject string `yaml:"nats_subject"`

	ImportDir string `yaml:"import_dir"`

	KeywordLimit  int `yaml:"keyword_limit"`
	SnippetLength int `yaml:"snippet_length"`

	WorkerMetricsPort string `yaml:"worker_metrics_port"`
}

func Defaults() Config {
	return Config{
		ServiceName: "document-analyzer",
		LogLevel:    "info",

		MCPTransport:    "stdio",
		HTTPPort:        "8080",
		MCPEndpointPath: "/mcp",

		APIRateLimitRPS:    20,
		APIRateLimitBurst:  40,
		CORSAllowedOrigins: []string{"*"},

		APIMaxInFlight:        64,
		APIBackpressureWaitMS: 250,

		NATSSubject: "documents.added",

		KeywordLimit:  10,
		SnippetLength: 200,

		WorkerMetricsPort: "9090",
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE and then environment variables. A .env file in the working
// directory is read first when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			fmt.Fprintf(os.Stderr, "config: ignoring %s: %v\n", path, err)
		}
	}
	return applyEnv(cfg)
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	return nil
}

func applyEnv(cfg Config) Config {
	cfg.ServiceName = mustEnv("SERVICE_NAME", cfg.ServiceName)
	cfg.LogLevel = mustEnv("LOG_LEVEL", cfg.LogLevel)

	cfg.MCPTransport = strings.ToLower(mustEnv("MCP_TRANSPORT", cfg.MCPTransport))
	cfg.HTTPPort = mustEnv("HTTP_PORT", cfg.HTTPPort)
	cfg.MCPEndpointPath = mustEnv("MCP_ENDPOINT_PATH", cfg.MCPEndpointPath)

	cfg.APIRateLimitRPS = mustEnvFloat("API_RATE_LIMIT_RPS", cfg.APIRateLimitRPS)
	cfg.APIRateLimitBurst = mustEnvInt("API_RATE_LIMIT_BURST", cfg.APIRateLimitBurst)
	cfg.CORSAllowedOrigins = mustEnvList("CORS_ALLOWED_ORIGINS", cfg.CORSAllowedOrigins)
	cfg.APIMaxInFlight = mustEnvInt("API_MAX_IN_FLIGHT", cfg.APIMaxInFlight)
	cfg.APIBackpressureWaitMS = mustEnvInt("API_BACKPRESSURE_WAIT_MS", cfg.APIBackpressureWaitMS)

	cfg.NATSURL = mustEnv("NATS_URL", cfg.NATSURL)
	cfg.NATSSubject = mustEnv("NATS_SUBJECT", cfg.NATSSubject)

	cfg.ImportDir = mustEnv("IMPORT_DIR", cfg.ImportDir)

	cfg.KeywordLimit = mustEnvInt("KEYWORD_LIMIT", cfg.KeywordLimit)
	cfg.SnippetLength = mustEnvInt("SNIPPET_LENGTH", cfg.SnippetLength)

	cfg.WorkerMetricsPort = mustEnv("WORKER_METRICS_PORT", cfg.WorkerMetricsPort)
	return cfg
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	out := make([]string, 0, 4)
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
