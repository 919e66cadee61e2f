package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig drives api-server and grpc-server. Values come from an
// optional YAML file (MUSICSCHOOL_CONFIG) and are then overridden by env.
type ServerConfig struct {
	HTTPAddr       string        `yaml:"http_addr"`
	GRPCAddr       string        `yaml:"grpc_addr"`
	CatalogPath    string        `yaml:"catalog_path"` // JSON/YAML file; empty means use the SQLite catalog
	DBPath         string        `yaml:"db_path"`
	PlayerTick     time.Duration `yaml:"player_tick"`
	BrotliLevel    int           `yaml:"brotli_level"`
	TrustedProxies []string      `yaml:"trusted_proxies"`
}

type SFTPConfig struct {
	Host                  string
	Port                  int
	User                  string
	Pass                  string
	Dir                   string
	KnownHosts            string
	InsecureIgnoreHostKey bool
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		HTTPAddr:       ":8080",
		GRPCAddr:       ":9092",
		CatalogPath:    "data/music_courses.json",
		PlayerTick:     100 * time.Millisecond,
		BrotliLevel:    5,
		TrustedProxies: []string{"127.0.0.1"},
	}
}

func LoadServerConfig() (ServerConfig, error) {
	return LoadServerConfigFrom(os.Getenv("MUSICSCHOOL_CONFIG"), os.Getenv)
}

// LoadServerConfigFrom starts from the defaults, applies the YAML file at
// path (if any) and then env overrides read through getenv.
func LoadServerConfigFrom(path string, getenv func(string) string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := getenv("MUSICSCHOOL_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := getenv("MUSICSCHOOL_GRPC_ADDR"); v != "" {
		cfg.GRPCAddr = v
	}
	if v, ok := lookup(getenv, "MUSICSCHOOL_CATALOG"); ok {
		// "-" forces the SQLite catalog even if the file sets a path
		if v == "-" {
			v = ""
		}
		cfg.CatalogPath = v
	}
	if v := getenv("MUSICSCHOOL_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("MUSICSCHOOL_PLAYER_TICK"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("MUSICSCHOOL_PLAYER_TICK: invalid duration %q", v)
		}
		cfg.PlayerTick = d
	}
	if v := getenv("MUSICSCHOOL_BROTLI_LEVEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 11 {
			return cfg, fmt.Errorf("MUSICSCHOOL_BROTLI_LEVEL: must be 0-11, got %q", v)
		}
		cfg.BrotliLevel = n
	}
	if v := getenv("MUSICSCHOOL_TRUSTED_PROXIES"); v != "" {
		cfg.TrustedProxies = splitList(v)
	}

	if cfg.PlayerTick <= 0 {
		cfg.PlayerTick = 100 * time.Millisecond
	}
	return cfg, nil
}

func LoadSFTPConfig() SFTPConfig {
	port, err := strconv.Atoi(os.Getenv("SFTP_PORT"))
	if err != nil {
		port = 22
	}
	return SFTPConfig{
		Host:                  os.Getenv("SFTP_HOST"),
		Port:                  port,
		User:                  os.Getenv("SFTP_USER"),
		Pass:                  os.Getenv("SFTP_PASS"),
		Dir:                   getenv("SFTP_DIR", "/"),
		KnownHosts:            os.Getenv("SFTP_KNOWN_HOSTS"),
		InsecureIgnoreHostKey: os.Getenv("SFTP_INSECURE_IGNORE_HOSTKEY") == "true",
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func lookup(getenv func(string) string, k string) (string, bool) {
	v := getenv(k)
	return v, v != ""
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
