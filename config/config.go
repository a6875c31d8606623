package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// StorageConfig describes the S3-compatible bucket the upload pipeline
// writes image derivatives to. Access keys are intentionally not part of
// the yaml file; they come from STORAGE_ACCESS_KEY_ID and
// STORAGE_SECRET_ACCESS_KEY.
type StorageConfig struct {
	Endpoint string `yaml:"endpoint"`
	UseSSL   bool   `yaml:"use_ssl"`
	Bucket   string `yaml:"bucket"`

	// PublicBaseURL must be a public-read host, not the storage API
	// endpoint. It is joined with object keys to build the URLs stored
	// on article records.
	PublicBaseURL string `yaml:"public_base_url"`
}

type AuthConfig struct {
	Issuer         string `yaml:"issuer"`
	SessionTTLDays int    `yaml:"session_ttl_days"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	// env overrides for values that differ per deployment
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		c.Mongo.URI = uri
	}
	if endpoint := os.Getenv("STORAGE_ENDPOINT"); endpoint != "" {
		c.Storage.Endpoint = endpoint
	}
	if base := os.Getenv("STORAGE_PUBLIC_BASE_URL"); base != "" {
		c.Storage.PublicBaseURL = base
	}

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
