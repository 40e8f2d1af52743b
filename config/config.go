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
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	Mongo     MongoConfig     `yaml:"mongo"`
	AWS       AWSConfig       `yaml:"aws"`
	Cognito   CognitoConfig   `yaml:"cognito"`
	Storage   StorageConfig   `yaml:"storage"`
	Speech    SpeechConfig    `yaml:"speech"`
	Translate TranslateConfig `yaml:"translate"`
	Enhance   EnhanceConfig   `yaml:"enhance"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type AWSConfig struct {
	Region string `yaml:"region"`
}

// CognitoConfig identifies the user pool whose tokens the API accepts.
// Tokens are verified against the pool's published JWKS; nothing is issued here.
type CognitoConfig struct {
	Region     string `yaml:"region"`
	UserPoolID string `yaml:"user_pool_id"`
}

type StorageConfig struct {
	Bucket string `yaml:"bucket"`
}

// SpeechConfig selects the Polly voice/engine used for podcast synthesis.
type SpeechConfig struct {
	VoiceID      string `yaml:"voice_id"`
	Engine       string `yaml:"engine"`
	OutputFormat string `yaml:"output_format"`
	LanguageCode string `yaml:"language_code"`
	Bucket       string `yaml:"bucket"`
}

type TranslateConfig struct {
	// DefaultSource is paired with DefaultTarget: when the requested target
	// equals the source, the pair is swapped so round trips work without a
	// source parameter.
	DefaultSource string `yaml:"default_source"`
	DefaultTarget string `yaml:"default_target"`
}

type EnhanceConfig struct {
	Model string `yaml:"model"`
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
	applyDefaults(&c)
	applyEnvOverrides(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "quickblog"
	}
	if c.Speech.VoiceID == "" {
		c.Speech.VoiceID = "Ruth"
	}
	if c.Speech.Engine == "" {
		c.Speech.Engine = "long-form"
	}
	if c.Speech.OutputFormat == "" {
		c.Speech.OutputFormat = "mp3"
	}
	if c.Speech.LanguageCode == "" {
		c.Speech.LanguageCode = "en-US"
	}
	if c.Translate.DefaultSource == "" {
		c.Translate.DefaultSource = "en"
	}
	if c.Translate.DefaultTarget == "" {
		c.Translate.DefaultTarget = "hi"
	}
	if c.Enhance.Model == "" {
		c.Enhance.Model = "gemini-2.5-flash"
	}
}

// applyEnvOverrides lets deployment-varying values come from the environment
// so the checked-in config.yaml carries no secrets or account identifiers.
func applyEnvOverrides(c *AppConfig) {
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		c.Mongo.Database = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		c.AWS.Region = v
	}
	if v := os.Getenv("COGNITO_REGION"); v != "" {
		c.Cognito.Region = v
	}
	if v := os.Getenv("COGNITO_USER_POOL_ID"); v != "" {
		c.Cognito.UserPoolID = v
	}
	if v := os.Getenv("AWS_S3_BUCKET"); v != "" {
		c.Storage.Bucket = v
	}
	if v := os.Getenv("PODCAST_S3_BUCKET"); v != "" {
		c.Speech.Bucket = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Enhance.Model = v
	}
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
