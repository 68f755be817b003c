package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"log"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTP     HTTP
	Data     Data
	Gutendex Gutendex
	Llm      Llm
}

type HTTP struct {
	Port            int    `env:"HTTP_PORT" envDefault:"8080"`
	AllowedOrigins  string `env:"HTTP_ALLOWED_ORIGINS" envDefault:"*"`
	ShutdownTimeout int    `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10"`
}

type Data struct {
	Dir           string `env:"DATA_DIR" envDefault:"data"`
	OriginalsFile string `env:"DATA_ORIGINALS_FILE" envDefault:"original_openings.jsonl"`
	GeneratedFile string `env:"DATA_GENERATED_FILE" envDefault:"generated_openings.jsonl"`
	MetadataFile  string `env:"DATA_METADATA_FILE" envDefault:"book_metadata.json"`
}

type Gutendex struct {
	BaseUrl         string `env:"GUTENDEX_BASE_URL" envDefault:"https://gutendex.com"`
	RequestTimeout  int    `env:"GUTENDEX_REQUEST_TIMEOUT" envDefault:"20"`
	DownloadTimeout int    `env:"GUTENDEX_DOWNLOAD_TIMEOUT" envDefault:"30"`
}

type Llm struct {
	Model string `env:"LLM_MODEL" envDefault:"gemini-2.0-flash"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}

func (c *Config) OriginalsPath() string {
	return c.Data.Dir + "/" + c.Data.OriginalsFile
}

func (c *Config) GeneratedPath() string {
	return c.Data.Dir + "/" + c.Data.GeneratedFile
}

func (c *Config) MetadataPath() string {
	return c.Data.Dir + "/" + c.Data.MetadataFile
}
