package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/megaverse-builder/internal/apperror"
	"github.com/rocketscienceinc/megaverse-builder/internal/entity"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string    `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	Mode      string    `yaml:"mode" env:"MODE" env-default:"goal"`
	Megaverse Megaverse `yaml:"megaverse"`
	Cross     Cross     `yaml:"cross"`
	Redis     Redis     `yaml:"redis"`
}

type Megaverse struct {
	BaseURL         string        `yaml:"base-url" env:"MEGAVERSE_BASE_URL" env-default:"https://challenge.crossmint.com/api"`
	CandidateID     string        `yaml:"candidate-id" env:"MEGAVERSE_CANDIDATE_ID"`
	RequestInterval time.Duration `yaml:"request-interval" env:"MEGAVERSE_REQUEST_INTERVAL" env-default:"500ms"`
	Timeout         time.Duration `yaml:"timeout" env:"MEGAVERSE_TIMEOUT" env-default:"10s"`
}

// Cross describes the board of the X-pattern bootstrap mode.
type Cross struct {
	Size   int `yaml:"size" env:"CROSS_SIZE" env-default:"11"`
	Margin int `yaml:"margin" env:"CROSS_MARGIN" env-default:"2"`
}

type Redis struct {
	Enabled   bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host      string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port      string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	ReportTTL time.Duration `yaml:"report-ttl" env:"REDIS_REPORT_TTL" env-default:"168h"`
}

// MustLoad - load all configurations in config.yml file, environment variables win over the file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Megaverse.CandidateID == "" {
		return apperror.ErrEmptyCandidateID
	}

	switch that.Mode {
	case entity.ModeGoal:
	case entity.ModeCross:
		if _, err := entity.CrossPositions(that.Cross.Size, that.Cross.Margin); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, that.Mode)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
