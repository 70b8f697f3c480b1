package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	Dir           string        `yaml:"dir" validate:"required|unixPath"`
	SaveInterval  time.Duration `yaml:"saveInterval" validate:"required|min:1"`
	CompressAbove int           `yaml:"compressAbove"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type RankingConfig struct {
	// SubmitDelay emulates the network round-trip of the original client.
	// Zero disables it.
	SubmitDelay time.Duration `yaml:"submitDelay"`
}

type StoriesConfig struct {
	TTL           time.Duration `yaml:"ttl"`
	PurgeInterval time.Duration `yaml:"purgeInterval"`
}

type SessionConfig struct {
	Secret   string        `yaml:"secret" validate:"required"`
	TokenTTL time.Duration `yaml:"tokenTTL"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Ranking     RankingConfig `yaml:"ranking"`
	Stories     StoriesConfig `yaml:"stories"`
	Session     SessionConfig `yaml:"session"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}
