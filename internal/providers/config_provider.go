package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"socialnino/internal/structures"
	"strings"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "NINO_LOG_LEVEL")
	viper.BindEnv("persistence.dir", "NINO_STORE_DIR")
	viper.BindEnv("persistence.saveInterval", "NINO_SAVE_INTERVAL")
	viper.BindEnv("session.secret", "NINO_SESSION_SECRET")
	viper.BindEnv("cache.enabled", "NINO_CACHE_ENABLED")
	viper.BindEnv("cache.size", "NINO_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "SocialNino"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
