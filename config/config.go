package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort           int
	ServerHost           string
	Environment          string
	DatabaseDbPath       string
	DatabaseCacheAddress string
	DatabaseCachePort    int
	SessionTTLHours      int
	UploadDir            string
	CookieSecure         bool
	AdminEmail           string
}

func InitConfig() (Config, error) {
	viper.SetEnvPrefix("journey")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("environment", "development")
	viper.SetDefault("database.db_path", "data/journey.db")
	viper.SetDefault("database.cache_address", "localhost")
	viper.SetDefault("database.cache_port", 6379)
	viper.SetDefault("session.ttl_hours", 72)
	viper.SetDefault("upload.dir", "data/uploads")
	viper.SetDefault("cookie.secure", false)
	viper.SetDefault("admin.email", "")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, env vars and defaults cover everything
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	config := Config{
		ServerPort:           viper.GetInt("server.port"),
		ServerHost:           viper.GetString("server.host"),
		Environment:          viper.GetString("environment"),
		DatabaseDbPath:       viper.GetString("database.db_path"),
		DatabaseCacheAddress: viper.GetString("database.cache_address"),
		DatabaseCachePort:    viper.GetInt("database.cache_port"),
		SessionTTLHours:      viper.GetInt("session.ttl_hours"),
		UploadDir:            viper.GetString("upload.dir"),
		CookieSecure:         viper.GetBool("cookie.secure"),
		AdminEmail:           viper.GetString("admin.email"),
	}

	return config, nil
}
