package config

import (
	"github.com/spf13/viper"
	"sync"
)

var once sync.Once

func InitConfig() {
	once.Do(func() {
		viper.AutomaticEnv()

		viper.BindEnv("http_port", "HTTP_PORT")
		viper.BindEnv("debug", "DEBUG")
		viper.BindEnv("lang", "LANG")
		viper.BindEnv("db_path", "DB_PATH")
		viper.BindEnv("cache_ttl", "CACHE_TTL")
		viper.BindEnv("font_size", "FONT_SIZE")
		viper.BindEnv("margin_top", "MARGIN_TOP")
		viper.BindEnv("margin_right", "MARGIN_RIGHT")
		viper.BindEnv("margin_bottom", "MARGIN_BOTTOM")
		viper.BindEnv("margin_left", "MARGIN_LEFT")

		viper.SetDefault("http_port", 8080)
		viper.SetDefault("debug", false)
		viper.SetDefault("lang", "en")
		viper.SetDefault("db_path", "axis.db")
		viper.SetDefault("cache_ttl", 300)
		viper.SetDefault("font_size", 10)
		viper.SetDefault("margin_top", 10)
		viper.SetDefault("margin_right", 3)
		viper.SetDefault("margin_bottom", 5)
		viper.SetDefault("margin_left", 3)
	})
}

func GetString(key string) string {
	InitConfig()
	return viper.GetString(key)
}

func GetInt(key string) int {
	InitConfig()
	return viper.GetInt(key)
}

func GetBool(key string) bool {
	InitConfig()
	return viper.GetBool(key)
}

func GetFloat64(key string) float64 {
	InitConfig()
	return viper.GetFloat64(key)
}

// Set overrides a key for the running process, e.g. from a command line flag.
func Set(key string, value interface{}) {
	InitConfig()
	viper.Set(key, value)
}

func AllSettings() map[string]interface{} {
	InitConfig()
	return viper.AllSettings()
}
