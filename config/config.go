package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/moyu-x/file-sorter/internal"
)

type Config struct {
	Logging struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"logging"`
	Output struct {
		Format string `mapstructure:"format"`
		Color  bool   `mapstructure:"color"`
	} `mapstructure:"output"`
}

var cfg Config

// Load 读取配置：显式路径优先，否则搜索默认目录
// 默认位置没有配置文件时使用默认值
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(internal.DefaultConfigName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(internal.DefaultConfigDir)
		viper.AddConfigPath(internal.SystemConfigDir)
	}

	viper.SetEnvPrefix(internal.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("logging.level", internal.DefaultLogLevel)
	viper.SetDefault("logging.file", "")
	viper.SetDefault("output.format", internal.DefaultOutputFormat)
	viper.SetDefault("output.color", true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, err
		}
	}

	cfg = Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}
