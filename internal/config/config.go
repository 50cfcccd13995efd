package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"sync"
)

type Config struct {
	Env   string `yaml:"env" env:"ENV" env-default:"local"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"mentor_marketplace"`
		Timeout  int    `yaml:"timeout" env:"MONGO_TIMEOUT" env-default:"10"`
	} `yaml:"mongo"`
	Listen struct {
		BindIP  string `yaml:"bind_ip" env:"LISTEN_BIND_IP" env-default:"127.0.0.1"`
		Port    string `yaml:"port" env:"LISTEN_PORT" env-default:"9100"`
		Timeout int    `yaml:"timeout" env:"LISTEN_TIMEOUT" env-default:"5"`
	} `yaml:"listen"`
	Telegram struct {
		Enabled bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
		ApiKey  string `yaml:"api_key" env:"TELEGRAM_API_KEY" env-default:""`
		AdminId int64  `yaml:"admin_id" env:"TELEGRAM_ADMIN_ID" env-default:"0"`
		Level   string `yaml:"level" env:"TELEGRAM_LEVEL" env-default:"error"`
	} `yaml:"telegram"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	once.Do(func() {
		conf, err := Load(path)
		if err != nil {
			log.Fatal(err)
		}
		instance = conf
	})
	return instance
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("%s; %s", err, desc)
	}
	return conf, nil
}
