// Package config предоставляет структуры и функцию загрузки конфигурации панели.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — общая структура настроек административной панели.
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	RabbitURL               string `yaml:"rabbit_url" env:"RABBIT_URL"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	Session                 `yaml:"session"`
	Admin                   `yaml:"admin"`
}

// HTTPServer — настройки HTTP-сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8443"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection — настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// Session — настройки подсистемы сессионных токенов и сессионной cookie.
type Session struct {
	Secret         string        `yaml:"secret" env:"SESSION_SECRET"`
	TTL            time.Duration `yaml:"ttl" env-default:"8h"`
	Issuer         string        `yaml:"issuer" env-default:"subpool-admin"`
	Audience       string        `yaml:"audience" env-default:"subpool-admin-ui"`
	CookiePath     string        `yaml:"cookie_path" env-default:"/admin"`
	CookieInsecure bool          `yaml:"cookie_insecure" env-default:"false"`
}

// Admin — учетные данные единственного административного пользователя.
type Admin struct {
	Username     string `yaml:"username" env-default:"admin"`
	PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и валидирует
// обязательные поля. Отсутствие секрета сессии — фатальная ошибка
// конфигурации: сервис с ней не стартует, это не пер-запросная ошибка.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if cfg.Session.Secret == "" {
		log.Fatal("session secret is not set")
	}
	if cfg.Admin.PasswordHash == "" {
		log.Fatal("admin password hash is not set")
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StorageConnectionString: %s\n"+
			"RabbitURL: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Session:\n"+
			"  TTL: %s\n"+
			"  Issuer: %s\n"+
			"  Audience: %s\n"+
			"  CookiePath: %s\n"+
			"Admin:\n"+
			"  Username: %s\n",
		c.Env,
		c.StorageConnectionString,
		c.RabbitURL,
		c.AddressRedis,
		c.User,
		c.DB,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TTL,
		c.Issuer,
		c.Audience,
		c.CookiePath,
		c.Username,
	)
}
