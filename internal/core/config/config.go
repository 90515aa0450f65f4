package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}
type AdminHTTP struct {
	Host string
	Port int
}

type App struct {
	Name  string
	Env   string
	HTTP  HTTP
	Admin AdminHTTP
}

type LogFile struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile // Filename 为空则只写 stdout
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
}

// Operator 桌面端操作员（单用户）
type Operator struct {
	AuthEnabled  bool
	Username     string
	PasswordHash string // bcrypt
	Role         string
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTLSec   int    `mapstructure:"ttlSec"`
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Config struct {
	App      App
	Log      Log
	JWT      JWT
	Operator Operator
	DB       DB
	Redis    Redis `mapstructure:"redis"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("app.name", "seller-desk")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "127.0.0.1")
	v.SetDefault("app.http.port", 8088)
	v.SetDefault("app.http.readTimeoutSec", 5)
	v.SetDefault("app.http.writeTimeoutSec", 10)
	v.SetDefault("app.http.idleTimeoutSec", 60)
	v.SetDefault("app.admin.host", "127.0.0.1")
	v.SetDefault("app.admin.port", 8089)
	v.SetDefault("log.level", "info")
	v.SetDefault("jwt.issuer", "seller-desk")
	v.SetDefault("jwt.accessTokenTTLMin", 480)
	v.SetDefault("operator.role", "admin")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "file:seller-desk.db")
	v.SetDefault("db.maxOpenConns", 1) // 单连接复用
	v.SetDefault("db.maxIdleConns", 1)
	v.SetDefault("db.logLevel", "warn")
	v.SetDefault("redis.ttlSec", 300)
}

// Read 读取 yaml 并叠加 APP_ 前缀环境变量
func Read(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	defaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Load(path string) *Config {
	c, err := Read(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return c
}
