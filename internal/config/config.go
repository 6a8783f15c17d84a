package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type OTPConfig struct {
	TTL string `yaml:"ttl"`
}

type SMTPConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	From       string `yaml:"from"`
	SenderName string `yaml:"sender_name"`
}

type StorageConfig struct {
	Endpoint            string `yaml:"endpoint"`
	AccessKey           string `yaml:"access_key"`
	SecretKey           string `yaml:"secret_key"`
	UseSSL              bool   `yaml:"use_ssl"`
	Bucket              string `yaml:"bucket"`
	PublicBaseURL       string `yaml:"public_base_url"`
	DefaultProfileImage string `yaml:"default_profile_image"`
	DefaultAccountImage string `yaml:"default_account_image"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Storage  StorageConfig  `yaml:"storage"`
}

type Config struct {
	Port                string
	GinMode             string
	DSN                 string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	JWTSecret           string
	JWTIssuer           string
	AccessTTL           time.Duration
	OTP_TTL             time.Duration
	SMTPHost            string
	SMTPPort            int
	SMTPUsername        string
	SMTPPassword        string
	SMTPFrom            string
	SMTPSenderName      string
	StorageEndpoint     string
	StorageAccessKey    string
	StorageSecretKey    string
	StorageUseSSL       bool
	StorageBucket       string
	StoragePublicBase   string
	DefaultProfileImage string
	DefaultAccountImage string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	return &Config{
		Port:                fmt.Sprintf("%d", configFile.App.Port),
		GinMode:             configFile.App.GinMode,
		DSN:                 env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:           configFile.Redis.Addr,
		RedisPassword:       configFile.Redis.Password,
		RedisDB:             configFile.Redis.DB,
		JWTSecret:           env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:           configFile.JWT.Issuer,
		AccessTTL:           accTTL,
		OTP_TTL:             otpTTL,
		SMTPHost:            configFile.SMTP.Host,
		SMTPPort:            configFile.SMTP.Port,
		SMTPUsername:        env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:        env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:            configFile.SMTP.From,
		SMTPSenderName:      configFile.SMTP.SenderName,
		StorageEndpoint:     configFile.Storage.Endpoint,
		StorageAccessKey:    env("STORAGE_ACCESS_KEY", configFile.Storage.AccessKey),
		StorageSecretKey:    env("STORAGE_SECRET_KEY", configFile.Storage.SecretKey),
		StorageUseSSL:       configFile.Storage.UseSSL,
		StorageBucket:       configFile.Storage.Bucket,
		StoragePublicBase:   configFile.Storage.PublicBaseURL,
		DefaultProfileImage: configFile.Storage.DefaultProfileImage,
		DefaultAccountImage: configFile.Storage.DefaultAccountImage,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
