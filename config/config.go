package config

import (
	"encoding/base64"
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config carries every environment-provided setting. It is built once in main
// and handed to the components that need it; nothing mutates it afterwards.
type Config struct {
	Port        string
	Environment string

	DBDSN string

	JWTSecret []byte
	CipherKey []byte

	ClientURL string

	RecaptchaSecret string

	SMTPServer    string
	SMTPPort      int
	EmailUser     string
	EmailPassword string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		Environment:     getEnv("ENVIRONMENT", "production"),
		DBDSN:           os.Getenv("DB_DSN"),
		ClientURL:       getEnv("CLIENT_URL", "*"),
		RecaptchaSecret: os.Getenv("RECAPTCHA_SECRET_KEY"),
		SMTPServer:      os.Getenv("SMTP_SERVER"),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		EmailUser:       os.Getenv("EMAIL_USER"),
		EmailPassword:   os.Getenv("EMAIL_PASSWORD"),
	}

	secret, err := base64.StdEncoding.DecodeString(os.Getenv("JWT_SECRET_KEY"))
	if err != nil {
		return nil, errors.New("JWT_SECRET_KEY must be valid base64")
	}
	cfg.JWTSecret = secret

	cipherKey, err := base64.StdEncoding.DecodeString(os.Getenv("CIPHER_KEY"))
	if err != nil {
		return nil, errors.New("CIPHER_KEY must be valid base64")
	}
	cfg.CipherKey = cipherKey

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate refuses to let the process come up with unusable key material.
// A bad CIPHER_KEY in particular must never fall back to a generated key,
// or previously encrypted fields become unreadable after a restart.
func (c *Config) Validate() error {
	var errs []string
	if c.DBDSN == "" {
		errs = append(errs, "DB_DSN is required")
	}
	if len(c.JWTSecret) < 32 {
		errs = append(errs, "JWT_SECRET_KEY must decode to at least 32 bytes")
	}
	if len(c.CipherKey) != 32 {
		errs = append(errs, "CIPHER_KEY must decode to exactly 32 bytes")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
