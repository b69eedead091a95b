package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port    string
	GinMode string

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPoolSize    int
	DBMaxOverflow int

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	VerificationCodeTTL time.Duration

	// SuperUsers is the username allowlist granted superuser on signup.
	SuperUsers []string
}

func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DBHost:        getEnv("MYSQL_HOST", "localhost"),
		DBPort:        getEnv("MYSQL_PORT", "3306"),
		DBUser:        getEnv("MYSQL_USER", "root"),
		DBPassword:    getEnv("MYSQL_PASSWD", "root"),
		DBName:        getEnv("MYSQL_DB", "dochub"),
		DBPoolSize:    getEnvInt("POOL_SIZE", 20),
		DBMaxOverflow: getEnvInt("MAX_OVERFLOW", 40),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 1),

		SMTPHost:     getEnv("EMAIL_HOST", "localhost"),
		SMTPPort:     getEnv("EMAIL_PORT", "587"),
		SMTPUser:     getEnv("EMAIL_HOST_USER", ""),
		SMTPPassword: getEnv("EMAIL_HOST_PASSWORD", ""),
		SMTPFrom:     getEnv("EMAIL_FROM", getEnv("EMAIL_HOST_USER", "")),

		JWTSecret:       getEnv("SECRET_KEY", "default-secret-key-change-me"),
		AccessTokenTTL:  getEnvSeconds("ACCESS_TOKEN_EXPIRE", 15*60),
		RefreshTokenTTL: getEnvSeconds("REFRESH_TOKEN_EXPIRE", 7*24*3600),

		VerificationCodeTTL: getEnvSeconds("VERIFICATION_CODE_EXPIRE", 300),

		SuperUsers: getEnvList("SUPER_USER_LIST", "haojie"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds)) * time.Second
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
