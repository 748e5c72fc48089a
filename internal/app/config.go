package app

import (
	"strings"
	"time"

	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
	"github.com/algeria-ecosystem/ecosystem/internal/utils"
)

type Config struct {
	Port string

	JWTSecretKey      string
	TokenTTL          time.Duration
	AdminEmail        string
	AdminPasswordHash string

	CORSAllowOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	tokenTTLSeconds := utils.GetEnvAsInt("TOKEN_TTL", 86400, log)
	adminEmail := utils.GetEnv("ADMIN_EMAIL", "", log)
	adminPasswordHash := utils.GetEnv("ADMIN_PASSWORD_HASH", "", log)
	port := utils.GetEnv("PORT", "8080", log)
	corsOrigins := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log)

	return Config{
		Port:              port,
		JWTSecretKey:      jwtSecretKey,
		TokenTTL:          time.Duration(tokenTTLSeconds) * time.Second,
		AdminEmail:        adminEmail,
		AdminPasswordHash: adminPasswordHash,
		CORSAllowOrigins:  splitOrigins(corsOrigins),
	}
}

func splitOrigins(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
