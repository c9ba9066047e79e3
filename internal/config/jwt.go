package config

import "os"

// GetJWTSecret reads the signing secret from JWT_SECRET, falling back to a
// development default. Production deployments must set the environment
// variable.
func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-home-jwt-secret"
	}
	return secret
}
