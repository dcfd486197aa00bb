package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

// ResetTokenExpiration bounds password-reset links, matching the
// short-lived signed tokens the reset emails carry.
var ResetTokenExpiration = 5 * time.Minute

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)
	JWTExpiration = 24 * time.Hour
}
