// Command tokengen prints a bearer token for an account, signed with the
// server secret. Useful for local testing against the API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/fundraiser/internal/config"
	"github.com/GlebRadaev/fundraiser/pkg/auth"
)

func main() {
	account := os.Getenv("TOKEN_ACCOUNT")
	ttl := 24 * time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid TOKEN_TTL")
		}
		ttl = d
	}
	cfg := config.New()
	if account == "" {
		log.Fatal().Msg("TOKEN_ACCOUNT is required")
	}

	token, err := auth.NewJWTService(cfg.JWTSecret).GenerateJWT(account, time.Now().Add(ttl))
	if err != nil {
		log.Fatal().Err(err).Msg("can't sign token")
	}
	fmt.Println(token)
}
