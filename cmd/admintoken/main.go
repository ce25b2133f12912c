// Command admintoken mints an access token for operators calling the
// admin endpoints. The token is signed with the configured JWT secret.
//
// Usage:
//
//	admintoken [-config=config.yaml] [-subject=<uuid>] [-role=admin] [-ttl=1h]
//
// The token is printed to stdout; diagnostics go to stderr.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/auth"
	"github.com/heartmarshall/authority-backend/internal/config"
	"github.com/heartmarshall/authority-backend/internal/domain"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")
	subject := flag.String("subject", "", "token subject UUID (default: random)")
	role := flag.String("role", string(domain.UserRoleAdmin), "token role: admin or user")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	flag.Parse()

	sub := uuid.New()
	if *subject != "" {
		parsed, err := uuid.Parse(*subject)
		if err != nil {
			log.Fatalf("invalid -subject: %v", err)
		}
		sub = parsed
	}

	r := domain.UserRole(*role)
	if !r.IsValid() {
		log.Fatalf("invalid -role %q: must be admin or user", *role)
	}

	if *configPath == "" {
		*configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := tokens.GenerateAccessToken(sub, r, *ttl)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = cfg.Auth.AccessTokenTTL
	}
	fmt.Fprintf(os.Stderr, "subject %s, role %s, expires %s\n", sub, r, time.Now().Add(lifetime).UTC().Format(time.RFC3339))
	fmt.Println(token)
}
