// Command devtoken prints a signed access token for local development.
//
// Usage:
//
//	devtoken --user=6f1c2d3e-4a5b-4c6d-8e7f-901234567890
//
// Requires AUTH_JWT_SECRET; the issuer and lifetime follow the server's auth
// settings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/pantry-backend/internal/auth"
	"github.com/heartmarshall/pantry-backend/internal/config"
)

func main() {
	user := flag.String("user", "", "user id (UUID) to issue the token for")
	flag.Parse()

	userID, err := uuid.Parse(*user)
	if err != nil || userID == uuid.Nil {
		fmt.Fprintln(os.Stderr, "Usage: devtoken --user=<uuid>")
		os.Exit(1)
	}

	_ = godotenv.Load()

	var cfg config.AuthConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("read auth config: %v", err)
	}

	token, err := auth.NewTokenValidator(cfg).Sign(userID)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}
