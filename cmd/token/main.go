package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/corepay/payroll-backend-go/internal/pkg/jwt"
	"github.com/joho/godotenv"
)

// Mints an access token for calling the API locally.
func main() {
	subject := flag.String("sub", "dev", "token subject")
	role := flag.String("role", "admin", "token role")
	flag.Parse()

	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT_SECRET_KEY is required")
	}
	expiration := os.Getenv("JWT_ACCESS_EXPIRATION_TIME")
	if expiration == "" {
		expiration = "1h"
	}

	token, expiresAt, err := jwt.NewJWTService(secret, expiration).GenerateAccessToken(*subject, *role)
	if err != nil {
		log.Fatal("Error generating token: ", err)
	}

	fmt.Println(token)
	fmt.Println("Expires:", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
