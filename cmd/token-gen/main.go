package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Mints an auxiliary auth token suitable for the AUTH_TOKEN environment
// variable consumed by fcm-send. The claim set mirrors what the backend
// issues: audience, subject, validity window and an empty scope list.
func main() {
	secretEnv := os.Getenv("JWT_SECRET")
	if secretEnv == "" {
		secretEnv = "super-secret-key-change-me"
	}

	secret := flag.String("secret", secretEnv, "JWT Secret Key")
	audience := flag.String("aud", "2", "Token audience")
	subject := flag.String("sub", "", "Token subject (user id)")
	ttl := flag.Duration("ttl", 15*24*time.Hour, "Token lifetime")
	flag.Parse()

	if *subject == "" {
		log.Fatal("Subject is required, pass -sub")
	}

	jti := make([]byte, 16)
	if _, err := rand.Read(jti); err != nil {
		log.Fatalf("Error generating token id: %v", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"aud":    *audience,
		"jti":    hex.EncodeToString(jti),
		"iat":    now.Unix(),
		"nbf":    now.Unix(),
		"exp":    now.Add(*ttl).Unix(),
		"sub":    *subject,
		"scopes": []string{},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(*secret))
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Println(signedToken)
}
