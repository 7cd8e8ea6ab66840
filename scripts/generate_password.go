package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/verve-shop/storefront/internal/pkg/auth"
)

// Prints an ADMIN_PASSWORD_HASH value for the given password
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/generate_password.go <password> [cost]")
	}

	password := os.Args[1]
	cost := 12
	if len(os.Args) > 2 {
		c, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatal("Invalid cost:", err)
		}
		cost = c
	}

	passwords := auth.NewPasswordManager(cost)
	hash, err := passwords.HashPassword(password)
	if err != nil {
		log.Fatal("Error generating hash:", err)
	}

	if err := passwords.VerifyPassword(password, hash); err != nil {
		log.Fatal("Hash verification failed:", err)
	}

	fmt.Println("✅ Hash verified successfully!")
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
}
