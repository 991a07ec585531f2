// Command createadmin creates an admin account directly through the
// credential store. Public signup treats the admin flag as untrusted input,
// so provider/admin accounts are bootstrapped out-of-band with this tool by
// an operator with database access.
//
//	createadmin -name "Front Desk" -email admin@example.com
//
// The password is prompted interactively and never echoed or accepted as a
// command-line argument.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/queueflex/auth-service/internal/common"
	"github.com/queueflex/auth-service/internal/server/config"
	"github.com/queueflex/auth-service/internal/server/password"
	"github.com/queueflex/auth-service/internal/server/shared/db"
	"github.com/queueflex/auth-service/internal/server/users"
)

func main() {

	name := flag.String("name", "", "display name for the admin account")
	email := flag.String("email", "", "login email for the admin account")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.BcryptCost)
	}

	fmt.Print("Password: ")
	plaintext, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}
	if len(plaintext) == 0 {
		log.Fatal("password must not be empty")
	}

	ctx := context.Background()

	m, err := db.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer m.Conn().Close()

	hasher := password.NewHasher(cfg.BcryptCost)
	hash, err := hasher.Hash(string(plaintext))
	if err != nil {
		log.Fatalf("hashing password: %v", err)
	}

	user, err := m.Users().Create(ctx, &users.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: hash,
		IsAdmin:      true,
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			log.Fatalf("%s is already registered", *email)
		}
		log.Fatalf("creating admin: %v", err)
	}

	fmt.Printf("admin account created: id=%d email=%s\n", user.ID, user.Email)
}
