// Command promote changes the role of an account by email address.
// It is used to bootstrap the first admin, since registration only ever
// creates staff accounts.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin|staff]
//
// Configuration is read like the server's (CONFIG_PATH or environment).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/kantin-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kantin-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/kantin-backend/internal/config"
	"github.com/heartmarshall/kantin-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the account to update")
	role := flag.String("role", string(domain.UserRoleAdmin), "new role: admin or staff")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin|staff]")
		os.Exit(1)
	}

	newRole := domain.UserRole(*role)
	if !newRole.IsValid() {
		log.Fatalf("invalid role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	accounts := user.New(pool)

	account, err := accounts.GetByEmail(ctx, domain.NormalizeEmail(*email))
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No account found with email %q.\n", *email)
		pool.Close()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("find account: %v", err)
	}

	if account.Role == newRole {
		fmt.Printf("Account %q is already %s.\n", account.Email, newRole)
		return
	}

	if _, err := accounts.UpdateRole(ctx, account.ID, newRole); err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("Account %q is now %s.\n", account.Email, newRole)
}
