package main

import (
	"fmt"
	"os"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/config"
	"github.com/Modeva-Ecommerce/modeva-cms-admin/services"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// main creates the saved views table and, on request, issues an admin token
// for local use.
// Usage: go run ./cmd/migrate [-token]
// This is a standalone CLI tool, not part of the main application
func main() {
	cfg := config.Load()
	log, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MODEVA CMS ADMIN - Migrations")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	dbs, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer dbs.Close(log)

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if _, err := dbs.CmsDB.Exec(ctx, services.SavedViewSchema); err != nil {
		log.Fatal("apply saved view schema failed", zap.Error(err))
	}
	fmt.Println("✓ saved_filter_views is up to date")

	if len(os.Args) < 2 || os.Args[1] != "-token" {
		return
	}

	jwtService, err := services.NewJWTService(cfg.JWTSecret)
	if err != nil {
		log.Fatal("jwt service init failed", zap.Error(err))
	}
	email := promptEmail()
	token, err := jwtService.GenerateAdminJWT(uuid.Must(uuid.NewV7()).String(), email)
	if err != nil {
		log.Fatal("issue token failed", zap.Error(err))
	}

	fmt.Println()
	fmt.Println("Admin token (valid 7 days):")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Send it as 'Authorization: Bearer <token>' or the admin_token cookie.")
}

func promptEmail() (email string) {
	for {
		fmt.Print("Admin email: ")
		fmt.Scanln(&email)
		if email != "" {
			return email
		}
		fmt.Println("❌ Email cannot be empty")
	}
}
