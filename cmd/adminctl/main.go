package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/infrastructure/config"
	mongodb "github.com/harmonyhousing/accommodation-portal/internal/infrastructure/db/mongo"
)

// adminctl is an operator tool for bootstrapping admin accounts without going
// through the API (signup only ever creates role=user accounts).
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Operator tooling for the accommodation portal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(createAdminCmd())
	return root
}

func createAdminCmd() *cobra.Command {
	var email, password, name, phone string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account directly in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			client, db, err := mongodb.Connect(ctx, mongodb.Config{
				URI:      cfg.Mongo.URI,
				Database: cfg.Mongo.Database,
			})
			if err != nil {
				return err
			}
			defer client.Disconnect(ctx)

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			admin := &domain.User{
				ID:           uuid.NewString(),
				Email:        email,
				Name:         name,
				Phone:        phone,
				Role:         domain.RoleAdmin,
				PasswordHash: string(hash),
				CreatedAt:    now,
				UpdatedAt:    now,
			}

			if err := mongodb.NewUserRepository(db).Create(ctx, admin); err != nil {
				return err
			}

			fmt.Printf("admin account created: %s (%s)\n", admin.Email, admin.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email (required)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (required)")
	cmd.Flags().StringVar(&name, "name", "Admin User", "display name")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
