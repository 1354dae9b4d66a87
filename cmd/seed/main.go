package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/localnerve/drink-trail/data"
	"github.com/localnerve/drink-trail/internal/config"
	"github.com/localnerve/drink-trail/internal/database"
	"github.com/localnerve/drink-trail/internal/services"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var flagUsersFile string

var rootCmd = &cobra.Command{
	Use:          "seed",
	Short:        "Prepare a Drink Trail database",
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Println("Schema is up to date")
			return nil
		})
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Seed dashboard users with bcrypt hashed passwords",
	Long:  "Seed dashboard users from the embedded list, or from --file. Existing emails are skipped.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := data.UsersJSON
		if flagUsersFile != "" {
			content, err := os.ReadFile(flagUsersFile)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", flagUsersFile, err)
			}
			seed = content
		}

		return withDB(func(db *gorm.DB) error {
			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			created, err := services.SeedUsers(cmd.Context(), db, seed)
			if err != nil {
				return err
			}
			log.Printf("Seeded %d users", created)
			return nil
		})
	},
}

func init() {
	usersCmd.Flags().StringVarP(&flagUsersFile, "file", "f", "", "JSON user list (default: embedded users.json)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(usersCmd)
}

// withDB runs fn against the configured database
func withDB(fn func(db *gorm.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	return fn(db)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
