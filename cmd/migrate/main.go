package main

import (
	"fmt"
	"log"
	"os"

	"github.com/RentHaven/property_service/config"
	"github.com/RentHaven/property_service/internal/domain"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var models = []interface{}{
	&domain.User{},
	&domain.Application{},
}

func main() {
	root := &cobra.Command{
		Use:   "migrate",
		Short: "Schema management for the property portal database",
	}
	root.AddCommand(upCmd(), statusCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply schema changes for all registered models",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(models...); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Println("migration successful")
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which model tables exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			for _, m := range models {
				exists := db.Migrator().HasTable(m)
				fmt.Printf("%T: exists=%v\n", m, exists)
			}
			return nil
		},
	}
}

func open() (*gorm.DB, error) {
	cfg := config.LoadConfig()
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}
	return db, nil
}
