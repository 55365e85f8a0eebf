package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/frahmantamala/leave-management/internal/seed"
	"github.com/frahmantamala/leave-management/pkg/logger"
	"github.com/spf13/cobra"
	_ "github.com/jackc/pgx/v5/stdlib"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the demo dataset",
	Long:  `Seed the database with the demo admin, employee, leave type catalog and historical leave. Safe to run repeatedly: already populated tables are left alone.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		seeder := seed.NewSeeder(gormDB, cfg.Security.BCryptCost, logger.LoggerWrapper())
		if err := seeder.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "seeding failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Database seeded successfully")
	},
}
