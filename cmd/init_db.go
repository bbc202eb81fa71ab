package cmd

import (
	"padel-booking/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var schemaOnly bool

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the schema and seed sample courts, equipment and packages",
	Long: `Creates the bookings, courts, equipment, packages and sales tables if
they do not exist. With BOOKING_ENFORCE_UNIQUE_SLOT=true the partial unique
index over active bookings is created as well.

Sample rows are inserted only into tables that are still empty, so the
command is safe to run repeatedly.`,
	RunE: runInitDB,
}

func init() {
	rootCmd.AddCommand(initDBCmd)

	initDBCmd.Flags().BoolVar(&schemaOnly, "schema-only", false, "Create schema only, skip sample data")
}

func runInitDB(cmd *cobra.Command, args []string) error {
	config, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := cmd.Context()

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db, config.Booking.EnforceUniqueSlot); err != nil {
		logger.Error("Failed to create schema", zap.Error(err))
		return err
	}
	logger.Info("Schema created", zap.Bool("unique_slot_index", config.Booking.EnforceUniqueSlot))

	if schemaOnly {
		return nil
	}

	seeded, err := database.SeedSampleData(ctx, db)
	if err != nil {
		logger.Error("Failed to seed sample data", zap.Error(err), zap.Strings("seeded", seeded))
		return err
	}
	logger.Info("Sample data ready", zap.Strings("seeded", seeded))

	return nil
}
