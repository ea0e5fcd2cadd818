package tournamentmigrations

import (
	"context"
	"fmt"

	tournamentdb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/tournament/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating tournaments table...")

		_, err := db.NewCreateTable().Model((*tournamentdb.Tournament)(nil)).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create tournaments table: %w", err)
		}

		fmt.Println("Creating players table...")

		_, err = db.NewCreateTable().Model((*tournamentdb.Player)(nil)).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create players table: %w", err)
		}

		fmt.Println("Tournament tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Rolling back tournament tables...")

		_, err := db.NewDropTable().Model((*tournamentdb.Player)(nil)).IfExists().Cascade().Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop players table: %w", err)
		}

		_, err = db.NewDropTable().Model((*tournamentdb.Tournament)(nil)).IfExists().Cascade().Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop tournaments table: %w", err)
		}

		fmt.Println("Tournament tables dropped successfully!")
		return nil
	})
}
