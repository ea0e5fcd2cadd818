package roundmigrations

import (
	"context"
	"fmt"

	rounddb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rounds table...")

		_, err := db.NewCreateTable().Model((*rounddb.Round)(nil)).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create rounds table: %w", err)
		}

		fmt.Println("Creating scores table...")

		_, err = db.NewCreateTable().Model((*rounddb.Score)(nil)).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create scores table: %w", err)
		}

		// One score row per hole per round backs the upsert path.
		_, err = db.ExecContext(ctx,
			"CREATE UNIQUE INDEX IF NOT EXISTS scores_round_hole_idx ON scores (round_id, hole)")
		if err != nil {
			return fmt.Errorf("failed to create scores round/hole index: %w", err)
		}

		fmt.Println("Round tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Rolling back round tables...")

		_, err := db.NewDropTable().Model((*rounddb.Score)(nil)).IfExists().Cascade().Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop scores table: %w", err)
		}

		_, err = db.NewDropTable().Model((*rounddb.Round)(nil)).IfExists().Cascade().Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop rounds table: %w", err)
		}

		fmt.Println("Round tables dropped successfully!")
		return nil
	})
}
