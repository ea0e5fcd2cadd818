// Package bundb wires the Postgres connection and hands out the per-module
// repositories over one shared bun.DB.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	rounddb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/infrastructure/repositories"
	tournamentdb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/tournament/infrastructure/repositories"
)

// DBService bundles the repositories behind one connection pool.
type DBService struct {
	Tournament tournamentdb.TournamentDB
	Round      rounddb.RoundDB
	db         *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// Close releases the connection pool.
func (s *DBService) Close() error {
	return s.db.Close()
}

// NewBunDBService connects to Postgres and builds the repository set.
func NewBunDBService(ctx context.Context, dsn string) (*DBService, error) {
	sqldb, err := pgConn(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	return &DBService{
		Tournament: &tournamentdb.TournamentDBImpl{DB: db},
		Round:      &rounddb.RoundDBImpl{DB: db},
		db:         db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}
