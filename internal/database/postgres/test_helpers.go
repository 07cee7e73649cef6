package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/coursecast/coursecast/internal/database"
	"github.com/coursecast/coursecast/internal/domain"
)

// startTestDatabase spins up a throwaway Postgres container, connects a
// pool and applies the embedded schema. Skips the test when Docker is
// unavailable or -short is set.
func startTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		t.Skip("postgres container unavailable")
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.ApplySchema(ctx, pool); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	return pool
}

// seedUserAndVideo inserts one creator, one buyer and one published
// basic-tier video, returning the video ID
func seedUserAndVideo(ctx context.Context, t *testing.T, pool *pgxpool.Pool, price int64) int {
	t.Helper()

	users := NewUserRepository(pool)
	for _, u := range []*domain.User{
		{ID: "creator-1", Email: "creator@test.local", Role: domain.RoleCreator},
		{ID: "buyer-1", Email: "buyer@test.local"},
	} {
		if err := users.UpsertUser(ctx, u); err != nil {
			t.Fatalf("failed to seed user %s: %v", u.ID, err)
		}
	}

	catalog := NewCatalogRepository(pool)
	videoID, err := catalog.CreateVideo(ctx, &domain.Video{
		CreatorID:   "creator-1",
		Title:       "Intro to Woodworking",
		Tier:        domain.TierBasic,
		Price:       price,
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}
	return videoID
}
