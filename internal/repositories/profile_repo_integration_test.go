//go:build integration
// +build integration

package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/collabmatch/backend/internal/db"
	"github.com/collabmatch/backend/internal/models"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if err := db.RunMigrations(ctx, pool, "../../migrations", zap.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return pool
}

func seedUser(t *testing.T, pool *pgxpool.Pool, userType string) *models.User {
	t.Helper()
	u := &models.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Name:         "Test User",
		UserType:     userType,
	}
	if err := NewUserRepo(pool).Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// A create that fails past the base insert must not leave an orphan base
// row behind, or every retry would hit the user_id unique constraint and
// the user could never finish creating a profile.
func TestCreateInfluencerProfileRollsBackBaseRow(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewProfileRepo(pool)
	user := seedUser(t, pool, models.UserTypeInfluencer)

	base := &models.Profile{UserID: user.ID, Bio: "travel and food"}
	ip := &models.InfluencerProfile{
		Platforms:    "Instagram",
		AudienceSize: models.AudienceSizeSmall,
	}
	// Nonexistent category id fails the join-table insert after the base
	// and specialization rows are already written inside the tx.
	err := repo.CreateInfluencerProfile(ctx, base, ip, []uuid.UUID{uuid.New()})
	if err == nil {
		t.Fatal("expected create with unknown category to fail")
	}

	exists, err := repo.ExistsForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ExistsForUser: %v", err)
	}
	if exists {
		t.Fatal("failed create left a base profile row behind")
	}

	// Retry without the bad category must succeed.
	base = &models.Profile{UserID: user.ID, Bio: "travel and food"}
	ip = &models.InfluencerProfile{
		Platforms:    "Instagram",
		AudienceSize: models.AudienceSizeSmall,
	}
	if err := repo.CreateInfluencerProfile(ctx, base, ip, nil); err != nil {
		t.Fatalf("retry after failed create: %v", err)
	}
	exists, err = repo.ExistsForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ExistsForUser: %v", err)
	}
	if !exists {
		t.Fatal("retry did not create the profile")
	}
}

func TestCreateCompanyProfileRollsBackBaseRow(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewProfileRepo(pool)
	user := seedUser(t, pool, models.UserTypeCompany)

	base := &models.Profile{UserID: user.ID, Bio: "outdoor gear brand"}
	cp := &models.CompanyProfile{
		CompanySize: models.CompanySize11to50,
		Description: "outdoor gear",
	}
	err := repo.CreateCompanyProfile(ctx, base, cp, []uuid.UUID{uuid.New()})
	if err == nil {
		t.Fatal("expected create with unknown category to fail")
	}

	exists, err := repo.ExistsForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ExistsForUser: %v", err)
	}
	if exists {
		t.Fatal("failed create left a base profile row behind")
	}

	base = &models.Profile{UserID: user.ID, Bio: "outdoor gear brand"}
	cp = &models.CompanyProfile{
		CompanySize: models.CompanySize11to50,
		Description: "outdoor gear",
	}
	if err := repo.CreateCompanyProfile(ctx, base, cp, nil); err != nil {
		t.Fatalf("retry after failed create: %v", err)
	}
}
