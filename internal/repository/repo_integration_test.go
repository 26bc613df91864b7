package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"courseapi/internal/model"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to the database named by TEST_DATABASE_URL, skipping the
// test when it is not set. The schema is expected to be migrated already.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set, skip repository integration test")
	}
	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB, repo UserRepository) *model.User {
	t.Helper()
	u := &model.User{
		FirstName:    "Jo",
		LastName:     "Lee",
		EmailAddress: uuid.New().String() + "@example.com",
		Password:     "$2a$10$0000000000000000000000000000000000000000000000000000",
	}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	t.Cleanup(func() {
		db.Exec("DELETE FROM courses WHERE user_id = $1", u.ID)
		db.Exec("DELETE FROM users WHERE id = $1", u.ID)
	})
	return u
}

func TestUserRepoRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepo(db)

	u := createTestUser(t, db, repo)
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	found, err := repo.GetUserByEmail(context.Background(), u.EmailAddress)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "Jo", found.FirstName)

	missing, err := repo.GetUserByEmail(context.Background(), "missing-"+u.EmailAddress)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepo(db)

	u := createTestUser(t, db, repo)

	dup := &model.User{
		FirstName:    "Sam",
		LastName:     "Doe",
		EmailAddress: u.EmailAddress,
		Password:     u.Password,
	}
	err := repo.CreateUser(context.Background(), dup)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCourseRepoRoundTrip(t *testing.T) {
	db := openTestDB(t)
	userRepo := NewUserRepo(db)
	courseRepo := NewCourseRepo(db)
	owner := createTestUser(t, db, userRepo)

	estimated := "12 hours"
	c := &model.Course{
		Title:         "Intro",
		Description:   "Basics",
		EstimatedTime: &estimated,
		UserID:        owner.ID,
	}
	require.NoError(t, courseRepo.CreateCourse(context.Background(), c))
	require.NotZero(t, c.ID)

	found, err := courseRepo.GetCourseByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Intro", found.Title)
	require.NotNil(t, found.EstimatedTime)
	assert.Equal(t, "12 hours", *found.EstimatedTime)
	assert.Nil(t, found.MaterialsNeeded)

	found.Title = "Intro to Go"
	require.NoError(t, courseRepo.UpdateCourse(context.Background(), found))

	updated, err := courseRepo.GetCourseByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro to Go", updated.Title)

	require.NoError(t, courseRepo.DeleteCourse(context.Background(), c.ID))
	gone, err := courseRepo.GetCourseByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
