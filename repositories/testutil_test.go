package repositories

import (
	"testing"
	"time"

	"github.com/eventmate/api-go/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every statement on the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Follower{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, firstName, lastName string) *models.User {
	t.Helper()

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     uuid.NewString() + "@example.com",
		Avatar:    "https://example.com/avatar.jpg",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createRelationship(t *testing.T, db *gorm.DB, subjectID, objectID string, isFollow, isFollowed bool, createdAt time.Time) *models.Follower {
	t.Helper()

	rel := &models.Follower{
		SubjectID:  subjectID,
		ObjectID:   objectID,
		IsFollow:   isFollow,
		IsFollowed: isFollowed,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(rel).Error)
	return rel
}
