package repositories

import (
	"errors"
	"strings"

	"github.com/eventmate/api-go/models"
	"gorm.io/gorm"
)

// UserRepository exposes the user lookups the follow graph needs: existence
// checks for follow targets and free-text search over display names.
type UserRepository interface {
	GetUserByID(id string) (*models.User, error)
	SearchUsers(excludeUserID, searchTerm string, page, limit int) ([]models.User, int64, error)
}

// PostgresUserRepository implements UserRepository on GORM.
type PostgresUserRepository struct {
	db *gorm.DB
}

func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// nameMatch requires one token to appear in the first name, last name, or
// either concatenation order of the two. || keeps it portable between
// Postgres and SQLite.
const nameMatch = `(
	LOWER(first_name) LIKE ? OR
	LOWER(last_name) LIKE ? OR
	LOWER(first_name || ' ' || last_name) LIKE ? OR
	LOWER(last_name || ' ' || first_name) LIKE ?
)`

// SearchUsers matches every whitespace-separated token of searchTerm as a
// case-insensitive substring against the name fields (AND across tokens),
// excluding the caller. An empty term lists all users except the caller.
func (r *PostgresUserRepository) SearchUsers(excludeUserID, searchTerm string, page, limit int) ([]models.User, int64, error) {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(searchTerm)))

	base := func() *gorm.DB {
		q := r.db.Model(&models.User{}).Where("id <> ?", excludeUserID)
		for _, token := range tokens {
			pattern := "%" + token + "%"
			q = q.Where(nameMatch, pattern, pattern, pattern, pattern)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := base().
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	return users, total, err
}
