package repositories

import (
	"errors"

	"github.com/eventmate/api-go/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// FollowerRepository defines follow-relationship data operations: the
// create/toggle/remove lifecycle plus the status, list and count queries.
type FollowerRepository interface {
	Create(subjectID, objectID string) (*models.Follower, error)
	Toggle(actorID, otherID string) (rel *models.Follower, removed bool, err error)
	Remove(id string) error
	FollowStatus(mainUserID, otherUserID string) (isFollow bool, isCreated bool, err error)
	FollowingList(userID string, page, limit int) ([]models.Follower, int64, error)
	FollowersList(userID string, page, limit int) ([]models.Follower, int64, error)
	Counts(userID string) (followingCount int64, followersCount int64, err error)
}

// PostgresFollowerRepository implements FollowerRepository on GORM.
type PostgresFollowerRepository struct {
	db *gorm.DB
}

func NewPostgresFollowerRepository(db *gorm.DB) *PostgresFollowerRepository {
	return &PostgresFollowerRepository{db: db}
}

// Create inserts a forward edge from subject to object. Uniqueness is keyed
// on the ordered pair: a reciprocal follow creates its own row, it never
// sets is_followed here.
func (r *PostgresFollowerRepository) Create(subjectID, objectID string) (*models.Follower, error) {
	if subjectID == objectID {
		return nil, ErrSelfFollow
	}

	var count int64
	if err := r.db.Model(&models.Follower{}).
		Where("subject_id = ? AND object_id = ?", subjectID, objectID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyFollowing
	}

	rel := models.Follower{
		SubjectID: subjectID,
		ObjectID:  objectID,
		IsFollow:  true,
	}
	if err := r.db.Create(&rel).Error; err != nil {
		// A concurrent create can slip past the existence check; the unique
		// index on (subject_id, object_id) catches it.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}

	if err := r.db.Preload("Subject").Preload("Object").
		First(&rel, "id = ?", rel.ID).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

// Toggle flips the direction flag matching the actor's orientation and
// deletes the row once both flags are false. The whole sequence runs in one
// transaction so a crash cannot leave a row with both flags false behind.
func (r *PostgresFollowerRepository) Toggle(actorID, otherID string) (*models.Follower, bool, error) {
	var (
		updated *models.Follower
		removed bool
	)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var rel models.Follower
		column := "is_follow"
		err := tx.Where("subject_id = ? AND object_id = ?", actorID, otherID).First(&rel).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = tx.Where("subject_id = ? AND object_id = ?", otherID, actorID).First(&rel).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRelationshipNotFound
			}
			column = "is_followed"
		}
		if err != nil {
			return err
		}

		// Flip only the matched column, in place. A concurrent toggle of the
		// other direction is never overwritten with a stale value.
		if err := tx.Model(&models.Follower{}).Where("id = ?", rel.ID).
			Update(column, gorm.Expr("NOT "+column)).Error; err != nil {
			return err
		}

		// The delete decision reads the row back rather than trusting the
		// pre-flip snapshot.
		if err := tx.Preload("Subject").Preload("Object").
			First(&rel, "id = ?", rel.ID).Error; err != nil {
			return err
		}

		if !rel.IsFollow && !rel.IsFollowed {
			// Conditional delete: only removes the row if no direction got
			// re-activated by a concurrent toggle.
			if err := tx.Where("id = ? AND is_follow = ? AND is_followed = ?", rel.ID, false, false).
				Delete(&models.Follower{}).Error; err != nil {
				return err
			}
			removed = true
			return nil
		}

		updated = &rel
		return nil
	})

	return updated, removed, err
}

// Remove deletes a relationship row by ID.
func (r *PostgresFollowerRepository) Remove(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Follower{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRelationshipNotFound
	}
	return nil
}

// FollowStatus probes both orientations between two users. isCreated is
// false only when no row exists in either direction.
func (r *PostgresFollowerRepository) FollowStatus(mainUserID, otherUserID string) (bool, bool, error) {
	var rel models.Follower
	err := r.db.Where("subject_id = ? AND object_id = ?", mainUserID, otherUserID).First(&rel).Error
	if err == nil {
		return rel.IsFollow, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, err
	}

	err = r.db.Where("subject_id = ? AND object_id = ?", otherUserID, mainUserID).First(&rel).Error
	if err == nil {
		return rel.IsFollowed, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, err
	}
	return false, false, nil
}

// FollowingList returns the users userID follows, newest first.
func (r *PostgresFollowerRepository) FollowingList(userID string, page, limit int) ([]models.Follower, int64, error) {
	var total int64
	if err := r.db.Model(&models.Follower{}).
		Where("subject_id = ? AND is_follow = ?", userID, true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rels []models.Follower
	err := r.db.Where("subject_id = ? AND is_follow = ?", userID, true).
		Preload("Object").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rels).Error
	return rels, total, err
}

// FollowersList returns the users following userID, newest first.
func (r *PostgresFollowerRepository) FollowersList(userID string, page, limit int) ([]models.Follower, int64, error) {
	var total int64
	if err := r.db.Model(&models.Follower{}).
		Where("object_id = ? AND is_followed = ?", userID, true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rels []models.Follower
	err := r.db.Where("object_id = ? AND is_followed = ?", userID, true).
		Preload("Subject").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rels).Error
	return rels, total, err
}

// Counts computes the following and followers counts on demand.
func (r *PostgresFollowerRepository) Counts(userID string) (int64, int64, error) {
	var followingCount, followersCount int64
	if err := r.db.Model(&models.Follower{}).
		Where("subject_id = ? AND is_follow = ?", userID, true).
		Count(&followingCount).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&models.Follower{}).
		Where("object_id = ? AND is_followed = ?", userID, true).
		Count(&followersCount).Error; err != nil {
		return 0, 0, err
	}
	return followingCount, followersCount, nil
}
