package repositories

import (
	"time"

	"github.com/eventmate/api-go/models"
	"gorm.io/gorm"
)

// SuggestedUser is one entry of the "people you may know" list. MutualFriend
// carries the display name of the first friend connecting the caller to this
// user, empty when the suggestion came from the random fallback.
type SuggestedUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar"`
	MutualFriend string    `json:"mutual_friend"`
	CreatedAt    time.Time `json:"created_at"`
}

// SuggestionRepository computes follow suggestions for a user.
type SuggestionRepository interface {
	SuggestedFollows(userID string, page, limit int) ([]SuggestedUser, error)
}

// PostgresSuggestionRepository implements SuggestionRepository on GORM.
type PostgresSuggestionRepository struct {
	db *gorm.DB
}

func NewPostgresSuggestionRepository(db *gorm.DB) *PostgresSuggestionRepository {
	return &PostgresSuggestionRepository{db: db}
}

// candidateFilter keeps suggestion candidates to users followed by the
// caller's friends, excluding the caller and anyone the caller already
// follows. The subquery runs against the same followers table.
const candidateFilter = `NOT EXISTS (
	SELECT 1 FROM followers AS existing
	WHERE existing.subject_id = ?
	  AND existing.object_id = followers.object_id
	  AND existing.is_follow = ?
)`

// SuggestedFollows walks two hops out from userID: users followed by the
// people userID follows. When no signal exists it falls back to a uniform
// random sample. Candidates keep the traversal's row order; there is no
// mutual-connection count ranking.
func (r *PostgresSuggestionRepository) SuggestedFollows(userID string, page, limit int) ([]SuggestedUser, error) {
	var following []models.Follower
	if err := r.db.Where("subject_id = ? AND is_follow = ?", userID, true).
		Preload("Object").
		Find(&following).Error; err != nil {
		return nil, err
	}

	// Nothing followed yet: no signal, sample everyone but the caller.
	if len(following) == 0 {
		return r.randomSample(page, limit, "id <> ?", userID)
	}

	followingIDs := make([]string, 0, len(following))
	for _, f := range following {
		followingIDs = append(followingIDs, f.ObjectID)
	}

	var total int64
	if err := r.db.Model(&models.Follower{}).
		Where("subject_id IN ? AND is_follow = ? AND object_id <> ?", followingIDs, true, userID).
		Where(candidateFilter, userID, true).
		Count(&total).Error; err != nil {
		return nil, err
	}

	// Friends exist but none of their follows qualify: sample users outside
	// the caller's circle entirely.
	if total == 0 {
		return r.randomSample(page, limit, "id <> ? AND id NOT IN ?", userID, followingIDs)
	}

	var candidates []models.Follower
	if err := r.db.Where("subject_id IN ? AND is_follow = ? AND object_id <> ?", followingIDs, true, userID).
		Where(candidateFilter, userID, true).
		Preload("Object").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(candidates))
	suggestions := make([]SuggestedUser, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.ObjectID] {
			continue
		}
		seen[c.ObjectID] = true

		// The intermediate friend is the one whose forward edge produced
		// this candidate row. First match wins.
		var mutual string
		for _, f := range following {
			if f.ObjectID == c.SubjectID {
				mutual = f.Object.FirstName + " " + f.Object.LastName
				break
			}
		}

		suggestions = append(suggestions, SuggestedUser{
			ID:           c.ObjectID,
			Name:         c.Object.FirstName + " " + c.Object.LastName,
			Avatar:       c.Object.Avatar,
			MutualFriend: mutual,
			CreatedAt:    c.CreatedAt,
		})
	}
	return suggestions, nil
}

func (r *PostgresSuggestionRepository) randomSample(page, limit int, cond string, args ...interface{}) ([]SuggestedUser, error) {
	var users []models.User
	if err := r.db.Where(cond, args...).
		Order("RANDOM()").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}

	suggestions := make([]SuggestedUser, 0, len(users))
	for _, u := range users {
		suggestions = append(suggestions, SuggestedUser{
			ID:        u.ID,
			Name:      u.FirstName + " " + u.LastName,
			Avatar:    u.Avatar,
			CreatedAt: time.Now(),
		})
	}
	return suggestions, nil
}
