package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follower is a directed relationship row between two users. The subject is
// the user who created the row; IsFollow tracks subject -> object and
// IsFollowed tracks object -> subject on the same row. A row whose both
// flags are false is deleted rather than kept around.
type Follower struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_followers_subject_object" json:"subject_id"`
	ObjectID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_followers_subject_object" json:"object_id"`
	IsFollow   bool      `gorm:"not null;default:false" json:"is_follow"`
	IsFollowed bool      `gorm:"not null;default:false" json:"is_followed"`
	CreatedAt  time.Time `json:"created_at"`

	Subject User `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"subject"`
	Object  User `gorm:"foreignKey:ObjectID;constraint:OnDelete:CASCADE" json:"object"`
}

func (f *Follower) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
