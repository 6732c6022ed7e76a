package models

import "time"

// FacialDetection is one attendance record produced by the classifier.
// At most one per (user, subject, calendar day); the attendance service
// enforces that before insert, there is no uniqueness constraint.
type FacialDetection struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	SubjectID uint      `json:"subject_id" gorm:"index;not null"`
	Status    string    `json:"status" gorm:"size:20;not null"` // "Present" | "Late"
	CreatedAt time.Time `json:"created_at"`

	User    *User    `json:"-" gorm:"foreignKey:UserID"`
	Subject *Subject `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
}

type FacialDetectionUserImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ImagePath string    `json:"image_path" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
