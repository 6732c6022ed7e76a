package models

import "time"

type User struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	RoleID          uint      `json:"role_id" gorm:"index"`
	Fullname        string    `json:"fullname" gorm:"size:120;not null"`
	Section         string    `json:"section" gorm:"size:30"`
	Username        string    `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Email           string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PhoneNumber     string    `json:"phone_number" gorm:"size:20;not null"`
	IsEmailVerified bool      `json:"is_email_verified" gorm:"default:false"`
	Password        string    `json:"-" gorm:"not null"` // bcrypt hash
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Role           *Role                      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	StudentInfos   []StudentInfo              `json:"student_infos,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ProfessorInfos []ProfessorInfo            `json:"professor_infos,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Facials        []FacialDetection          `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FacialImages   []FacialDetectionUserImage `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
