package models

type ProfessorInfo struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	UserID  uint   `json:"user_id" gorm:"index;not null"`
	Section string `json:"section" gorm:"size:30;not null"`
	Subject string `json:"subject" gorm:"size:100;not null"`
	Day     string `json:"day" gorm:"size:10;not null"`
	Time    string `json:"time" gorm:"size:40;not null"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}
