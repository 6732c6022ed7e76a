package models

type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"` // "admin" | "professor" | "student"

	Users []User `json:"-" gorm:"foreignKey:RoleID"`
}
