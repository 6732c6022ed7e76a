// scripts/create_admin.go
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aaron24x7direct/facial-detection-backend/config"
	"github.com/aaron24x7direct/facial-detection-backend/database"
	"github.com/aaron24x7direct/facial-detection-backend/models"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)

	username := "admin"
	email := "admin@aivocall.local"
	password := "changeme"

	var role models.Role
	if err := database.DB.Where("name = ?", "admin").First(&role).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query roles: %v", err)
		}
		role = models.Role{Name: "admin"}
		if err := database.DB.Create(&role).Error; err != nil {
			log.Fatalf("failed to create admin role: %v", err)
		}
	}

	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("admin user already exists:", username)
		os.Exit(0)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := models.User{
		RoleID:      role.ID,
		Fullname:    "Administrator",
		Username:    username,
		Email:       email,
		PhoneNumber: "0",
		Password:    string(hashed),
	}
	if err := database.DB.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin user created")
	fmt.Println("  username:", username)
	fmt.Println("  password:", password, "(change it after first login)")
}
