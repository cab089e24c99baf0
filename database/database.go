package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ewinters/portfolio-backend/models"
)

type Database struct {
	projectRepo *ProjectRepo
	userRepo    *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		userRepo:    NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// Setup migrates the schema and seeds the admin credential. An existing
// admin row is left untouched so a password change in the environment only
// applies to fresh databases (same upsert-ignore behavior the previous
// deployment had).
func Setup(db *gorm.DB, adminUsername, adminPassword string) error {
	if err := db.AutoMigrate(&models.Project{}, &models.User{}); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: adminUsername,
		Password: string(hashed),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&admin).Error
}
