package models

// User is the single admin credential record. The password column holds a
// bcrypt hash, never plaintext, and is excluded from every JSON response.
type User struct {
	ID       int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Username string `json:"username" db:"username" gorm:"type:text;not null;unique"`
	Password string `json:"-" db:"password" gorm:"type:text;not null"`
}
