package entities

// User is an operator account. Passwords are stored as SHA-256 hashes.
type User struct {
	ID           string `gorm:"type:text;primaryKey" json:"id"`
	Username     string `gorm:"unique;not null" json:"username"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Rol          string `json:"rol"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (User) TableName() string { return "users" }
