package models

// User represents an account in the local store. Rows are created on signup
// and never mutated or deleted afterwards.
type User struct {
	ID           uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"` // No json tag for security
}

// TableName keeps the table name aligned with the installed schema.
func (User) TableName() string { return "users" }
