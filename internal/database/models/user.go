package models

// User represents a registered account. The password hash is opaque and
// never serialized.
type User struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
	IsActive       bool   `gorm:"not null;default:true" json:"is_active"`

	// Relationships
	Items []Item `gorm:"foreignKey:OwnerID" json:"items"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
