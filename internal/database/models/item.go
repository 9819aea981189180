package models

// Item belongs to exactly one User. OwnerID is the source of truth for the
// relationship; Owner is a projection and is not serialized.
type Item struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Title       string  `gorm:"index;not null" json:"title"`
	Description *string `gorm:"index" json:"description"`
	OwnerID     uint    `gorm:"index;not null" json:"owner_id"`

	// Relationships
	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName overrides the table name
func (Item) TableName() string {
	return "items"
}
