package models

// Shirt represents a shirt in the inventory
type Shirt struct {
	ShirtID int     `gorm:"primaryKey" json:"shirtId"`
	Brand   string  `gorm:"not null" json:"brand" binding:"required"`
	Color   string  `gorm:"not null" json:"color" binding:"required"`
	Size    int     `json:"size"`
	Gender  string  `gorm:"not null" json:"gender" binding:"required"`
	Price   float64 `json:"price"`
}

func (Shirt) TableName() string {
	return "shirts"
}
