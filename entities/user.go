package entities

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName string `gorm:"size:100" json:"full_name,omitempty"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	FoodImages    []*FoodImage    `gorm:"foreignKey:UserID" json:"-"`
	UserAllergens []*UserAllergen `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

func (User) TableName() string {
	return "users"
}
