package db_models

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex" json:"username"`
	PasswordHash string `json:"-"`
	IsGuide      bool   `gorm:"default:false" json:"isGuide"`
	IsAdmin      bool   `gorm:"default:false" json:"isAdmin"`
	Bio          string `json:"bio,omitempty"`
}
