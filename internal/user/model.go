package user

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"password,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	IsAvailable bool   `gorm:"default:false" json:"is_available"`
}

// ProfileUpdate carries the editable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Avatar   *string `json:"avatar"`
}

// Summary is the trimmed player representation embedded in game responses.
type Summary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
