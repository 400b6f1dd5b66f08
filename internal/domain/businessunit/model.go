package businessunit

import "time"

type BusinessUnit struct {
	ID   string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug *string `gorm:"uniqueIndex" json:"slug"`
	Name string  `gorm:"not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
