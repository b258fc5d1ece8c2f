package entity

import (
	"time"

	"github.com/google/uuid"
)

// Folder is a shared sport folder managed by administrators. Students
// see public folders and create their own subfolder inside one.
type Folder struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	IsPublic  bool      `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
