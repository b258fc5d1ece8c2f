package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudentFolder is a student's personal subfolder inside a sport
// folder. The unique index on StudentID enforces the one-subfolder-
// per-student rule across all sport folders.
type StudentFolder struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	StudentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Student   User      `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`

	SportFolderID uuid.UUID `gorm:"type:uuid;not null;index"`
	SportFolder   Folder    `gorm:"foreignKey:SportFolderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
