package entity

import (
	"time"

	"github.com/google/uuid"
)

// File is a stored document. Exactly one of FolderID and
// StudentFolderID is set: shared uploads land in a sport folder,
// student uploads land in the student's own subfolder. FilePath is
// the object key in the athlete-files bucket.
type File struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	OriginalName string    `gorm:"type:varchar(255);not null"`
	FilePath     string    `gorm:"type:text;not null"`
	FileSize     int64     `gorm:"not null"`
	MimeType     string    `gorm:"type:varchar(255);not null"`

	FolderID        *uuid.UUID `gorm:"type:uuid;index"`
	StudentFolderID *uuid.UUID `gorm:"type:uuid;index"`

	UploadedBy uuid.UUID `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
