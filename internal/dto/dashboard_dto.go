package dto

import (
	"time"

	"athletehub/internal/entity"
)

type CreateFolderRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"`
}

type UpdateFolderRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

type FolderResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedBy   string    `json:"created_by"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FolderResponseFromEntity(folder *entity.Folder) FolderResponse {
	return FolderResponse{
		ID:          folder.ID.String(),
		Name:        folder.Name,
		Description: folder.Description,
		CreatedBy:   folder.CreatedBy.String(),
		IsPublic:    folder.IsPublic,
		CreatedAt:   folder.CreatedAt,
		UpdatedAt:   folder.UpdatedAt,
	}
}

func FolderResponsesFromEntities(folders []entity.Folder) []FolderResponse {
	responses := make([]FolderResponse, 0, len(folders))
	for i := range folders {
		responses = append(responses, FolderResponseFromEntity(&folders[i]))
	}
	return responses
}

type CreateStudentFolderRequest struct {
	Name string `json:"name" validate:"required"`
}

type RenameStudentFolderRequest struct {
	Name string `json:"name" validate:"required"`
}

type StudentFolderResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StudentID     string    `json:"student_id"`
	StudentName   string    `json:"student_name,omitempty"`
	SportFolderID string    `json:"sport_folder_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func StudentFolderResponseFromEntity(folder *entity.StudentFolder) StudentFolderResponse {
	return StudentFolderResponse{
		ID:            folder.ID.String(),
		Name:          folder.Name,
		StudentID:     folder.StudentID.String(),
		StudentName:   folder.Student.FullName,
		SportFolderID: folder.SportFolderID.String(),
		CreatedAt:     folder.CreatedAt,
		UpdatedAt:     folder.UpdatedAt,
	}
}

func StudentFolderResponsesFromEntities(folders []entity.StudentFolder) []StudentFolderResponse {
	responses := make([]StudentFolderResponse, 0, len(folders))
	for i := range folders {
		responses = append(responses, StudentFolderResponseFromEntity(&folders[i]))
	}
	return responses
}

type FileResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	OriginalName    string    `json:"original_name"`
	FileSize        int64     `json:"file_size"`
	MimeType        string    `json:"mime_type"`
	FolderID        *string   `json:"folder_id,omitempty"`
	StudentFolderID *string   `json:"student_folder_id,omitempty"`
	UploadedBy      string    `json:"uploaded_by"`
	CreatedAt       time.Time `json:"created_at"`
}

func FileResponseFromEntity(file *entity.File) FileResponse {
	response := FileResponse{
		ID:           file.ID.String(),
		Name:         file.Name,
		OriginalName: file.OriginalName,
		FileSize:     file.FileSize,
		MimeType:     file.MimeType,
		UploadedBy:   file.UploadedBy.String(),
		CreatedAt:    file.CreatedAt,
	}
	if file.FolderID != nil {
		id := file.FolderID.String()
		response.FolderID = &id
	}
	if file.StudentFolderID != nil {
		id := file.StudentFolderID.String()
		response.StudentFolderID = &id
	}
	return response
}

func FileResponsesFromEntities(files []entity.File) []FileResponse {
	responses := make([]FileResponse, 0, len(files))
	for i := range files {
		responses = append(responses, FileResponseFromEntity(&files[i]))
	}
	return responses
}

type FileURLResponse struct {
	URL string `json:"url"`
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type AnnouncementResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AnnouncementResponseFromEntity(a *entity.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID.String(),
		Title:     a.Title,
		Content:   a.Content,
		CreatedBy: a.CreatedBy.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func AnnouncementResponsesFromEntities(announcements []entity.Announcement) []AnnouncementResponse {
	responses := make([]AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		responses = append(responses, AnnouncementResponseFromEntity(&announcements[i]))
	}
	return responses
}

type SetVerifiedRequest struct {
	Verified bool `json:"verified"`
}
