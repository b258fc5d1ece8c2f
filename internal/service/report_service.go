package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"athletehub/internal/entity"
	"athletehub/internal/repository"
)

// ReportService derives the athlete roster CSV from the user table.
type ReportService struct {
	users repository.UserRepository
	clock Clock
}

func NewReportService(users repository.UserRepository, clock Clock) *ReportService {
	return &ReportService{users: users, clock: clock}
}

// AthleteCSV returns the report body and a dated filename.
func (s *ReportService) AthleteCSV(ctx context.Context) ([]byte, string, error) {
	students, err := s.users.ListByRole(ctx, entity.UserRoleStudent)
	if err != nil {
		return nil, "", err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.Write([]string{"Full Name", "Student ID", "Email", "Sport", "Course", "Year Level", "Status"}); err != nil {
		return nil, "", err
	}
	for i := range students {
		status := "Pending"
		if students[i].IsVerified {
			status = "Verified"
		}
		record := []string{
			students[i].FullName,
			deref(students[i].StudentID),
			students[i].Email,
			deref(students[i].Sport),
			deref(students[i].Course),
			deref(students[i].YearLevel),
			status,
		}
		if err := writer.Write(record); err != nil {
			return nil, "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	now := time.Now()
	if s.clock != nil {
		now = s.clock.Now()
	}
	filename := fmt.Sprintf("athletes_%s.csv", now.Format("2006-01-02"))
	return buffer.Bytes(), filename, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
