package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"athletehub/internal/entity"

	"github.com/google/uuid"
)

func TestAthleteCSV(t *testing.T) {
	sid := "2021-00123"
	sport := "Volleyball"
	course := "BS Kinesiology"
	year := "3rd Year"
	users := &stubUserRepo{
		ListByRoleFn: func(ctx context.Context, role entity.UserRole) ([]entity.User, error) {
			if role != entity.UserRoleStudent {
				t.Fatalf("report queried role %q", role)
			}
			return []entity.User{
				{
					ID: uuid.New(), FullName: "Jane Doe", Email: "jane@univ.edu",
					StudentID: &sid, Sport: &sport, Course: &course, YearLevel: &year,
					IsVerified: true,
				},
				{ID: uuid.New(), FullName: "John Roe", Email: "john@univ.edu"},
			}, nil
		},
	}
	clock := fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewReportService(users, clock)

	data, filename, err := svc.AthleteCSV(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if filename != "athletes_2025-03-10.csv" {
		t.Fatalf("filename %q", filename)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header plus 2", len(records))
	}
	if records[0][0] != "Full Name" || records[0][6] != "Status" {
		t.Fatalf("header wrong: %v", records[0])
	}
	if records[1][1] != sid || records[1][6] != "Verified" {
		t.Fatalf("verified athlete row wrong: %v", records[1])
	}
	if records[2][1] != "" || records[2][6] != "Pending" {
		t.Fatalf("pending athlete row wrong: %v", records[2])
	}
}
