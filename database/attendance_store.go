package database

import (
	"time"

	"github.com/aaron24x7direct/facial-detection-backend/attendance"
	"github.com/aaron24x7direct/facial-detection-backend/models"
)

// AttendanceStore backs attendance.Service with the facial_detections table.
type AttendanceStore struct{}

func (AttendanceStore) TodayRecords(userID uint, day time.Time) ([]attendance.Record, error) {
	start, end := attendance.DayRange(day)

	var rows []models.FacialDetection
	if err := DB.
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, start, end).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]attendance.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, attendance.Record{
			ID:        r.ID,
			UserID:    r.UserID,
			SubjectID: r.SubjectID,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

func (AttendanceStore) Insert(rec *attendance.Record) error {
	row := models.FacialDetection{
		UserID:    rec.UserID,
		SubjectID: rec.SubjectID,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
	}
	if err := DB.Create(&row).Error; err != nil {
		return err
	}
	rec.ID = row.ID
	return nil
}

// EnrolledSubjects returns every subject across the user's student profiles,
// profile-major then subject-minor. Classification depends on this order:
// the first window match wins.
func EnrolledSubjects(userID uint) ([]attendance.Subject, error) {
	var subs []models.Subject
	if err := DB.
		Joins("JOIN student_infos ON student_infos.id = subjects.student_info_id").
		Where("student_infos.user_id = ?", userID).
		Order("subjects.student_info_id ASC, subjects.id ASC").
		Find(&subs).Error; err != nil {
		return nil, err
	}

	out := make([]attendance.Subject, 0, len(subs))
	for _, s := range subs {
		out = append(out, attendance.Subject{
			ID:          s.ID,
			SubjectCode: s.SubjectCode,
			Days:        s.Days,
			Time:        s.Time,
		})
	}
	return out, nil
}
