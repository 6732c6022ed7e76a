package models

import "time"

// StudentInfo is one enrollment profile confirmed from a scanned registration
// form. A user holds one per registered term.
type StudentInfo struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	Campus        string `json:"campus" gorm:"size:100;not null"`
	AcademicTerm  string `json:"academic_term" gorm:"size:50;not null"`
	AcademicYear  string `json:"academic_year" gorm:"size:20;not null"`
	StudentNumber string `json:"student_number" gorm:"size:30;not null"`
	LRN           string `json:"lrn" gorm:"column:lrn;size:30;not null"`
	YearStatus    string `json:"year_status" gorm:"size:50;not null"`
	Fullname      string `json:"fullname" gorm:"size:120;not null"`
	Sex           string `json:"sex" gorm:"size:10;not null"`
	Course        string `json:"course" gorm:"size:100;not null"`
	Major         string `json:"major" gorm:"size:100"`
	Contact       string `json:"contact" gorm:"size:30;not null"`
	HomeAddress   string `json:"home_address" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User     *User     `json:"-" gorm:"foreignKey:UserID"`
	Subjects []Subject `json:"subjects,omitempty" gorm:"foreignKey:StudentInfoID;constraint:OnDelete:CASCADE"`
}

// Subject is one enrolled subject under a student profile. Immutable after
// enrollment: attendance classification reads it, nothing edits it.
type Subject struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	StudentInfoID uint   `json:"student_info_id" gorm:"index;not null"`
	SubjectCode   string `json:"subject_code" gorm:"size:30;not null"`
	Section       string `json:"section" gorm:"size:30;not null"`
	LecUnits      int    `json:"lec_units" gorm:"not null"`
	LabUnits      int    `json:"lab_units" gorm:"not null"`
	Days          string `json:"days" gorm:"size:10;not null"`  // packed day letters, e.g. "MWF"
	Time          string `json:"time" gorm:"size:40;not null"`  // "h:mm AM/PM - h:mm AM/PM"
	Room          string `json:"room" gorm:"size:50;not null"`

	StudentInfo *StudentInfo      `json:"-" gorm:"foreignKey:StudentInfoID"`
	Facials     []FacialDetection `json:"-" gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
}
