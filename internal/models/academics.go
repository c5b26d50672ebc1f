package models

// Academics links one Course, one College and one Exam with admission
// metadata. The (course_id, college_id, exam_id) triple is unique: at most
// one admission record exists per combination. Deleting any of the three
// parents cascades here.
type Academics struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	CourseFee  float64 `gorm:"not null" json:"course_fee"`
	CutoffRank int     `gorm:"not null" json:"cutoff_rank"`
	CourseID   uint    `gorm:"not null;uniqueIndex:idx_academics_triple" json:"course_id"`
	CollegeID  uint    `gorm:"not null;uniqueIndex:idx_academics_triple" json:"college_id"`
	ExamID     uint    `gorm:"not null;uniqueIndex:idx_academics_triple" json:"exam_id"`
	Course     Course  `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"course,omitempty"`
	College    College `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"college,omitempty"`
	Exam       Exam    `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"exam,omitempty"`
}

// CollegeCourseRef is the flat projection returned when resolving which
// colleges and courses accept a given exam.
type CollegeCourseRef struct {
	CollegeID   uint   `json:"college_id"`
	CollegeName string `json:"college_name"`
	CourseID    uint   `json:"course_id"`
	CourseName  string `json:"course_name"`
}
