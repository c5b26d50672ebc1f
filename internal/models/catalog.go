package models

import "time"

// Course types accepted on creation.
const (
	CourseTypeUG         = "UG"
	CourseTypePG         = "PG"
	CourseTypeIntegrated = "Integrated"
)

// Course is a catalog entity. Likes is a denormalized counter kept in sync
// with course_likes rows inside a single transaction.
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Duration    int       `gorm:"not null" json:"duration"`
	Type        string    `gorm:"not null" json:"type"`
	Eligibility string    `gorm:"not null" json:"eligibility"`
	Likes       int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// College is a catalog entity. Both name and rank are unique.
type College struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Rank      int       `gorm:"uniqueIndex;not null" json:"rank"`
	Email     string    `json:"email"`
	City      string    `gorm:"not null" json:"city"`
	State     string    `gorm:"not null" json:"state"`
	Country   string    `gorm:"not null" json:"country"`
	Address   string    `gorm:"not null" json:"address"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Exam is a catalog entity.
type Exam struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Eligibility string    `gorm:"not null" json:"eligibility"`
	Syllabus    string    `gorm:"type:text;not null" json:"syllabus"`
	Fee         float64   `gorm:"not null" json:"fee"`
	Likes       int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CatalogEntity is the capability set the generic engagement components need
// from a parent entity: identity plus the denormalized like counter.
type CatalogEntity interface {
	EntityID() uint
	LikeCount() int
}

func (c Course) EntityID() uint  { return c.ID }
func (c Course) LikeCount() int  { return c.Likes }
func (c College) EntityID() uint { return c.ID }
func (c College) LikeCount() int { return c.Likes }
func (e Exam) EntityID() uint    { return e.ID }
func (e Exam) LikeCount() int    { return e.Likes }
