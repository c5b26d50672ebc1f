package models

import "time"

// EngagementKind names the storage mapping for one catalog entity kind so the
// generic thread/bookmark/like components can address the right tables.
type EngagementKind struct {
	Name         string // "course", "college", "exam"
	ParentColumn string // FK column on the engagement tables
}

var (
	CourseKind  = EngagementKind{Name: "course", ParentColumn: "course_id"}
	CollegeKind = EngagementKind{Name: "college", ParentColumn: "college_id"}
	ExamKind    = EngagementKind{Name: "exam", ParentColumn: "exam_id"}
)

// Visibility of a bookmark entry.
type Visibility string

const (
	VisibilityPrivate Visibility = "Private"
	VisibilityPublic  Visibility = "Public"
)

// Valid reports whether v is one of the declared visibility levels.
func (v Visibility) Valid() bool {
	return v == VisibilityPrivate || v == VisibilityPublic
}

// Thread posts. One table per parent entity kind, all with the same shape:
// title/body/author plus an optional self-reference forming a reply tree.
// ReplyToID carries ON DELETE CASCADE, so deleting a post removes its reply
// subtree. Deleting the parent entity or the author cascades the whole table.

type CoursePost struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Title     string       `gorm:"not null" json:"title"`
	Body      string       `gorm:"type:text;not null" json:"body"`
	UserID    uint         `gorm:"not null;index" json:"user_id"`
	User      User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CourseID  uint         `gorm:"not null;index" json:"course_id"`
	Course    Course       `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	ReplyToID *uint        `gorm:"index" json:"reply_to_id,omitempty"`
	Replies   []CoursePost `gorm:"foreignKey:ReplyToID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time    `json:"created_at"`
}

type CollegePost struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Title     string        `gorm:"not null" json:"title"`
	Body      string        `gorm:"type:text;not null" json:"body"`
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	User      User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CollegeID uint          `gorm:"not null;index" json:"college_id"`
	College   College       `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"-"`
	ReplyToID *uint         `gorm:"index" json:"reply_to_id,omitempty"`
	Replies   []CollegePost `gorm:"foreignKey:ReplyToID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time     `json:"created_at"`
}

type ExamPost struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Body      string     `gorm:"type:text;not null" json:"body"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ExamID    uint       `gorm:"not null;index" json:"exam_id"`
	Exam      Exam       `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"-"`
	ReplyToID *uint      `gorm:"index" json:"reply_to_id,omitempty"`
	Replies   []ExamPost `gorm:"foreignKey:ReplyToID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

func (p CoursePost) PostID() uint    { return p.ID }
func (p CoursePost) AuthorID() uint  { return p.UserID }
func (p CoursePost) ParentID() uint  { return p.CourseID }
func (p CollegePost) PostID() uint   { return p.ID }
func (p CollegePost) AuthorID() uint { return p.UserID }
func (p CollegePost) ParentID() uint { return p.CollegeID }
func (p ExamPost) PostID() uint      { return p.ID }
func (p ExamPost) AuthorID() uint    { return p.UserID }
func (p ExamPost) ParentID() uint    { return p.ExamID }

func NewCoursePost(courseID, userID uint, title, body string, replyTo *uint) *CoursePost {
	return &CoursePost{Title: title, Body: body, UserID: userID, CourseID: courseID, ReplyToID: replyTo}
}

func NewCollegePost(collegeID, userID uint, title, body string, replyTo *uint) *CollegePost {
	return &CollegePost{Title: title, Body: body, UserID: userID, CollegeID: collegeID, ReplyToID: replyTo}
}

func NewExamPost(examID, userID uint, title, body string, replyTo *uint) *ExamPost {
	return &ExamPost{Title: title, Body: body, UserID: userID, ExamID: examID, ReplyToID: replyTo}
}

// Bookmark entries. A user may bookmark a given entity at most once, enforced
// by the composite unique index.

type CourseBookmark struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_course_bookmark" json:"user_id"`
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CourseID   uint       `gorm:"not null;uniqueIndex:idx_course_bookmark" json:"course_id"`
	Course     Course     `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Visibility Visibility `gorm:"not null;default:Private" json:"visibility"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CollegeBookmark struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_college_bookmark" json:"user_id"`
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CollegeID  uint       `gorm:"not null;uniqueIndex:idx_college_bookmark" json:"college_id"`
	College    College    `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"-"`
	Visibility Visibility `gorm:"not null;default:Private" json:"visibility"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ExamBookmark struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_exam_bookmark" json:"user_id"`
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ExamID     uint       `gorm:"not null;uniqueIndex:idx_exam_bookmark" json:"exam_id"`
	Exam       Exam       `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"-"`
	Visibility Visibility `gorm:"not null;default:Private" json:"visibility"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewCourseBookmark(courseID, userID uint, visibility Visibility) *CourseBookmark {
	return &CourseBookmark{UserID: userID, CourseID: courseID, Visibility: visibility}
}

func NewCollegeBookmark(collegeID, userID uint, visibility Visibility) *CollegeBookmark {
	return &CollegeBookmark{UserID: userID, CollegeID: collegeID, Visibility: visibility}
}

func NewExamBookmark(examID, userID uint, visibility Visibility) *ExamBookmark {
	return &ExamBookmark{UserID: userID, ExamID: examID, Visibility: visibility}
}

// Like records. The composite unique index is the idempotence gate for the
// parent entity's likes counter.

type CourseLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_course_like" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CourseID  uint      `gorm:"not null;uniqueIndex:idx_course_like" json:"course_id"`
	Course    Course    `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type CollegeLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_college_like" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CollegeID uint      `gorm:"not null;uniqueIndex:idx_college_like" json:"college_id"`
	College   College   `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type ExamLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_exam_like" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ExamID    uint      `gorm:"not null;uniqueIndex:idx_exam_like" json:"exam_id"`
	Exam      Exam      `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCourseLike(courseID, userID uint) *CourseLike {
	return &CourseLike{UserID: userID, CourseID: courseID}
}

func NewCollegeLike(collegeID, userID uint) *CollegeLike {
	return &CollegeLike{UserID: userID, CollegeID: collegeID}
}

func NewExamLike(examID, userID uint) *ExamLike {
	return &ExamLike{UserID: userID, ExamID: examID}
}
