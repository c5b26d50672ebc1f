// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"academicworld/internal/config"
	"academicworld/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumCourses  int
	NumColleges int
	NumExams    int
}

// EnsureAdmin guarantees an admin account exists with the configured
// credentials. Idempotent: an existing user with the admin username is
// promoted rather than duplicated.
func EnsureAdmin(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var admin models.User
		findErr := tx.Where("username = ?", cfg.AdminUsername).First(&admin).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			admin = models.User{
				Name:     "Administrator",
				Username: cfg.AdminUsername,
				Email:    cfg.AdminUsername + "@academicworld.local",
				Password: string(hashed),
				IsAdmin:  true,
			}
			return tx.Create(&admin).Error
		case findErr != nil:
			return findErr
		default:
			return tx.Model(&admin).UpdateColumn("is_admin", true).Error
		}
	})
}

// Seed populates the database with fake catalog data plus users, posts,
// bookmarks and likes, for development environments.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("seeding %d users, %d courses, %d colleges, %d exams...",
		opts.NumUsers, opts.NumCourses, opts.NumColleges, opts.NumExams)

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}

	var courses []*models.Course
	for i := 1; i <= opts.NumCourses; i++ {
		course := FakeCourse(i)
		if err := db.Create(course).Error; err != nil {
			return fmt.Errorf("failed to create course: %w", err)
		}
		courses = append(courses, course)
	}

	var colleges []*models.College
	for i := 1; i <= opts.NumColleges; i++ {
		college := FakeCollege(i)
		if err := db.Create(college).Error; err != nil {
			return fmt.Errorf("failed to create college: %w", err)
		}
		colleges = append(colleges, college)
	}

	var exams []*models.Exam
	for i := 1; i <= opts.NumExams; i++ {
		exam := FakeExam(i)
		if err := db.Create(exam).Error; err != nil {
			return fmt.Errorf("failed to create exam: %w", err)
		}
		exams = append(exams, exam)
	}

	if err := linkAcademics(db, courses, colleges, exams); err != nil {
		return err
	}
	if err := createEngagement(db, users, courses); err != nil {
		return err
	}

	log.Println("seeding complete")
	return nil
}

func createUsers(db *gorm.DB, n int) ([]*models.User, error) {
	// One bcrypt round for everyone; seeding thousands of distinct hashes is
	// pointlessly slow.
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	var users []*models.User
	for i := 0; i < n; i++ {
		user := FakeUser(string(hashed))
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func linkAcademics(db *gorm.DB, courses []*models.Course, colleges []*models.College, exams []*models.Exam) error {
	if len(courses) == 0 || len(colleges) == 0 || len(exams) == 0 {
		return nil
	}
	for _, college := range colleges {
		for _, course := range courses {
			if rand.Intn(3) != 0 {
				continue
			}
			rec := &models.Academics{
				CourseID:   course.ID,
				CollegeID:  college.ID,
				ExamID:     exams[rand.Intn(len(exams))].ID,
				CourseFee:  float64(gofakeit.Number(1000, 50000)),
				CutoffRank: gofakeit.Number(1, 10000),
			}
			if err := db.Create(rec).Error; err != nil {
				return fmt.Errorf("failed to link academics: %w", err)
			}
		}
	}
	return nil
}

func createEngagement(db *gorm.DB, users []*models.User, courses []*models.Course) error {
	for _, user := range users {
		for _, course := range courses {
			if rand.Intn(4) != 0 {
				continue
			}
			post := models.NewCoursePost(course.ID, user.ID,
				gofakeit.Sentence(5), gofakeit.Paragraph(1, 3, 5, "\n"), nil)
			if err := db.Create(post).Error; err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}

			if rand.Intn(2) == 0 {
				visibility := models.VisibilityPrivate
				if rand.Intn(2) == 0 {
					visibility = models.VisibilityPublic
				}
				bookmark := models.NewCourseBookmark(course.ID, user.ID, visibility)
				if err := db.Create(bookmark).Error; err != nil {
					return fmt.Errorf("failed to create bookmark: %w", err)
				}
			}

			if rand.Intn(2) == 0 {
				if err := db.Transaction(func(tx *gorm.DB) error {
					if err := tx.Create(models.NewCourseLike(course.ID, user.ID)).Error; err != nil {
						return err
					}
					return tx.Model(&models.Course{}).
						Where("id = ?", course.ID).
						UpdateColumn("likes", gorm.Expr("likes + 1")).Error
				}); err != nil {
					return fmt.Errorf("failed to create like: %w", err)
				}
			}
		}
	}
	return nil
}
