package seed

import (
	"fmt"
	"time"

	"academicworld/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

func init() {
	gofakeit.Seed(time.Now().UnixNano())
}

var courseTypes = []string{
	models.CourseTypeUG,
	models.CourseTypePG,
	models.CourseTypeIntegrated,
}

var courseSubjects = []string{
	"Computer Science", "Mechanical Engineering", "Economics", "Physics",
	"Mathematics", "Biotechnology", "Civil Engineering", "Data Science",
	"Electrical Engineering", "Chemistry", "Architecture", "Design",
}

// FakeUser builds an unsaved user with a pre-hashed password.
func FakeUser(hashedPassword string) *models.User {
	return &models.User{
		Name:     gofakeit.Name(),
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: hashedPassword,
	}
}

// FakeCourse builds an unsaved course. The index keeps names unique across a
// seeding run.
func FakeCourse(i int) *models.Course {
	return &models.Course{
		Name:        fmt.Sprintf("%s %d", gofakeit.RandomString(courseSubjects), i),
		Duration:    gofakeit.Number(1, 5),
		Type:        gofakeit.RandomString(courseTypes),
		Eligibility: gofakeit.Sentence(8),
	}
}

// FakeCollege builds an unsaved college. Rank doubles as the uniqueness knob.
func FakeCollege(rank int) *models.College {
	city := gofakeit.City()
	return &models.College{
		Name:    fmt.Sprintf("%s Institute of %s", city, gofakeit.RandomString(courseSubjects)),
		Rank:    rank,
		Email:   gofakeit.Email(),
		City:    city,
		State:   gofakeit.State(),
		Country: gofakeit.Country(),
		Address: gofakeit.Street(),
	}
}

// FakeExam builds an unsaved exam.
func FakeExam(i int) *models.Exam {
	return &models.Exam{
		Name:        fmt.Sprintf("%s Entrance Test %d", gofakeit.RandomString(courseSubjects), i),
		Eligibility: gofakeit.Sentence(8),
		Syllabus:    gofakeit.Paragraph(1, 3, 8, "\n"),
		Fee:         float64(gofakeit.Number(50, 500)),
	}
}
