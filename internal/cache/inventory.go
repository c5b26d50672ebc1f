package cache

import (
	"fmt"
	"time"
)

const (
	RankingKeyPrefix       = "ranking:%s"
	AcademicsCatalogKey    = "academics:all"
	CollegesByCoursePrefix = "academics:course:%d"
	AcceptingByExamPrefix  = "academics:exam:%d"
)

// Rankings change only through like writes and staleness is acceptable, so
// they get a bounded TTL. Academics catalog reads change only on admin writes
// and are kept until Redis evicts them (no TTL); there is deliberately no
// invalidation on write.
const (
	RankingTTL = 10 * time.Minute
	CatalogTTL = 0
)

func RankingKey(kind string) string {
	return fmt.Sprintf(RankingKeyPrefix, kind)
}

func CollegesByCourseKey(courseID uint) string {
	return fmt.Sprintf(CollegesByCoursePrefix, courseID)
}

func AcceptingByExamKey(examID uint) string {
	return fmt.Sprintf(AcceptingByExamPrefix, examID)
}
