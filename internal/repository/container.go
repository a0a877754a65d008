package repository

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Repos struct {
	Submission SubmissionRepo
	Draft      DraftRepo
	Audit      AuditRepo
}

func NewRepositories(db *gorm.DB, rdb *redis.Client, draftTTL time.Duration) *Repos {
	return &Repos{
		Submission: NewSubmissionRepo(db),
		Draft:      NewDraftRepo(rdb, draftTTL),
		Audit:      NewAuditRepo(db),
	}
}
