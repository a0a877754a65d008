package repository

import (
	"context"

	"github.com/linskybing/client-intake/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	CreateSubmission(ctx context.Context, s *submission.Submission) error
	ListSubmissions(ctx context.Context) ([]submission.Submission, error)
	GetSubmissionByID(ctx context.Context, id string) (submission.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{
		db: db,
	}
}

func (r *DBSubmissionRepo) CreateSubmission(ctx context.Context, s *submission.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// ListSubmissions returns every submission, newest first.
func (r *DBSubmissionRepo) ListSubmissions(ctx context.Context) ([]submission.Submission, error) {
	var subs []submission.Submission
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) GetSubmissionByID(ctx context.Context, id string) (submission.Submission, error) {
	var s submission.Submission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return s, err
	}
	return s, nil
}

// DeleteSubmission removes one row and reports gorm.ErrRecordNotFound when
// nothing matched.
func (r *DBSubmissionRepo) DeleteSubmission(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&submission.Submission{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
