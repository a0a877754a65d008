package application

import (
	"context"
	"errors"
	"log"

	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/linskybing/client-intake/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrMissingRequired    = errors.New("full_name and work_email are required")
)

type SubmissionService struct {
	Repos *repository.Repos
}

func NewSubmissionService(repos *repository.Repos) *SubmissionService {
	return &SubmissionService{
		Repos: repos,
	}
}

// CreateSubmission normalizes the input and stores it with a fresh id and
// timestamp.
func (s *SubmissionService) CreateSubmission(ctx context.Context, input submission.CreateSubmissionInput, src submission.Source) (submission.Submission, error) {
	sub := buildSubmission(input)
	if sub.FullName == "" || sub.WorkEmail == "" {
		return submission.Submission{}, ErrMissingRequired
	}
	sub.SourceMeta = sourceMeta(src)

	if err := s.Repos.Submission.CreateSubmission(ctx, &sub); err != nil {
		log.Printf("[Submission] create failed: %v", err)
		return submission.Submission{}, err
	}
	log.Printf("[Submission] created %s via %s", sub.ID, sub.SourceMeta["channel"])
	return sub, nil
}

// ListSubmissions returns every submission, newest first.
func (s *SubmissionService) ListSubmissions(ctx context.Context) ([]submission.Submission, error) {
	subs, err := s.Repos.Submission.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []submission.Submission{}
	}
	return subs, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, id string) (submission.Submission, error) {
	sub, err := s.Repos.Submission.GetSubmissionByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return submission.Submission{}, ErrSubmissionNotFound
	}
	return sub, err
}

func (s *SubmissionService) DeleteSubmission(ctx context.Context, id string) error {
	err := s.Repos.Submission.DeleteSubmission(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSubmissionNotFound
	}
	if err == nil {
		log.Printf("[Submission] deleted %s", id)
	}
	return err
}

func buildSubmission(in submission.CreateSubmissionInput) submission.Submission {
	return submission.Submission{
		FullName:     sanitizeText(in.FullName),
		CompanyName:  optionalText(in.CompanyName),
		RolePosition: optionalText(in.RolePosition),
		WorkEmail:    sanitizeText(in.WorkEmail),
		Phone:        optionalText(in.Phone),
		WebsiteLinks: optionalText(in.WebsiteLinks),

		Services:      listText(in.Services),
		ServicesOther: optionalText(in.ServicesOther),

		VideoCountOption:       optionalText(in.VideoCountOption),
		VideoCustomRequirement: optionalText(in.VideoCustomRequirement),
		VideoUsagePlatforms:    listText(in.VideoUsagePlatforms),
		HasRawFootage:          optionalText(in.HasRawFootage),

		WebServices:         listText(in.WebServices),
		ChatbotPlatform:     optionalText(in.ChatbotPlatform),
		HasExistingWebsite:  optionalText(in.HasExistingWebsite),
		ExistingWebsiteLink: optionalText(in.ExistingWebsiteLink),
		WebsitePurpose:      optionalText(in.WebsitePurpose),

		BrandServices:  listText(in.BrandServices),
		BrandName:      optionalText(in.BrandName),
		BrandFilesLink: optionalText(in.BrandFilesLink),

		AdGoal:            optionalText(in.AdGoal),
		AdBudget:          optionalText(in.AdBudget),
		AdTargetLocations: optionalText(in.AdTargetLocations),

		FavoriteColors:    optionalText(in.FavoriteColors),
		BusinessModel:     optionalText(in.BusinessModel),
		FutureVision:      optionalText(in.FutureVision),
		InspirationBrands: optionalText(in.InspirationBrands),
		HowHeard:          optionalText(in.HowHeard),
	}
}

func sourceMeta(src submission.Source) datatypes.JSONMap {
	channel := src.Channel
	if channel == "" {
		channel = submission.ChannelWeb
	}
	meta := datatypes.JSONMap{"channel": channel}
	if src.UserAgent != "" {
		meta["user_agent"] = src.UserAgent
	}
	if src.ClientIP != "" {
		meta["client_ip"] = src.ClientIP
	}
	return meta
}
