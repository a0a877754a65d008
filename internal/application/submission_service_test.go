package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/linskybing/client-intake/internal/repository"
	"github.com/linskybing/client-intake/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupSubmissionServiceMocks(t *testing.T) (*SubmissionService, *mock.MockSubmissionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSubmission := mock.NewMockSubmissionRepo(ctrl)
	repos := &repository.Repos{
		Submission: mockSubmission,
	}
	return NewSubmissionService(repos), mockSubmission
}

func ptrString(s string) *string { return &s }

// --------------------- CreateSubmission ---------------------
func TestCreateSubmission_Normalizes(t *testing.T) {
	svc, mockSubmission := setupSubmissionServiceMocks(t)

	input := submission.CreateSubmissionInput{
		FullName:    "  <b>Jane</b> Doe ",
		WorkEmail:   "jane@acme.com",
		Phone:       ptrString("   "),
		CompanyName: ptrString("Ads & Co"),
		Services:    ptrString("Video Editing; Motion Graphics"),
		AdGoal:      ptrString("<script>alert(1)</script>Leads"),
	}

	var stored *submission.Submission
	mockSubmission.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *submission.Submission) error {
			s.ID = "generated"
			stored = s
			return nil
		})

	sub, err := svc.CreateSubmission(context.Background(), input, submission.Source{UserAgent: "curl/8", ClientIP: "10.0.0.1"})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "generated", sub.ID)
	assert.Equal(t, "Jane Doe", sub.FullName)
	assert.Nil(t, sub.Phone, "blank phone becomes null")
	assert.Equal(t, "Ads & Co", *sub.CompanyName)
	assert.Equal(t, "Video Editing; Motion Graphics", sub.Services)
	assert.Equal(t, "", sub.WebServices, "missing multi-select becomes empty string")
	assert.Equal(t, "", sub.BrandServices)
	assert.Equal(t, "Leads", *sub.AdGoal)
	assert.Nil(t, sub.HowHeard)
	assert.Equal(t, "web", sub.SourceMeta["channel"])
	assert.Equal(t, "curl/8", sub.SourceMeta["user_agent"])
	assert.Equal(t, "10.0.0.1", sub.SourceMeta["client_ip"])
}

func TestCreateSubmission_EntityEncodedMarkup(t *testing.T) {
	svc, mockSubmission := setupSubmissionServiceMocks(t)
	mockSubmission.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(nil)

	sub, err := svc.CreateSubmission(context.Background(), submission.CreateSubmissionInput{
		FullName:       "Jane &lt;script&gt;alert(1)&lt;/script&gt;",
		WorkEmail:      "jane@acme.com",
		HowHeard:       ptrString("&lt;img src=x onerror=alert(1)&gt;Friend"),
		BusinessModel:  ptrString("&amp;lt;b&amp;gt;Retail&amp;lt;/b&amp;gt;"),
		FavoriteColors: ptrString("&lt;img src=x onerror=alert(1)&gt;"),
	}, submission.Source{})
	require.NoError(t, err)

	assert.Equal(t, "Jane", sub.FullName)
	require.NotNil(t, sub.HowHeard)
	assert.Equal(t, "Friend", *sub.HowHeard)
	require.NotNil(t, sub.BusinessModel)
	assert.Equal(t, "Retail", *sub.BusinessModel)
	assert.Nil(t, sub.FavoriteColors, "an answer that was only markup becomes null")
}

func TestSanitizeText(t *testing.T) {
	cases := map[string]string{
		"  plain  ":                                 "plain",
		"Ads & Co":                                  "Ads & Co",
		"Tom &amp; Jerry":                           "Tom & Jerry",
		`say "hi"`:                                  `say "hi"`,
		"1 < 2":                                     "1 < 2",
		"<b>bold</b>":                               "bold",
		"&lt;script&gt;x&lt;/script&gt;":            "",
		"&lt;a href=javascript:x&gt;link&lt;/a&gt;": "link",
	}
	for in, want := range cases {
		got := sanitizeText(in)
		assert.Equal(t, want, got, in)
		assert.NotContains(t, got, "<script", in)
	}
}

func TestCreateSubmission_MissingRequired(t *testing.T) {
	svc, _ := setupSubmissionServiceMocks(t)

	_, err := svc.CreateSubmission(context.Background(), submission.CreateSubmissionInput{
		FullName:  "<i></i>",
		WorkEmail: "a@b.com",
	}, submission.Source{})
	assert.ErrorIs(t, err, ErrMissingRequired)
}

func TestCreateSubmission_RepoError(t *testing.T) {
	svc, mockSubmission := setupSubmissionServiceMocks(t)

	mockSubmission.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := svc.CreateSubmission(context.Background(), submission.CreateSubmissionInput{
		FullName:  "Jane",
		WorkEmail: "a@b.com",
	}, submission.Source{})
	assert.EqualError(t, err, "db down")
}

// --------------------- List / Get / Delete ---------------------
func TestListSubmissions_EmptyIsNotNil(t *testing.T) {
	svc, mockSubmission := setupSubmissionServiceMocks(t)

	mockSubmission.EXPECT().ListSubmissions(gomock.Any()).Return(nil, nil)

	subs, err := svc.ListSubmissions(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)
}

func TestGetSubmission_NotFound(t *testing.T) {
	svc, mockSubmission := setupSubmissionServiceMocks(t)

	mockSubmission.EXPECT().GetSubmissionByID(gomock.Any(), "missing").Return(submission.Submission{}, gorm.ErrRecordNotFound)

	_, err := svc.GetSubmission(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestGetSubmission_Success(t *testing.T) {
	svc, mockSubmission := setupSubmissionServiceMocks(t)

	mockSubmission.EXPECT().GetSubmissionByID(gomock.Any(), "s1").Return(submission.Submission{ID: "s1", FullName: "Jane"}, nil)

	sub, err := svc.GetSubmission(context.Background(), "s1")
	assert.NoError(t, err)
	assert.Equal(t, "Jane", sub.FullName)
}

func TestDeleteSubmission(t *testing.T) {
	svc, mockSubmission := setupSubmissionServiceMocks(t)

	mockSubmission.EXPECT().DeleteSubmission(gomock.Any(), "s1").Return(nil)
	mockSubmission.EXPECT().DeleteSubmission(gomock.Any(), "s1").Return(gorm.ErrRecordNotFound)

	assert.NoError(t, svc.DeleteSubmission(context.Background(), "s1"))
	assert.ErrorIs(t, svc.DeleteSubmission(context.Background(), "s1"), ErrSubmissionNotFound)
}
