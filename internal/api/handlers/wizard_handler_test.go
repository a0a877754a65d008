package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/client-intake/internal/api/handlers"
	"github.com/linskybing/client-intake/internal/application"
	"github.com/linskybing/client-intake/internal/domain/questionnaire"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/linskybing/client-intake/internal/repository"
	"github.com/linskybing/client-intake/internal/testutils"
	"github.com/linskybing/client-intake/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupWizardRouter keeps drafts in a map so a session survives across requests.
func setupWizardRouter(t *testing.T) (*gin.Engine, *handlerMocks, map[string]questionnaire.Draft) {
	r, m := setupRouter(t)
	drafts := map[string]questionnaire.Draft{}

	m.draft.EXPECT().GetDraft(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, id string) (questionnaire.Draft, error) {
			d, ok := drafts[id]
			if !ok {
				return questionnaire.Draft{}, repository.ErrDraftNotFound
			}
			return d, nil
		})
	m.draft.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, d questionnaire.Draft) error {
			drafts[d.ID] = d
			return nil
		})
	m.draft.EXPECT().DeleteDraft(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, id string) error {
			delete(drafts, id)
			return nil
		})
	return r, m, drafts
}

func startDraft(t *testing.T, r *gin.Engine) application.WizardView {
	t.Helper()
	w := testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: "/api/wizard"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view application.WizardView
	testutils.DecodeJSON(t, w, &view)
	return view
}

func TestWizardHandler_StartAndGet(t *testing.T) {
	r, _, _ := setupWizardRouter(t)
	view := startDraft(t, r)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, questionnaire.StepBasicInfo, view.CurrentStep)
	assert.Equal(t, "Basic Information", view.Title)

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodGet, Path: "/api/wizard/" + view.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.Do(t, r, testutils.Request{Method: http.MethodGet, Path: "/api/wizard/unknown"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Draft not found"}`, w.Body.String())
}

func TestWizardHandler_NextBlockedReturnsValidation(t *testing.T) {
	r, _, _ := setupWizardRouter(t)
	view := startDraft(t, r)

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: "/api/wizard/" + view.ID + "/next"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body handlers.ValidationResponse
	testutils.DecodeJSON(t, w, &body)
	assert.Equal(t, "Required fields missing", body.Error)
	assert.Equal(t, "Please fill in all required fields.", body.Details)
	assert.Equal(t, questionnaire.StepBasicInfo, body.View.CurrentStep)
}

func TestWizardHandler_PatchRejected(t *testing.T) {
	r, _, _ := setupWizardRouter(t)
	view := startDraft(t, r)

	w := testutils.Do(t, r, testutils.Request{
		Method: http.MethodPatch,
		Path:   "/api/wizard/" + view.ID,
		Body:   `[{"op":"add","path":"/nickname","value":"J"}]`,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body response.ErrorResponse
	testutils.DecodeJSON(t, w, &body)
	assert.Equal(t, "Invalid input", body.Error)
}

func TestWizardHandler_ToggleErrors(t *testing.T) {
	r, _, _ := setupWizardRouter(t)
	view := startDraft(t, r)
	path := "/api/wizard/" + view.ID + "/toggle"

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: path, Body: map[string]string{"field": "services"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: path, Body: handlers.ToggleInput{Field: "full_name", Value: "x"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: path, Body: handlers.ToggleInput{Field: "nickname", Value: "x"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWizardHandler_SubmitNotFinal(t *testing.T) {
	r, _, _ := setupWizardRouter(t)
	view := startDraft(t, r)

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: "/api/wizard/" + view.ID + "/submit"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func walkToFinal(t *testing.T, r *gin.Engine) string {
	t.Helper()
	view := startDraft(t, r)
	base := "/api/wizard/" + view.ID

	w := testutils.Do(t, r, testutils.Request{
		Method: http.MethodPatch,
		Path:   base,
		Body: `[
			{"op":"replace","path":"/full_name","value":"Jane"},
			{"op":"replace","path":"/work_email","value":"jane@acme.com"}
		]`,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: base + "/next"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutils.Do(t, r, testutils.Request{
		Method: http.MethodPost,
		Path:   base + "/toggle",
		Body:   handlers.ToggleInput{Field: questionnaire.FieldServices, Value: questionnaire.ServiceMetaAds},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, want := range []int{questionnaire.StepMetaAds, questionnaire.StepCreativeDirection} {
		w = testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: base + "/next"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var v application.WizardView
		testutils.DecodeJSON(t, w, &v)
		require.Equal(t, want, v.CurrentStep)
	}

	w = testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: base + "/back"})
	require.Equal(t, http.StatusOK, w.Code)
	w = testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: base + "/next"})
	require.Equal(t, http.StatusOK, w.Code)
	return view.ID
}

func TestWizardHandler_SubmitSuccess(t *testing.T) {
	r, m, drafts := setupWizardRouter(t)
	id := walkToFinal(t, r)

	m.submission.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *submission.Submission) error {
			s.ID = "sub-9"
			return nil
		})

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: "/api/wizard/" + id + "/submit"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got submission.Submission
	testutils.DecodeJSON(t, w, &got)
	assert.Equal(t, "sub-9", got.ID)
	assert.Equal(t, questionnaire.ServiceMetaAds, got.Services)
	assert.Equal(t, submission.ChannelWizard, got.SourceMeta["channel"])
	assert.NotContains(t, drafts, id)
}

func TestWizardHandler_SubmitStoreFailure(t *testing.T) {
	r, m, drafts := setupWizardRouter(t)
	id := walkToFinal(t, r)

	m.submission.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodPost, Path: "/api/wizard/" + id + "/submit"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body response.ErrorResponse
	testutils.DecodeJSON(t, w, &body)
	assert.Equal(t, "Failed to create submission", body.Error)
	assert.Contains(t, drafts, id)
}
