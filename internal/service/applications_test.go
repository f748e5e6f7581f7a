package service

import (
	"application-service/internal/catalog"
	"application-service/internal/decision"
	"application-service/internal/repository"
	"application-service/internal/repository/model"
	"application-service/internal/wizard"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type handlerMocks struct {
	wiz  *wizard.MockWizard
	proc *decision.MockProcessor
	repo *repository.MockRepository
}

func newTestRouter(t *testing.T) (*gin.Engine, handlerMocks) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mocks := handlerMocks{
		wiz:  wizard.NewMockWizard(ctrl),
		proc: decision.NewMockProcessor(ctrl),
		repo: repository.NewMockRepository(ctrl),
	}

	router := gin.New()
	handler := newApplicationHandler(zap.NewNop().Sugar(), testCatalog(t), mocks.wiz, mocks.proc, mocks.repo)
	handler.registerRoutes(router)
	return router, mocks
}

func testCatalog(t *testing.T) *catalog.Catalog {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	doc := `roles:
  mod:
    displayName: Moderator
    permission: group.mod
    questions:
      - "Why do you want to be a moderator?"
  retired:
    displayName: Retired
    permission: group.retired
    enabled: false
`
	assert.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	ctl, err := catalog.Load(zap.NewNop().Sugar(), path)
	assert.NoError(t, err)
	return ctl
}

func doRequest(router *gin.Engine, method string, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func testDraft(playerId uuid.UUID) *model.Draft {
	return &model.Draft{
		PlayerId:   playerId,
		PlayerName: "Steve",
		RoleId:     "mod",
		Questions:  []string{"Why do you want to be a moderator?"},
		Answers:    []string{},
		Status:     model.StatusInProgress,
		StartedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestHandler_Start(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()

	draft := testDraft(playerId)
	mocks.wiz.EXPECT().Start(gomock.Any(), playerId, "Steve", "mod").
		Return(&wizard.StepResult{Draft: draft, Question: draft.Questions[0]}, nil)

	recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/applications/%s/start", playerId),
		gin.H{"playerName": "Steve", "roleId": "mod"})

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var resp stepResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, draft.Questions[0], resp.Question)
	assert.False(t, resp.Pending)
	assert.Equal(t, playerId, resp.Draft.PlayerId)
}

func TestHandler_Start_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid role", wizard.InvalidRoleError, http.StatusNotFound},
		{"permission denied", wizard.PermissionDeniedError, http.StatusForbidden},
		{"already active", repository.AlreadyActiveError, http.StatusConflict},
		{"repository failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			playerId := uuid.New()

			mocks.wiz.EXPECT().Start(gomock.Any(), playerId, "Steve", "mod").Return(nil, test.err)

			recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/applications/%s/start", playerId),
				gin.H{"playerName": "Steve", "roleId": "mod"})

			assert.Equal(t, test.wantStatus, recorder.Code)
		})
	}
}

func TestHandler_Start_InvalidPlayerId(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/applications/not-a-uuid/start",
		gin.H{"playerName": "Steve", "roleId": "mod"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_Start_MissingBodyFields(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/applications/%s/start", uuid.New()),
		gin.H{"playerName": "Steve"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_SubmitAnswer(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()

	draft := testDraft(playerId)
	draft.Answers = []string{"to help"}
	draft.Status = model.StatusPending
	mocks.wiz.EXPECT().SubmitAnswer(gomock.Any(), playerId, "to help").
		Return(&wizard.StepResult{Draft: draft, Pending: true}, nil)

	recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/applications/%s/answers", playerId),
		gin.H{"answer": "to help"})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp stepResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Pending)
	assert.Empty(t, resp.Question)
}

func TestHandler_SubmitAnswer_NotAnswering(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()

	mocks.wiz.EXPECT().SubmitAnswer(gomock.Any(), playerId, "hello").
		Return(nil, wizard.NotAnsweringError)

	recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/applications/%s/answers", playerId),
		gin.H{"answer": "hello"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_SubmitAnswer_AlreadyComplete(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()

	mocks.wiz.EXPECT().SubmitAnswer(gomock.Any(), playerId, "late").
		Return(nil, repository.AlreadyCompleteError)

	recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/applications/%s/answers", playerId),
		gin.H{"answer": "late"})

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_Resume(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()

	draft := testDraft(playerId)
	mocks.wiz.EXPECT().Resume(gomock.Any(), playerId).
		Return(&wizard.StepResult{Draft: draft, Question: draft.Questions[0]}, nil)

	recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/applications/%s/resume", playerId), nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_Cancel(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()

	mocks.wiz.EXPECT().Cancel(gomock.Any(), playerId).Return(nil)

	recorder := doRequest(router, http.MethodDelete, fmt.Sprintf("/applications/%s", playerId), nil)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_Cancel_AlreadySubmitted(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()

	mocks.wiz.EXPECT().Cancel(gomock.Any(), playerId).Return(wizard.AlreadySubmittedError)

	recorder := doRequest(router, http.MethodDelete, fmt.Sprintf("/applications/%s", playerId), nil)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_Status(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()

	draft := testDraft(playerId)
	mocks.wiz.EXPECT().Status(gomock.Any(), playerId).Return(draft, nil)

	recorder := doRequest(router, http.MethodGet, fmt.Sprintf("/applications/%s", playerId), nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var got model.Draft
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, draft.RoleId, got.RoleId)
	assert.Equal(t, draft.PlayerName, got.PlayerName)
}

func TestHandler_Status_NoDraft(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()

	mocks.wiz.EXPECT().Status(gomock.Any(), playerId).Return(nil, repository.NoActiveDraftError)

	recorder := doRequest(router, http.MethodGet, fmt.Sprintf("/applications/%s", playerId), nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_ListPending(t *testing.T) {
	router, mocks := newTestRouter(t)

	drafts := []*model.Draft{testDraft(uuid.New()), testDraft(uuid.New())}
	mocks.proc.EXPECT().Pending(gomock.Any()).Return(drafts, nil)

	recorder := doRequest(router, http.MethodGet, "/applications/pending", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var got []*model.Draft
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestHandler_ListPending_Empty(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.proc.EXPECT().Pending(gomock.Any()).Return(nil, nil)

	recorder := doRequest(router, http.MethodGet, "/applications/pending", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]", recorder.Body.String())
}

func TestHandler_Accept(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()
	reviewerId := uuid.New()

	draft := testDraft(playerId)
	draft.Status = model.StatusPending
	mocks.proc.EXPECT().Accept(gomock.Any(), playerId, reviewerId).Return(draft, nil)

	recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/applications/%s/accept", playerId),
		gin.H{"reviewerId": reviewerId.String()})

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_Accept_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()
	reviewerId := uuid.New()

	mocks.proc.EXPECT().Accept(gomock.Any(), playerId, reviewerId).Return(nil, decision.NotFoundError)

	recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/applications/%s/accept", playerId),
		gin.H{"reviewerId": reviewerId.String()})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_Accept_InvalidReviewer(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/applications/%s/accept", uuid.New()),
		gin.H{"reviewerId": "not-a-uuid"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_Deny(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()
	reviewerId := uuid.New()

	draft := testDraft(playerId)
	draft.Status = model.StatusPending
	mocks.proc.EXPECT().Deny(gomock.Any(), playerId, reviewerId, "too new").Return(draft, nil)

	recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/applications/%s/deny", playerId),
		gin.H{"reviewerId": reviewerId.String(), "reason": "too new"})

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_History(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()

	reason := "too new"
	ledger := &model.Ledger{
		PlayerId: playerId,
		Entries: []model.LedgerEntry{
			{RoleId: "mod", Status: model.StatusDenied, Timestamp: time.Now().UTC(), Reason: &reason},
			{RoleId: "mod", Status: model.StatusAccepted, Timestamp: time.Now().UTC()},
		},
	}
	mocks.repo.EXPECT().GetLedger(gomock.Any(), playerId).Return(ledger, nil)

	recorder := doRequest(router, http.MethodGet, fmt.Sprintf("/players/%s/history", playerId), nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var got []model.LedgerEntry
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "too new", *got[0].Reason)
}

func TestHandler_ListRoles(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/roles", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	// the disabled role is filtered out
	var got []roleResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "mod", got[0].Id)
	assert.Equal(t, "Moderator", got[0].DisplayName)
	assert.Equal(t, []string{"Why do you want to be a moderator?"}, got[0].Questions)
}

func TestHandler_Disconnect(t *testing.T) {
	router, mocks := newTestRouter(t)
	playerId := uuid.New()

	mocks.wiz.EXPECT().Forget(playerId)

	recorder := doRequest(router, http.MethodPost, fmt.Sprintf("/players/%s/disconnect", playerId), nil)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_ReloadCatalog(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/catalog/reload", nil)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
