package service

import (
	"application-service/internal/catalog"
	"application-service/internal/decision"
	"application-service/internal/repository"
	"application-service/internal/repository/model"
	"application-service/internal/wizard"
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type applicationHandler struct {
	logger *zap.SugaredLogger

	catalog *catalog.Catalog
	wiz     wizard.Wizard
	proc    decision.Processor
	repo    repository.Repository
}

func newApplicationHandler(logger *zap.SugaredLogger, ctl *catalog.Catalog, wiz wizard.Wizard,
	proc decision.Processor, repo repository.Repository) *applicationHandler {

	return &applicationHandler{
		logger:  logger,
		catalog: ctl,
		wiz:     wiz,
		proc:    proc,
		repo:    repo,
	}
}

func (h *applicationHandler) registerRoutes(router *gin.Engine) {
	router.GET("/roles", h.listRoles)

	router.GET("/applications/pending", h.listPending)

	router.POST("/applications/:player/start", h.start)
	router.POST("/applications/:player/answers", h.submitAnswer)
	router.POST("/applications/:player/resume", h.resume)
	router.DELETE("/applications/:player", h.cancel)
	router.GET("/applications/:player", h.status)

	router.POST("/applications/:player/accept", h.accept)
	router.POST("/applications/:player/deny", h.deny)

	router.GET("/players/:player/history", h.history)
	router.POST("/players/:player/disconnect", h.disconnect)
	router.POST("/catalog/reload", h.reloadCatalog)
}

type startRequest struct {
	PlayerName string `json:"playerName" binding:"required"`
	RoleId     string `json:"roleId" binding:"required"`
}

type answerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

type decisionRequest struct {
	ReviewerId string `json:"reviewerId" binding:"required"`
	Reason     string `json:"reason"`
}

type stepResponse struct {
	Draft    *model.Draft `json:"draft"`
	Question string       `json:"question,omitempty"`
	Pending  bool         `json:"pending"`
}

type roleResponse struct {
	Id          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Questions   []string `json:"questions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listRoles returns the roles players can currently apply for.
func (h *applicationHandler) listRoles(c *gin.Context) {
	roles := h.catalog.Roles()

	resp := make([]roleResponse, 0, len(roles))
	for _, role := range roles {
		if !role.IsEnabled() {
			continue
		}
		resp = append(resp, roleResponse{
			Id:          role.Id,
			DisplayName: role.DisplayName,
			Questions:   role.Questions,
		})
	}
	sort.Slice(resp, func(i, j int) bool { return resp[i].Id < resp[j].Id })

	c.JSON(http.StatusOK, resp)
}

func (h *applicationHandler) start(c *gin.Context) {
	playerId, ok := h.playerId(c)
	if !ok {
		return
	}

	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := h.wiz.Start(c.Request.Context(), playerId, req.PlayerName, req.RoleId)
	if err != nil {
		h.writeWizardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toStepResponse(result))
}

func (h *applicationHandler) submitAnswer(c *gin.Context) {
	playerId, ok := h.playerId(c)
	if !ok {
		return
	}

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := h.wiz.SubmitAnswer(c.Request.Context(), playerId, req.Answer)
	if err != nil {
		h.writeWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStepResponse(result))
}

func (h *applicationHandler) resume(c *gin.Context) {
	playerId, ok := h.playerId(c)
	if !ok {
		return
	}

	result, err := h.wiz.Resume(c.Request.Context(), playerId)
	if err != nil {
		h.writeWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStepResponse(result))
}

func (h *applicationHandler) cancel(c *gin.Context) {
	playerId, ok := h.playerId(c)
	if !ok {
		return
	}

	if err := h.wiz.Cancel(c.Request.Context(), playerId); err != nil {
		h.writeWizardError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *applicationHandler) status(c *gin.Context) {
	playerId, ok := h.playerId(c)
	if !ok {
		return
	}

	draft, err := h.wiz.Status(c.Request.Context(), playerId)
	if err != nil {
		h.writeWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *applicationHandler) listPending(c *gin.Context) {
	drafts, err := h.proc.Pending(c.Request.Context())
	if err != nil {
		h.writeInternalError(c, err)
		return
	}
	if drafts == nil {
		drafts = []*model.Draft{}
	}

	c.JSON(http.StatusOK, drafts)
}

func (h *applicationHandler) accept(c *gin.Context) {
	playerId, ok := h.playerId(c)
	if !ok {
		return
	}

	req, ok := h.decisionRequest(c)
	if !ok {
		return
	}
	reviewerId, err := uuid.Parse(req.ReviewerId)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid reviewer id"})
		return
	}

	draft, err := h.proc.Accept(c.Request.Context(), playerId, reviewerId)
	if err != nil {
		h.writeDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *applicationHandler) deny(c *gin.Context) {
	playerId, ok := h.playerId(c)
	if !ok {
		return
	}

	req, ok := h.decisionRequest(c)
	if !ok {
		return
	}
	reviewerId, err := uuid.Parse(req.ReviewerId)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid reviewer id"})
		return
	}

	draft, err := h.proc.Deny(c.Request.Context(), playerId, reviewerId, req.Reason)
	if err != nil {
		h.writeDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *applicationHandler) history(c *gin.Context) {
	playerId, ok := h.playerId(c)
	if !ok {
		return
	}

	ledger, err := h.repo.GetLedger(c.Request.Context(), playerId)
	if err != nil {
		h.writeInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, ledger.Entries)
}

// disconnect drops the player's transient wizard cursor when the proxy
// reports them gone. The draft stays; resume picks it back up.
func (h *applicationHandler) disconnect(c *gin.Context) {
	playerId, ok := h.playerId(c)
	if !ok {
		return
	}

	h.wiz.Forget(playerId)
	c.Status(http.StatusNoContent)
}

func (h *applicationHandler) reloadCatalog(c *gin.Context) {
	if err := h.catalog.Reload(); err != nil {
		h.logger.Errorw("failed to reload role catalog", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *applicationHandler) playerId(c *gin.Context) (uuid.UUID, bool) {
	playerId, err := uuid.Parse(c.Param("player"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid player id"})
		return uuid.Nil, false
	}
	return playerId, true
}

func (h *applicationHandler) decisionRequest(c *gin.Context) (decisionRequest, bool) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return decisionRequest{}, false
	}
	return req, true
}

func (h *applicationHandler) writeWizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.InvalidRoleError):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, wizard.PermissionDeniedError):
		c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, repository.AlreadyActiveError),
		errors.Is(err, repository.AlreadyCompleteError),
		errors.Is(err, wizard.AlreadySubmittedError):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, repository.NoActiveDraftError),
		errors.Is(err, wizard.NotAnsweringError):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		h.writeInternalError(c, err)
	}
}

func (h *applicationHandler) writeDecisionError(c *gin.Context, err error) {
	if errors.Is(err, decision.NotFoundError) {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	h.writeInternalError(c, err)
}

func (h *applicationHandler) writeInternalError(c *gin.Context, err error) {
	h.logger.Errorw("failed to handle request", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func toStepResponse(result *wizard.StepResult) stepResponse {
	return stepResponse{
		Draft:    result.Draft,
		Question: result.Question,
		Pending:  result.Pending,
	}
}
