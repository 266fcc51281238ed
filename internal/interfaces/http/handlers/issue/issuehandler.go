package issue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tracker/internal/application/issue/usecases"
	"tracker/internal/interfaces/http/middleware"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
	"tracker/internal/shared/utils"
)

type IssueHandler struct {
	createIssueUC    *usecases.CreateIssueUseCase
	listIssuesUC     *usecases.ListIssuesUseCase
	getIssueUC       *usecases.GetIssueUseCase
	updateIssueUC    *usecases.UpdateIssueUseCase
	changeStatusUC   *usecases.ChangeIssueStatusUseCase
	changeAssigneeUC *usecases.ChangeIssueAssigneeUseCase
	deleteIssueUC    *usecases.DeleteIssueUseCase
	logger           logger.Interface
}

func NewIssueHandler(
	createIssueUC *usecases.CreateIssueUseCase,
	listIssuesUC *usecases.ListIssuesUseCase,
	getIssueUC *usecases.GetIssueUseCase,
	updateIssueUC *usecases.UpdateIssueUseCase,
	changeStatusUC *usecases.ChangeIssueStatusUseCase,
	changeAssigneeUC *usecases.ChangeIssueAssigneeUseCase,
	deleteIssueUC *usecases.DeleteIssueUseCase,
) *IssueHandler {
	return &IssueHandler{
		createIssueUC:    createIssueUC,
		listIssuesUC:     listIssuesUC,
		getIssueUC:       getIssueUC,
		updateIssueUC:    updateIssueUC,
		changeStatusUC:   changeStatusUC,
		changeAssigneeUC: changeAssigneeUC,
		deleteIssueUC:    deleteIssueUC,
		logger:           logger.NewLogger(),
	}
}

// CreateIssue handles POST /projects/:id/issues
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create issue", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.createIssueUC.Execute(c.Request.Context(), req.ToCommand(actor, projectID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Issue created successfully")
}

// ListIssues handles GET /projects/:id/issues
func (h *IssueHandler) ListIssues(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.listIssuesUC.Execute(c.Request.Context(), projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}

// GetIssue handles GET /issues/:id
func (h *IssueHandler) GetIssue(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getIssueUC.Execute(c.Request.Context(), issueID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateIssue handles PUT /issues/:id
func (h *IssueHandler) UpdateIssue(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update issue", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.updateIssueUC.Execute(c.Request.Context(), req.ToCommand(actor, issueID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue updated successfully", result)
}

// ChangeStatus handles PATCH /issues/:id/status
func (h *IssueHandler) ChangeStatus(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeIssueStatusCommand{
		Actor:   actor,
		IssueID: issueID,
		Status:  req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue status updated successfully", result)
}

// ChangeAssignee handles PATCH /issues/:id/assignee
func (h *IssueHandler) ChangeAssignee(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeAssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change assignee", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.changeAssigneeUC.Execute(c.Request.Context(), usecases.ChangeIssueAssigneeCommand{
		Actor:      actor,
		IssueID:    issueID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue assignee updated successfully", result)
}

// DeleteIssue handles DELETE /issues/:id
func (h *IssueHandler) DeleteIssue(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	if err := h.deleteIssueUC.Execute(c.Request.Context(), usecases.DeleteIssueCommand{
		Actor:   actor,
		IssueID: issueID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
