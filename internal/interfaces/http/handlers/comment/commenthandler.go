package comment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tracker/internal/application/comment/usecases"
	"tracker/internal/interfaces/http/middleware"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
	"tracker/internal/shared/utils"
)

type AddCommentRequest struct {
	Body string `json:"body" validate:"required,max=10000"`
}

type CommentHandler struct {
	addCommentUC    *usecases.AddCommentUseCase
	listCommentsUC  *usecases.ListCommentsUseCase
	deleteCommentUC *usecases.DeleteCommentUseCase
	logger          logger.Interface
}

func NewCommentHandler(
	addCommentUC *usecases.AddCommentUseCase,
	listCommentsUC *usecases.ListCommentsUseCase,
	deleteCommentUC *usecases.DeleteCommentUseCase,
) *CommentHandler {
	return &CommentHandler{
		addCommentUC:    addCommentUC,
		listCommentsUC:  listCommentsUC,
		deleteCommentUC: deleteCommentUC,
		logger:          logger.NewLogger(),
	}
}

// AddComment handles POST /issues/:id/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
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

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:   actor,
		IssueID: issueID,
		Body:    req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListComments handles GET /issues/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results, err := h.listCommentsUC.Execute(c.Request.Context(), issueID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}

// DeleteComment handles DELETE /comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	if err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		Actor:     actor,
		CommentID: commentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
