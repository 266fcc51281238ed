package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tracker/internal/application/auth/usecases"
	"tracker/internal/interfaces/http/middleware"
	"tracker/internal/shared/logger"
	"tracker/internal/shared/utils"
)

type UserHandler struct {
	getUserUC   *usecases.GetUserUseCase
	listUsersUC *usecases.ListUsersUseCase
	logger      logger.Interface
}

func NewUserHandler(
	getUserUC *usecases.GetUserUseCase,
	listUsersUC *usecases.ListUsersUseCase,
) *UserHandler {
	return &UserHandler{
		getUserUC:   getUserUC,
		listUsersUC: listUsersUC,
		logger:      logger.NewLogger(),
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	results, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
