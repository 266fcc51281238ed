package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authusecases "tracker/internal/application/auth/usecases"
	commentusecases "tracker/internal/application/comment/usecases"
	issueusecases "tracker/internal/application/issue/usecases"
	projectusecases "tracker/internal/application/project/usecases"
	infraauth "tracker/internal/infrastructure/auth"
	"tracker/internal/infrastructure/config"
	"tracker/internal/infrastructure/repository"
	authhandlers "tracker/internal/interfaces/http/handlers/auth"
	commenthandlers "tracker/internal/interfaces/http/handlers/comment"
	issuehandlers "tracker/internal/interfaces/http/handlers/issue"
	projecthandlers "tracker/internal/interfaces/http/handlers/project"
	userhandlers "tracker/internal/interfaces/http/handlers/user"
	"tracker/internal/interfaces/http/middleware"
	"tracker/internal/interfaces/http/routes"
	"tracker/internal/shared/db"
	"tracker/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	log            logger.Interface
	authHandler    *authhandlers.AuthHandler
	userHandler    *userhandlers.UserHandler
	projectHandler *projecthandlers.ProjectHandler
	issueHandler   *issuehandlers.IssueHandler
	commentHandler *commenthandlers.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	issueRepo := repository.NewIssueRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)
	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtService := infraauth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes)

	registerUC := authusecases.NewRegisterUseCase(userRepo, roleRepo, hasher, txManager, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	getUserUC := authusecases.NewGetUserUseCase(userRepo, log)
	listUsersUC := authusecases.NewListUsersUseCase(userRepo, log)

	createProjectUC := projectusecases.NewCreateProjectUseCase(projectRepo, log)
	listProjectsUC := projectusecases.NewListProjectsUseCase(projectRepo, log)
	getProjectUC := projectusecases.NewGetProjectUseCase(projectRepo, log)
	updateProjectUC := projectusecases.NewUpdateProjectUseCase(projectRepo, log)
	deleteProjectUC := projectusecases.NewDeleteProjectUseCase(projectRepo, issueRepo, log)

	createIssueUC := issueusecases.NewCreateIssueUseCase(issueRepo, projectRepo, userRepo, commentRepo, log)
	listIssuesUC := issueusecases.NewListIssuesUseCase(issueRepo, projectRepo, userRepo, commentRepo, log)
	getIssueUC := issueusecases.NewGetIssueUseCase(issueRepo, userRepo, commentRepo, log)
	updateIssueUC := issueusecases.NewUpdateIssueUseCase(issueRepo, userRepo, commentRepo, log)
	changeStatusUC := issueusecases.NewChangeIssueStatusUseCase(issueRepo, userRepo, commentRepo, log)
	changeAssigneeUC := issueusecases.NewChangeIssueAssigneeUseCase(issueRepo, userRepo, commentRepo, log)
	deleteIssueUC := issueusecases.NewDeleteIssueUseCase(issueRepo, commentRepo, txManager, log)

	addCommentUC := commentusecases.NewAddCommentUseCase(commentRepo, issueRepo, log)
	listCommentsUC := commentusecases.NewListCommentsUseCase(commentRepo, issueRepo, log)
	deleteCommentUC := commentusecases.NewDeleteCommentUseCase(commentRepo, log)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		log:            log,
		authHandler:    authhandlers.NewAuthHandler(registerUC, loginUC),
		userHandler:    userhandlers.NewUserHandler(getUserUC, listUsersUC),
		projectHandler: projecthandlers.NewProjectHandler(createProjectUC, listProjectsUC, getProjectUC, updateProjectUC, deleteProjectUC),
		issueHandler:   issuehandlers.NewIssueHandler(createIssueUC, listIssuesUC, getIssueUC, updateIssueUC, changeStatusUC, changeAssigneeUC, deleteIssueUC),
		commentHandler: commenthandlers.NewCommentHandler(addCommentUC, listCommentsUC, deleteCommentUC),
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupProjectRoutes(api, &routes.ProjectRouteConfig{
		ProjectHandler: r.projectHandler,
		IssueHandler:   r.issueHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupIssueRoutes(api, &routes.IssueRouteConfig{
		IssueHandler:   r.issueHandler,
		CommentHandler: r.commentHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
