package routes

import (
	"time"

	"athletehub/api/handler"
	"athletehub/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Folders        *handler.FolderHandler
	Files          *handler.FileHandler
	Announcements  *handler.AnnouncementHandler
	Users          *handler.UserHandler
	Reports        *handler.ReportHandler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	folderHandler *handler.FolderHandler,
	fileHandler *handler.FileHandler,
	announcementHandler *handler.AnnouncementHandler,
	userHandler *handler.UserHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		Folders:        folderHandler,
		Files:          fileHandler,
		Announcements:  announcementHandler,
		Users:          userHandler,
		Reports:        reportHandler,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	requireAuth := r.AuthMiddleware.RequireAuth
	requireAdmin := middleware.RequireRole("admin")

	e.POST("/auth/register", r.Auth.Register, r.AuthRate.Middleware())
	e.POST("/auth/confirm", r.Auth.ConfirmSignup, r.AuthRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware())
	e.POST("/auth/refresh", r.Auth.Refresh, r.AuthRate.Middleware())
	e.POST("/auth/logout", r.Auth.Logout, requireAuth)
	e.POST("/auth/logout-all", r.Auth.LogoutAll, requireAuth)
	e.POST("/auth/password/forgot", r.Auth.PasswordForgot, r.LoginRate.Middleware())
	e.POST("/auth/password/reset", r.Auth.PasswordReset, r.AuthRate.Middleware())

	e.GET("/me", r.Auth.Me, requireAuth)
	e.POST("/me/profile-picture", r.Auth.UploadProfilePicture, requireAuth)
	e.GET("/me/files", r.Files.ListOwn, requireAuth)
	e.GET("/me/student-folder", r.Folders.MyStudentFolder, requireAuth)

	e.GET("/announcements", r.Announcements.List, requireAuth)

	e.GET("/folders", r.Folders.List, requireAuth)
	e.POST("/folders/:id/student-folders", r.Folders.CreateStudentFolder, requireAuth)
	e.GET("/folders/:id/student-folders", r.Folders.ListStudentFolders, requireAuth)
	e.GET("/folders/:id/files", r.Files.ListByFolder, requireAuth)

	e.GET("/student-folders/:id/files", r.Files.ListByStudentFolder, requireAuth)
	e.POST("/student-folders/:id/files", r.Files.UploadToStudentFolder, requireAuth)
	e.PATCH("/student-folders/:id", r.Folders.RenameStudentFolder, requireAuth)
	e.DELETE("/student-folders/:id", r.Folders.DeleteStudentFolder, requireAuth)

	e.GET("/files/:id/download", r.Files.Download, requireAuth)
	e.GET("/files/:id/url", r.Files.FileURL, requireAuth)
	e.DELETE("/files/:id", r.Files.Delete, requireAuth)

	e.POST("/admin/folders", r.Folders.Create, requireAuth, requireAdmin)
	e.PATCH("/admin/folders/:id", r.Folders.Update, requireAuth, requireAdmin)
	e.DELETE("/admin/folders/:id", r.Folders.Delete, requireAuth, requireAdmin)
	e.POST("/admin/folders/:id/files", r.Files.UploadToFolder, requireAuth, requireAdmin)

	e.POST("/admin/announcements", r.Announcements.Create, requireAuth, requireAdmin)
	e.PATCH("/admin/announcements/:id", r.Announcements.Update, requireAuth, requireAdmin)
	e.DELETE("/admin/announcements/:id", r.Announcements.Delete, requireAuth, requireAdmin)

	e.GET("/admin/users", r.Users.List, requireAuth, requireAdmin)
	e.GET("/admin/users/:id", r.Users.Get, requireAuth, requireAdmin)
	e.PATCH("/admin/users/:id/verification", r.Users.SetVerified, requireAuth, requireAdmin)
	e.POST("/admin/users/:id/revoke-sessions", r.Users.RevokeSessions, requireAuth, requireAdmin)

	e.GET("/admin/reports/athletes.csv", r.Reports.AthleteCSV, requireAuth, requireAdmin)
}
