package routes

import (
	"github.com/gin-gonic/gin"

	"tum-backend/internal/handlers"
	"tum-backend/internal/middleware"
)

// NewRouter builds the engine with logging, recovery and CORS applied to every route.
func NewRouter(d handlers.Deps, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.CORS(allowedOrigins))
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d handlers.Deps) {
	r.GET("/", handlers.Home())
	r.GET("/health", handlers.Health(d))

	r.POST("/admins", handlers.CreateAdmin(d))
	r.POST("/admin-login", handlers.AdminLogin(d))
	r.GET("/admins", handlers.GetAdmins(d))
	r.GET("/admins/:email", handlers.GetAdminByEmail(d))
	r.DELETE("/admins/:id", handlers.DeleteAdmin(d))
	r.PATCH("/admins/:id", handlers.UpdateAdminStatus(d))

	notifications := r.Group(handlers.NotificationResource.Path)
	{
		res := handlers.NotificationResource
		notifications.POST("", handlers.CreateDocument(d, res))
		notifications.GET("", handlers.ListDocuments(d, res))
		notifications.GET("/:id", handlers.GetDocument(d, res))
		notifications.DELETE("/:id", handlers.DeleteDocument(d, res))
	}

	carousel := r.Group(handlers.CarouselResource.Path)
	{
		res := handlers.CarouselResource
		carousel.POST("", handlers.CreateDocument(d, res))
		carousel.GET("", handlers.ListDocuments(d, res))
		carousel.GET("/:id", handlers.GetDocument(d, res))
		carousel.PATCH("/:id", handlers.UpdateDocument(d, res))
	}

	about := r.Group(handlers.AboutTextResource.Path)
	{
		res := handlers.AboutTextResource
		about.POST("", handlers.CreateDocument(d, res))
		about.GET("", handlers.ListDocuments(d, res))
		about.GET("/:id", handlers.GetDocument(d, res))
		about.PATCH("/:id", handlers.UpdateDocument(d, res))
		about.DELETE("/:id", handlers.DeleteDocument(d, res))
	}

	basicInfo := r.Group(handlers.BasicInfoResource.Path)
	{
		res := handlers.BasicInfoResource
		basicInfo.POST("", handlers.CreateDocument(d, res))
		basicInfo.GET("", handlers.ListDocuments(d, res))
		basicInfo.GET("/:id", handlers.GetDocument(d, res))
		basicInfo.PATCH("/:id", handlers.UpdateDocument(d, res))
	}
}
