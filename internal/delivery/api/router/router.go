// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"curator/internal/delivery/api/middleware"
	"curator/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductImagePath is the upload route; it carries its own body limit.
const ProductImagePath = "/api/v1/products/:id/image"

type RouterParams struct {
	fx.In

	SessionHandler       *handler.SessionHandler
	AccountHandler       *handler.AccountHandler
	QuestionnaireHandler *handler.QuestionnaireHandler
	ProductHandler       *handler.ProductHandler
	SubmissionHandler    *handler.SubmissionHandler
	DeviceHandler        *handler.DeviceHandler
	ImageHandler         *handler.ImageHandler
	AuthMiddleware       *middleware.AuthMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler       *handler.SessionHandler
	accountHandler       *handler.AccountHandler
	questionnaireHandler *handler.QuestionnaireHandler
	productHandler       *handler.ProductHandler
	submissionHandler    *handler.SubmissionHandler
	deviceHandler        *handler.DeviceHandler
	imageHandler         *handler.ImageHandler
	authMiddleware       *middleware.AuthMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:       params.SessionHandler,
		accountHandler:       params.AccountHandler,
		questionnaireHandler: params.QuestionnaireHandler,
		productHandler:       params.ProductHandler,
		submissionHandler:    params.SubmissionHandler,
		deviceHandler:        params.DeviceHandler,
		imageHandler:         params.ImageHandler,
		authMiddleware:       params.AuthMiddleware,
		rateLimitMiddleware:  params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// uploadLimit guards the multipart image route instead of the global body limit.
func (r *router) RegisterRoutes(e *echo.Echo, uploadLimit echo.MiddlewareFunc) {
	e.GET("/health", handler.HealthCheck)

	// Stored product images, when served by this process
	e.GET("/images/*", r.imageHandler.ServeImage)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/google", r.sessionHandler.GoogleSignIn)
		authGroup.POST("/refresh", r.sessionHandler.Refresh)
	}

	// Anonymous customer surface
	publicGroup := e.Group("/api/public/questionnaires/:id")
	{
		publicGroup.GET("", r.questionnaireHandler.GetPublicQuestionnaire)
		publicGroup.GET("/questions", r.questionnaireHandler.ListPublicQuestions)
		publicGroup.GET("/branding", r.accountHandler.GetPublicBranding)
		publicGroup.POST("/submit", r.submissionHandler.Submit, r.rateLimitMiddleware.Limit)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	accountGroup := apiV1.Group("/account")
	{
		accountGroup.GET("", r.accountHandler.GetProfile)
		accountGroup.PATCH("", r.accountHandler.UpdateProfile)
	}

	questionnairesGroup := apiV1.Group("/questionnaires")
	{
		questionnairesGroup.GET("", r.questionnaireHandler.ListQuestionnaires)
		questionnairesGroup.POST("", r.questionnaireHandler.CreateQuestionnaire)
		questionnairesGroup.GET("/:id", r.questionnaireHandler.GetQuestionnaire)
		questionnairesGroup.PATCH("/:id", r.questionnaireHandler.UpdateQuestionnaire)
		questionnairesGroup.DELETE("/:id", r.questionnaireHandler.DeleteQuestionnaire)
		questionnairesGroup.GET("/:id/questions", r.questionnaireHandler.ListQuestions)
		questionnairesGroup.POST("/:id/questions", r.questionnaireHandler.AddQuestion)
		questionnairesGroup.GET("/:id/responses", r.submissionHandler.ListResponses)
		questionnairesGroup.GET("/:id/qr", r.questionnaireHandler.ShareQR)
	}

	apiV1.DELETE("/questions/:id", r.questionnaireHandler.DeleteQuestion)

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.PATCH("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}
	e.PUT(ProductImagePath, r.productHandler.UploadImage, uploadLimit, r.authMiddleware.Authenticate)

	apiV1.GET("/responses", r.submissionHandler.ListAccountResponses)

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetAccountDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
