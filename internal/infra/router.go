package infra

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/customer-templates/docs" // swagger spec registration
	"github.com/umalmyha/customer-templates/internal/handlers"
	"github.com/umalmyha/customer-templates/internal/service"
	"github.com/umalmyha/customer-templates/internal/validation"
)

// Services holds everything router exposes over http
type Services struct {
	Customer  service.CustomerService
	Template  service.TemplateService
	Document  service.DocumentService
	Reference service.ReferenceService
}

func Router(svc Services) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	validator, err := validation.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to build request validator - %w", err)
	}
	e.Validator = validator
	e.HTTPErrorHandler = HTTPErrorHandler(e)

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logrus.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency,
			}).Info("request handled")
			return nil
		},
	}))

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(svc.Customer)
	templateHandler := handlers.NewTemplateHTTPHandler(svc.Template)
	documentHandler := handlers.NewDocumentHTTPHandler(svc.Document)
	referenceHandler := handlers.NewReferenceHTTPHandler(svc.Reference)

	// API routes
	api := e.Group("/api")

	// customers
	customersAPI := api.Group("/customers")
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.GET("/next-code", customerHandler.NextCode)
	customersAPI.GET("/stats", customerHandler.Stats)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.PUT("/:id", customerHandler.Put)
	customersAPI.PATCH("/:id", customerHandler.Patch)
	customersAPI.DELETE("/:id", customerHandler.DeleteByID)
	customersAPI.POST("/:id/templates/:customerTemplateId/download", documentHandler.Download)
	customersAPI.POST("/:id/templates/:customerTemplateId/print", documentHandler.Print)

	// templates
	templatesAPI := api.Group("/templates")
	templatesAPI.GET("", templateHandler.GetAll)
	templatesAPI.GET("/stats", templateHandler.Stats)
	templatesAPI.GET("/placeholders", templateHandler.Placeholders)
	templatesAPI.POST("", templateHandler.Post)
	templatesAPI.POST("/upload", templateHandler.Upload)
	templatesAPI.DELETE("/:id", templateHandler.DeleteByID)

	// reference data
	api.GET("/categories", referenceHandler.Categories)
	api.GET("/users", referenceHandler.Users)

	// docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
