package router

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"aifolio/internal/errors"
	"aifolio/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	caseStudyHandler *handler.CaseStudyHandler,
	generationHandler *handler.GenerationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/case-studies", caseStudyHandler.List)
	api.GET("/case-studies/:slug", caseStudyHandler.GetBySlug)

	// Protected routes: the gate requires a bearer token to be present but
	// does not verify it. This is a placeholder, not a security boundary.
	secured := api.Group("", RequireBearerToken)

	secured.POST("/case-studies", caseStudyHandler.Create)
	secured.PATCH("/case-studies/:id", caseStudyHandler.Update)
	secured.DELETE("/case-studies/:id", caseStudyHandler.Delete)

	secured.POST("/generate", generationHandler.Generate)
	secured.GET("/generations/:userId", generationHandler.History)
}

// RequireBearerToken rejects requests without a non-empty
// "Authorization: Bearer <token>" header.
func RequireBearerToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "authentication required",
				Code:  "AUTH_REQUIRED",
			})
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "invalid authentication token",
				Code:  "INVALID_TOKEN",
			})
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo. Violated fields are reported by
// their json names.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
