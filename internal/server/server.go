package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"
	"github.com/swaggo/swag"

	_ "jobmatcher/career-analyzer/docs"
	"jobmatcher/career-analyzer/internal/handlers"
	"jobmatcher/career-analyzer/internal/services"
)

// Multipart framing and form fields on top of the largest accepted file.
const multipartOverhead = 1 << 20

type Options struct {
	Matcher     services.MatchService
	MaxFileSize int64
	FrontendDir string
	Logger      *logrus.Logger
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// New builds the HTTP application. WriteTimeout stays unset so a slow model
// call is never cut off mid-response.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Career Readiness Analyzer API",
		ReadTimeout:  30 * time.Second,
		BodyLimit:    int(opts.MaxFileSize) + multipartOverhead,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     accessLogWriter{logger: opts.Logger},
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	matchHandler := handlers.NewMatchHandler(opts.Matcher, opts.MaxFileSize, opts.Logger)
	frontendHandler := handlers.NewFrontendHandler(opts.FrontendDir)

	// Health check
	app.Get("/api/health", handleHealth)

	// API documentation
	app.Get("/openapi.json", handleOpenAPI)
	app.Get("/docs/*", swagger.New(swagger.Config{URL: "/openapi.json"}))

	// API endpoints
	app.Post("/match-jobs", matchHandler.HandleMatchJobs)

	// Frontend
	app.Static("/static", frontendHandler.StaticDir())
	app.Get("/", frontendHandler.HandleIndex)
	app.Get("/*", frontendHandler.HandleCatchAll)

	return app
}

// handleHealth reports liveness.
// @Summary  Liveness probe
// @Tags     Health
// @Produce  json
// @Success  200 {object} server.HealthResponse
// @Router   /api/health [get]
func handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Time:   time.Now(),
	})
}

func handleOpenAPI(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
