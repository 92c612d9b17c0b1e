package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Amenidades-api/internal/application/auth"
	"github.com/jhoicas/Amenidades-api/internal/application/spotcheck"
	"github.com/jhoicas/Amenidades-api/internal/application/usecase"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ItemUC      *usecase.ItemUseCase
	RuleUC      *usecase.RuleUseCase
	AlarmUC     *usecase.AlarmUseCase
	DashboardUC *usecase.DashboardUseCase
	SpotCheckUC *spotcheck.UseCase
	ReportUC    *spotcheck.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Items (protegido; altas y bajas solo admin)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", adminOnly, itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Rules y asignaciones (protegido; mutaciones solo admin)
	rules := protected.Group("/rules")
	ruleHandler := NewRuleHandler(deps.RuleUC)
	rules.Post("/", adminOnly, ruleHandler.Create)
	rules.Get("/", ruleHandler.List)
	rules.Post("/assignments", adminOnly, ruleHandler.Assign)
	rules.Get("/assignments", ruleHandler.ListAssignments)
	rules.Delete("/assignments/:id", adminOnly, ruleHandler.DeleteAssignment)
	rules.Put("/:id", adminOnly, ruleHandler.Update)
	rules.Delete("/:id", adminOnly, ruleHandler.Delete)

	// Alarms (protegido)
	alarms := protected.Group("/alarms")
	alarmHandler := NewAlarmHandler(deps.AlarmUC)
	alarms.Get("/", alarmHandler.List)
	alarms.Post("/:id/complete", alarmHandler.Complete)
	alarms.Post("/:id/snooze", alarmHandler.Snooze)

	// Spot checks (protegido)
	spotChecks := protected.Group("/spot-checks")
	spotCheckHandler := NewSpotCheckHandler(deps.SpotCheckUC, deps.ReportUC)
	spotChecks.Post("/runs", spotCheckHandler.Start)
	spotChecks.Get("/runs/:id", spotCheckHandler.GetRun)
	spotChecks.Post("/runs/:id/reconcile", spotCheckHandler.Reconcile)
	spotChecks.Get("/", spotCheckHandler.History)
	spotChecks.Get("/:id/report", spotCheckHandler.ReportPDF)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
