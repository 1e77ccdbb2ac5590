package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cooltechhq/hvac-ops-api/internal/application/auth"
	"github.com/cooltechhq/hvac-ops-api/internal/application/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/application/usecase"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ClientUC      *usecase.ClientUseCase
	ProjectUC     *usecase.ProjectUseCase
	TaskUC        *usecase.TaskUseCase
	EstimateUC    *billing.EstimateUseCase
	InvoiceUC     *billing.InvoiceUseCase
	PDFUC         *billing.PDFUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	DocumentUC    *usecase.DocumentUseCase
	AppointmentUC *usecase.AppointmentUseCase
	DashboardUC   *usecase.DashboardUseCase
	MessageUC     *usecase.MessageUseCase
	AIUC          *usecase.AIUseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	estimateHandler := NewEstimateHandler(deps.EstimateUC, deps.PDFUC)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)

	// Public endpoints hit from client-facing links. The estimate response
	// carries its own signed token instead of a session.
	public := api.Group("/public")
	public.Get("/estimate-response", estimateHandler.Respond)
	public.Get("/invoices/:id", invoiceHandler.View)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Office-side resources: technicians have no business in billing.
	officeOnly := RequireRole(entity.RoleAdmin, entity.RoleOffice)

	clients := protected.Group("/clients", officeOnly)
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	aiHandler := NewAIHandler(deps.AIUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", officeOnly, projectHandler.Delete)
	projects.Post("/:id/suggest-tasks", aiHandler.SuggestTasks)

	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)

	estimates := protected.Group("/estimates", officeOnly)
	estimates.Post("/", estimateHandler.Create)
	estimates.Get("/", estimateHandler.List)
	estimates.Get("/:id", estimateHandler.GetByID)
	estimates.Put("/:id", estimateHandler.Update)
	estimates.Post("/:id/send", estimateHandler.Send)
	estimates.Get("/:id/pdf", estimateHandler.PDF)

	invoices := protected.Group("/invoices", officeOnly)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", officeOnly, expenseHandler.Delete)

	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Post("/", documentHandler.Upload)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Delete("/:id", officeOnly, documentHandler.Delete)

	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	dashboard := protected.Group("/dashboard", officeOnly)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Summary)

	messages := protected.Group("/messages", officeOnly)
	messageHandler := NewMessageHandler(deps.MessageUC)
	messages.Post("/", messageHandler.Send)
}
