package rest

import (
	"database/sql"
	"log/slog"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/employee"
	"github.com/frahmantamala/employee-management/internal/project"
	"github.com/frahmantamala/employee-management/internal/ticket"
	"github.com/frahmantamala/employee-management/internal/transport/middleware"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// RegisterAllRoutes wires every route of the dashboard API. The route paths
// are the front-end's existing contract and must not change shape.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	cfg *internal.ServerConfig,
	authHandler *auth.Handler,
	employeeHandler *employee.Handler,
	projectHandler *project.Handler,
	ticketHandler *ticket.Handler,
	static *StaticHandler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	// Auth routes
	router.Post("/login", authHandler.Login)
	router.Get("/logout", authHandler.Logout)

	// The dashboard is the only gated route; the CRUD surface below is
	// open, matching the front-end's expectations.
	router.Group(func(gr chi.Router) {
		gr.Use(authHandler.VerifyMiddleware)
		gr.Get("/dashboard", authHandler.Dashboard)
	})

	// Employee CRUD
	router.Get("/getEmployees", employeeHandler.GetEmployees)
	router.Get("/get/{id}", employeeHandler.GetEmployee)
	router.Post("/create", employeeHandler.CreateEmployee)
	router.Put("/update/{id}", employeeHandler.UpdateEmployee)
	router.Delete("/delete/{id}", employeeHandler.DeleteEmployee)

	// Project CRUD
	router.Get("/getProjects", projectHandler.GetProjects)
	router.Get("/getProject/{id}", projectHandler.GetProject)
	router.Post("/createProject", projectHandler.CreateProject)
	router.Put("/updateProject/{id}", projectHandler.UpdateProject)
	router.Delete("/deleteProjects/{id}", projectHandler.DeleteProject)

	// Ticket CRUD
	router.Get("/getTickets", ticketHandler.GetTickets)
	router.Get("/getTicket/{id}", ticketHandler.GetTicket)
	router.Post("/createTicket", ticketHandler.CreateTicket)
	router.Put("/updateTicket/{id}", ticketHandler.UpdateTicket)
	router.Delete("/deleteTickets/{id}", ticketHandler.DeleteTicket)

	// Scalar aggregates for the dashboard cards
	router.Get("/employeeCount", employeeHandler.EmployeeCount)
	router.Get("/projectCount", projectHandler.ProjectCount)
	router.Get("/ticketCount", ticketHandler.TicketCount)
	router.Get("/fullTimeEmployeeCount", employeeHandler.FullTimeEmployeeCount)
	router.Get("/partTimeEmployeeCount", employeeHandler.PartTimeEmployeeCount)
	router.Get("/openProjectCount", projectHandler.OpenProjectCount)
	router.Get("/closedProjectCount", projectHandler.ClosedProjectCount)
	router.Get("/ticketsToDoCount", ticketHandler.TicketsToDoCount)
	router.Get("/ticketsInProgressCount", ticketHandler.TicketsInProgressCount)

	// Uploaded photos and the SPA bundle
	router.Get("/images/*", static.ServeImage)
	router.Get("/*", static.ServeIndex)
}
