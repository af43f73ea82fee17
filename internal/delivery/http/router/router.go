// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"payroll/internal/delivery/http/middleware"
	"payroll/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	DepartmentHandler *handler.DepartmentHandler
	EmployeeHandler   *handler.EmployeeHandler
	SalaryHandler     *handler.SalaryHandler
	ReportHandler     *handler.ReportHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	departmentHandler *handler.DepartmentHandler
	employeeHandler   *handler.EmployeeHandler
	salaryHandler     *handler.SalaryHandler
	reportHandler     *handler.ReportHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		departmentHandler: params.DepartmentHandler,
		employeeHandler:   params.EmployeeHandler,
		salaryHandler:     params.SalaryHandler,
		reportHandler:     params.ReportHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Served at the root and under /auth so clients can use
	// either prefix.
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything below requires a valid bearer token.
	api := e.Group("")
	api.Use(r.authMiddleware.Authenticate)

	userGroup := api.Group("/users")
	{
		userGroup.GET("", r.authHandler.ListAccounts)
		userGroup.GET("/:id", r.authHandler.GetAccount)
	}

	departmentGroup := api.Group("/departments")
	{
		departmentGroup.POST("", r.departmentHandler.Create)
		departmentGroup.GET("", r.departmentHandler.List)
		departmentGroup.GET("/:id", r.departmentHandler.Get)
		departmentGroup.PUT("/:id", r.departmentHandler.Update)
		departmentGroup.DELETE("/:id", r.departmentHandler.Delete)
	}

	employeeGroup := api.Group("/employees")
	{
		employeeGroup.POST("", r.employeeHandler.Create)
		employeeGroup.GET("", r.employeeHandler.List)
		employeeGroup.GET("/:id", r.employeeHandler.Get)
		employeeGroup.PUT("/:id", r.employeeHandler.Update)
		employeeGroup.DELETE("/:id", r.employeeHandler.Delete)
	}

	salaryGroup := api.Group("/salaries")
	{
		salaryGroup.POST("", r.salaryHandler.Create)
		salaryGroup.GET("", r.salaryHandler.List)
		salaryGroup.GET("/:id", r.salaryHandler.Get)
		salaryGroup.PUT("/:id", r.salaryHandler.Update)
		salaryGroup.DELETE("/:id", r.salaryHandler.Delete)
	}

	reportGroup := api.Group("/reports")
	{
		reportGroup.GET("/monthly-payroll", r.reportHandler.MonthlyPayroll)
	}
}
