package handler

import (
	"net/http"

	"github.com/dfcastro/commission-tracker-api/internal/api/handler/router"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/authenticating"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/goaling"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/reporting"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/scheduling"
	"github.com/dfcastro/commission-tracker-api/internal/usecases/selling"
	"github.com/dfcastro/commission-tracker-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sales(service selling.Seller) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodGet,
			Handler:     GetSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Goals(service goaling.GoalManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/goals",
			Method:      http.MethodGet,
			Handler:     ListGoals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals",
			Method:      http.MethodPut,
			Handler:     SetGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/goals/sellers/:id",
			Method:      http.MethodGet,
			Handler:     GetSellerGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/sellers/:id",
			Method:      http.MethodGet,
			Handler:     GetSellerReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/team",
			Method:      http.MethodGet,
			Handler:     GetTeamReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/reports/snapshots",
			Method:      http.MethodGet,
			Handler:     ListMonthlySnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/reports/snapshots/sellers/:id",
			Method:      http.MethodGet,
			Handler:     GetMonthlySnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Schedules(service scheduling.ScheduleManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/schedules",
			Method:      http.MethodGet,
			Handler:     ListSchedules(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/schedules",
			Method:      http.MethodPost,
			Handler:     CreateSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/schedules/:id",
			Method:      http.MethodGet,
			Handler:     GetSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/schedules/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/schedules/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/schedules/:id/messages",
			Method:      http.MethodGet,
			Handler:     ListScheduleMessages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
