package handler

import (
	"net/http"

	"github.com/vfg2006/wedsync-venue-api/internal/api/handler/router"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/dashboard"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/incident"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/seating"
	"github.com/vfg2006/wedsync-venue-api/internal/usecases/widget"
	"github.com/vfg2006/wedsync-venue-api/pkg/middleware"
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

func Authentication() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/auth/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Incidents(manager *incident.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/venues/:venueId/incidents",
			Method:      http.MethodPost,
			Handler:     SaveIncident(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/venues/:venueId/incidents",
			Method:      http.MethodGet,
			Handler:     ListIncidents(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/venues/:venueId/incidents/sync",
			Method:      http.MethodPost,
			Handler:     SyncIncidents(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/venues/:venueId/incidents",
			Method:      http.MethodDelete,
			Handler:     ClearIncidents(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordinator()},
		},
		{
			Path:        "/v1/connectivity",
			Method:      http.MethodPost,
			Handler:     SetConnectivity(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/connectivity",
			Method:      http.MethodGet,
			Handler:     GetConnectivity(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordinator()},
		},
		{
			Path:        "/v1/dashboard/attribution",
			Method:      http.MethodGet,
			Handler:     GetAttribution(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordinator()},
		},
		{
			Path:        "/v1/dashboard/campaigns",
			Method:      http.MethodGet,
			Handler:     GetCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordinator()},
		},
		{
			Path:        "/v1/dashboard/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:clientId/budget",
			Method:      http.MethodGet,
			Handler:     GetBudget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Seating(service seating.Seater) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/events/:eventId/seating",
			Method:      http.MethodGet,
			Handler:     GetSeating(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:eventId/seating/guests/:guestId",
			Method:      http.MethodPut,
			Handler:     AssignGuest(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordinator()},
		},
		{
			Path:        "/v1/events/:eventId/seating/guests/:guestId",
			Method:      http.MethodDelete,
			Handler:     UnassignGuest(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrCoordinator()},
		},
	}
}

func Widgets(catalog *widget.Catalog) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/widgets",
			Method:      http.MethodGet,
			Handler:     ListWidgets(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/widgets/:id",
			Method:      http.MethodGet,
			Handler:     GetWidget(catalog),
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
