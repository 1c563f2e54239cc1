package handler

import (
	"net/http"

	"github.com/vfg2006/adcreative-api/internal/api/handler/router"
	"github.com/vfg2006/adcreative-api/internal/usecases/account"
	"github.com/vfg2006/adcreative-api/internal/usecases/authenticating"
	"github.com/vfg2006/adcreative-api/internal/usecases/billing"
	"github.com/vfg2006/adcreative-api/internal/usecases/generating"
	"github.com/vfg2006/adcreative-api/internal/usecases/insighting"
	"github.com/vfg2006/adcreative-api/internal/usecases/project"
	"github.com/vfg2006/adcreative-api/pkg/metrics"
	"github.com/vfg2006/adcreative-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/signup",
			Method:  http.MethodPost,
			Handler: SignUp(service),
		},
		{
			Path:    "/v1/auth/signin",
			Method:  http.MethodPost,
			Handler: SignIn(service),
		},
		{
			Path:    "/v1/auth/signout",
			Method:  http.MethodPost,
			Handler: SignOut(service),
		},
		{
			Path:    "/v1/auth/session",
			Method:  http.MethodGet,
			Handler: GetSession(service),
		},
	}
}

func Me(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/me/profile",
			Method:  http.MethodGet,
			Handler: GetProfile(service),
		},
		{
			Path:    "/v1/me/profile",
			Method:  http.MethodPut,
			Handler: UpdateProfile(service),
		},
		{
			Path:    "/v1/me/subscription",
			Method:  http.MethodPut,
			Handler: SetSubscription(service),
		},
		{
			Path:    "/v1/me/social-accounts",
			Method:  http.MethodGet,
			Handler: ListSocialAccounts(service),
		},
		{
			Path:    "/v1/me/social-accounts",
			Method:  http.MethodPost,
			Handler: AddSocialAccount(service),
		},
		{
			Path:    "/v1/me/social-accounts/:id",
			Method:  http.MethodDelete,
			Handler: RemoveSocialAccount(service),
		},
	}
}

func Social(service account.Interface) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/social/:platform/oauth-url",
			Method:  http.MethodGet,
			Handler: GetOAuthURL(service),
		},
		{
			Path:    "/v1/social/:platform/connect",
			Method:  http.MethodPost,
			Handler: ConnectAccounts(service),
		},
	}
}

func Workspace(service project.Interface) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/workspace",
			Method:  http.MethodGet,
			Handler: GetWorkspace(service),
		},
		{
			Path:    "/v1/workspace",
			Method:  http.MethodDelete,
			Handler: ResetWorkspace(service),
		},
		{
			Path:    "/v1/workspace/current",
			Method:  http.MethodPut,
			Handler: SetCurrentProject(service),
		},
		{
			Path:    "/v1/workspace/error",
			Method:  http.MethodDelete,
			Handler: ClearWorkspaceError(service),
		},
	}
}

func Projects(service project.Interface, insights insighting.Interface) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects",
			Method:  http.MethodGet,
			Handler: ListProjects(service),
		},
		{
			Path:    "/v1/projects",
			Method:  http.MethodPost,
			Handler: CreateProject(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodGet,
			Handler: GetProject(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodPut,
			Handler: UpdateProject(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProject(service),
		},
		{
			Path:    "/v1/projects/:id/variations",
			Method:  http.MethodPost,
			Handler: GenerateAdVariations(service),
		},
		{
			Path:    "/v1/projects/:id/analytics",
			Method:  http.MethodGet,
			Handler: GetProjectAnalytics(service),
		},
		{
			Path:    "/v1/projects/:id/insights",
			Method:  http.MethodPost,
			Handler: GetProjectInsights(insights),
		},
		{
			Path:    "/v1/ad-variations/:id/post",
			Method:  http.MethodPost,
			Handler: PostAdVariation(service),
		},
		{
			Path:    "/v1/ad-variations/:id/metrics",
			Method:  http.MethodPut,
			Handler: UpdateAdVariationMetrics(service),
		},
	}
}

func AI(service generating.Interface) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ai/ad-copy",
			Method:  http.MethodPost,
			Handler: GenerateAdCopy(service),
		},
		{
			Path:    "/v1/ai/image-variations",
			Method:  http.MethodPost,
			Handler: GenerateImageVariations(service),
		},
		{
			Path:    "/v1/ai/enhance",
			Method:  http.MethodPost,
			Handler: EnhanceImage(service),
		},
		{
			Path:    "/v1/ai/remove-background",
			Method:  http.MethodPost,
			Handler: RemoveBackground(service),
		},
	}
}

func Billing(service billing.Interface) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/billing/plans",
			Method:  http.MethodGet,
			Handler: ListPlans(service),
		},
		{
			Path:    "/v1/billing/checkout",
			Method:  http.MethodPost,
			Handler: CreateCheckoutSession(service),
		},
		{
			Path:    "/v1/billing/portal",
			Method:  http.MethodPost,
			Handler: CreatePortalSession(service),
		},
		{
			Path:    "/v1/billing/subscriptions/:id",
			Method:  http.MethodGet,
			Handler: GetSubscription(service),
		},
		{
			Path:    "/v1/billing/subscriptions/:id/cancel",
			Method:  http.MethodPost,
			Handler: CancelSubscription(service),
		},
		{
			Path:    "/v1/billing/subscriptions/:id/update",
			Method:  http.MethodPost,
			Handler: UpdateSubscription(service),
		},
		{
			Path:    "/v1/billing/usage",
			Method:  http.MethodGet,
			Handler: GetUsageStats(service),
		},
		{
			Path:    "/v1/billing/limits",
			Method:  http.MethodPost,
			Handler: CheckPlanLimits(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/jobs/:type/run",
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
