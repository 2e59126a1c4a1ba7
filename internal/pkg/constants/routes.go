package constants

// Static route constants
const (
	APIRoute   = "/api"
	HooksRoute = "/hooks"

	HookLoginRoute         = "/login"
	HookCompanyUpdateRoute = "/company-update"
)
