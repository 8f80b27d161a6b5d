package handler

type ContextKey string

var (
	RoleCtxKey     ContextKey = "role"
	UserIDCtxKey   ContextKey = "userID"
	ClaimsCtxKey   ContextKey = "claims"
	JobCtx         ContextKey = "job"
	ApplicationCtx ContextKey = "application"
)
