package middleware

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/module/user/repositories"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/helpers"
	"camera-rental-service/internal/pkg/redis"
	"camera-rental-service/internal/pkg/token"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const roleAdmin = "ADMIN"

type Middleware struct {
	Log     *otelzap.Logger
	Repo    repositories.Repositories
	Token   *token.Manager
	Limiter redis.RateLimiter
	Limits  config.RateLimitConfig
}

// ValidateToken resolves the bearer token to a live user and exposes
// user_id (uuid.UUID), email_user and role as locals.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get(fiber.HeaderAuthorization)
	raw, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	claims, err := m.Token.Parse(strings.TrimSpace(raw))
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse token subject: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	// role comes from the row so elevation and deletion apply to issued tokens
	user, err := m.Repo.FindUserByID(ctx.UserContext(), userID)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error find token user: %v", err))
		return helpers.RespError(ctx, m.Log, err)
	}
	if user.ID == uuid.Nil {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token, unknown user")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", user.ID)
	ctx.Locals("email_user", user.Email)
	ctx.Locals("role", user.Role)

	return ctx.Next()
}

func (m *Middleware) RequireAdmin(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != roleAdmin {
		m.Log.Ctx(ctx.UserContext()).Error("error access admin route")
		return helpers.RespError(ctx, m.Log, errors.Forbidden("admin role required"))
	}

	return ctx.Next()
}

// RateLimit caps requests per client ip and route. Redis failures let the request through.
func (m *Middleware) RateLimit(ctx *fiber.Ctx) error {
	if !m.Limits.Enabled || m.Limiter == nil {
		return ctx.Next()
	}

	key := ctx.IP() + ":" + ctx.Route().Path
	allowed, err := m.Limiter.Allow(ctx.UserContext(), key, m.Limits.Limit, m.Limits.Window)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error check rate limit: %v", err))
		return ctx.Next()
	}
	if !allowed {
		ctx.Set(fiber.HeaderRetryAfter, fmt.Sprintf("%d", int(m.Limits.Window.Seconds())))
		return helpers.RespError(ctx, m.Log, errors.TooManyRequests("rate limit exceeded"))
	}

	return ctx.Next()
}
