package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/logger"
)

const principalKey = "storefront.principal"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// AuthConfig describes the tokens issued by the identity provider.
type AuthConfig struct {
	Secret    string
	Issuer    string
	AdminRole string
	// CookieName, when set, is read for GET and HEAD requests that carry no
	// Authorization header. Browsers returning from the gateway only send cookies.
	CookieName string
}

// Claims are the JWT claims the storefront reads. The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Principal is the authenticated caller.
type Principal struct {
	UserID kernel.UUID
	Role   string
	Admin  bool
}

// JWTAuth verifies the HS256 bearer token and stores the caller's Principal
// in the echo context. Requests without a valid token get 401.
func JWTAuth(cfg AuthConfig) echo.MiddlewareFunc {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(opts...)
	key := []byte(cfg.Secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := authenticate(parser, key, cfg.AdminRole, credentials(c.Request(), cfg.CookieName))
			if err != nil {
				logger.FromContext(c.Request().Context()).Info("rejected request", zap.Error(err))
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(principalKey, principal)
			ctx := c.Request().Context()
			ctx = logger.WithContext(ctx, logger.FromContext(ctx).With(zap.String("user_id", principal.UserID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// credentials returns the Authorization header, or the token cookie rewritten
// as a bearer header. Unsafe methods never fall back to the cookie.
func credentials(req *http.Request, cookieName string) string {
	if header := req.Header.Get(echo.HeaderAuthorization); header != "" || cookieName == "" {
		return header
	}
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return ""
	}
	cookie, err := req.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return "Bearer " + cookie.Value
}

func authenticate(parser *jwt.Parser, key []byte, adminRole, header string) (Principal, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return Principal{}, ErrMissingToken
	}

	claims := &Claims{}
	if _, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
		return key, nil
	}); err != nil {
		return Principal{}, errors.Join(ErrInvalidToken, err)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, errors.Join(ErrInvalidToken, err)
	}

	return Principal{
		UserID: userID,
		Role:   claims.Role,
		Admin:  adminRole != "" && claims.Role == adminRole,
	}, nil
}

// PrincipalFrom returns the caller set by JWTAuth.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}
