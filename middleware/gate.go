package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/models"
)

// Login entry points per gate role and dashboards per resolved role. Wrong
// visitors are routed to where they belong, never shown a denial page.
var (
	loginPaths = map[models.CanonicalRole]string{
		models.RoleProfessional: "/login/professional",
		models.RoleCustomer:     "/login/customer",
		models.RoleAdmin:        "/login/admin",
	}
	dashboardPaths = map[models.CanonicalRole]string{
		models.RoleCustomer:     "/customer/dashboard",
		models.RoleProfessional: "/professional/dashboard",
		models.RoleAdmin:        "/admin/dashboard",
	}
)

// RequireRole is the single parametrized access gate. Its decision flow:
//
//   - no usable session token: redirect to the login page implied by the
//     gate's own required role (the visitor's role is unknown at this point)
//   - identity not yet resolvable (profile store unreachable): hold with 503,
//     no navigation decision is made while loading
//   - resolved but wrong role: redirect to the dashboard of the visitor's
//     actual role (admins included; they belong on the admin dashboard, not
//     behind another role's gate)
//   - resolved and matching: grant, exposing the resolution in locals
func RequireRole(required models.CanonicalRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, claimRole, ok := parseBearer(c)
		if !ok {
			return c.Redirect(loginPathFor(required), fiber.StatusFound)
		}

		res := resolve(userID, claimRole)
		if !res.Resolved() {
			c.Set("Retry-After", "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"message": "Session is still being resolved, try again",
			})
		}

		if res.Role != required {
			return c.Redirect(dashboardPathFor(res.Role), fiber.StatusFound)
		}

		c.Locals("userID", res.UserID)
		c.Locals("identity", res)
		return c.Next()
	}
}

func loginPathFor(required models.CanonicalRole) string {
	if path, ok := loginPaths[required]; ok {
		return path
	}
	return "/login/customer"
}

func dashboardPathFor(role models.CanonicalRole) string {
	if path, ok := dashboardPaths[role]; ok {
		return path
	}
	return "/"
}

// parseBearer extracts and verifies the session token from the Authorization
// header. ok is false for missing, malformed or expired tokens.
func parseBearer(c *fiber.Ctx) (userID uint, claimRole string, ok bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return 0, "", false
	}

	token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
		if _, isHMAC := t.Method.(*jwt.SigningMethodHMAC); !isHMAC {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}
	claims, okClaims := token.Claims.(jwt.MapClaims)
	if !okClaims {
		return 0, "", false
	}
	userID, err = extractUserID(claims)
	if err != nil {
		return 0, "", false
	}
	return userID, extractRoleClaim(claims), true
}

// resolve merges the token claim with the stored users row; the stored role
// wins when both exist. A store failure (other than a missing row) leaves the
// identity Unknown rather than denied.
func resolve(userID uint, claimRole string) models.Resolution {
	var user models.User
	err := db.DB.First(&user, userID).Error
	switch {
	case err == nil:
		return models.ResolveIdentity(userID, claimRole, &user)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ResolveIdentity(userID, claimRole, nil)
	default:
		return models.UnknownResolution(userID)
	}
}
