package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/models"
)

func openTestDB(t *testing.T, migrate bool) {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	if migrate {
		require.NoError(t, database.AutoMigrate(&models.User{}))
	}
	db.DB = database
}

func gateApp(required models.CanonicalRole) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", RequireRole(required), func(c *fiber.Ctx) error {
		identity := c.Locals("identity").(models.Resolution)
		return c.JSON(fiber.Map{"role": identity.Role})
	})
	return app
}

func tokenFor(t *testing.T, userID uint, roleClaim string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":   userID,
		"role": roleClaim,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	require.NoError(t, err)
	return "Bearer " + tok
}

func request(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGate_UnauthenticatedRedirectsToGateLogin(t *testing.T) {
	openTestDB(t, true)

	resp := request(t, gateApp(models.RoleProfessional), "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login/professional", resp.Header.Get("Location"))

	resp = request(t, gateApp(models.RoleCustomer), "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login/customer", resp.Header.Get("Location"))
}

func TestGate_MalformedTokenRedirectsToGateLogin(t *testing.T) {
	openTestDB(t, true)

	resp := request(t, gateApp(models.RoleProfessional), "Bearer not-a-token")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login/professional", resp.Header.Get("Location"))
}

func TestGate_WrongRoleRedirectsToOwnDashboard(t *testing.T) {
	openTestDB(t, true)
	require.NoError(t, db.DB.Create(&models.User{ID: 1, Email: "c@example.com", Role: "cliente"}).Error)

	resp := request(t, gateApp(models.RoleProfessional), tokenFor(t, 1, "cliente"))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/customer/dashboard", resp.Header.Get("Location"))
}

func TestGate_MatchingRoleIsGranted(t *testing.T) {
	openTestDB(t, true)
	require.NoError(t, db.DB.Create(&models.User{ID: 2, Email: "p@example.com", Role: "profesional"}).Error)

	resp := request(t, gateApp(models.RoleProfessional), tokenFor(t, 2, "profesional"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGate_StoredRoleOverridesClaim(t *testing.T) {
	openTestDB(t, true)
	// The users row says professional even though the stale token says customer.
	require.NoError(t, db.DB.Create(&models.User{ID: 3, Email: "p2@example.com", Role: "professional"}).Error)

	resp := request(t, gateApp(models.RoleProfessional), tokenFor(t, 3, "cliente"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGate_AdminRedirectsToAdminDashboard(t *testing.T) {
	openTestDB(t, true)
	require.NoError(t, db.DB.Create(&models.User{ID: 4, Email: "a@example.com", Role: "admin"}).Error)

	// Admins never pass another role's gate; they are sent to their own
	// dashboard like any other mismatched visitor.
	resp := request(t, gateApp(models.RoleProfessional), tokenFor(t, 4, "admin"))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/dashboard", resp.Header.Get("Location"))

	resp = request(t, gateApp(models.RoleCustomer), tokenFor(t, 4, "admin"))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/dashboard", resp.Header.Get("Location"))

	resp = request(t, gateApp(models.RoleAdmin), tokenFor(t, 4, "admin"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGate_UnresolvedIdentityHoldsWithoutDenial(t *testing.T) {
	// No users table at all: the profile lookup fails, the identity stays
	// unknown, and the gate must hold rather than redirect.
	openTestDB(t, false)

	resp := request(t, gateApp(models.RoleProfessional), tokenFor(t, 5, "profesional"))
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))
}
