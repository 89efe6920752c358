// file: internals/features/users/auth/controller/auth_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"medlearn_backend/internals/configs"
	authRoute "medlearn_backend/internals/features/users/auth/route"
	userModel "medlearn_backend/internals/features/users/user/model"
	"medlearn_backend/internals/testutil"
)

const testSecret = "test-secret"

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = testSecret

	db := testutil.OpenDB(t)
	app := testutil.NewApp(t)
	authRoute.AuthRoutes(app.Group("/api/v1"), db)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, email, password, role string) userModel.UserModel {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := userModel.UserModel{
		Name:     "Dr. Example",
		Email:    email,
		Phone:    "+6281234567890",
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func postLogin(t *testing.T, app *fiber.App, payload any) (int, map[string]any) {
	t.Helper()
	buf, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

func TestLoginSuccessIssuesJWT(t *testing.T) {
	app, db := newAuthApp(t)
	seedUser(t, db, "doc@example.com", "correct", userModel.RoleDoctor)

	status, body := postLogin(t, app, fiber.Map{
		"identifier": "doc@example.com",
		"password":   "correct",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	tokenStr, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, tokenStr)

	tok, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	require.Equal(t, "doctor", claims["role"])
	require.Equal(t, "doc@example.com", claims["email"])
	require.Equal(t, "Dr. Example", claims["name"])
	require.NotEmpty(t, claims["sub"])
	require.NotEmpty(t, claims["phone"])

	user := data["user"].(map[string]any)
	require.Equal(t, "doc@example.com", user["email"])
	_, leaked := user["password"]
	require.False(t, leaked)
}

func TestLoginByPhoneIdentifier(t *testing.T) {
	app, db := newAuthApp(t)
	seedUser(t, db, "doc@example.com", "correct", userModel.RoleDoctor)

	status, body := postLogin(t, app, fiber.Map{
		"identifier": "+6281234567890",
		"password":   "correct",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["success"])
}

func TestLoginWrongPassword(t *testing.T) {
	app, db := newAuthApp(t)
	seedUser(t, db, "doc@example.com", "correct", userModel.RoleDoctor)

	status, body := postLogin(t, app, fiber.Map{
		"identifier": "doc@example.com",
		"password":   "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, false, body["success"])
}

func TestLoginUnknownUser(t *testing.T) {
	app, _ := newAuthApp(t)

	status, body := postLogin(t, app, fiber.Map{
		"identifier": "nobody@example.com",
		"password":   "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, false, body["success"])
}

func TestLoginMissingFields(t *testing.T) {
	app, _ := newAuthApp(t)

	status, body := postLogin(t, app, fiber.Map{"identifier": "doc@example.com"})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, false, body["success"])

	status, body = postLogin(t, app, fiber.Map{"password": "correct"})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, false, body["success"])
}

func TestLoginInactiveAccount(t *testing.T) {
	app, db := newAuthApp(t)
	u := seedUser(t, db, "doc@example.com", "correct", userModel.RoleDoctor)
	require.NoError(t, db.Model(&u).Update("is_active", false).Error)

	status, body := postLogin(t, app, fiber.Map{
		"identifier": "doc@example.com",
		"password":   "correct",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, false, body["success"])
}
