package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artisanverse/internal/data/store"
	"artisanverse/internal/usecase"
	"artisanverse/pkg/session"
	"artisanverse/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	st := store.NewStore(t.TempDir(), zap.NewNop())
	service := usecase.NewAuthService(st, zap.NewNop())
	config := &utils.Config{}
	config.App.Environment = "development"
	return NewAuthHandler(service, config, zap.NewNop())
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_SignupThenLogin(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.SignupArtisan, `{"name":"Ana","email":"ana@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Signup successful! You can now log in.", resp.Message)

	rec = postJSON(t, h.LoginArtisan, `{"email":"ana@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, session.CookieName, cookie.Name)
	assert.True(t, strings.HasPrefix(cookie.Value, "artisan:art-"), "cookie value %q", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.False(t, cookie.Secure)
}

func TestAuthHandler_SignupDuplicateEmail(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.SignupCustomer, `{"name":"Bo","email":"bo@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.SignupCustomer, `{"name":"Bo Two","email":"bo@x.com","password":"other12"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "An account with this email already exists.", resp.Message)
}

func TestAuthHandler_SignupInvalidForm(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.SignupArtisan, `{"name":"A","email":"nope","password":"12"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Invalid form data.", resp.Message)
	assert.NotEmpty(t, resp.Errors)
}

func TestAuthHandler_SignupMalformedBody(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.SignupArtisan, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_LoginFailuresLookAlike(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.SignupArtisan, `{"name":"Ana","email":"ana@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	unknown := postJSON(t, h.LoginArtisan, `{"email":"ghost@x.com","password":"secret1"}`)
	wrong := postJSON(t, h.LoginArtisan, `{"email":"ana@x.com","password":"wrong99"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, decodeResponse(t, unknown).Message, decodeResponse(t, wrong).Message)

	// No cookie on failure
	assert.Empty(t, unknown.Result().Cookies())
}

func TestAuthHandler_Logout(t *testing.T) {
	h := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
