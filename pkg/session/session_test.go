package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Session
		ok    bool
	}{
		{"artisan token", "artisan:art-1", Session{Role: RoleArtisan, UserID: "art-1"}, true},
		{"customer token", "customer:user-1", Session{Role: RoleCustomer, UserID: "user-1"}, true},
		{"id with colon", "artisan:art:1", Session{Role: RoleArtisan, UserID: "art:1"}, true},
		{"no colon", "artisanart-1", Session{}, false},
		{"unknown role", "admin:art-1", Session{}, false},
		{"empty id", "artisan:", Session{}, false},
		{"empty value", "", Session{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(rec, Session{Role: RoleArtisan, UserID: "art-1"}, false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, "artisan:art-1", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.False(t, c.Secure)
}

func TestSetCookie_SecureInProduction(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(rec, Session{Role: RoleCustomer, UserID: "user-1"}, true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/dashboard-artisan", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "artisan:art-1"})

	sess, ok := FromRequest(r)
	require.True(t, ok)
	assert.Equal(t, "art-1", sess.UserID)

	r = httptest.NewRequest(http.MethodGet, "/dashboard-artisan", nil)
	_, ok = FromRequest(r)
	assert.False(t, ok)
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearCookie(rec, false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
