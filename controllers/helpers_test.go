package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/nmwangi/savoria/initializers"
	"github.com/nmwangi/savoria/routes"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer assembles the full route table over a private in-memory
// store, mirroring the wiring in main.go.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, initializers.SyncDatabase(db))

	server := gin.New()
	server.Use(sessions.Sessions("savoria_session", cookie.NewStore([]byte("test-secret"))))
	server.LoadHTMLGlob("../templates/*.html")

	routes.PageRoutes(server)
	routes.AuthRoutes(server, db)
	routes.ProfileRoutes(server, db)
	routes.CartRoutes(server, db)

	return server, db
}

func doRequest(t *testing.T, server *gin.Engine, method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

// mergeCookies folds the cookies set by a response into the jar, replacing
// same-named entries so the latest session state wins.
func mergeCookies(jar []*http.Cookie, result *http.Response) []*http.Cookie {
	for _, fresh := range result.Cookies() {
		replaced := false
		for i, existing := range jar {
			if existing.Name == fresh.Name {
				jar[i] = fresh
				replaced = true
				break
			}
		}
		if !replaced {
			jar = append(jar, fresh)
		}
	}
	return jar
}

func registerForm(email, password string) url.Values {
	return url.Values{
		"email":        {email},
		"password":     {password},
		"fullname":     {"Jane Mwangi"},
		"phone_number": {"+254700000001"},
		"country":      {"Kenya"},
		"state":        {"Nairobi"},
		"home_address": {"12 Riverside Drive"},
		"picture":      {""},
	}
}

func registerUser(t *testing.T, server *gin.Engine, email, password string) {
	t.Helper()
	recorder := doRequest(t, server, http.MethodPost, "/register", registerForm(email, password), nil)
	require.Equal(t, http.StatusFound, recorder.Code)
	require.Equal(t, "/login", recorder.Header().Get("Location"))
}

// loginUser authenticates and returns the cookie jar carrying the session.
func loginUser(t *testing.T, server *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}
	recorder := doRequest(t, server, http.MethodPost, "/login", form, nil)
	require.Equal(t, http.StatusFound, recorder.Code)
	require.Equal(t, "/profile", recorder.Header().Get("Location"))
	return mergeCookies(nil, recorder.Result())
}
