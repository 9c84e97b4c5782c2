package gateway_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogsite/internal/gateway"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// fakeBackend records the last request it received and answers with its name.
type fakeBackend struct {
	name      string
	server    *httptest.Server
	lastPath  string
	lastQuery string
	lastReqID string
}

func newFakeBackend(name string) *fakeBackend {
	b := &fakeBackend{name: name}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.lastPath = r.URL.Path
		b.lastQuery = r.URL.RawQuery
		b.lastReqID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(b.name))
	}))
	return b
}

func setupGateway(t *testing.T) (*fiber.App, *fakeBackend, *fakeBackend) {
	t.Helper()
	userBackend := newFakeBackend("user-service")
	blogBackend := newFakeBackend("blog-service")
	t.Cleanup(userBackend.server.Close)
	t.Cleanup(blogBackend.server.Close)

	app := fiber.New()
	router := gateway.New(userBackend.server.URL, blogBackend.server.URL)
	router.RegisterRoutes(app)
	return app, userBackend, blogBackend
}

func forward(t *testing.T, app *fiber.App, method, path string) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil), -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return string(raw)
}

func TestGatewayForwardsUserPaths(t *testing.T) {
	app, userBackend, _ := setupGateway(t)

	body := forward(t, app, http.MethodPost, "/api/v1.0/blogsite/user/register")
	assert.Equal(t, "user-service", body)
	assert.Equal(t, "/api/v1.0/blogsite/user/register", userBackend.lastPath)

	body = forward(t, app, http.MethodGet, "/api/v1.0/blogsite/user/john@example.com")
	assert.Equal(t, "user-service", body)

	body = forward(t, app, http.MethodGet, "/api/v1.0/blogsite/user/health")
	assert.Equal(t, "user-service", body)
}

// The blog service owns several paths under /user; those must not fall
// through to the user service.
func TestGatewayForwardsBlogPaths(t *testing.T) {
	app, _, blogBackend := setupGateway(t)

	body := forward(t, app, http.MethodPost, "/api/v1.0/blogsite/user/blogs/add/some-long-enough-blog-name")
	assert.Equal(t, "blog-service", body)
	assert.Equal(t, "/api/v1.0/blogsite/user/blogs/add/some-long-enough-blog-name", blogBackend.lastPath)

	body = forward(t, app, http.MethodGet, "/api/v1.0/blogsite/user/getall?authorName=johndoe")
	assert.Equal(t, "blog-service", body)
	assert.Equal(t, "authorName=johndoe", blogBackend.lastQuery)

	body = forward(t, app, http.MethodDelete, "/api/v1.0/blogsite/user/delete/some-long-enough-blog-name")
	assert.Equal(t, "blog-service", body)

	body = forward(t, app, http.MethodGet, "/api/v1.0/blogsite/blogs/info/some-category")
	assert.Equal(t, "blog-service", body)

	body = forward(t, app, http.MethodGet, "/api/v1.0/blogsite/blogs/get/cat/2024-01-01T00:00:00/2024-12-31T23:59:59")
	assert.Equal(t, "blog-service", body)

	body = forward(t, app, http.MethodGet, "/api/v1.0/blogsite/health")
	assert.Equal(t, "blog-service", body)
}

func TestGatewayAddsRequestID(t *testing.T) {
	app, userBackend, _ := setupGateway(t)

	forward(t, app, http.MethodGet, "/api/v1.0/blogsite/user/health")
	assert.NotEmpty(t, userBackend.lastReqID)

	// A client-supplied id is preserved
	req := httptest.NewRequest(http.MethodGet, "/api/v1.0/blogsite/user/health", nil)
	req.Header.Set("X-Request-Id", "client-id-1")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "client-id-1", userBackend.lastReqID)
}
