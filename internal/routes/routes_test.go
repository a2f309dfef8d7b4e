package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"tum-backend/internal/credentials"
	"tum-backend/internal/database"
	"tum-backend/internal/handlers"
)

func newTestServer(t *testing.T) (*gin.Engine, *int32) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var opens int32
	memory := database.NewMemoryStore()
	provider := database.NewProvider(func(ctx context.Context) (database.Store, error) {
		atomic.AddInt32(&opens, 1)
		return memory, nil
	})

	d := handlers.Deps{
		Stores: provider,
		Hasher: credentials.NewHasher(bcrypt.MinCost),
	}
	return NewRouter(d, []string{"*"}), &opens
}

func call(t *testing.T, r http.Handler, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestAdminRegistrationAndLogin(t *testing.T) {
	r, _ := newTestServer(t)

	status, body := call(t, r, http.MethodPost, "/admins", map[string]string{"email": "a@x.com", "password": "secret"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "a@x.com", body["email"])

	status, body = call(t, r, http.MethodPost, "/admin-login", map[string]string{"email": "a@x.com", "password": "secret"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", body["message"])
	assert.Equal(t, "a@x.com", body["email"])

	status, _ = call(t, r, http.MethodPost, "/admin-login", map[string]string{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDuplicateEmailRegardlessOfOtherFields(t *testing.T) {
	r, _ := newTestServer(t)

	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	for _, email := range emails {
		status, _ := call(t, r, http.MethodPost, "/admins", map[string]string{"email": email, "password": "p1"})
		require.Equal(t, http.StatusOK, status)
	}
	for _, email := range emails {
		status, body := call(t, r, http.MethodPost, "/admins", map[string]string{
			"email": email, "password": "other", "name": "someone else",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "An admin with this email already exists", body["message"])
	}
}

func TestAdminStatusAndDeleteShareIDPath(t *testing.T) {
	r, _ := newTestServer(t)

	_, body := call(t, r, http.MethodPost, "/admins", map[string]string{"email": "a@x.com", "password": "secret"})
	id := body["result"].(map[string]interface{})["insertedId"].(string)

	status, _ := call(t, r, http.MethodPatch, "/admins/"+id, map[string]string{"status": "agent"})
	assert.Equal(t, http.StatusOK, status)

	status, doc := call(t, r, http.MethodGet, "/admins/a@x.com", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "agent", doc["status"])

	status, _ = call(t, r, http.MethodDelete, "/admins/"+id, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, r, http.MethodGet, "/admins/a@x.com", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRegisteredRoutes(t *testing.T) {
	r, _ := newTestServer(t)
	id := primitive.NewObjectID().Hex()

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/notifections", http.StatusOK},
		{http.MethodGet, "/notifections/" + id, http.StatusNotFound},
		{http.MethodDelete, "/notifections/" + id, http.StatusNotFound},
		{http.MethodGet, "/carouseldata", http.StatusNotFound},
		{http.MethodPatch, "/carouseldata/" + id, http.StatusNotFound},
		{http.MethodGet, "/about_text", http.StatusNotFound},
		{http.MethodDelete, "/about_text/" + id, http.StatusNotFound},
		{http.MethodGet, "/basic_info", http.StatusNotFound},
		{http.MethodPatch, "/basic_info/" + id, http.StatusNotFound},
		{http.MethodDelete, "/about_text/bad", http.StatusBadRequest},
		{http.MethodDelete, "/admins/bad", http.StatusBadRequest},
		{http.MethodDelete, "/admins/" + id, http.StatusNotFound},
		{http.MethodGet, "/admins", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
	}

	for _, tc := range cases {
		status, _ := call(t, r, tc.method, tc.path, map[string]string{"field": "value"})
		assert.Equal(t, tc.status, status, "%s %s", tc.method, tc.path)
	}
}

func TestHomeAndCORS(t *testing.T) {
	r, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://tum.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "API is working!", w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStoreOpenedOnceAcrossRequests(t *testing.T) {
	r, opens := newTestServer(t)

	assert.Equal(t, int32(0), atomic.LoadInt32(opens))
	call(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, int32(0), atomic.LoadInt32(opens))

	for i := 0; i < 5; i++ {
		call(t, r, http.MethodGet, "/admins", nil)
		call(t, r, http.MethodGet, "/notifections", nil)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(opens))
}
