package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"tum-backend/internal/credentials"
	"tum-backend/internal/database"
	"tum-backend/internal/models"
)

type staticSource struct {
	store database.Store
	err   error
}

func (s staticSource) Store(context.Context) (database.Store, error) {
	return s.store, s.err
}

// brokenStore hands out collections whose every call fails.
type brokenStore struct{}

func (brokenStore) Collection(models.CollectionName) database.Collection { return brokenCollection{} }
func (brokenStore) Ping(context.Context) error { return errBroken }
func (brokenStore) EnsureIndexes(context.Context) error { return nil }
func (brokenStore) Close(context.Context) error { return nil }

var errBroken = errors.New("connection reset by peer 10.0.0.7:27017")

type brokenCollection struct{}

func (brokenCollection) Insert(context.Context, models.Document) (primitive.ObjectID, error) {
	return primitive.NilObjectID, errBroken
}
func (brokenCollection) FindOne(context.Context, models.Document) (models.Document, error) {
	return nil, errBroken
}
func (brokenCollection) FindAll(context.Context) ([]models.Document, error) { return nil, errBroken }
func (brokenCollection) UpdateFields(context.Context, primitive.ObjectID, models.Document) (int64, error) {
	return 0, errBroken
}
func (brokenCollection) DeleteOne(context.Context, primitive.ObjectID) (int64, error) {
	return 0, errBroken
}

func testDeps(store database.Store) Deps {
	return Deps{
		Stores: staticSource{store: store},
		Hasher: credentials.NewHasher(bcrypt.MinCost),
	}
}

func newAdminRouter(d Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admins", CreateAdmin(d))
	r.POST("/admin-login", AdminLogin(d))
	r.GET("/admins", GetAdmins(d))
	r.GET("/admins/:email", GetAdminByEmail(d))
	r.DELETE("/admins/:id", DeleteAdmin(d))
	r.PATCH("/admins/:id", UpdateAdminStatus(d))
	return r
}

func newResourceRouter(d Deps, res Resource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST(res.Path, CreateDocument(d, res))
	r.GET(res.Path, ListDocuments(d, res))
	r.GET(res.Path+"/:id", GetDocument(d, res))
	r.PATCH(res.Path+"/:id", UpdateDocument(d, res))
	r.DELETE(res.Path+"/:id", DeleteDocument(d, res))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func insertedID(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	result, ok := body["result"].(map[string]interface{})
	require.True(t, ok, "missing result in %v", body)
	id, ok := result["insertedId"].(string)
	require.True(t, ok, "missing insertedId in %v", result)
	require.True(t, models.IsValidID(id))
	return id
}
