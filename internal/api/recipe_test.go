package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/recipe-mgmt/recipe-storage/internal/auth"
	"github.com/recipe-mgmt/recipe-storage/internal/logger"
	"github.com/recipe-mgmt/recipe-storage/internal/middleware"
	"github.com/recipe-mgmt/recipe-storage/internal/mocks"
	"github.com/recipe-mgmt/recipe-storage/internal/service"
	"github.com/recipe-mgmt/recipe-storage/internal/store"
	"github.com/recipe-mgmt/recipe-storage/internal/types"
)

// stubVerifier accepts tokens of the form "token-<uid>".
type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, idToken string) (*auth.Principal, error) {
	if uid, ok := strings.CutPrefix(idToken, "token-"); ok {
		return &auth.Principal{UID: uid}, nil
	}
	return nil, auth.ErrInvalidToken
}

func setupRecipeTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewRecipeService(store.NewMemoryStore(), nil, logger.NewNop())
	return routerFor(NewRecipeHandler(svc, logger.NewNop()))
}

func routerFor(handler *RecipeHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthGate(stubVerifier{}, true, logger.NewNop()))
	RegisterHealthRoutes(router)
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func carbonaraBody() map[string]interface{} {
	return map[string]interface{}{
		"title":        "Spaghetti Carbonara",
		"ingredients":  []string{"400g spaghetti", "200g pancetta", "4 large eggs"},
		"instructions": []string{"Boil pasta", "Fry pancetta", "Mix"},
		"servings":     4,
		"source":       "manual",
	}
}

func createRecipe(t *testing.T, router *gin.Engine, token string) types.RecipeResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/recipes", token, carbonaraBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSaveAndFetchRecipe(t *testing.T) {
	router := setupRecipeTestRouter(t)

	created := createRecipe(t, router, "token-u1")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.OwnerUID)
	assert.False(t, created.IsPublic)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	w := doJSON(t, router, http.MethodGet, "/api/recipes/"+created.ID, "token-u1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
}

func TestSaveRecipeValidationFailure(t *testing.T) {
	router := setupRecipeTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/recipes", "token-u1", map[string]interface{}{
		"title":        "",
		"ingredients":  []string{},
		"instructions": []string{"x"},
		"servings":     0,
		"source":       "manual",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupRecipeTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/recipes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing or invalid Authorization header")

	w = doJSON(t, router, http.MethodGet, "/api/recipes", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Firebase ID token")
}

func TestGetRecipeCrossUser(t *testing.T) {
	router := setupRecipeTestRouter(t)
	created := createRecipe(t, router, "token-u1")

	w := doJSON(t, router, http.MethodGet, "/api/recipes/"+created.ID, "token-u2", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/recipes/does-not-exist", "token-u1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSharingLifecycle(t *testing.T) {
	router := setupRecipeTestRouter(t)
	created := createRecipe(t, router, "token-u1")

	// Non-owner cannot toggle sharing.
	w := doJSON(t, router, http.MethodPatch, "/api/recipes/"+created.ID+"/sharing", "token-u2",
		map[string]interface{}{"isPublic": true})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Body without the flag is rejected.
	w = doJSON(t, router, http.MethodPatch, "/api/recipes/"+created.ID+"/sharing", "token-u1",
		map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/api/recipes/"+created.ID+"/sharing", "token-u1",
		map[string]interface{}{"isPublic": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var shared types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shared))
	assert.True(t, shared.IsPublic)

	// Now readable by another user and listed publicly without auth.
	w = doJSON(t, router, http.MethodGet, "/api/recipes/"+created.ID, "token-u2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/recipes/public", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var public []types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	require.Len(t, public, 1)
	assert.Equal(t, created.ID, public[0].ID)

	// Public never grants write.
	w = doJSON(t, router, http.MethodPut, "/api/recipes/"+created.ID, "token-u2", carbonaraBody())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateRecipeEndpoint(t *testing.T) {
	router := setupRecipeTestRouter(t)
	created := createRecipe(t, router, "token-u1")

	body := carbonaraBody()
	body["title"] = "Carbonara Deluxe"
	body["prepTime"] = 15
	body["cookTime"] = 20

	w := doJSON(t, router, http.MethodPut, "/api/recipes/"+created.ID, "token-u1", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Carbonara Deluxe", updated.Title)
	assert.Equal(t, 35, updated.TotalTime)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	w = doJSON(t, router, http.MethodPut, "/api/recipes/missing", "token-u1", carbonaraBody())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListUserRecipesEndpoint(t *testing.T) {
	router := setupRecipeTestRouter(t)
	createRecipe(t, router, "token-u1")
	createRecipe(t, router, "token-u1")
	createRecipe(t, router, "token-u2")

	w := doJSON(t, router, http.MethodGet, "/api/recipes", "token-u1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	for _, r := range listed {
		assert.Equal(t, "u1", r.OwnerUID)
	}
}

func TestDeleteRecipeEndpoint(t *testing.T) {
	router := setupRecipeTestRouter(t)
	created := createRecipe(t, router, "token-u1")

	w := doJSON(t, router, http.MethodDelete, "/api/recipes/"+created.ID, "token-u2", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/recipes/"+created.ID, "token-u1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/recipes/"+created.ID, "token-u1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/recipes/"+created.ID, "token-u1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRecipeTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/actuator/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP"}`, w.Body.String())
}

func TestUpdateSharingStoreUnavailableMapsTo503(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	svc.On("UpdateSharing", mock.Anything, "r1", true, "u1").
		Return(nil, service.ErrUnavailable)
	router := routerFor(NewRecipeHandler(svc, logger.NewNop()))

	w := doJSON(t, router, http.MethodPatch, "/api/recipes/r1/sharing", "token-u1",
		map[string]interface{}{"isPublic": true})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	svc.AssertExpectations(t)
}

func TestUnexpectedServiceErrorMapsTo500(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	svc.On("GetRecipe", mock.Anything, "r1", "u1").
		Return(nil, errors.New("firestore decode failed"))
	router := routerFor(NewRecipeHandler(svc, logger.NewNop()))

	w := doJSON(t, router, http.MethodGet, "/api/recipes/r1", "token-u1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	svc.AssertExpectations(t)
}
