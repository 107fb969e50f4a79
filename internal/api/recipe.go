package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipe-mgmt/recipe-storage/internal/logger"
	"github.com/recipe-mgmt/recipe-storage/internal/service"
	"github.com/recipe-mgmt/recipe-storage/internal/types"
)

// RecipeHandler exposes the recipe service over HTTP. Handlers are thin:
// parse and validate the body, read the authenticated uid, call the service,
// map errors to statuses.
type RecipeHandler struct {
	service service.IRecipeService
	log     *logger.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(svc service.IRecipeService, log *logger.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: svc,
		log:     log.With("component", "recipe-handler"),
	}
}

// RegisterRoutes mounts the recipe endpoints on the given group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("", h.SaveRecipe)
		recipes.GET("", h.ListUserRecipes)
		recipes.GET("/public", h.ListPublicRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.PATCH("/:id/sharing", h.UpdateSharing)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.SaveRecipe(c.Request.Context(), &req, uid)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RecipeHandler) ListUserRecipes(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	recipes, err := h.service.ListUserRecipes(c.Request.Context(), uid)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) ListPublicRecipes(c *gin.Context) {
	recipes, err := h.service.ListPublicRecipes(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetRecipe(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.UpdateRecipe(c.Request.Context(), c.Param("id"), &req, uid)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) UpdateSharing(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	var req types.UpdateSharingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.UpdateSharing(c.Request.Context(), c.Param("id"), *req.IsPublic, uid)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRecipe(c.Request.Context(), c.Param("id"), uid); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// callerUID reads the uid the authentication gate attached. A missing uid on
// a protected route means the gate was bypassed, which is a 401.
func callerUID(c *gin.Context) (string, bool) {
	uid := c.GetString("user_id")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return uid, true
}

// writeError maps service errors to HTTP statuses.
func (h *RecipeHandler) writeError(c *gin.Context, err error) {
	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Recipe id conflict"})
	case errors.Is(err, service.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recipe store unavailable"})
	default:
		h.log.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
