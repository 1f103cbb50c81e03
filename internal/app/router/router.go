// Package router wires the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "pantry_backend/internal/feature/auth/transport/handler"
	invhandler "pantry_backend/internal/feature/inventory/transport/handler"
	taxhandler "pantry_backend/internal/feature/taxonomy/transport/handler"
	jwtmw "pantry_backend/internal/platform/jwt"
	"pantry_backend/internal/shared/ratelimiter"
)

// Handlers bundles the feature handlers the router mounts.
type Handlers struct {
	Auth        *authhandler.AuthHandler
	Provision   *taxhandler.ProvisionHandler
	Taxonomy    *taxhandler.TaxonomyHandler
	Items       *invhandler.ItemHandler
	StorageArea *invhandler.StorageAreaHandler
	Location    *invhandler.LocationHandler
}

// NewRouter builds the gin engine with all routes mounted.
// Auth endpoints sit behind the rate limiter; everything except signup,
// login, health and taxonomy provisioning requires a JWT.
func NewRouter(h Handlers, jwtSecret string, authLimiter *ratelimiter.RateLimiter) *gin.Engine {
	r := gin.Default()

	// No auth required
	r.GET("/healthz", Health)
	r.HEAD("/healthz", Health)

	limited := r.Group("/")
	limited.Use(authLimiter.Middleware())
	{
		limited.POST("/signup", h.Auth.Signup)
		limited.POST("/login", h.Auth.Login)
	}

	// Provisioning runs right after signup, before the client holds a token,
	// so it accepts the user ID in the body instead of requiring a JWT.
	r.POST("/taxonomy/provision", h.Provision.Provision)

	// Routes requiring a JWT in the Authorization header
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.GET("/me", h.Auth.Me)

		auth.GET("/categories", h.Taxonomy.ListCategories)
		auth.POST("/categories", h.Taxonomy.CreateCategory)
		auth.PUT("/categories/:id", h.Taxonomy.RenameCategory)
		auth.DELETE("/categories/:id", h.Taxonomy.DeleteCategory)

		auth.GET("/subcategories", h.Taxonomy.ListSubcategories)
		auth.POST("/subcategories", h.Taxonomy.CreateSubcategory)
		auth.PUT("/subcategories/:id", h.Taxonomy.RenameSubcategory)
		auth.DELETE("/subcategories/:id", h.Taxonomy.DeleteSubcategory)

		auth.GET("/tags", h.Taxonomy.ListTags)
		auth.POST("/tags", h.Taxonomy.CreateTag)
		auth.DELETE("/tags/:id", h.Taxonomy.DeleteTag)

		auth.GET("/storage-areas", h.StorageArea.List)
		auth.POST("/storage-areas", h.StorageArea.Create)
		auth.PUT("/storage-areas/:id", h.StorageArea.Update)
		auth.DELETE("/storage-areas/:id", h.StorageArea.Delete)

		auth.GET("/locations", h.Location.List)
		auth.POST("/locations", h.Location.Create)
		auth.PUT("/locations/:id", h.Location.Update)
		auth.DELETE("/locations/:id", h.Location.Delete)

		auth.GET("/items", h.Items.List)
		auth.POST("/items", h.Items.Create)
		auth.PUT("/items", h.Items.Update)
		auth.DELETE("/items/:id", h.Items.Delete)
	}

	return r
}
