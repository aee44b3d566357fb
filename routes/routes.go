package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/config"
	"github.com/kun-ahmadraza/Grocery-store/middleware"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// cart, account, back-office and order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Every handler sees the current user resolved from the session cookie.
	r.Use(middleware.CurrentUser())

	SetupStoreRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupAccountRoutes(r, db, cfg)
	SetupDashboardRoutes(r, db, cfg)
	SetupOrderRoutes(r, db)
}
