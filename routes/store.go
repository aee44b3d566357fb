package routes

import (
	"github.com/gin-gonic/gin"
	storeControllers "github.com/kun-ahmadraza/Grocery-store/controllers/store"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers the public browsing pages.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", storeControllers.Home(db))
	r.GET("/category/:name", storeControllers.CategoryProducts(db))
	r.GET("/checkout", storeControllers.CheckoutPage())
}
