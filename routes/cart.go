package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/kun-ahmadraza/Grocery-store/controllers/cart"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the cart pages and mutations. Add-to-cart and
// Buy-Now redirect anonymous users to log-in inside the handler.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/cart", cartControllers.ViewCart(db))
	r.POST("/update_quantity/:cart_id", cartControllers.UpdateQuantity(db))
	r.POST("/add_to_cart", cartControllers.AddToCart(db))
	r.POST("/Buy-Now", cartControllers.BuyNow(db))
}
