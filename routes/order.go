package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/kun-ahmadraza/Grocery-store/controllers/order"
	"github.com/kun-ahmadraza/Grocery-store/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers checkout completion and the dashboard's live
// order feed.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/place_order", middleware.RequireUser(), orderControllers.PlaceOrder(db))
	r.GET("/ws/orders", orderControllers.OrderFeed)
}
