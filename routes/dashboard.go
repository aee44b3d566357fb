package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/config"
	productController "github.com/kun-ahmadraza/Grocery-store/controllers/product"
	"gorm.io/gorm"
)

// SetupDashboardRoutes registers the back-office pages: product and
// category creation, the dashboard listing, deletion and the Excel export.
func SetupDashboardRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.GET("/Add_product", productController.AddProductForm(db))
	r.POST("/Add_product", productController.CreateProduct(db, cfg.Uploads.Dir))

	r.POST("/add-category", productController.CreateCategory(db, cfg.Uploads.Dir))

	r.GET("/dashboard", productController.Dashboard(db))
	r.GET("/dashboard/export", productController.ExportProducts(db))

	r.POST("/delete_product/:id", productController.DeleteProduct(db))
}
