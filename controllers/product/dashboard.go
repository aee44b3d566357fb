package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/middleware"
	"github.com/kun-ahmadraza/Grocery-store/models"
	"gorm.io/gorm"
)

// Dashboard lists every product and every product image for the back
// office. The template joins them up; the handler just hands over the two
// flat lists.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}

		var images []models.ProductImage
		if err := db.Find(&images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load images"})
			return
		}

		cu, _ := middleware.UserFromContext(c)
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"products":     products,
			"image":        images,
			"current_user": cu,
		})
	}
}
