package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/logger"
	"github.com/kun-ahmadraza/Grocery-store/models"
	"gorm.io/gorm"
)

// DeleteProduct removes a product and its image rows in one transaction.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product images"})
			return
		}

		if err := tx.Delete(&product).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit product deletion"})
			return
		}

		logger.Info("product deleted", "id", product.ID, "name", product.Name)
		c.Redirect(http.StatusSeeOther, "/dashboard")
	}
}
