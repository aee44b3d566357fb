package storeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/middleware"
	"github.com/kun-ahmadraza/Grocery-store/models"
	"gorm.io/gorm"
)

// Home lists every category on the landing page.
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
			return
		}

		cu, _ := middleware.UserFromContext(c)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"category":     categories,
			"current_user": cu,
		})
	}
}

// CategoryProducts lists a single category's products. An unknown category
// name gets a plain-text 404, not a template.
func CategoryProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		var category models.Category
		if err := db.Where("name = ?", name).First(&category).Error; err != nil {
			c.String(http.StatusNotFound, "Category Not Found")
			return
		}

		var products []models.Product
		if err := db.Preload("Images").Where("category_name = ?", name).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}

		cu, _ := middleware.UserFromContext(c)
		c.HTML(http.StatusOK, "cat_products.html", gin.H{
			"category":     category,
			"products":     products,
			"current_user": cu,
		})
	}
}

// CheckoutPage renders the bare checkout shell.
func CheckoutPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		cu, _ := middleware.UserFromContext(c)
		c.HTML(http.StatusOK, "checkout.html", gin.H{
			"current_user": cu,
		})
	}
}
