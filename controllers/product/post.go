package productcontroller

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/logger"
	"github.com/kun-ahmadraza/Grocery-store/middleware"
	"github.com/kun-ahmadraza/Grocery-store/models"
	"gorm.io/gorm"
)

// AddProductForm renders the product-creation form with the category list.
func AddProductForm(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
			return
		}

		cu, _ := middleware.UserFromContext(c)
		c.HTML(http.StatusOK, "add_product.html", gin.H{
			"categories":   categories,
			"current_user": cu,
		})
	}
}

// CreateProduct inserts the product row, then saves every uploaded image
// into the uploads dir and records a ProductImage row per file.
func CreateProduct(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		stockStr := c.PostForm("stock")
		categoryName := c.PostForm("category_name")
		if name == "" || priceStr == "" || categoryName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and category_name are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var stock int
		if stockStr != "" {
			if stock, err = strconv.Atoi(stockStr); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		product := models.Product{
			Name:         name,
			Price:        price,
			Stock:        stock,
			Description:  c.PostForm("description"),
			CategoryName: categoryName,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}

		var saved []string
		for _, file := range form.File["images"] {
			path, err := saveUpload(c, file, uploadsDir)
			if err != nil {
				logger.Error("failed to save product image", "file", file.Filename, "err", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}

			img := models.ProductImage{
				ProductID: product.ID,
				ImageURL:  filepath.ToSlash(path),
			}
			if err := db.Create(&img).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image record"})
				return
			}
			saved = append(saved, file.Filename)
		}

		logger.Info("product created", "id", product.ID, "name", product.Name, "images", len(saved))

		var categories []models.Category
		db.Find(&categories)

		cu, _ := middleware.UserFromContext(c)
		c.HTML(http.StatusOK, "add_product.html", gin.H{
			"product":      product,
			"images":       saved,
			"success":      true,
			"categories":   categories,
			"current_user": cu,
		})
	}
}
