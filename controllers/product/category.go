package productcontroller

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/logger"
	"github.com/kun-ahmadraza/Grocery-store/models"
	"gorm.io/gorm"
)

// CreateCategory saves the uploaded category image and inserts the row,
// then sends the admin back to the product form.
func CreateCategory(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("category_name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category_name is required"})
			return
		}

		file, err := c.FormFile("category_image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category_image is required"})
			return
		}

		path, err := saveUpload(c, file, filepath.Join(uploadsDir, "category"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		category := models.Category{
			Name:  name,
			Image: "/" + filepath.ToSlash(path),
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		logger.Info("category created", "id", category.ID, "name", category.Name)
		c.Redirect(http.StatusSeeOther, "/Add_product")
	}
}
