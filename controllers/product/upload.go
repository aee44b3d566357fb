package productcontroller

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveUpload writes an uploaded file under dir with a uuid-derived name,
// keeping only the original extension. Two uploads with the same client
// filename never collide.
func saveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	path := filepath.Join(dir, name)

	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}
