package helpers

import (
	"mime/multipart"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const UploadDir = "uploads"

// SavePaymentImage stores the uploaded payment proof under a generated unique
// name and returns the relative reference that gets persisted with the order.
// The image itself is an opaque blob; nothing ever inspects its content.
func SavePaymentImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + filepath.Ext(file.Filename)
	path := filepath.Join(UploadDir, name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return filepath.ToSlash(path), nil
}
