package helpers

import (
	"go-stall-management/models"

	"github.com/gin-gonic/gin"
)

// MaskPhone reduces a phone number to its last 4 characters, the only form
// shown outside the admin listing. Shorter values come back unchanged and an
// empty phone stays empty.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return phone[len(phone)-4:]
}

// PublicWaitingView is the projection of a waiting entry safe for anyone to
// see, including the acknowledgment sent back to the submitter.
func PublicWaitingView(e models.Waiting) gin.H {
	return gin.H{
		"id":        e.ID,
		"name":      e.Name,
		"tableSize": e.Table_size,
		"timestamp": e.Timestamp,
		"phone":     MaskPhone(e.Phone),
	}
}

// AdminWaitingView exposes the full phone number so staff can call customers.
func AdminWaitingView(e models.Waiting) gin.H {
	return gin.H{
		"id":        e.ID,
		"name":      e.Name,
		"phone":     e.Phone,
		"tableSize": e.Table_size,
		"timestamp": e.Timestamp,
	}
}
