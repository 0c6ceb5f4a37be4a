package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-stall-management/helpers"
	"go-stall-management/models"

	"github.com/gin-gonic/gin"
)

// WaitingStore is the persistence boundary for the waiting queue.
type WaitingStore interface {
	Insert(ctx context.Context, entry models.Waiting) (models.Waiting, error)
	List(ctx context.Context) ([]models.Waiting, error)
	Get(ctx context.Context, id int) (models.Waiting, error)
	Delete(ctx context.Context, id int) error
}

type WaitingForm struct {
	Name       string `form:"name" validate:"required"`
	Table_size int    `form:"tableSize" validate:"required,min=1"`
	Phone      string `form:"phone" validate:"required"`
	Consent    bool   `form:"consent" validate:"required"`
}

func AddWaiting(store WaitingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form WaitingForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// required on Consent also rejects consent=false: joining without
		// agreeing to the privacy terms is not accepted.
		validationErr := validate.Struct(&form)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		entry := models.Waiting{
			Name:       form.Name,
			Phone:      form.Phone,
			Table_size: form.Table_size,
			Timestamp:  time.Now().Format(time.RFC3339),
			Consent:    form.Consent,
		}

		created, err := store.Insert(c.Request.Context(), entry)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "waiting entry was not created"})
			return
		}

		// The acknowledgment never echoes the full number back, matching the
		// public listing.
		c.JSON(http.StatusOK, gin.H{"message": "ok", "entry": helpers.PublicWaitingView(created)})
	}
}

func GetWaiting(store WaitingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := store.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing waiting entries"})
			return
		}
		views := make([]gin.H, 0, len(entries))
		for _, e := range entries {
			views = append(views, helpers.PublicWaitingView(e))
		}
		c.JSON(http.StatusOK, views)
	}
}

func GetAdminWaiting(store WaitingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := store.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing waiting entries"})
			return
		}
		views := make([]gin.H, 0, len(entries))
		for _, e := range entries {
			views = append(views, helpers.AdminWaitingView(e))
		}
		c.JSON(http.StatusOK, views)
	}
}

// DeleteWaiting is the self-service removal path: the supplied phone number
// must exactly match the stored one, with no formatting normalization.
func DeleteWaiting(store WaitingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("entry_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
			return
		}

		var payload struct {
			Phone string `json:"phone"`
		}
		// A missing or malformed body is treated as an empty phone, which
		// simply fails the match below.
		_ = c.ShouldBindJSON(&payload)

		entry, err := store.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrEntryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching entry"})
			return
		}

		if entry.Phone != payload.Phone {
			c.JSON(http.StatusForbidden, gin.H{"error": models.ErrPhoneMismatch.Error()})
			return
		}

		if err := store.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrEntryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while deleting entry"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	}
}

// AdminDeleteWaiting removes an entry unconditionally, for no-shows and
// abusive entries. No phone check.
func AdminDeleteWaiting(store WaitingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("entry_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
			return
		}

		if err := store.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrEntryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while deleting entry"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "deleted by admin"})
	}
}
