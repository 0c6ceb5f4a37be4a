package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"go-stall-management/helpers"
	"go-stall-management/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

var validate = validator.New()

// OrderStore is the persistence boundary for the order lifecycle. It is
// satisfied by database.OrderStore; tests substitute an in-memory fake.
type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (int, error)
	List(ctx context.Context) ([]models.Order, error)
	ToggleProcessed(ctx context.Context, id int) (bool, error)
	ServeItem(ctx context.Context, id, index int, admin string) (bool, error)
	Complete(ctx context.Context, id int) error
}

type OrderForm struct {
	Table           string `form:"table" validate:"required"`
	Name            string `form:"name" validate:"required"`
	Items           string `form:"items" validate:"required"`
	Total           int    `form:"total" validate:"min=0"`
	Song            string `form:"song"`
	Table_size      int    `form:"table_size,default=1" validate:"min=1"`
	Consent_privacy bool   `form:"consent_privacy" validate:"required"`
	Consent_terms   bool   `form:"consent_terms" validate:"required"`
}

func CreateOrder(store OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form OrderForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&form)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var imagePath *string
		if file, err := c.FormFile("payment_image"); err == nil {
			saved, err := helpers.SavePaymentImage(c, file)
			if err != nil {
				log.Println("payment image save failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "payment image was not saved"})
				return
			}
			imagePath = &saved
		}

		order := models.Order{
			Table:           form.Table,
			Name:            form.Name,
			Items:           models.ParseItems(form.Items),
			Total:           form.Total,
			Song:            form.Song,
			Image_path:      imagePath,
			Timestamp:       time.Now().Format(time.RFC3339),
			Processed:       false,
			Table_size:      form.Table_size,
			Consent_privacy: form.Consent_privacy,
			Consent_terms:   form.Consent_terms,
		}

		id, err := store.Insert(c.Request.Context(), order)
		if err != nil {
			log.Println("order insert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order was not created"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order received", "order_id": id})
	}
}

func GetOrders(store OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.List(c.Request.Context())
		if err != nil {
			if errors.Is(err, models.ErrCorruptItems) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": models.ErrCorruptItems.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func ToggleProcessed(store OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		processed, err := store.ToggleProcessed(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order toggle failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "ok", "processed": processed})
	}
}

func ToggleItemServed(store OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		indexRaw, ok := c.GetPostForm("item_index")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item_index is required"})
			return
		}
		index, err := strconv.Atoi(indexRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item_index"})
			return
		}

		// admin may legitimately be empty: that clears the attribution. The
		// field still has to be present on the form.
		admin, ok := c.GetPostForm("admin")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "admin is required"})
			return
		}

		processed, err := store.ServeItem(c.Request.Context(), id, index, admin)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, models.ErrInvalidIndex):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item index"})
			case errors.Is(err, models.ErrCorruptItems):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid item format"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "item toggle failed"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item toggled", "processed": processed})
	}
}

func CompleteOrder(store OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		if err := store.Complete(c.Request.Context(), id); err != nil {
			switch {
			case errors.Is(err, models.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, models.ErrCorruptItems):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid item format"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "order completion failed"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order marked as complete"})
	}
}
