package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/logger"
	"github.com/kun-ahmadraza/Grocery-store/middleware"
	"github.com/kun-ahmadraza/Grocery-store/models"
	"gorm.io/gorm"
)

// PlaceOrder turns the user's cart into an order. One transaction writes
// the billing details, the order with its items (quantity and unit price
// frozen from the cart), and empties the cart. Without the order rows a
// billing record would accumulate unlinked to any purchase.
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cu, ok := middleware.UserFromContext(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/log-in")
			return
		}

		var user models.User
		if err := db.First(&user, cu.UserID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}

		phone := c.PostForm("phone")
		address := c.PostForm("address")
		city := c.PostForm("city")
		country := c.PostForm("country")
		zipCode := c.PostForm("zip_code")
		paymentMethod := c.PostForm("payment_method")
		if phone == "" || address == "" || city == "" || country == "" || zipCode == "" || paymentMethod == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All billing fields are required"})
			return
		}

		var cart []models.Cart
		if err := db.Preload("Product").Where("user_id = ?", user.ID).Find(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		if len(cart) == 0 {
			c.Redirect(http.StatusSeeOther, "/cart")
			return
		}

		billing := models.BillingDetails{
			FullName:      user.Username,
			Email:         user.Email,
			Phone:         phone,
			Country:       country,
			Address:       address,
			City:          city,
			ZipCode:       zipCode,
			PaymentMethod: paymentMethod,
		}

		var order models.Order

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&billing).Error; err != nil {
				return err
			}

			var total float64
			items := make([]models.OrderItem, 0, len(cart))
			for _, line := range cart {
				total += float64(line.Quantity) * line.Product.Price
				items = append(items, models.OrderItem{
					ProductID: line.ProductID,
					Quantity:  line.Quantity,
					Price:     line.Product.Price,
				})
			}

			order = models.Order{
				UserID:      user.ID,
				BillingID:   billing.BillingID,
				Items:       items,
				TotalAmount: total,
				Status:      models.OrderStatusPending,
				CreatedAt:   time.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			return tx.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error
		})
		if err != nil {
			logger.Error("failed to place order", "user_id", user.ID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		logger.Info("order placed", "order_id", order.OrderID, "user_id", user.ID, "total", order.TotalAmount)
		broadcastNewOrder(order)

		c.HTML(http.StatusOK, "confirm.html", gin.H{
			"order":          order,
			"full_name":      billing.FullName,
			"email":          billing.Email,
			"phone":          billing.Phone,
			"country":        billing.Country,
			"address":        billing.Address,
			"city":           billing.City,
			"zip_code":       billing.ZipCode,
			"payment_method": billing.PaymentMethod,
			"current_user":   cu,
		})
	}
}
