package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/middleware"
	"github.com/kun-ahmadraza/Grocery-store/models"
	"gorm.io/gorm"
)

// CartRow is a cart line plus its computed subtotal for the template.
type CartRow struct {
	models.Cart
	Subtotal float64
}

// ViewCart shows the current user's cart with per-row subtotals and the
// grand total. The query is scoped to the authenticated user; anonymous
// visitors are sent to log-in instead of seeing anyone's cart.
func ViewCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cu, ok := middleware.UserFromContext(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/log-in")
			return
		}

		var items []models.Cart
		if err := db.Preload("Product").Where("user_id = ?", cu.UserID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		rows := make([]CartRow, 0, len(items))
		var total float64
		for _, item := range items {
			subtotal := float64(item.Quantity) * item.Product.Price
			rows = append(rows, CartRow{Cart: item, Subtotal: subtotal})
			total += subtotal
		}

		c.HTML(http.StatusOK, "cart.html", gin.H{
			"cart":         rows,
			"total":        total,
			"current_user": cu,
		})
	}
}

// UpdateQuantity adjusts one cart line. "increase" always adds 1,
// "decrease" subtracts 1 but never goes below 1. Responds with JSON, no
// redirect; the storefront updates the row in place.
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Param("cart_id")

		action := c.Query("action")
		if action == "" {
			action = c.PostForm("action")
		}

		var item models.Cart
		if err := db.Where("cart_id = ?", cartID).First(&item).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}

		switch action {
		case "increase":
			item.Quantity++
		case "decrease":
			if item.Quantity > 1 {
				item.Quantity--
			}
		}

		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "new_quantity": item.Quantity})
	}
}

// AddToCart merges the posted product into the user's cart: an existing
// (user, product) row gets its quantity bumped, otherwise a new row is
// inserted.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cu, ok := middleware.UserFromContext(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/log-in")
			return
		}

		productID, err := strconv.ParseUint(c.PostForm("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		quantity := 1
		if q := c.PostForm("quantity"); q != "" {
			quantity, err = strconv.Atoi(q)
			if err != nil || quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
		}

		var existing models.Cart
		err = db.Where("product_id = ? AND user_id = ?", productID, cu.UserID).First(&existing).Error
		switch {
		case err == nil:
			existing.Quantity += quantity
			if err := db.Save(&existing).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item := models.Cart{
				ProductID: uint(productID),
				UserID:    cu.UserID,
				Quantity:  quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

// BuyNow renders the checkout page for a single product. Authentication is
// checked before anything reads the claims.
func BuyNow(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cu, ok := middleware.UserFromContext(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/log-in")
			return
		}

		productID, err := strconv.ParseUint(c.PostForm("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		quantity := 1
		if q := c.PostForm("quantity"); q != "" {
			quantity, err = strconv.Atoi(q)
			if err != nil || quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
		}

		var product models.Product
		if err := db.Preload("Images").First(&product, productID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product Not Found"})
			return
		}

		var user models.User
		if err := db.First(&user, cu.UserID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}

		total := product.Price * float64(quantity)

		c.HTML(http.StatusOK, "checkout.html", gin.H{
			"product":      product,
			"quantity":     quantity,
			"total":        total,
			"User":         user,
			"current_user": cu,
		})
	}
}
