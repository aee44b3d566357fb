package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/auth"
	"github.com/kun-ahmadraza/Grocery-store/logger"
	"github.com/kun-ahmadraza/Grocery-store/models"
	"gorm.io/gorm"
)

// SignUpForm renders the registration page.
func SignUpForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "signup.html", gin.H{})
	}
}

// SignUp hashes the submitted password and creates the user, then sends
// them to the log-in page. Role defaults to "user" when the form omits it.
func SignUp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		email := c.PostForm("email")
		password := c.PostForm("password")
		if username == "" || email == "" || password == "" {
			c.HTML(http.StatusBadRequest, "signup.html", gin.H{
				"error": "username, email and password are required",
			})
			return
		}

		role := c.PostForm("role")
		if role == "" {
			role = "user"
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			Username: username,
			Email:    email,
			Password: hash,
			Role:     role,
		}
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.HTML(http.StatusOK, "signup.html", gin.H{
					"error": "An account with this email already exists",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		logger.Info("user signed up", "id", user.ID, "email", user.Email)
		c.Redirect(http.StatusSeeOther, "/log-in")
	}
}

// LoginForm renders the log-in page.
func LoginForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{})
	}
}

// Login checks the credentials against the stored hash. A bad email or
// password re-renders the form with an error and HTTP 200; success sets
// the HTTP-only session cookie and redirects home.
func Login(db *gorm.DB, cookieMaxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		var user models.User
		err := db.Where("email = ?", email).First(&user).Error
		if err != nil || !auth.CheckPassword(password, user.Password) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"error": "Invalid email or password",
			})
			return
		}

		token, err := auth.CreateToken(user.ID, user.Username, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
			return
		}

		c.SetCookie(auth.CookieName, token, cookieMaxAge, "/", "", false, true)
		logger.Info("user logged in", "id", user.ID, "email", user.Email)
		c.Redirect(http.StatusFound, "/")
	}
}
