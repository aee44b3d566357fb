package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kun-ahmadraza/Grocery-store/config"
	userControllers "github.com/kun-ahmadraza/Grocery-store/controllers/user"
	"gorm.io/gorm"
)

// SetupAccountRoutes registers sign-up and log-in.
func SetupAccountRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.GET("/sign-up", userControllers.SignUpForm())
	r.POST("/sign-up", userControllers.SignUp(db))

	r.GET("/log-in", userControllers.LoginForm())
	r.POST("/log-in", userControllers.Login(db, int(cfg.JWT.TTL.Seconds())))
}
