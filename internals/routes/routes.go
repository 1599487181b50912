package routes

import (
	"github.com/harsheel55/Auth-System/internals/config"
	"github.com/harsheel55/Auth-System/internals/controllers"
	"github.com/harsheel55/Auth-System/internals/verification"

	"github.com/gin-gonic/gin"
)

func SetupRouter(workflow *verification.Workflow) *gin.Engine {
	r := gin.Default()

	cookieConfig := &config.CookieConfig{
		Domain:   config.GetEnvAsStr("DOMAIN", ""),
		IsSecure: config.GetEnvAsStr("SECURE_COOKIE", "true") == "true",
		HttpOnly: true, // Always HttpOnly for security
	}

	authCtrl := controllers.NewAuthController(workflow)
	verifyCtrl := controllers.NewVerificationController(workflow)
	googleAuthCtrl := controllers.NewGoogleAuthController(workflow, cookieConfig)

	public := r.Group("/")
	{
		public.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "active",
				"message": "Auth-System API is running",
			})
		})

		public.POST("/signup", authCtrl.Signup)
		public.POST("/login", authCtrl.Login)

		email := public.Group("/verify-email")
		{
			email.GET("/:token", verifyCtrl.VerifyEmail)
			email.POST("/resend", verifyCtrl.ResendEmail)
		}

		mobile := public.Group("/verify-mobile")
		{
			mobile.POST("/request", verifyCtrl.RequestMobileCode)
			mobile.POST("/verify", verifyCtrl.VerifyMobile)
		}
	}

	auth := r.Group("/auth")
	{
		auth.GET("/google", googleAuthCtrl.Login)
		auth.GET("/google/callback", googleAuthCtrl.Callback)
	}

	return r
}
