// Package router wires the HTTP routes to their handlers.
package router

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "expensepro_backend/internal/feature/auth/transport/handler"
	categoryhandler "expensepro_backend/internal/feature/categories/transport/handler"
	insighthandler "expensepro_backend/internal/feature/insights/transport/handler"
	profilehandler "expensepro_backend/internal/feature/profile/transport/handler"
	txhandler "expensepro_backend/internal/feature/transactions/transport/handler"
	jwtmw "expensepro_backend/internal/infrastructure/jwt"
	"expensepro_backend/internal/shared/ratelimiter"
)

// Limiters bundles the two request limiters applied by the router.
type Limiters struct {
	// Global bounds every endpoint (100 requests / 15 min per IP).
	Global *ratelimiter.Limiter
	// OTP bounds the code-issuing endpoints (5 requests / 15 min per IP).
	OTP *ratelimiter.Limiter
}

// corsConfig restricts browsers to the configured frontend origins.
// FRONTEND_ORIGINS is a comma-separated allowlist; FRONTEND_URL is always
// included.
func corsConfig() cors.Config {
	origins := []string{"http://localhost:5173"}
	if u := os.Getenv("FRONTEND_URL"); u != "" {
		origins = append(origins, u)
	}
	if extra := os.Getenv("FRONTEND_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	return cfg
}

// NewRouter builds the Gin engine with all routes, CORS and rate limits.
func NewRouter(
	authH *authhandler.AuthHandler,
	oauthH *authhandler.OAuthHandler,
	txH *txhandler.TransactionHandler,
	profileH *profilehandler.ProfileHandler,
	categoryH *categoryhandler.CategoryHandler,
	insightH *insighthandler.InsightHandler,
	limiters Limiters,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig()))
	if limiters.Global != nil {
		r.Use(limiters.Global.Middleware())
	}

	// Pass-through when the OTP limiter is not configured.
	otpMW := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	if limiters.OTP != nil {
		otpMW = limiters.OTP.Middleware()
	}

	// Liveness probe
	r.GET("/healthz", Health)

	// Public auth routes. Code-issuing endpoints carry the tighter limit.
	r.POST("/send-otp", otpMW, authH.SendOTP)
	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)
	r.POST("/forgot-password", otpMW, authH.ForgotPassword)
	r.POST("/reset-pass", authH.ResetPassword)
	r.POST("/reset-password", authH.ResetPassword)
	r.POST("/resend-otp", otpMW, authH.ResendOTP)

	// Google OAuth redirect flow
	r.GET("/google", oauthH.Redirect)
	r.GET("/google/callback", oauthH.Callback)

	// Routes requiring a bearer token
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/transactions", txH.List)
		auth.POST("/transactions", txH.Create)
		auth.PUT("/transactions/:id", txH.Update)
		auth.DELETE("/transactions/:id", txH.Delete)

		auth.GET("/categories", categoryH.List)

		auth.GET("/user/me", profileH.Me)
		auth.PUT("/user/update-profile", profileH.UpdateProfile)
		auth.PUT("/user/change-password", profileH.ChangePassword)
		auth.GET("/user/export", profileH.ExportCSV)
		auth.GET("/user/export-excel", profileH.ExportExcel)
		auth.DELETE("/user/delete-all-transactions", profileH.DeleteAllTransactions)

		auth.POST("/ai/analyze", insightH.Analyze)
	}

	return r
}
