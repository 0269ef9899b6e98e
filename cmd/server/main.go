package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"expensepro_backend/internal/app/router"
	authadapters "expensepro_backend/internal/feature/auth/adapters"
	authhandler "expensepro_backend/internal/feature/auth/transport/handler"
	authusecase "expensepro_backend/internal/feature/auth/usecase"
	categoryhandler "expensepro_backend/internal/feature/categories/transport/handler"
	categoryusecase "expensepro_backend/internal/feature/categories/usecase"
	"expensepro_backend/internal/feature/insights/adapters/gemini"
	insighthandler "expensepro_backend/internal/feature/insights/transport/handler"
	insightusecase "expensepro_backend/internal/feature/insights/usecase"
	profilehandler "expensepro_backend/internal/feature/profile/transport/handler"
	profileusecase "expensepro_backend/internal/feature/profile/usecase"
	txadapters "expensepro_backend/internal/feature/transactions/adapters"
	txhandler "expensepro_backend/internal/feature/transactions/transport/handler"
	txusecase "expensepro_backend/internal/feature/transactions/usecase"
	infradb "expensepro_backend/internal/infrastructure/db"
	jwtmw "expensepro_backend/internal/infrastructure/jwt"
	"expensepro_backend/internal/infrastructure/mail"
	infraredis "expensepro_backend/internal/infrastructure/redis"
	"expensepro_backend/internal/shared/ratelimiter"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis (rate limiting); the API runs without it
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without rate limiting.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// SMTP mailer: OTP delivery cannot work without it
	mailCfg, err := mail.LoadConfig()
	if err != nil {
		log.Fatalf("mail configuration invalid: %v", err)
	}
	mailer := mail.NewMailer(mailCfg)

	// Gemini client for ledger analysis
	analyzer, err := gemini.NewGeminiAnalyzer(ctx)
	if err != nil {
		log.Fatalf("failed to init gemini client: %v", err)
	}

	// Google OAuth
	googleOAuth, err := authadapters.NewGoogleOAuth()
	if err != nil {
		log.Fatalf("oauth configuration invalid: %v", err)
	}

	// JWT_SECRET check
	jwtSecret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if jwtSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokens := jwtmw.NewGenerator(jwtSecret)

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	txRepo := txadapters.NewTransactionMySQL(db)
	otpMailer := authadapters.NewOTPMailer(mailer, db)

	// Usecase
	otpUC := authusecase.NewOTPUsecase(userRepo, otpMailer, tokens)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	txUC := txusecase.NewTransactionUsecase(txRepo)
	profileUC := profileusecase.NewProfileUsecase(userRepo)
	exportUC := profileusecase.NewExportUsecase(txRepo)
	categoryUC := categoryusecase.NewCategoryUsecase()
	insightUC := insightusecase.NewInsightUsecase(userRepo, txRepo, analyzer)

	// Handler
	frontendURL := os.Getenv("FRONTEND_URL")
	authH := authhandler.NewAuthHandler(otpUC, authUC)
	oauthH := authhandler.NewOAuthHandler(authUC, googleOAuth, frontendURL)
	txH := txhandler.NewTransactionHandler(txUC)
	profileH := profilehandler.NewProfileHandler(profileUC, exportUC, txUC)
	categoryH := categoryhandler.NewCategoryHandler(categoryUC)
	insightH := insighthandler.NewInsightHandler(insightUC)

	limiters := router.Limiters{
		Global: ratelimiter.NewLimiter(rdb, "rl:global", 100, 15*time.Minute),
		OTP:    ratelimiter.NewLimiter(rdb, "rl:otp", 5, 15*time.Minute),
	}

	r := router.NewRouter(authH, oauthH, txH, profileH, categoryH, insightH, limiters)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
