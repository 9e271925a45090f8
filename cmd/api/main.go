package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elearn-api/internal/config"
	"github.com/elearn-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/elearn-api/internal/infrastructure/jwt"
	s3infra "github.com/elearn-api/internal/infrastructure/s3"
	"github.com/elearn-api/internal/infrastructure/sns"
	transporthttp "github.com/elearn-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 store for textbook PDFs.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SNS SMS sender (optional — graceful fallback).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	tables := cfg.DynamoTables
	deps := &transporthttp.Deps{
		UserRepo:         dynamo.NewUserRepo(dynamoClient, tables.Users),
		OtpRepo:          dynamo.NewOtpRepo(dynamoClient, tables.OtpCodes),
		SessionRepo:      dynamo.NewSessionRepo(dynamoClient, tables.Sessions),
		StudentRepo:      dynamo.NewStudentInfoRepo(dynamoClient, tables.StudentInfos),
		TeacherRepo:      dynamo.NewTeacherRepo(dynamoClient, tables.Teachers),
		CourseRepo:       dynamo.NewCourseRepo(dynamoClient, tables.Courses),
		SeasonRepo:       dynamo.NewSeasonRepo(dynamoClient, tables.Seasons),
		LessonRepo:       dynamo.NewLessonRepo(dynamoClient, tables.Lessons),
		CategoryRepo:     dynamo.NewCategoryRepo(dynamoClient, tables.Categories),
		FAQRepo:          dynamo.NewFAQRepo(dynamoClient, tables.FAQs),
		CommentRepo:      dynamo.NewCommentRepo(dynamoClient, tables.Comments),
		SubscriptionRepo: dynamo.NewSubscriptionRepo(dynamoClient, tables.Subscriptions),
		InstallmentRepo:  dynamo.NewInstallmentPaymentRepo(dynamoClient, tables.InstallmentPayments),
		ImmediateRepo:    dynamo.NewImmediatePaymentRepo(dynamoClient, tables.ImmediatePayments),
		TransactionRepo:  dynamo.NewTransactionRepo(dynamoClient, tables.Transactions),
		TextbookRepo:     dynamo.NewTextbookRepo(dynamoClient, tables.Textbooks),
		S3Store:          s3Store,
		SMSSender:        smsSender,
		JWTProvider:      jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
