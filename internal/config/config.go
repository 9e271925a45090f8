package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables
	S3BucketName string

	JWTPrivateKeyPath  string
	JWTPublicKeyPath   string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	SNSRegion string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users               string
	OtpCodes            string
	Sessions            string
	StudentInfos        string
	Teachers            string
	Courses             string
	Seasons             string
	Lessons             string
	Categories          string
	FAQs                string
	Comments            string
	Subscriptions       string
	InstallmentPayments string
	ImmediatePayments   string
	Transactions        string
	Textbooks           string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			Users:               getEnv("DYNAMO_TABLE_USERS", "users"),
			OtpCodes:            getEnv("DYNAMO_TABLE_OTP_CODES", "otp_codes"),
			Sessions:            getEnv("DYNAMO_TABLE_SESSIONS", "sessions"),
			StudentInfos:        getEnv("DYNAMO_TABLE_STUDENT_INFORMATION", "student_information"),
			Teachers:            getEnv("DYNAMO_TABLE_TEACHERS", "teachers"),
			Courses:             getEnv("DYNAMO_TABLE_COURSES", "courses"),
			Seasons:             getEnv("DYNAMO_TABLE_SEASONS", "seasons"),
			Lessons:             getEnv("DYNAMO_TABLE_LESSONS", "lessons"),
			Categories:          getEnv("DYNAMO_TABLE_CATEGORIES", "categories"),
			FAQs:                getEnv("DYNAMO_TABLE_FAQS", "faqs"),
			Comments:            getEnv("DYNAMO_TABLE_COMMENTS", "comments"),
			Subscriptions:       getEnv("DYNAMO_TABLE_SUBSCRIPTIONS", "subscriptions"),
			InstallmentPayments: getEnv("DYNAMO_TABLE_INSTALLMENT_PAYMENTS", "installment_payments"),
			ImmediatePayments:   getEnv("DYNAMO_TABLE_IMMEDIATE_PAYMENTS", "immediate_payments"),
			Transactions:        getEnv("DYNAMO_TABLE_TRANSACTIONS", "transactions"),
			Textbooks:           getEnv("DYNAMO_TABLE_TEXTBOOKS", "textbooks"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "elearn-textbooks"),

		JWTPrivateKeyPath:  getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:   getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		AccessTokenExpiry:  time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRY_MINUTES", 30)) * time.Minute,
		RefreshTokenExpiry: time.Duration(getEnvInt("REFRESH_TOKEN_EXPIRY_DAYS", 30)) * 24 * time.Hour,

		SNSRegion: getEnv("SNS_REGION", "us-east-1"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
