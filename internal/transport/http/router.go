package http

import (
	"net/http"

	"github.com/elearn-api/internal/application/auth"
	"github.com/elearn-api/internal/application/billing"
	"github.com/elearn-api/internal/application/catalog"
	"github.com/elearn-api/internal/application/insights"
	"github.com/elearn-api/internal/application/session"
	"github.com/elearn-api/internal/application/student"
	"github.com/elearn-api/internal/application/teacher"
	"github.com/elearn-api/internal/application/textbook"
	"github.com/elearn-api/internal/application/user"
	"github.com/elearn-api/internal/config"
	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/elearn-api/internal/infrastructure/jwt"
	s3infra "github.com/elearn-api/internal/infrastructure/s3"
	"github.com/elearn-api/internal/infrastructure/sns"
	"github.com/elearn-api/internal/transport/http/handler"
	appmiddleware "github.com/elearn-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo         *dynamo.UserRepo
	OtpRepo          *dynamo.OtpRepo
	SessionRepo      *dynamo.SessionRepo
	StudentRepo      *dynamo.StudentInfoRepo
	TeacherRepo      *dynamo.TeacherRepo
	CourseRepo       *dynamo.CourseRepo
	SeasonRepo       *dynamo.SeasonRepo
	LessonRepo       *dynamo.LessonRepo
	CategoryRepo     *dynamo.CategoryRepo
	FAQRepo          *dynamo.FAQRepo
	CommentRepo      *dynamo.CommentRepo
	SubscriptionRepo *dynamo.SubscriptionRepo
	InstallmentRepo  *dynamo.InstallmentPaymentRepo
	ImmediateRepo    *dynamo.ImmediatePaymentRepo
	TransactionRepo  *dynamo.TransactionRepo
	TextbookRepo     *dynamo.TextbookRepo
	S3Store          *s3infra.Store
	SMSSender        sns.SMSSender
	JWTProvider      *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to the OTP endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo:        deps.UserRepo,
		OtpRepo:         deps.OtpRepo,
		StudentRepo:     deps.StudentRepo,
		SessionRepo:     deps.SessionRepo,
		SMSSender:       deps.SMSSender,
		JWTProvider:     deps.JWTProvider,
		RefreshTokenDur: cfg.RefreshTokenExpiry,
	})
	sessionSvc := session.NewService(deps.SessionRepo, deps.UserRepo, deps.JWTProvider)
	studentSvc := student.NewService(deps.StudentRepo)
	teacherSvc := teacher.NewService(deps.TeacherRepo)
	courseSvc := catalog.NewCourseService(deps.CourseRepo)
	seasonSvc := catalog.NewSeasonService(deps.SeasonRepo, deps.CourseRepo)
	lessonSvc := catalog.NewLessonService(deps.LessonRepo, deps.SeasonRepo)
	categorySvc := insights.NewCategoryService(deps.CategoryRepo)
	faqSvc := insights.NewFAQService(deps.FAQRepo, deps.CourseRepo)
	commentSvc := insights.NewCommentService(deps.CommentRepo, deps.CourseRepo)
	subscriptionSvc := billing.NewSubscriptionService(deps.SubscriptionRepo, deps.CourseRepo, deps.UserRepo)
	installmentSvc := billing.NewInstallmentService(deps.InstallmentRepo, deps.SubscriptionRepo)
	immediateSvc := billing.NewImmediateService(deps.ImmediateRepo, deps.SubscriptionRepo)
	transactionSvc := billing.NewTransactionService(deps.TransactionRepo, deps.UserRepo)
	textbookSvc := textbook.NewService(deps.TextbookRepo, deps.S3Store)
	userSvc := user.NewService(deps.UserRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc, sessionSvc)
	studentH := handler.NewStudentHandler(studentSvc)
	teacherH := handler.NewTeacherHandler(teacherSvc)
	courseH := handler.NewCourseHandler(courseSvc)
	seasonH := handler.NewSeasonHandler(seasonSvc)
	lessonH := handler.NewLessonHandler(lessonSvc)
	categoryH := handler.NewCategoryHandler(categorySvc)
	faqH := handler.NewFAQHandler(faqSvc)
	commentH := handler.NewCommentHandler(commentSvc)
	subscriptionH := handler.NewSubscriptionHandler(subscriptionSvc)
	installmentH := handler.NewInstallmentHandler(installmentSvc)
	immediateH := handler.NewImmediateHandler(immediateSvc)
	transactionH := handler.NewTransactionHandler(transactionSvc)
	textbookH := handler.NewTextbookHandler(textbookSvc)
	userH := handler.NewUserHandler(userSvc)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/ping", healthH.Ping)

		// ── Auth (OTP endpoints rate limited, logout requires a token) ──────
		r.With(sensitiveRL.Limit).Post("/auth/send-otp", authH.SendOTP)
		r.With(sensitiveRL.Limit).Post("/auth/verify-otp", authH.VerifyOTP)
		r.Post("/auth/refresh-token", authH.Refresh)
		r.With(authMw).Post("/auth/logout", authH.Logout)

		// ── Public catalog ───────────────────────────────────────────────────
		r.Route("/public", func(r chi.Router) {
			r.Get("/teacher", teacherH.List)
			r.Get("/teacher/{id}", teacherH.Get)
			r.Get("/course", courseH.List)
			r.Get("/course/{id}", courseH.Get)
			r.Get("/course/{id}/seasons", seasonH.ListByCourse)
			r.Get("/course/{id}/faqs", faqH.ListByCourse)
			r.Get("/course/{id}/comments", commentH.ListByCourse)
			r.Get("/season", seasonH.List)
			r.Get("/season/{id}", seasonH.Get)
			r.Get("/season/{id}/lessons", lessonH.ListBySeason)
			r.Get("/lesson", lessonH.List)
			r.Get("/lesson/{id}", lessonH.Get)
			r.Get("/category", categoryH.List)
			r.Get("/category/{id}", categoryH.Get)
			r.Get("/faq", faqH.List)
			r.Get("/faq/{id}", faqH.Get)
			r.Get("/comment", commentH.List)
			r.Get("/comment/{id}", commentH.Get)
		})

		// ── Authenticated, owner-scoped ──────────────────────────────────────
		r.Route("/user", func(r chi.Router) {
			r.Use(authMw)

			r.Get("/student-information", studentH.ListOwn)
			r.Get("/student-information/{id}", studentH.GetOwn)
			r.Get("/subscription", subscriptionH.ListOwn)
			r.Get("/subscription/{id}", subscriptionH.GetOwn)
			r.Get("/installment-payment", installmentH.ListOwn)
			r.Get("/installment-payment/{id}", installmentH.GetOwn)
			r.Get("/immediate-payment", immediateH.ListOwn)
			r.Get("/immediate-payment/{id}", immediateH.GetOwn)
			r.Get("/transaction", transactionH.ListOwn)
			r.Get("/transaction/{id}", transactionH.GetOwn)
			r.Get("/textbook", textbookH.List)
			r.Get("/textbook/{id}", textbookH.Get)
		})

		// ── Admin (full CRUD on everything) ──────────────────────────────────
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMw)
			r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

			crud := func(pattern string, h interface {
				List(http.ResponseWriter, *http.Request)
				Get(http.ResponseWriter, *http.Request)
				Create(http.ResponseWriter, *http.Request)
				Replace(http.ResponseWriter, *http.Request)
				Patch(http.ResponseWriter, *http.Request)
				Delete(http.ResponseWriter, *http.Request)
			}) {
				r.Get("/"+pattern, h.List)
				r.Post("/"+pattern, h.Create)
				r.Get("/"+pattern+"/{id}", h.Get)
				r.Put("/"+pattern+"/{id}", h.Replace)
				r.Patch("/"+pattern+"/{id}", h.Patch)
				r.Delete("/"+pattern+"/{id}", h.Delete)
			}

			crud("student-information", studentH)
			crud("teacher", teacherH)
			crud("course", courseH)
			crud("season", seasonH)
			crud("lesson", lessonH)
			crud("category", categoryH)
			crud("faq", faqH)
			crud("comment", commentH)
			crud("subscription", subscriptionH)
			crud("installment-payment", installmentH)
			crud("immediate-payment", immediateH)
			crud("transaction", transactionH)
			crud("textbook", textbookH)

			r.Get("/subscription/{id}/installments", installmentH.ListBySubscription)

			// Accounts are provisioned by the OTP flow; admins only list,
			// inspect and promote them.
			r.Get("/user", userH.List)
			r.Get("/user/{id}", userH.Get)
			r.Patch("/user/{id}", userH.Patch)
		})
	})

	return r
}
