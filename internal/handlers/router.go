package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"cohort_lms/internal/config"
	"cohort_lms/internal/middleware"
	"cohort_lms/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// Services はルーターが使うサービス一式
type Services struct {
	Users       service.UserService
	Dashboard   service.DashboardService
	Progress    service.ProgressService
	Submissions service.SubmissionService
	Curricula   service.CurriculumService
	Lessons     service.LessonService
	Cohorts     service.CohortService
}

// NewRouter は /api/v1 以下のルートを組み立てる
// auth.enabled が false のときは X-User-ID / X-User-Role ヘッダーで認証する (開発・テスト用)
func NewRouter(cfg *config.Config, db *gorm.DB, svc Services, logger *slog.Logger) (http.Handler, error) {
	authMiddleware := middleware.DevAuthMiddleware
	if cfg.Auth.Enabled {
		jwtMiddleware, err := middleware.JWTAuthMiddleware(cfg, svc.Users)
		if err != nil {
			return nil, err
		}
		authMiddleware = jwtMiddleware
		logger.Info("Applying JWT authentication middleware")
	} else {
		logger.Warn("Authentication is disabled, using development header authentication")
	}

	health := NewHealthHandler(db)
	users := NewUserHandler(svc.Users)
	dashboard := NewDashboardHandler(svc.Dashboard)
	progress := NewProgressHandler(svc.Progress)
	submissions := NewSubmissionHandler(svc.Submissions)
	curricula := NewCurriculumHandler(svc.Curricula)
	lessons := NewLessonHandler(svc.Lessons)
	cohorts := NewCohortHandler(svc.Cohorts)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.Health)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/sessions", users.CreateSession)
			r.Get("/profile", users.GetProfile)
			r.Patch("/profile", users.UpdateProfile)
			r.Get("/dashboard", dashboard.GetDashboard)

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Get("/", users.ListUsers)
				r.Get("/{id}", users.GetUser)
				r.With(middleware.RequireAdmin).Patch("/{id}", users.UpdateUser)
			})

			r.Route("/curricula", func(r chi.Router) {
				r.Get("/", curricula.ListCurricula)
				r.Get("/{id}", curricula.GetCurriculum)
				r.Get("/{id}/modules", curricula.ListModules)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", curricula.CreateCurriculum)
					r.Patch("/{id}", curricula.UpdateCurriculum)
					r.Delete("/{id}", curricula.DeleteCurriculum)
					r.Post("/{id}/modules", curricula.CreateModule)
				})
			})

			r.Route("/modules", func(r chi.Router) {
				r.Get("/{id}", curricula.GetModule)
				r.Get("/{id}/lessons", lessons.ListLessons)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Patch("/{id}", curricula.UpdateModule)
					r.Delete("/{id}", curricula.DeleteModule)
					r.Post("/{id}/lessons", lessons.CreateLesson)
				})
			})

			r.Route("/lessons", func(r chi.Router) {
				r.Get("/{id}", lessons.GetLesson)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Patch("/{id}", lessons.UpdateLesson)
					r.Delete("/{id}", lessons.DeleteLesson)
					r.Get("/{id}/content_blocks", lessons.ListContentBlocks)
					r.Post("/{id}/content_blocks", lessons.CreateContentBlock)
				})
			})

			r.Route("/content_blocks", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/{id}", lessons.GetContentBlock)
				r.Patch("/{id}", lessons.UpdateContentBlock)
				r.Delete("/{id}", lessons.DeleteContentBlock)
			})

			r.Route("/cohorts", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", cohorts.ListCohorts)
				r.Post("/", cohorts.CreateCohort)
				r.Get("/{id}", cohorts.GetCohort)
				r.Patch("/{id}", cohorts.UpdateCohort)
				r.Delete("/{id}", cohorts.DeleteCohort)
				r.Get("/{id}/enrollments", cohorts.ListEnrollments)
				r.Post("/{id}/enrollments", cohorts.CreateEnrollment)
			})

			r.Route("/enrollments", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/{id}", cohorts.GetEnrollment)
				r.Patch("/{id}", cohorts.UpdateEnrollment)
				r.Delete("/{id}", cohorts.DeleteEnrollment)
				r.Patch("/{id}/module_assignments/{module_id}", cohorts.SetModuleOverride)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Get("/", progress.ListProgress)
				r.Patch("/", progress.UpdateProgress)
				r.With(middleware.RequireStaff).Get("/student/{user_id}", progress.GetStudentProgress)
			})

			r.Route("/submissions", func(r chi.Router) {
				r.Get("/", submissions.ListSubmissions)
				r.Post("/", submissions.CreateSubmission)
				r.Get("/{id}", submissions.GetSubmission)
				r.Patch("/{id}", submissions.UpdateSubmission)
				r.With(middleware.RequireStaff).Patch("/{id}/grade", submissions.GradeSubmission)
			})
		})
	})

	return r, nil
}
