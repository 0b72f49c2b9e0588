package wire

import (
	"net/http"

	"pricing-cms/internal/adaptor"
	"pricing-cms/internal/data/catalog"
	"pricing-cms/internal/data/repository"
	"pricing-cms/internal/usecase"
	"pricing-cms/pkg/mailer"
	"pricing-cms/pkg/middleware"
	"pricing-cms/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes
func Wiring(
	repo *repository.Repository,
	mail mailer.Mailer,
	pricing *catalog.Catalog,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, mail, pricing, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins...))

	wireSubmission(r, handler.Submission, config, logger)
	wirePricing(r, handler.Pricing)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
