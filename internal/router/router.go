package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"birrieria-admin/internal/adapters/docx"
	"birrieria-admin/internal/adapters/sheets"
	mem "birrieria-admin/internal/adapters/storage/memory"
	pg "birrieria-admin/internal/adapters/storage/postgres"
	"birrieria-admin/internal/domain/documents"
	"birrieria-admin/internal/domain/events"
	"birrieria-admin/internal/domain/minutas"
	"birrieria-admin/internal/domain/users"
	"birrieria-admin/internal/middleware"
	"birrieria-admin/internal/platform/logger"
	"birrieria-admin/internal/ports/auth"
	"birrieria-admin/internal/ports/notify"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: logo del membrete. Nil = hojas sin logo.
	Assets documents.AssetFetcher

	// Opcional: pasarela de avisos. Nil = solo bitácora.
	Notifier notify.Notifier

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		eventRepo  events.Repository
		minutaRepo minutas.Repository
		userRepo   users.Repository
		draftRepo  documents.Repository
	)

	// DB explícita => Postgres; nil => repos en memoria. Abrirla es
	// responsabilidad de main (la config vive ahí).
	if db := opts.DB; db != nil {
		eventRepo = pg.NewEventsRepo(db)
		minutaRepo = pg.NewMinutasRepo(db)
		userRepo = pg.NewUsersRepo(db)
		draftRepo = pg.NewDraftsRepo(db)
	} else {
		eventRepo = mem.NewEventRepo()
		minutaRepo = mem.NewMinutaRepo()
		userRepo = mem.NewUserRepo()
		draftRepo = mem.NewDraftRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo)
	eventsSvc := events.NewService(eventRepo)
	minutasSvc := minutas.NewService(minutaRepo, eventsSvc, usersSvc, opts.Notifier, log)
	documentsSvc := documents.NewService(docx.New(), opts.Assets, sheets.New(), draftRepo, log)

	// Rutas por módulo
	r.Route("/api/v1", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc)
		events.RegisterRoutes(api, eventsSvc, usersSvc)
		minutas.RegisterRoutes(api, minutasSvc, usersSvc)
		documents.RegisterRoutes(api, documentsSvc)
	})

	return r
}
