package router

import (
	"net/http"

	mem "pet-inventory/internal/adapters/storage/memory"
	"pet-inventory/internal/domain/pets"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-inventory/docs"
)

type Options struct {
	// Opcional: si no viene, usa un repo in-memory vacío.
	Repo pets.Repository
}

// NewRouter arma la API de solo lectura del inventario.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Documento registrado por el paquete docs (swag).
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewPetRepo()
	}

	pets.RegisterRoutes(r, pets.NewService(repo))

	return r
}
