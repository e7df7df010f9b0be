package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/guitarkeep/hub/api/resources"
	"github.com/guitarkeep/hub/docs"
	"github.com/swaggo/swag"
)

type Router struct {
	router      *mux.Router
	resources   *resources.Resources
	metrics     http.Handler
	metricsPath string
}

// NewRouter wires the query resources. metrics may be nil.
func NewRouter(svc resources.QueryService, metrics http.Handler, metricsPath string) *Router {
	r := &Router{
		router:      mux.NewRouter(),
		resources:   resources.NewResources(svc),
		metrics:     metrics,
		metricsPath: metricsPath,
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	r.router.HandleFunc("/ping", r.resources.Health.Ping).Methods(http.MethodGet)
	if r.metrics != nil && r.metricsPath != "" {
		r.router.Handle(r.metricsPath, r.metrics).Methods(http.MethodGet)
	}
	r.router.HandleFunc("/swagger/doc.json", serveSwaggerDoc).Methods(http.MethodGet)

	// API version prefix
	v1 := r.router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/health", r.resources.Health.Health).Methods(http.MethodGet)
	v1.HandleFunc("/categories", r.resources.Categories.List).Methods(http.MethodGet)

	// Entries
	entries := v1.PathPrefix("/entries").Subrouter()
	entries.HandleFunc("", r.resources.Entries.ListEntries).Methods(http.MethodGet)
	entries.HandleFunc("/room-types/{roomType}", r.resources.Entries.ListByRoomType).Methods(http.MethodGet)
	entries.HandleFunc("/data-types/{dataType}", r.resources.Entries.ListByDataType).Methods(http.MethodGet)

	// Averages
	averages := v1.PathPrefix("/averages").Subrouter()
	averages.HandleFunc("", r.resources.Averages.AverageAll).Methods(http.MethodGet)
	averages.HandleFunc("/room-types/{roomType}", r.resources.Averages.AverageByRoomType).Methods(http.MethodGet)
}

func serveSwaggerDoc(w http.ResponseWriter, _ *http.Request) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
