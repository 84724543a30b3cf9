package rest

import (
	"net/http"

	"github.com/heartmarshall/tugalex-backend/internal/transport/middleware"
)

// NewRouter registers every endpoint on a ServeMux and wraps the API routes
// in mw. Health probes bypass mw so that rate limiting never fails a probe.
func NewRouter(lex *LexiconHandler, health *HealthHandler, mw middleware.Middleware) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /v1/regions", lex.Regions)
	api.HandleFunc("GET /v1/regions/{region}/words/{word}", lex.Entry)
	api.HandleFunc("GET /v1/regions/{region}/words/{word}/insights", lex.Insights)
	api.HandleFunc("GET /v1/regions/{region}/wordlist", lex.Wordlist)
	api.HandleFunc("GET /v1/regions/{region}/ipa", lex.IPAMap)
	api.HandleFunc("POST /v1/regions/{region}/normalize", lex.Normalize)
	api.HandleFunc("POST /v1/regions/{region}/reverse", lex.Reverse)
	api.HandleFunc("GET /v1/stats", lex.Stats)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("/v1/", mw(api))
	return mux
}
