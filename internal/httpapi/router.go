package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog)
	r.Use(Recover)
	r.Use(Cors)

	r.Get("/health", HealthHandler{}.Health)

	sh := ScrapeHandler{
		DB:           d.DB,
		Engine:       d.Engine,
		Hub:          d.Hub,
		CfgVal:       d.CfgVal,
		ScrapeStatus: d.ScrapeStatus,
	}
	r.Post("/scrape", sh.Run)
	r.Post("/scrape/batch", sh.Batch)
	r.Get("/scrape/status", sh.Status)

	xh := ExportHandler{}
	r.Post("/export/csv", xh.CSV)

	rh := RunsHandler{DB: d.DB}
	r.Get("/runs", rh.List)

	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	r.Get("/config", ch.Get)
	r.Put("/config", ch.Put)
	r.Get("/config/path", ch.Path)

	eh := EventsHandler{Hub: d.Hub}
	r.Get("/events", eh.ServeSSE)

	return r
}
