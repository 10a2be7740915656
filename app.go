package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templateFS embed.FS

// app carries everything the handlers share. One instance per process.
type app struct {
	cfg      *Config
	catalog  *Catalog
	sessions *sessionStore
	store    *Store
	metrics  *Metrics
	mailer   mailer

	adminToken  string
	hashingSalt string
	now         func() time.Time
}

func newApp(cfg *Config, catalog *Catalog, store *Store, m mailer) (*app, error) {
	adminToken, err := generateAdminToken()
	if err != nil {
		return nil, fmt.Errorf("generate admin token: %w", err)
	}
	salt, err := generateAdminToken()
	if err != nil {
		return nil, fmt.Errorf("generate hashing salt: %w", err)
	}

	metrics := NewMetrics()
	sessions := newSessionStore(catalog, cfg.SessionTTL, cfg.SessionLimit)
	sessions.onChange = func(active int) {
		metrics.ActiveSessions.Set(float64(active))
	}

	return &app{
		cfg:         cfg,
		catalog:     catalog,
		sessions:    sessions,
		store:       store,
		metrics:     metrics,
		mailer:      m,
		adminToken:  adminToken,
		hashingSalt: salt,
		now:         time.Now,
	}, nil
}

var templateFuncs = template.FuncMap{
	// navClass marks the link pointing at the current page.
	"navClass": func(current, link string) string {
		if current == link {
			return "nav-link active"
		}
		return "nav-link"
	},
	"join":   strings.Join,
	"hxVals": hxVals,
}

// hxVals encodes key/value pairs as the JSON object htmx expects in
// hx-vals. Values are marshalled, so any category text stays valid.
func hxVals(pairs ...any) (string, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("hxVals: odd number of arguments")
	}
	vals := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return "", fmt.Errorf("hxVals: key %v is not a string", pairs[i])
		}
		vals[key] = pairs[i+1]
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

func (a *app) routes() (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Use(a.visitorTrackingMiddleware())

	r.Static("/images", a.cfg.ImagesDir)
	r.Static("/static", a.cfg.StaticDir)

	r.GET("/", a.showPage("index.html", "/"))
	r.GET("/projects", a.showPage("projects.html", "/projects"))

	// HTMX endpoints, each returns the projects grid fragment
	r.POST("/projects/filter", a.selectFilter)
	r.POST("/projects/page", a.selectPage)
	r.GET("/api/projects", a.projectState)

	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})
	r.POST("/contact", a.submitContact)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.metrics.Registry, promhttp.HandlerOpts{})))

	a.setupAdminRoutes(r)
	return r, nil
}
