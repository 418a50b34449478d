package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"chengxiang.org/chengxiang-web/internal/catalog"
	"chengxiang.org/chengxiang-web/internal/cms"
	"chengxiang.org/chengxiang-web/internal/format"
	"chengxiang.org/chengxiang-web/internal/i18n"
	mw "chengxiang.org/chengxiang-web/internal/middleware"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	contentDir   = "content"
	// devMode is set in main() based on env: CHENGXIANG_WEB_DEV (preferred) or DEV (fallback)
	devMode   bool
	tmplCache *template.Template

	i18nBundle  *i18n.Bundle
	siteCatalog *catalog.Catalog
	renderer    *cms.Renderer
	pages       *cms.Library
)

func main() {
	var (
		addr        string
		tmplPath    string
		pubPath     string
		contentPath string
	)
	// Port resolution: prefer CHENGXIANG_WEB_PORT, then PORT, else 8080
	port := os.Getenv("CHENGXIANG_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&contentPath, "content", contentDir, "markdown content directory")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath
	contentDir = contentPath

	devMode = os.Getenv("CHENGXIANG_WEB_DEV") != "" || os.Getenv("DEV") != ""

	if !devMode {
		tc, err := parseTemplates()
		if err != nil {
			log.Fatalf("parse templates: %v", err)
		}
		tmplCache = tc
	}

	var err error
	i18nBundle, err = i18n.Load("locales", "zh", []string{"zh", "en"})
	if err != nil {
		log.Fatalf("load i18n: %v", err)
	}

	siteCatalog = catalog.New()
	renderer = cms.NewRenderer()
	pages = cms.NewLibrary(contentDir, renderer)

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("web listening on %s (devMode=%v)", addr, devMode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

// newRouter wires middleware and routes. Shared with tests.
func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.Locale(i18nBundle))
	r.Use(mw.CSRF)
	r.Use(mw.VaryLocale)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	// Every page lives under "/" and is selected by the tab and id query
	// parameters so navigation state stays shareable.
	r.Get("/", RootHandler)

	r.Get("/search", SearchHandler)

	// htmx fragments
	r.Get("/frag/mall/list", MallListFrag)
	r.Get("/frag/notices", NoticesFrag)

	// state mutations; each redirects back into "/"
	r.Post("/cart/add", CartAddHandler)
	r.Post("/cart/quantity", CartQuantityHandler)
	r.Post("/cart/remove", CartRemoveHandler)
	r.Post("/cart/coupon", CartCouponHandler)
	r.Post("/cart/checkout", CartCheckoutHandler)
	r.Post("/wishlist/toggle", WishlistToggleHandler)
	r.Post("/viewport", ViewportHandler)
	r.Post("/wallet/withdraw", WithdrawHandler)
	r.Post("/agent/apply", AgentApplyHandler)
	r.Post("/auth/login", LoginSubmitHandler)
	r.Post("/auth/register", RegisterSubmitHandler)
	r.Post("/auth/forgot", ForgotSubmitHandler)
	r.Post("/auth/send-code", SendCodeHandler)

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		"T": func(lang, key string) string {
			if i18nBundle == nil {
				return key
			}
			return i18nBundle.T(lang, key)
		},
		"money": func(amount int64, lang string) string {
			return format.FmtCurrency(amount, "CNY", lang)
		},
		"rating": format.FmtRating,
		"dict": func(pairs ...any) map[string]any {
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i+1 < len(pairs); i += 2 {
				if k, ok := pairs[i].(string); ok {
					m[k] = pairs[i+1]
				}
			}
			return m
		},
		"has": func(xs []string, s string) bool {
			for _, x := range xs {
				if x == s {
					return true
				}
			}
			return false
		},
		"seq": func(from, to int) []int {
			if to < from {
				return nil
			}
			out := make([]int, 0, to-from+1)
			for i := from; i <= to; i++ {
				out = append(out, i)
			}
			return out
		},
	}
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func currentTemplates(w http.ResponseWriter) *template.Template {
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	if tmplCache == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return nil
	}
	return tmplCache
}

// renderPage executes the base layout with a page view model.
func renderPage(w http.ResponseWriter, r *http.Request, vm PageData) {
	t := currentTemplates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", vm); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// renderTemplate executes a named fragment template for htmx swaps.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := currentTemplates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

func i18nOrDefault(lang, key, fallback string) string {
	if i18nBundle == nil {
		return fallback
	}
	if v := i18nBundle.T(lang, key); v != key {
		return v
	}
	return fallback
}
