// Package web serves the gallery's fixed HTML pages and assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

//go:embed static/*
var embeddedStatic embed.FS

// Pages maps a route to the page document it serves
var Pages = map[string]string{
	"/":          "index.html",
	"/gallery":   "gallery.html",
	"/biography": "biography.html",
	"/contact":   "contact.html",
	"/contract":  "contact.html",
}

// Site serves pages from the embedded files or, when dir is set, from disk
type Site struct {
	files fs.FS
}

// NewSite returns a site backed by dir, or by the embedded pages when dir is empty
func NewSite(dir string) (*Site, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return &Site{files: os.DirFS(dir)}, nil
	}

	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		return nil, err
	}
	return &Site{files: sub}, nil
}

// Register adds every page route plus /static/* to the router
func (s *Site) Register(r gin.IRoutes) {
	for route, file := range Pages {
		r.GET(route, s.Page(file))
	}
	r.StaticFS("/static", http.FS(s.files))
}

// Page returns a handler writing one HTML document
func (s *Site) Page(file string) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := fs.ReadFile(s.files, file)
		if err != nil {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.Header("Cache-Control", "public, max-age=3600")
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	}
}
