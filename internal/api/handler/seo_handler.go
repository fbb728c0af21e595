package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/securecargo/website-api/internal/core/ports"
)

// SEOHandler generates sitemap.xml and robots.txt from the enabled service
// catalogue so search engines track content changes without a redeploy.
type SEOHandler struct {
	content ports.ContentService
	baseURL string // optional override; falls back to the request host
}

func NewSEOHandler(content ports.ContentService, baseURL string) *SEOHandler {
	return &SEOHandler{content: content, baseURL: strings.TrimRight(baseURL, "/")}
}

type sitemapPage struct {
	path     string
	priority string
}

var staticPages = []sitemapPage{
	{"/", "1.0"},
	{"/about", "0.8"},
	{"/services", "0.9"},
	{"/gallery", "0.6"},
	{"/why-choose-us", "0.7"},
	{"/contact", "0.8"},
}

// Sitemap serves the XML sitemap: static pages plus one entry per enabled
// service.
func (h *SEOHandler) Sitemap(c echo.Context) error {
	pages := make([]sitemapPage, 0, len(staticPages)+8)
	pages = append(pages, staticPages...)

	services, err := h.content.ListServices(c.Request().Context(), false)
	if err != nil {
		return err
	}
	for _, svc := range services {
		pages = append(pages, sitemapPage{"/services/" + svc.Slug, "0.7"})
	}

	base := h.base(c)
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "  <url>\n    <loc>%s%s</loc>\n    <changefreq>weekly</changefreq>\n    <priority>%s</priority>\n  </url>\n", base, p.path, p.priority)
	}
	b.WriteString("</urlset>\n")

	return c.Blob(http.StatusOK, "application/xml", []byte(b.String()))
}

// Robots serves robots.txt: crawl everything public, keep the admin panel out
// of the index.
func (h *SEOHandler) Robots(c echo.Context) error {
	robots := fmt.Sprintf(`User-agent: *
Allow: /
Disallow: /admin
Disallow: /admin/dashboard

Sitemap: %s/sitemap.xml
`, h.base(c))

	return c.Blob(http.StatusOK, "text/plain", []byte(robots))
}

func (h *SEOHandler) base(c echo.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	return "https://" + c.Request().Host
}
