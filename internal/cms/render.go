// Package cms turns markdown content into safe HTML: the academy article and
// course bodies, product detail copy, and the static pages under the content
// directory.
package cms

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	gocache "github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// Renderer converts markdown to sanitized HTML. Rendered output is cached by
// key; the source bodies are static so a short TTL is plenty.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	cache  *gocache.Cache
}

// NewRenderer builds the shared renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
		),
		policy: newBodyPolicy(),
		cache:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func newBodyPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// Render converts and sanitizes a markdown body, caching by key. An empty key
// bypasses the cache.
func (r *Renderer) Render(key, markdown string) (template.HTML, error) {
	if key != "" {
		if cached, ok := r.cache.Get(key); ok {
			return cached.(template.HTML), nil
		}
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("cms: render %s: %w", key, err)
	}
	out := template.HTML(strings.TrimSpace(r.policy.Sanitize(buf.String())))
	if key != "" {
		r.cache.Set(key, out, gocache.DefaultExpiration)
	}
	return out, nil
}

// Excerpt extracts the leading text of an HTML body for list teasers, cut at
// maxRunes with an ellipsis.
func Excerpt(body template.HTML, maxRunes int) string {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	text := strings.Join(strings.Fields(sb.String()), " ")
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + "…"
}
