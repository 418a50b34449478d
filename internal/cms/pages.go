package cms

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Page is a static content page (brand story, partner agreement) loaded from
// a local markdown file with YAML front matter.
type Page struct {
	Slug      string
	Lang      string
	Title     string
	Summary   string
	Body      template.HTML
	UpdatedAt time.Time
}

type pageFrontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	Lang      string `yaml:"lang"`
	UpdatedAt string `yaml:"updated_at"`
}

// Library loads pages from a directory of <slug>.<lang>.md files.
type Library struct {
	dir      string
	renderer *Renderer
}

// NewLibrary builds a page library over dir.
func NewLibrary(dir string, renderer *Renderer) *Library {
	return &Library{dir: dir, renderer: renderer}
}

// Page reads, parses, and renders one page. The language falls back to the
// bare <slug>.md file when no localized variant exists.
func (l *Library) Page(slug, lang string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, fmt.Errorf("cms: empty slug")
	}
	candidates := []string{
		filepath.Join(l.dir, slug+"."+lang+".md"),
		filepath.Join(l.dir, slug+".md"),
	}
	var data []byte
	var err error
	for _, path := range candidates {
		data, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	if err != nil {
		return Page{}, fmt.Errorf("cms: page %s (%s): %w", slug, lang, err)
	}

	fmSrc, body := splitFrontMatter(string(data))
	var fm pageFrontMatter
	if fmSrc != "" {
		if err := yaml.Unmarshal([]byte(fmSrc), &fm); err != nil {
			return Page{}, fmt.Errorf("cms: page %s front matter: %w", slug, err)
		}
	}

	rendered, err := l.renderer.Render("page:"+slug+":"+lang, body)
	if err != nil {
		return Page{}, err
	}
	page := Page{
		Slug:      slug,
		Lang:      fm.Lang,
		Title:     fm.Title,
		Summary:   fm.Summary,
		Body:      rendered,
		UpdatedAt: parsePageDate(fm.UpdatedAt),
	}
	if page.Lang == "" {
		page.Lang = lang
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\uFEFF")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parsePageDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	var sb strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func prettifySlug(slug string) string {
	parts := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
