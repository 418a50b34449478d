package cms

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderSanitizes(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("", "# 标题\n\n正文一段。\n\n<script>alert(1)</script>")
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, "<h1") || !strings.Contains(s, "正文一段。") {
		t.Fatalf("rendered output missing structure: %s", s)
	}
	if strings.Contains(s, "<script") {
		t.Fatalf("script survived sanitization: %s", s)
	}
}

func TestRenderCaches(t *testing.T) {
	r := NewRenderer()
	first, err := r.Render("k", "**bold**")
	if err != nil {
		t.Fatal(err)
	}
	// Same key returns the cached rendering even if the source changed.
	second, err := r.Render("k", "different")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("cache miss on repeated key: %q vs %q", first, second)
	}
}

func TestExcerpt(t *testing.T) {
	r := NewRenderer()
	body, err := r.Render("", "沉香自古以来便被誉为众香之首。\n\n第二段不应出现在短摘要中。")
	if err != nil {
		t.Fatal(err)
	}
	got := Excerpt(body, 10)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("long excerpt not truncated: %q", got)
	}
	if len([]rune(got)) != 11 {
		t.Fatalf("excerpt length = %d runes, want 11", len([]rune(got)))
	}
	if full := Excerpt("<p>短文</p>", 10); full != "短文" {
		t.Fatalf("short excerpt = %q, want 短文", full)
	}
}

func TestLibraryPage(t *testing.T) {
	dir := t.TempDir()
	src := `---
title: 品牌故事
summary: 承香源起
updated_at: 2024-03-01
---

一段关于沉香的品牌故事。`
	if err := os.WriteFile(filepath.Join(dir, "about.zh.md"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(dir, NewRenderer())
	page, err := lib.Page("about", "zh")
	if err != nil {
		t.Fatal(err)
	}
	if page.Title != "品牌故事" || page.Summary != "承香源起" {
		t.Fatalf("front matter not applied: %+v", page)
	}
	if !strings.Contains(string(page.Body), "品牌故事。") {
		t.Fatalf("body missing: %s", page.Body)
	}
	if page.UpdatedAt.IsZero() {
		t.Fatal("updated_at not parsed")
	}
}

func TestLibraryPageFallbacks(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "terms.md"), []byte("通用条款。"), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(dir, NewRenderer())
	page, err := lib.Page("terms", "en")
	if err != nil {
		t.Fatal(err)
	}
	if page.Title != "Terms" {
		t.Fatalf("Title = %q, want prettified slug", page.Title)
	}
	if page.Lang != "en" {
		t.Fatalf("Lang = %q, want en", page.Lang)
	}

	if _, err := lib.Page("../etc/passwd", "zh"); err == nil {
		t.Fatal("traversal slug accepted")
	}
}
