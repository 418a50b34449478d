package i18n

import "testing"

func TestResolvePrefersSupportedBase(t *testing.T) {
	b := &Bundle{
		dict:      map[string]map[string]string{"zh": {}, "en": {}},
		fallback:  "zh",
		supported: map[string]struct{}{"zh": {}, "en": {}},
	}
	cases := map[string]string{
		"en-US,en;q=0.9":       "en",
		"zh-CN,zh;q=0.9,en;q=0.8": "zh",
		"fr-FR,fr;q=0.9":       "zh",
		"":                     "zh",
		"en;q=0.5,zh;q=0.9":    "zh",
	}
	for header, want := range cases {
		if got := b.Resolve(header); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestTFallsBackToKey(t *testing.T) {
	b := &Bundle{
		dict:      map[string]map[string]string{"zh": {"nav.home": "首页"}},
		fallback:  "zh",
		supported: map[string]struct{}{"zh": {}},
	}
	if got := b.T("en", "nav.home"); got != "首页" {
		t.Fatalf("expected fallback dict hit, got %q", got)
	}
	if got := b.T("zh", "missing.key"); got != "missing.key" {
		t.Fatalf("expected key passthrough, got %q", got)
	}
}
