package i18n

import (
	"strings"
	"testing"
)

func TestPrinterEnglish(t *testing.T) {
	p := Printer("en")
	got := p.Sprintf("dice.insufficient", 5, 2)
	if !strings.Contains(got, "5") || !strings.Contains(got, "2") {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(got, "dice.insufficient") {
		t.Fatalf("message key leaked: %q", got)
	}
}

func TestPrinterJapanese(t *testing.T) {
	p := Printer("ja")
	got := p.Sprintf("task.completed", "レポート")
	if !strings.Contains(got, "レポート") || !strings.Contains(got, "完了") {
		t.Fatalf("got %q", got)
	}
}

func TestPrinterFallsBackToDefault(t *testing.T) {
	p := Printer("fr")
	got := p.Sprintf("task.deleted", "x")
	want := Printer("en").Sprintf("task.deleted", "x")
	if got != want {
		t.Fatalf("got %q, want English fallback %q", got, want)
	}
}

func TestLocales(t *testing.T) {
	locales := Locales()
	if len(locales) != 2 || locales[0] != "en" || locales[1] != "ja" {
		t.Fatalf("locales=%v, want [en ja]", locales)
	}
}
