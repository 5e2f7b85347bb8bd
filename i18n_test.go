package main

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", LangEnglish},
		{"en_US.UTF-8", LangEnglish},
		{"English", LangEnglish},
		{"es", LangSpanish},
		{"es_MX.UTF-8", LangSpanish},
		{"spanish", LangSpanish},
		{"de", LangGerman},
		{"de_DE.UTF-8", LangGerman},
		{"deutsch", LangGerman},
		{"fr", LangEnglish},
		{"", LangEnglish},
	}
	for _, tt := range tests {
		if got := normalizeLanguage(tt.in); got != tt.want {
			t.Errorf("normalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetermineLangPrecedence(t *testing.T) {
	t.Setenv("SSM_LANG", "de")
	t.Setenv("LC_ALL", "es_MX.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")

	if got := determineLang("es"); got != LangSpanish {
		t.Errorf("flag should win, got %q", got)
	}
	if got := determineLang(""); got != LangGerman {
		t.Errorf("SSM_LANG should win over LC_ALL, got %q", got)
	}

	t.Setenv("SSM_LANG", "")
	if got := determineLang(""); got != LangSpanish {
		t.Errorf("LC_ALL should win over LANG, got %q", got)
	}
}

func TestTFormatsArguments(t *testing.T) {
	initI18n("en")
	got := T("migration_done", 1, 3)
	want := "config file upgraded from schema 1 to 3"
	if got != want {
		t.Errorf("T(migration_done) = %q, want %q", got, want)
	}
}
