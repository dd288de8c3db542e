package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	data := map[string]string{"field": "start", "got": "[1 2]"}
	if msg := T("invalid_geometry", data); msg != "start must be of the form [x, y, z] where [1 2] was provided" {
		t.Fatalf("unexpected english message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_geometry", data); msg == "start must be of the form [x, y, z] where [1 2] was provided" || msg == "" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upperTranslator{})
	if msg := T("set_once", nil); msg != "X:set_once" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("missing_stream", nil); msg != "no stream selected, call stream() first" {
		t.Fatalf("expected default translator after reset, got %q", msg)
	}
}
