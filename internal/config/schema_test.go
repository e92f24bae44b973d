package config_test

import (
	"strings"
	"testing"

	"github.com/gatewaytools/perfsync/internal/config"
)

func TestAuthenticated(t *testing.T) {
	d := config.DCSConfig{}
	if d.Authenticated() {
		t.Error("Authenticated should be false without a token")
	}
	d.Token = "abc123"
	if !d.Authenticated() {
		t.Error("Authenticated should be true with a token")
	}
}

func TestComplete(t *testing.T) {
	d := config.DCSConfig{Server: "https://git.door43.org", Owner: "unfoldingWord", LanguageID: "en"}
	if !d.Complete() {
		t.Error("Complete should be true with server, owner and language set")
	}
	d.LanguageID = ""
	if d.Complete() {
		t.Error("Complete should be false without a language")
	}
}

func TestEffectiveVariant_Configured(t *testing.T) {
	d := config.DefaultsConfig{Variant: "simplified"}
	if got := d.EffectiveVariant(); got != "simplified" {
		t.Errorf("EffectiveVariant = %q, want simplified", got)
	}
}

func TestEffectiveVariant_Fallback(t *testing.T) {
	d := config.DefaultsConfig{}
	if got := d.EffectiveVariant(); got != "literal" {
		t.Errorf("EffectiveVariant = %q, want literal", got)
	}
}

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, "config.yml") {
		t.Errorf("DefaultPath = %q, should end with config.yml", p)
	}
}

func TestExpandHome(t *testing.T) {
	if got := config.ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome left absolute paths alone: %q", got)
	}
	got := config.ExpandHome("~/stage")
	if strings.HasPrefix(got, "~") {
		t.Errorf("ExpandHome = %q, tilde not expanded", got)
	}
	if !strings.HasSuffix(got, "stage") {
		t.Errorf("ExpandHome = %q, suffix lost", got)
	}
}
