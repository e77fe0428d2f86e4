package env

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("SKILLSWAP_TEST_VALUE", " value ")
	if got := Get("SKILLSWAP_TEST_VALUE", "fallback"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := Get("SKILLSWAP_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("SKILLSWAP_TEST_BOOL", "true")
	if !GetBool("SKILLSWAP_TEST_BOOL", false) {
		t.Fatal("expected true")
	}
	t.Setenv("SKILLSWAP_TEST_BOOL", "nope")
	if GetBool("SKILLSWAP_TEST_BOOL", false) {
		t.Fatal("malformed value should fall back")
	}
}
