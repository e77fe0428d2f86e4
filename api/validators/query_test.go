package validators

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
)

func TestParsePathID(t *testing.T) {
	cases := map[string]struct {
		raw    string
		want   int
		wantOK bool
	}{
		"plain":          {raw: "12", want: 12, wantOK: true},
		"leading digits": {raw: "7abc", want: 7, wantOK: true},
		"non numeric":    {raw: "abc", wantOK: false},
	}
	for name, tc := range cases {
		req := httptest.NewRequest("GET", "/skills/"+tc.raw, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("skillId", tc.raw)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		got, err := ParsePathID(req, "skillId", "skill")
		if tc.wantOK {
			if err != nil || got != tc.want {
				t.Fatalf("%s: expected %d, got %d (%v)", name, tc.want, got, err)
			}
			continue
		}
		if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			t.Fatalf("%s: expected not found, got %v", name, err)
		}
	}
}

func TestParseQueryBool(t *testing.T) {
	req := httptest.NewRequest("GET", "/notifications?unreadOnly=true", nil)
	got, err := ParseQueryBool(req, "unreadOnly", false)
	if err != nil || !got {
		t.Fatalf("expected true, got %v (%v)", got, err)
	}

	req = httptest.NewRequest("GET", "/notifications?unreadOnly=maybe", nil)
	if _, err := ParseQueryBool(req, "unreadOnly", false); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	req = httptest.NewRequest("GET", "/notifications", nil)
	if got, _ := ParseQueryBool(req, "unreadOnly", true); !got {
		t.Fatal("expected default value")
	}
}

func TestQueryStringTrimsAndCaps(t *testing.T) {
	req := httptest.NewRequest("GET", "/skills?search=%20%20guitar%20", nil)
	if got := QueryString(req, "search"); got != "guitar" {
		t.Fatalf("unexpected search %q", got)
	}

	long := strings.Repeat("a", maxQueryLen+10)
	req = httptest.NewRequest("GET", "/skills?search="+long, nil)
	if got := QueryString(req, "search"); len(got) != maxQueryLen {
		t.Fatalf("expected capped search, got %d bytes", len(got))
	}
}

func TestQueryRawKeepsWhitespace(t *testing.T) {
	req := httptest.NewRequest("GET", "/skills?search=guitar%20&category=%20Music%20", nil)
	if got := QueryRaw(req, "search"); got != "guitar " {
		t.Fatalf("expected untrimmed search, got %q", got)
	}
	if got := QueryString(req, "category"); got != "Music" {
		t.Fatalf("expected trimmed category, got %q", got)
	}
}

func TestQueryCapKeepsRunesWhole(t *testing.T) {
	raw := strings.Repeat("a", maxQueryLen-1) + "é"
	req := httptest.NewRequest("GET", "/skills?search="+url.QueryEscape(raw), nil)
	got := QueryRaw(req, "search")
	if !utf8.ValidString(got) {
		t.Fatalf("capped value is not valid UTF-8: %q", got)
	}
	if got != strings.Repeat("a", maxQueryLen-1) {
		t.Fatalf("expected the partial rune dropped, got %d bytes", len(got))
	}
}
