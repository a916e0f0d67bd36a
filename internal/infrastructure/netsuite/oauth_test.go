package netsuite

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func fixedSigner() *Signer {
	s := NewSigner(Config{
		AccountID:      "acct",
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		TokenID:        "tid",
		TokenSecret:    "ts",
	})
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	s.nonce = func() string { return "abc" }
	return s
}

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"abcXYZ019", "abcXYZ019"},
		{"-._~", "-._~"},
		{"a b", "a%20b"},
		{"a&b=c", "a%26b%3Dc"},
		{"https://x.com/y", "https%3A%2F%2Fx.com%2Fy"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := percentEncode(tt.in); got != tt.expect {
			t.Errorf("percentEncode(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}

func TestBaseString(t *testing.T) {
	params := map[string]string{
		"oauth_consumer_key":     "ck",
		"oauth_token":            "tid",
		"oauth_signature_method": "HMAC-SHA256",
		"oauth_timestamp":        "1700000000",
		"oauth_nonce":            "abc",
		"oauth_version":          "1.0",
	}
	url := "https://acct.suitetalk.api.netsuite.com/services/rest/query/v1/suiteql"

	want := "POST&" +
		"https%3A%2F%2Facct.suitetalk.api.netsuite.com%2Fservices%2Frest%2Fquery%2Fv1%2Fsuiteql&" +
		"oauth_consumer_key%3Dck" +
		"%26oauth_nonce%3Dabc" +
		"%26oauth_signature_method%3DHMAC-SHA256" +
		"%26oauth_timestamp%3D1700000000" +
		"%26oauth_token%3Dtid" +
		"%26oauth_version%3D1.0"

	if got := baseString("post", url, params); got != want {
		t.Fatalf("baseString mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestSigningKey(t *testing.T) {
	if got := signingKey("c s", "t&s"); got != "c%20s&t%26s" {
		t.Fatalf("signingKey = %q", got)
	}
}

func TestAuthorizationHeader(t *testing.T) {
	s := fixedSigner()
	header := s.AuthorizationHeader("POST", "https://acct.suitetalk.api.netsuite.com/services/rest/query/v1/suiteql")

	if !strings.HasPrefix(header, `OAuth realm="acct",`) {
		t.Fatalf("missing realm prefix: %s", header)
	}
	for _, want := range []string{
		`oauth_consumer_key="ck"`,
		`oauth_token="tid"`,
		`oauth_signature_method="HMAC-SHA256"`,
		`oauth_timestamp="1700000000"`,
		`oauth_nonce="abc"`,
		`oauth_version="1.0"`,
		`oauth_signature="`,
	} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %s: %s", want, header)
		}
	}

	// The computed signature must be valid base64 (percent-decoded).
	sig := extractParam(t, header, "oauth_signature")
	decoded := strings.NewReplacer("%2B", "+", "%2F", "/", "%3D", "=").Replace(sig)
	if _, err := base64.StdEncoding.DecodeString(decoded); err != nil {
		t.Fatalf("oauth_signature is not base64: %q err=%v", sig, err)
	}
}

func TestAuthorizationHeaderDeterministic(t *testing.T) {
	a := fixedSigner().AuthorizationHeader("POST", "https://acct.example.com/suiteql")
	b := fixedSigner().AuthorizationHeader("POST", "https://acct.example.com/suiteql")
	if a != b {
		t.Fatalf("same inputs must produce the same header\n a: %s\n b: %s", a, b)
	}
}

func extractParam(t *testing.T, header, key string) string {
	t.Helper()
	idx := strings.Index(header, key+`="`)
	if idx < 0 {
		t.Fatalf("param %s not found in %s", key, header)
	}
	rest := header[idx+len(key)+2:]
	end := strings.Index(rest, `"`)
	if end < 0 {
		t.Fatalf("unterminated param %s in %s", key, header)
	}
	return rest[:end]
}
