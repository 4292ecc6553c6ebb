package redis

import "testing"

func TestKeys(t *testing.T) {
	cases := map[string]string{
		userKey("abc"):      "jaaago_user:abc",
		userTypeKey("abc"):  "jaaago_userType:abc",
		revokedKey("jti-1"): "revoked:jti-1",
		resetKey("tok"):     "reset:tok",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("key = %q, want %q", got, want)
		}
	}
}
