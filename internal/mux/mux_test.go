package mux

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"xidach-server/internal/jwt"
)

func Test_authRouter(t *testing.T) {
	ts := newTestServer(t, "")

	ts.mux.authRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, "OK")
	})

	var errObj errorResponse
	assertGet(t, ts.Server, "/test", &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)

	assertGet(t, ts.Server, "/test", &errObj, 401, "not-a-token")

	token, _ := jwt.Sign(42)

	// test using auth header
	var str string
	resp := assertGetWithResp(t, ts.Server, "/test", &str, 200, token)
	assert.Equal(t, "OK", str)
	if resp != nil {
		assert.Equal(t, strconv.FormatInt(42, 10), resp.Header.Get("Xidach-AccountID"))
	}

	// test using query parameter
	resp = assertGetWithResp(t, ts.Server, "/test?access_token="+url.QueryEscape(token), &str, 200)
	assert.Equal(t, "OK", str)
	if resp != nil {
		assert.Equal(t, "42", resp.Header.Get("Xidach-AccountID"))
	}
}
