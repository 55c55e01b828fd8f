package mux

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-server/internal/jwt"
)

func Test_authRouter(t *testing.T) {
	ts := setupServer(t)

	var errObj errorResponse
	assertGet(t, ts, "/table", &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)

	assertGet(t, ts, "/table?access_token=garbage", &errObj, 401)

	token, _ := jwt.Sign("Alice")

	// test using auth header
	var tr tableResponse
	resp := assertGet(t, ts, "/table", &tr, 200, token)
	assert.Equal(t, "Alice", resp.Header.Get(playerHeader))
	assert.Equal(t, "table", tr.Key)

	// test using query parameter
	resp = assertGet(t, ts, "/table?access_token="+url.QueryEscape(token), &tr, 200)
	assert.Equal(t, "Alice", resp.Header.Get(playerHeader))

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/table", nil)
	req.Header.Set("Authorization", "Basic "+token)
	assertDo(t, req, &errObj, 401)
}
