package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		dbErr    bool
		cacheErr bool
		path     string
		want     int
	}{
		{name: "healthz ok", path: "/healthz", want: 200},
		{name: "readyz ok", path: "/readyz", want: 200},
		{name: "readyz db down", dbErr: true, path: "/readyz", want: 503},
		{name: "readyz cache down", cacheErr: true, path: "/readyz", want: 503},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dbPing := func() error {
				if tc.dbErr {
					return assertErr{}
				}
				return nil
			}
			cachePing := func(context.Context) error {
				if tc.cacheErr {
					return assertErr{}
				}
				return nil
			}

			r := gin.New()
			NewHealthHandler(dbPing, cachePing).Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
