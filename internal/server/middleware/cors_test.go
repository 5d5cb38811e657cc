package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
)

const allowedOrigin = "https://ai-code-doc-helper.netlify.app"

func corsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(allowedOrigin))
	r.POST("/api/generate-code", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestCORS(t *testing.T) {
	Convey("CORS permits exactly one origin", t, func() {
		router := corsRouter()

		Convey("the allowed origin gets CORS headers", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/generate-code", nil)
			req.Header.Set("Origin", allowedOrigin)
			router.ServeHTTP(w, req)

			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, allowedOrigin)
			So(w.Header().Get("Access-Control-Allow-Credentials"), ShouldEqual, "true")
		})

		Convey("other origins get no CORS headers", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/generate-code", nil)
			req.Header.Set("Origin", "https://evil.example")
			router.ServeHTTP(w, req)

			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
		})

		Convey("preflight requests are answered with 204", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodOptions, "/api/generate-code", nil)
			req.Header.Set("Origin", allowedOrigin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			router.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusNoContent)
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, allowedOrigin)
		})
	})
}
