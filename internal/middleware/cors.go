package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS allows the listed origins. "*" allows any origin; "*.example.com" allows its subdomains.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowAll := false
	exact := make(map[string]struct{}, len(allowedOrigins))
	var suffixes []string

	for _, entry := range allowedOrigins {
		e := strings.TrimSpace(entry)
		switch {
		case e == "":
		case e == "*":
			allowAll = true
		case strings.HasPrefix(e, "*."):
			suffixes = append(suffixes, strings.ToLower(strings.TrimPrefix(e, "*")))
		default:
			exact[e] = struct{}{}
		}
	}

	allowed := func(origin string) bool {
		if origin == "" {
			return false
		}
		if allowAll {
			return true
		}
		if _, ok := exact[origin]; ok {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		host := strings.ToLower(u.Hostname())
		for _, suf := range suffixes {
			if strings.HasSuffix(host, suf) && host != strings.TrimPrefix(suf, ".") {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed(origin) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Set("Access-Control-Expose-Headers", "Content-Disposition")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
