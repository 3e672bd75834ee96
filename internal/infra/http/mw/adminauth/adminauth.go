package adminauth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	apiKey string
}

func New(apiKey string) *Middleware {
	return &Middleware{apiKey: strings.TrimSpace(apiKey)}
}

// Enabled reports whether a key is configured. Without one every request is rejected.
func (m *Middleware) Enabled() bool { return m.apiKey != "" }

func (m *Middleware) checkKey(r *http.Request) bool {
	if m.apiKey == "" {
		return false
	}
	if k := strings.TrimSpace(r.Header.Get("X-API-Key")); k != "" {
		return m.equal(k)
	}
	const pfx = "Bearer "
	if auth := strings.TrimSpace(r.Header.Get("Authorization")); strings.HasPrefix(auth, pfx) {
		return m.equal(strings.TrimSpace(auth[len(pfx):]))
	}
	return false
}

func (m *Middleware) equal(k string) bool {
	return subtle.ConstantTimeCompare([]byte(k), []byte(m.apiKey)) == 1
}

func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": "server not configured (ADMIN_API_KEY is empty)"})
			return
		}
		if !m.checkKey(c.Request) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
