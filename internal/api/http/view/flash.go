package view

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie  = "flash"
	flashCtxKey  = "view.flashes"
	secureCtxKey = "view.secure_cookies"
	flashMaxAge  = 60
	flashPath    = "/"
	maxFlashSize = 3072
)

// Flash categories understood by the templates.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// SecureCookies marks cookies set during the request as Secure.
func SecureCookies(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(secureCtxKey, secure)
		c.Next()
	}
}

// CookieSecure reports whether cookies for this request need the Secure attribute.
func CookieSecure(c *gin.Context) bool {
	return c.GetBool(secureCtxKey) || c.Request.TLS != nil
}

// AddFlash queues a message. It survives a redirect through a short-lived
// cookie and is also visible to a page rendered in the same request.
func AddFlash(c *gin.Context, category, message string) {
	flashes := append(pending(c), Flash{Category: category, Message: message})
	c.Set(flashCtxKey, flashes)

	raw, err := json.Marshal(flashes)
	if err != nil || base64.RawURLEncoding.EncodedLen(len(raw)) > maxFlashSize {
		return
	}
	setFlashCookie(c, base64.RawURLEncoding.EncodeToString(raw), flashMaxAge)
}

// ConsumeFlashes returns the queued messages and forgets them.
func ConsumeFlashes(c *gin.Context) []Flash {
	flashes := pending(c)
	c.Set(flashCtxKey, []Flash{})
	if _, err := c.Cookie(flashCookie); err == nil || len(flashes) > 0 {
		setFlashCookie(c, "", -1)
	}
	return flashes
}

func pending(c *gin.Context) []Flash {
	if v, ok := c.Get(flashCtxKey); ok {
		if flashes, ok := v.([]Flash); ok {
			return flashes
		}
	}

	flashes := decodeFlashes(c)
	c.Set(flashCtxKey, flashes)
	return flashes
}

func decodeFlashes(c *gin.Context) []Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return []Flash{}
	}
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return []Flash{}
	}
	var flashes []Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return []Flash{}
	}
	return flashes
}

func setFlashCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, value, maxAge, flashPath, "", CookieSecure(c), true)
}
