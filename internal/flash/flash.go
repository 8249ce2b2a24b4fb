// Package flash implements one-shot user-visible messages carried across a
// redirect in a cookie, read and cleared by the next request.
package flash

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const (
	cookieName = "flash"
	contextKey = "flash_pending"
	maxAge     = 300
)

// Add appends a message to the flash cookie. Messages added within the same
// request accumulate.
func Add(c *gin.Context, message string) {
	messages := pending(c)
	messages = append(messages, message)
	c.Set(contextKey, messages)

	b, err := json.Marshal(messages)
	if err != nil {
		return
	}
	c.SetCookie(cookieName, base64.URLEncoding.EncodeToString(b), maxAge, "/", "", false, true)
}

// Take returns all pending messages from the request cookie and clears it.
func Take(c *gin.Context) []string {
	messages := fromCookie(c)
	if len(messages) > 0 {
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
	}
	return messages
}

// pending returns the messages added earlier in this request, falling back to
// the request cookie.
func pending(c *gin.Context) []string {
	if v, exists := c.Get(contextKey); exists {
		if messages, ok := v.([]string); ok {
			return messages
		}
	}
	return fromCookie(c)
}

func fromCookie(c *gin.Context) []string {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return nil
	}
	b, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var messages []string
	if err := json.Unmarshal(b, &messages); err != nil {
		return nil
	}
	return messages
}
