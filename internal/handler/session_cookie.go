package handler

import "github.com/gin-gonic/gin"

// SessionCookie describes how the access token travels back to the client.
// MaxAge is a client-side hint shorter than the token's own validity; a
// client holding the raw token can keep using the Authorization header after
// the cookie expires.
type SessionCookie struct {
	Name   string
	MaxAge int
	Secure bool // set in production only
}

func (s SessionCookie) set(c *gin.Context, tokenString string) {
	c.SetCookie(s.Name, tokenString, s.MaxAge, "/", "", s.Secure, true)
}

func (s SessionCookie) clear(c *gin.Context) {
	c.SetCookie(s.Name, "", -1, "/", "", s.Secure, true)
}
