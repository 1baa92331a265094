package controllers

import (
	"github.com/gin-gonic/gin"
	"strings"
)

// BaseURLPolicy decides where scheme://host for callback and audio URLs
// comes from.
type BaseURLPolicy struct {
	PublicBaseURL string
	// TrustForwardedHeaders honours X-Forwarded-Proto and X-Forwarded-Host.
	// Enable it only when a proxy or tunnel in front of the service
	// overwrites those headers.
	TrustForwardedHeaders bool
}

// Resolve returns scheme://host for the inbound request, preferring the
// configured public base URL.
func (p BaseURLPolicy) Resolve(c *gin.Context) string {
	if p.PublicBaseURL != "" {
		return strings.TrimSuffix(p.PublicBaseURL, "/")
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	host := c.Request.Host

	if p.TrustForwardedHeaders {
		if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}
		if forwarded := c.GetHeader("X-Forwarded-Host"); forwarded != "" {
			host = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}
	}

	return scheme + "://" + host
}
