package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/supplierhub/relay/internal/interfaces/http/dto"
)

// API documentation access messages
const (
	MsgDocsUnavailable = "API documentation is not available"
	MsgDocsRestricted  = "Access to API documentation is restricted"
)

// SwaggerConfig controls who may read the API documentation
type SwaggerConfig struct {
	Enabled     bool     // Serve the documentation at all
	RequireAuth bool     // Require the shared API key
	AllowedIPs  []string // IPs or CIDR ranges, empty allows all
}

// SwaggerProtection guards the documentation routes.
// Disabled docs answer 404, unlisted clients 403, and with RequireAuth the
// auth middleware decides last.
func SwaggerProtection(cfg SwaggerConfig, auth gin.HandlerFunc) gin.HandlerFunc {
	allowedIPs, allowedNets := parseAllowList(cfg.AllowedIPs)

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, MsgDocsUnavailable))
			return
		}

		if len(cfg.AllowedIPs) > 0 && !isIPAllowed(net.ParseIP(c.ClientIP()), allowedIPs, allowedNets) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, MsgDocsRestricted))
			return
		}

		if cfg.RequireAuth && auth != nil {
			auth(c)
			if c.IsAborted() {
				return
			}
		}

		c.Next()
	}
}

// parseAllowList splits entries into single IPs and CIDR networks.
// Unparseable entries are ignored.
func parseAllowList(entries []string) ([]net.IP, []*net.IPNet) {
	var ips []net.IP
	var nets []*net.IPNet
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			if _, network, err := net.ParseCIDR(entry); err == nil {
				nets = append(nets, network)
			}
			continue
		}
		if ip := net.ParseIP(entry); ip != nil {
			ips = append(ips, ip)
		}
	}
	return ips, nets
}

func isIPAllowed(ip net.IP, allowedIPs []net.IP, allowedNets []*net.IPNet) bool {
	if ip == nil {
		return false
	}
	for _, allowed := range allowedIPs {
		if allowed.Equal(ip) {
			return true
		}
	}
	for _, network := range allowedNets {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
