// Package validate holds the pure string-grammar validators the argument
// pipeline runs raw flag values through. Both are deterministic, perform no
// I/O, and never resolve names; they freeze the exact grammar the client
// accepts, including its known quirks.
package validate

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	maxURLLen  = 512
	maxHostLen = 255
)

// CleanServerURL normalizes and validates a server URL:
//   - prepends "https://" when no scheme is given
//   - only http/https pass
//   - hostname is ASCII alnum, dot, dash, max 255 chars, and must contain a
//     dot unless it is exactly "localhost"
//   - optional :port in 0..65535
//   - any path/query is dropped, total input capped at 512 chars
//
// The returned URL is scheme://host[:port]; host case is preserved as given.
// This is a shape check only: no DNS lookup, no IP-literal validation.
func CleanServerURL(raw string) (string, error) {
	if len(raw) > maxURLLen {
		return "", fmt.Errorf("URL too long (max 512 chars)")
	}

	url := raw
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		url = "https://" + raw
	}

	parts := strings.SplitN(url, "://", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("missing scheme")
	}
	scheme := parts[0]
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("unsupported scheme '%s'", scheme)
	}

	netloc := parts[1]
	if i := strings.IndexByte(netloc, '/'); i >= 0 {
		netloc = netloc[:i]
	}

	// Split host[:port] on the last colon.
	host := netloc
	portStr := ""
	hasPort := false
	if i := strings.LastIndexByte(netloc, ':'); i >= 0 {
		host = netloc[:i]
		portStr = netloc[i+1:]
		hasPort = true
	}

	if host == "" {
		return "", fmt.Errorf("hostname empty")
	}
	if len(host) > maxHostLen {
		return "", fmt.Errorf("hostname too long (max 255 chars)")
	}

	if host != "localhost" {
		for i := 0; i < len(host); i++ {
			c := host[i]
			if !isAlnum(c) && c != '.' && c != '-' {
				return "", fmt.Errorf("hostname contains invalid characters")
			}
		}
		if !strings.Contains(host, ".") {
			return "", fmt.Errorf("hostname must contain a dot unless 'localhost'")
		}
	}

	if hasPort {
		if portStr == "" {
			return "", fmt.Errorf("port is empty")
		}
		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return "", fmt.Errorf("port is not a valid number")
		}
		return fmt.Sprintf("%s://%s:%d", scheme, host, port), nil
	}
	return fmt.Sprintf("%s://%s", scheme, host), nil
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
