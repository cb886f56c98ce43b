package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseProxyAddr splits a "host:port" string into its parts. Accepted shapes:
//
//	hostname:1234
//	127.0.0.1:9050
//	[::1]:9050
//
// An unbracketed string is split on its LAST colon, so an IPv6 literal must
// be bracketed to carry colons in the host; a bare one is misparsed by
// construction and that split is part of the accepted grammar. The bracket
// contents are extracted positionally, not checked as a real IPv6 address.
func ParseProxyAddr(s string) (string, uint16, error) {
	if strings.HasPrefix(s, "[") {
		closing := strings.IndexByte(s, ']')
		if closing < 0 {
			return "", 0, fmt.Errorf("missing closing ']' for IPv6")
		}
		host := s[1:closing]
		rest := s[closing+1:]
		if !strings.HasPrefix(rest, ":") {
			return "", 0, fmt.Errorf("Missing ':' after IPv6 address")
		}
		portStr := rest[1:]
		if portStr == "" {
			return "", 0, fmt.Errorf("Port is empty")
		}
		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return "", 0, fmt.Errorf("Port is not a valid number")
		}
		return host, uint16(port), nil
	}

	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return "", 0, fmt.Errorf("Empty host or port")
	}
	host, portStr := s[:i], s[i+1:]
	if host == "" || portStr == "" {
		return "", 0, fmt.Errorf("Empty host or port")
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, fmt.Errorf("Port is not a valid number")
	}
	return host, uint16(port), nil
}
