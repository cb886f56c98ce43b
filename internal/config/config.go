package config

import "fmt"

// DefaultProxyAddr is used when --use-proxy is given without --proxy-addr.
const DefaultProxyAddr = "127.0.0.1:9050"

// Config is the fully validated result of a command-line parse. Once built it
// is never mutated; the connection and state-file layers consume it as-is.
type Config struct {
	ServerURL     string     `yaml:"server_url"`
	StateFilePath string     `yaml:"state_file_path"`
	Proxy         *ProxyInfo `yaml:"proxy"`
	Debug         bool       `yaml:"debug"`
}

// ProxyInfo describes the outbound proxy. Host and Port have already passed
// the proxy-address grammar; Username and Password are carried verbatim and
// are independently optional.
type ProxyInfo struct {
	Type     ProxyType `yaml:"type"`
	Host     string    `yaml:"host"`
	Port     uint16    `yaml:"port"`
	Username *string   `yaml:"username"`
	Password *string   `yaml:"password"`
}

// HasAuth reports whether any credential was supplied.
func (p *ProxyInfo) HasAuth() bool {
	return p.Username != nil || p.Password != nil
}

// ProxyType selects the proxy protocol.
type ProxyType int

const (
	ProxyHTTP ProxyType = iota
	ProxySOCKS4
	ProxySOCKS5
)

func (t ProxyType) String() string {
	switch t {
	case ProxyHTTP:
		return "HTTP"
	case ProxySOCKS4:
		return "SOCKS4"
	case ProxySOCKS5:
		return "SOCKS5"
	default:
		return fmt.Sprintf("ProxyType(%d)", int(t))
	}
}

// MarshalYAML renders the protocol name instead of the ordinal.
func (t ProxyType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}
