package config

import (
	"fmt"
	"strings"

	"coldwire/internal/validate"
)

// draft accumulates raw flag values during the token walk. Every assignment
// overwrites the previous one, which is what makes a repeated flag last-wins.
// It never leaves ParseArgs.
type draft struct {
	serverURL     *string
	stateFilePath *string

	useProxy  bool
	proxyType ProxyType
	proxyAddr *string
	proxyUser *string
	proxyPass *string

	debug bool
}

// ParseArgs turns the raw command-line tokens (program name already stripped)
// into exactly one of three outcomes: a validated Config, a help request
// (second result true, no Config), or an error with a human-readable message.
//
// The walk is a single left-to-right pass; a flag that takes a value consumes
// the next token verbatim. After the walk, raw values are validated in a
// fixed order and the first failure aborts the whole parse: server URL,
// state-file presence, then the proxy address when --use-proxy was given.
// The --proxy-* detail flags are accepted but inert without --use-proxy.
func ParseArgs(args []string) (*Config, bool, error) {
	d := draft{proxyType: ProxySOCKS5}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--server":
			v, ok := nextValue(args, &i)
			if !ok {
				return nil, false, fmt.Errorf("--server requires a value")
			}
			d.serverURL = &v

		case "--state-file":
			v, ok := nextValue(args, &i)
			if !ok {
				return nil, false, fmt.Errorf("--state-file requires a file name / path")
			}
			d.stateFilePath = &v

		case "--use-proxy":
			d.useProxy = true

		case "--proxy-type":
			v, ok := nextValue(args, &i)
			if !ok {
				return nil, false, fmt.Errorf("--proxy-type requires a value")
			}
			switch up := strings.ToUpper(v); up {
			case "HTTP":
				d.proxyType = ProxyHTTP
			case "SOCKS4":
				d.proxyType = ProxySOCKS4
			case "SOCKS5":
				d.proxyType = ProxySOCKS5
			default:
				return nil, false, fmt.Errorf("Invalid proxy type: %s (allowed: HTTP, SOCKS4, SOCKS5)", up)
			}

		case "--proxy-addr":
			v, ok := nextValue(args, &i)
			if !ok {
				return nil, false, fmt.Errorf("--proxy-addr requires a value")
			}
			d.proxyAddr = &v

		case "--proxy-user":
			v, ok := nextValue(args, &i)
			if !ok {
				return nil, false, fmt.Errorf("--proxy-user requires a value")
			}
			d.proxyUser = &v

		case "--proxy-pass":
			v, ok := nextValue(args, &i)
			if !ok {
				return nil, false, fmt.Errorf("--proxy-pass requires a value")
			}
			d.proxyPass = &v

		case "--debug":
			d.debug = true

		case "--help", "-h":
			return nil, true, nil

		default:
			return nil, false, fmt.Errorf("Unknown argument: %s", args[i])
		}
	}

	if d.serverURL == nil {
		return nil, false, fmt.Errorf("--server is required")
	}
	serverURL, err := validate.CleanServerURL(*d.serverURL)
	if err != nil {
		return nil, false, err
	}

	if d.stateFilePath == nil {
		return nil, false, fmt.Errorf("--state-file is required")
	}

	cfg := &Config{
		ServerURL:     serverURL,
		StateFilePath: *d.stateFilePath,
		Debug:         d.debug,
	}

	if d.useProxy {
		addr := DefaultProxyAddr
		if d.proxyAddr != nil {
			addr = *d.proxyAddr
		}
		host, port, err := validate.ParseProxyAddr(addr)
		if err != nil {
			return nil, false, fmt.Errorf("Invalid proxy address '%s': %w", addr, err)
		}
		cfg.Proxy = &ProxyInfo{
			Type:     d.proxyType,
			Host:     host,
			Port:     port,
			Username: d.proxyUser,
			Password: d.proxyPass,
		}
	}

	return cfg, false, nil
}

func nextValue(args []string, i *int) (string, bool) {
	if *i+1 >= len(args) {
		return "", false
	}
	*i++
	return args[*i], true
}
