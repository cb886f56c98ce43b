// Package report renders a validated configuration for the user. It only
// consumes a finished Config; nothing here parses or validates.
package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"coldwire/internal/config"
)

// Summary writes the normal one-shot summary: the server line, then either
// the proxy line (suffixed with "(with auth)" when any credential is set) or
// "No proxy".
func Summary(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Server: %s\n", cfg.ServerURL)
	if p := cfg.Proxy; p != nil {
		auth := ""
		if p.HasAuth() {
			auth = " (with auth)"
		}
		fmt.Fprintf(w, "Proxy: %s %s:%d%s\n", p.Type, p.Host, p.Port, auth)
	} else {
		fmt.Fprintln(w, "No proxy")
	}
}

// DebugDump writes the full structural dump of the configuration as YAML.
// Credentials are included verbatim.
func DebugDump(w io.Writer, cfg *config.Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	fmt.Fprintln(w, "Parsed config:")
	_, err = w.Write(out)
	return err
}
