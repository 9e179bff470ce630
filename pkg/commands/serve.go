package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/flashq/pkg/commands/options"
	"tableflip.dev/flashq/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	so := &options.ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the data directory over HTTP",
		Long: `Serve the manifest, raw data files, and parsed datasets over HTTP so other
flashq instances can use this machine as their --data URL.`,
		Example: `
flashq serve --http-port 9000
flashq quiz --data http://127.0.0.1:9000
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}

			host := strings.TrimSpace(so.Host)
			if host == "" {
				host = "127.0.0.1"
			}
			if so.Port < 0 || so.Port > 65535 {
				return fmt.Errorf("invalid http-port %d", so.Port)
			}
			addr := net.JoinHostPort(host, strconv.Itoa(so.Port))

			runner := serve.Runner{
				Service:    svc,
				ListenAddr: addr,
				ServerCert: strings.TrimSpace(so.TLSCert),
				ServerKey:  strings.TrimSpace(so.TLSKey),
			}
			runner.OnListening = func(a net.Addr) {
				tcpAddr, ok := a.(*net.TCPAddr)
				if !ok {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "flashq serving on %s\n", addr)
					return
				}

				displayHost := host
				if displayHost == "0.0.0.0" || displayHost == "::" {
					displayHost = "127.0.0.1"
				}
				if strings.Contains(displayHost, ":") && !strings.HasPrefix(displayHost, "[") {
					displayHost = "[" + displayHost + "]"
				}

				scheme := "http"
				if runner.ServerCert != "" && runner.ServerKey != "" {
					scheme = "https"
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(),
					"flashq serving on %s://%s:%d\n",
					scheme,
					displayHost,
					tcpAddr.Port,
				)
			}

			return runner.Do(cmd.Context())
		},
	}
	options.AddServeArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
