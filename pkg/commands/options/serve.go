package options

import (
	"github.com/spf13/cobra"
)

// ServeOptions
type ServeOptions struct {
	Host    string
	Port    int
	TLSCert string
	TLSKey  string
}

func AddServeArgs(cmd *cobra.Command, o *ServeOptions) {
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1", "host/interface to listen on")
	cmd.Flags().IntVar(&o.Port, "http-port", 8080, "port to listen on (use 0 for random)")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "", "TLS private key file for HTTPS")
}
