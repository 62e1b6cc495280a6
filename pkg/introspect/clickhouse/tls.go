package clickhouse

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// TLSSettings name the PEM files used for mTLS connections.
type TLSSettings struct {
	CertFile string
	KeyFile  string
	CAFile   string
}

// GetTLSConfig creates a TLS config for connecting to ClickHouse over mTLS.
//
// Example usage:
//
//	tlsConfig, err := GetTLSConfig(opts)
//	if err != nil {
//		return err
//	}
func GetTLSConfig(opts ClientOptions) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load certfile/keyfile")
	}

	caCert, err := os.ReadFile(opts.CAFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load CAfile")
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, errors.Errorf("no certificates found in %s", opts.CAFile)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caCertPool,
		MinVersion:   tls.VersionTLS12,
	}, nil
}
