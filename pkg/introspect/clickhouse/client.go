// Package clickhouse reads catalogs from ClickHouse through its system tables.
// Importing it registers the "clickhouse" driver.
//
// Each database is a schema. The effective primary key of a MergeTree table is
// reported as a primary key constraint, data skipping indices as indexes with
// their type as the method, and views (plain and materialized) as views.
// Columns are nullable only when their type is Nullable(T), in which case T is
// the reported type.
package clickhouse

import (
	"context"
	"net/url"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/introspect"
)

func init() {
	introspect.Register(Loader{})
}

type (
	// Client is a ClickHouse connection used to read schema metadata.
	Client struct {
		conn driver.Conn
	}

	// ClientOptions configure a Client beyond its DSN.
	ClientOptions struct {
		TLSSettings

		// Databases limits reads to the named databases. Empty reads every
		// non-system database.
		Databases []string
	}
)

// Loader implements introspect.Loader for ClickHouse.
type Loader struct{}

func (Loader) Name() string { return "clickhouse" }

// Load connects to dsn and reads every non-system database. Besides the driver's
// own parameters the DSN may carry tls_cert, tls_key and tls_ca file paths for
// mTLS, and a comma separated databases list.
func (Loader) Load(ctx context.Context, dsn string) (*catalog.Catalog, error) {
	dsn, opts, err := splitOptions(dsn)
	if err != nil {
		return nil, err
	}

	client, err := NewClientWithOptions(ctx, dsn, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	return client.Read(ctx, opts.Databases...)
}

// splitOptions removes the parameters ClickHouse itself does not understand from a
// URL style DSN.
func splitOptions(dsn string) (string, ClientOptions, error) {
	var opts ClientOptions
	if !strings.Contains(dsn, "://") {
		return dsn, opts, nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return "", opts, errors.Wrap(err, "failed to parse clickhouse DSN")
	}

	q := u.Query()
	opts.CertFile = q.Get("tls_cert")
	opts.KeyFile = q.Get("tls_key")
	opts.CAFile = q.Get("tls_ca")
	opts.Databases = introspect.SplitList(q.Get("databases"))
	for _, key := range []string{"tls_cert", "tls_key", "tls_ca", "databases"} {
		q.Del(key)
	}

	u.RawQuery = q.Encode()
	return u.String(), opts, nil
}

// NewClient connects to ClickHouse. The DSN is either host:port or a
// clickhouse:// (or tcp://) URL.
//
// Example:
//
//	client, err := clickhouse.NewClient(ctx, "localhost:9000")
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	cat, err := client.Read(ctx)
func NewClient(ctx context.Context, dsn string) (*Client, error) {
	return NewClientWithOptions(ctx, dsn, ClientOptions{})
}

// NewClientWithOptions connects to ClickHouse, using mTLS when opts names a
// certificate.
func NewClientWithOptions(ctx context.Context, dsn string, opts ClientOptions) (*Client, error) {
	options := &clickhouse.Options{Addr: []string{dsn}}
	if strings.Contains(dsn, "://") {
		parsed, err := clickhouse.ParseDSN(dsn)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse clickhouse DSN")
		}
		options = parsed
	}

	if opts.CertFile != "" {
		tlsConfig, err := GetTLSConfig(opts)
		if err != nil {
			return nil, err
		}
		options.TLS = tlsConfig
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to clickhouse")
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to connect to clickhouse")
	}

	return &Client{conn: conn}, nil
}

// Exec runs a statement that returns no rows.
func (c *Client) Exec(ctx context.Context, query string, args ...any) error {
	return errors.Wrap(c.conn.Exec(ctx, query, args...), "failed to execute statement")
}

// Close closes the ClickHouse connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
