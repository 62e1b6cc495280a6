package document

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/parser"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a format or file extension with no codec.
var ErrUnknownFormat = errors.New("unknown document format")

// Format is a document encoding.
type Format string

const (
	XML  Format = "xml"
	YAML Format = "yaml"
	SQL  Format = "sql"
)

// ParseFormat maps a format name to a Format. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "xml":
		return XML, nil
	case "yaml", "yml":
		return YAML, nil
	case "sql":
		return SQL, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Wrapf(ErrUnknownFormat, "no extension: %s", path)
	}
	return ParseFormat(ext)
}

// Decode reads a document in the given format. SQL input is parsed as DDL and
// converted through the resulting catalog.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document

	switch format {
	case XML:
		if err := xml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode XML document")
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "failed to decode YAML document")
		}
	case SQL:
		cat, err := parser.LoadCatalog("", r)
		if err != nil {
			return nil, err
		}
		return FromCatalog(cat), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	return &doc, nil
}

// Encode writes doc in the given format. SQL output holds the DDL statements the
// parser understands.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case XML:
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return errors.Wrap(err, "failed to write XML header")
		}

		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "failed to encode XML document")
		}

		_, err := io.WriteString(w, "\n")
		return err
	case SQL:
		cat, err := doc.Build()
		if err != nil {
			return err
		}
		return writeSQL(w, cat)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "failed to encode YAML document")
		}
		return enc.Close()
	}

	return errors.Wrapf(ErrUnknownFormat, "cannot encode %q", format)
}

// Read decodes r and builds the catalog it describes.
func Read(r io.Reader, format Format) (*catalog.Catalog, error) {
	if format == SQL {
		return parser.LoadCatalog("", r)
	}

	doc, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

// ReadFile loads a catalog from path, picking the format from the extension. A
// catalog read from SQL is named after the file.
func ReadFile(path string) (*catalog.Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	cat, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if cat.Name == "" {
		cat.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return cat, nil
}

// Write encodes cat in the given format.
func Write(w io.Writer, cat *catalog.Catalog, format Format) error {
	if format == SQL {
		return writeSQL(w, cat)
	}
	return Encode(w, FromCatalog(cat), format)
}

// WriteFile encodes cat to path, picking the format from the extension.
func WriteFile(path string, cat *catalog.Catalog) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create file: %s", path)
	}

	if err := Write(f, cat, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
