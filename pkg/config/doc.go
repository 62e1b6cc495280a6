// Package config loads schemata.yaml, which names comparison profiles and
// catalog sources.
//
//	profiles:
//	  default:
//	    exclude: [comment]
//	  structure:
//	    include: [dataType, nullable, columns, constraints]
//	sources:
//	  local:
//	    driver: sqlite
//	    dsn: file:app.db
//	  prod:
//	    driver: postgres
//	    dsn: postgres://schemata:${PGPASSWORD}@db:5432/app
//	  baseline:
//	    file: db/baseline.yaml
//
// The file is read from the path in $SCHEMATA_CONFIG, or ./schemata.yaml.
package config
