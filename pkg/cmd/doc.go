// Package cmd implements the schemata command line.
//
// Commands take catalog references: a document path (.xml, .yaml, .yml or
// .sql) or source:NAME, which names a source in schemata.yaml.
//
//	# Compare two documents
//	schemata diff db/baseline.yaml db/schema.sql
//
//	# Compare a live database with a document, ignoring comments
//	schemata diff --exclude comment source:prod db/schema.sql
//
//	# Is the database like the baseline under the structure profile?
//	schemata like --profile structure source:prod db/baseline.yaml
//
//	# Dump one table as a property map
//	schemata dump --path public.emp db/schema.sql
//
//	# Snapshot a database
//	schemata introspect --driver postgres --dsn "$DATABASE_URL" --out db/baseline.yaml
package cmd
