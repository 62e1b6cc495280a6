// Package document reads and writes schema catalogs as XML or YAML documents.
//
// Both formats share one structure. In XML, every child element is singular
// (<column>, <constraint>) and scalar attributes are XML attributes:
//
//	<catalog name="main">
//	  <schema name="hr">
//	    <table name="EMP">
//	      <column name="ID" type="integer" nullable="false"/>
//	      <column name="NAME" type="varchar" length="100"/>
//	      <constraint name="EMP_PK" type="PRIMARY KEY">
//	        <column>ID</column>
//	      </constraint>
//	    </table>
//	  </schema>
//	</catalog>
//
// In YAML the same document uses plural keys:
//
//	name: main
//	schemas:
//	  - name: hr
//	    tables:
//	      - name: EMP
//	        columns:
//	          - {name: ID, type: integer, nullable: false}
//
// Columns are nullable unless stated otherwise. Enum attributes (constraint types,
// referential actions, trigger timings, ...) accept the vendor spellings understood
// by the catalog package.
//
// ReadFile also accepts .sql files, which are handed to the DDL parser.
package document
