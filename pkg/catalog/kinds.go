package catalog

const (
	KindCatalog    = "catalog"
	KindSchema     = "schema"
	KindTable      = "table"
	KindColumn     = "column"
	KindConstraint = "constraint"
	KindIndex      = "index"
	KindTrigger    = "trigger"
	KindPrivilege  = "privilege"
	KindSequence   = "sequence"
	KindView       = "view"
	KindRoutine    = "routine"
	KindParameter  = "parameter"
	KindType       = "type"
)
