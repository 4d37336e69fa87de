package scd

// FrameworkFieldMap maps CASE CFDocument field names to SCD property
// terms. Source fields absent from this table are dropped from the
// output by design.
var FrameworkFieldMap = map[string]string{
	"title":              "scd:name",
	"description":        "scd:description",
	"language":           "scd:language",
	"version":            "scd:version",
	"lastChangeDateTime": "scd:dateModified",
	"publisher":          "scd:publisher",
	"officialSourceURL":  "scd:url",
}

// ItemFieldMap maps CASE CFItem field names to SCD property terms.
var ItemFieldMap = map[string]string{
	"fullStatement":        "scd:statement",
	"abbreviatedStatement": "scd:abbreviatedStatement",
	"alternativeLabel":     "scd:alternativeLabel",
	"conceptKeywords":      "scd:conceptKeyword",
	"hierarchyCode":        "scd:hierarchyCode",
	"humanCodingScheme":    "scd:humanCodingScheme",
	"CFItemType":           "scd:competencyCategory",
	"language":             "scd:language",
	"educationLevel":       "scd:educationLevel",
}

// AssociationFieldMap maps CASE CFAssociation field names to SCD
// property terms on the scd:ResourceAssociation node.
var AssociationFieldMap = map[string]string{
	"sequenceNumber":     "scd:sequenceNumber",
	"lastChangeDateTime": "scd:dateModified",
}

// RelationMap maps CASE association types to SCD relation names.
var RelationMap = map[string]string{
	"isChildOf":     "hasPart",
	"precedes":      "precedes",
	"hasSkillLevel": "competencyLevel",
}

// MapRelation returns the SCD relation name for a CASE association type.
// Unknown types pass through unchanged; this is supported behavior, not
// an error path.
func MapRelation(associationType string) string {
	if mapped, ok := RelationMap[associationType]; ok {
		return mapped
	}
	return associationType
}
