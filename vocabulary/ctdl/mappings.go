package ctdl

// FrameworkFieldMap maps CASE CFDocument field names to CTDL property
// terms. CASE version and adoptionStatus have no direct CTDL equivalent
// and are intentionally absent.
var FrameworkFieldMap = map[string]string{
	"title":              "ceasn:name",
	"description":        "ceasn:description",
	"language":           "ceasn:inLanguage",
	"lastChangeDateTime": "ceasn:dateModified",
	"publisher":          "ceasn:publisher",
	"officialSourceURL":  "ceasn:source",
	"rights":             "ceasn:rights",
	"license":            "ceasn:license",
}

// ItemFieldMap maps CASE CFItem field names to CTDL property terms.
// hierarchyCode and humanCodingScheme both target ceasn:codedNotation;
// when both are present the later field wins, matching projection order.
var ItemFieldMap = map[string]string{
	"fullStatement":        "ceasn:competencyText",
	"abbreviatedStatement": "ceasn:competencyLabel",
	"alternativeLabel":     "skos:altLabel",
	"conceptKeywords":      "ceasn:conceptKeyword",
	"hierarchyCode":        "ceasn:codedNotation",
	"humanCodingScheme":    "ceasn:codedNotation",
	"CFItemType":           "ceasn:competencyCategory",
	"language":             "ceasn:inLanguage",
	"educationLevel":       "ceasn:educationLevelType",
}

// RelationMap maps CASE association types to CTDL property names set on
// the origin competency node.
var RelationMap = map[string]string{
	"isChildOf":     "ceasn:isChildOf",
	"precedes":      "ceasn:prerequisiteAlignment",
	"hasSkillLevel": "asn:hasProgressionLevel",
}

// MapRelation returns the CTDL property name for a CASE association
// type. Unknown types pass through unchanged; this is supported
// behavior, not an error path.
func MapRelation(associationType string) string {
	if mapped, ok := RelationMap[associationType]; ok {
		return mapped
	}
	return associationType
}
