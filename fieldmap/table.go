// Package fieldmap exposes the CASE 1.1 / IEEE SCD / ASN-CTDL field
// mapping reference table, covering both mapped and unmapped fields.
// The table is documentation for consumers; the translation core reads
// its own vocabulary tables, not this package.
package fieldmap

// Row describes how one CASE field relates to the two target
// vocabularies. Empty target strings mean "no equivalent".
type Row struct {
	CASEField    string `json:"case_1_1_field"`
	IEEESCDField string `json:"ieee_scd_field"`
	ASNCTDLField string `json:"asn_ctdl_field"`
	Mapped       bool   `json:"mapped"`
	Notes        string `json:"notes"`
}

// Table groups the reference rows by CASE entity.
type Table struct {
	CFDocument     []Row `json:"cfDocument"`
	CFItem         []Row `json:"cfItem"`
	CFAssociation  []Row `json:"cfAssociation"`
	FormatSpecific []Row `json:"format_specific"`
}

// Reference returns the full field-mapping table.
func Reference() Table {
	return reference
}

var reference = Table{
	CFDocument: []Row{
		{"identifier", "@id", "ceasn:identifier (@id)", true, "Used to generate the @id IRI in both formats"},
		{"uri", "@id", "@id", true, "Used as the @id IRI when provided"},
		{"title", "scd:name", "ceasn:name", true, "Direct mapping, different namespace"},
		{"description", "scd:description", "ceasn:description", true, "Direct mapping"},
		{"language", "scd:language", "ceasn:inLanguage", true, "IEEE SCD: language; ASN-CTDL: inLanguage"},
		{"version", "scd:version", "", true, "ASN-CTDL has no direct equivalent"},
		{"lastChangeDateTime", "scd:dateModified", "ceasn:dateModified", true, "Direct mapping"},
		{"publisher", "scd:publisher", "ceasn:publisher", true, "Value preserved as-is"},
		{"officialSourceURL", "scd:url", "ceasn:source", true, "IEEE SCD: url; ASN-CTDL: source"},
		{"adoptionStatus", "", "ceasn:publicationStatusType", false, "IEEE SCD has no equivalent"},
		{"educationLevel", "", "ceasn:educationLevelType", false, "No IEEE SCD equivalent at framework level"},
		{"subject", "", "ceasn:localSubject", false, "IEEE SCD has no equivalent"},
		{"rights", "", "ceasn:rights", false, "IEEE SCD has no equivalent"},
		{"license", "", "ceasn:license", false, "IEEE SCD has no equivalent"},
		{"notes", "", "ceasn:comment", false, "IEEE SCD has no equivalent"},
	},
	CFItem: []Row{
		{"identifier", "@id", "ceasn:identifier (@id)", true, "Used to generate the @id IRI"},
		{"uri", "@id", "@id", true, "Used as the @id IRI when provided"},
		{"fullStatement", "scd:statement", "ceasn:competencyText", true, "IEEE SCD: statement; ASN-CTDL: competencyText"},
		{"abbreviatedStatement", "scd:abbreviatedStatement", "ceasn:competencyLabel", true, "IEEE SCD: abbreviatedStatement; ASN-CTDL: competencyLabel"},
		{"alternativeLabel", "scd:alternativeLabel", "skos:altLabel", true, "ASN-CTDL borrows skos:altLabel"},
		{"conceptKeywords", "scd:conceptKeyword", "ceasn:conceptKeyword", true, "Direct mapping, array"},
		{"hierarchyCode", "scd:hierarchyCode", "ceasn:codedNotation", true, "IEEE SCD: hierarchyCode; ASN-CTDL: codedNotation"},
		{"humanCodingScheme", "scd:humanCodingScheme", "ceasn:codedNotation", true, "ASN-CTDL reuses codedNotation"},
		{"CFItemType", "scd:competencyCategory", "ceasn:competencyCategory", true, "Direct mapping"},
		{"language", "scd:language", "ceasn:inLanguage", true, "IEEE SCD: language; ASN-CTDL: inLanguage"},
		{"educationLevel", "scd:educationLevel", "ceasn:educationLevelType", true, "ASN-CTDL expects skos:Concept values"},
		{"conceptKeywordsUri", "", "ceasn:conceptTerm", false, "IEEE SCD has no equivalent"},
		{"notes", "", "ceasn:comment", false, "IEEE SCD has no equivalent"},
	},
	CFAssociation: []Row{
		{"identifier", "@id", "", true, "Used to generate the @id IRI (IEEE SCD only)"},
		{"uri", "@id", "", true, "Used as the @id IRI when provided (IEEE SCD only)"},
		{"associationType (isChildOf)", "scd:relationType = hasPart", "ceasn:isChildOf", true, "IEEE SCD: separate ResourceAssociation; ASN-CTDL: direct property on the origin competency"},
		{"associationType (precedes)", "scd:relationType = precedes", "ceasn:prerequisiteAlignment", true, "ASN-CTDL uses an alignment property"},
		{"associationType (hasSkillLevel)", "scd:relationType = competencyLevel", "asn:hasProgressionLevel", true, "ASN-CTDL references a progression model"},
		{"associationType (other)", "scd:relationType", "property named after the type", true, "Unmapped types pass through unchanged in both formats"},
		{"originNodeURI", "scd:sourceNode.@id", "patched competency node", true, "IEEE SCD: sourceNode reference; ASN-CTDL: the node receiving the property"},
		{"destinationNodeURI", "scd:targetNode.@id", "property value", true, "IEEE SCD: targetNode reference; ASN-CTDL: the destination IRI"},
		{"sequenceNumber", "scd:sequenceNumber", "", true, "ASN-CTDL listID not emitted"},
		{"lastChangeDateTime", "scd:dateModified", "", true, "Only carried on IEEE SCD association nodes"},
		{"CFDocumentURI", "", "ceasn:isPartOf", false, "IEEE SCD has no equivalent"},
	},
	FormatSpecific: []Row{
		{"", "@type", "@type", false, "SCD: CompetencyFramework, CompetencyDefinition, ResourceAssociation; ASN: CompetencyFramework, Competency"},
		{"", "@context", "@context", false, "SCD declares the scd namespace; ASN declares ceasn, asn, and skos"},
		{"", "@graph", "@graph", false, "Both formats wrap all translated entities in @graph"},
		{"", "scd:ResourceAssociation", "", false, "ASN-CTDL inlines relationships instead of emitting association nodes"},
	},
}
