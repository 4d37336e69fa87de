package ctdl

// Namespace IRIs for the prefixes declared in the CTDL context.
const (
	// NamespaceCEASN is the CTDL-ASN terms namespace.
	NamespaceCEASN = "https://purl.org/ctdlasn/terms/"

	// NamespaceASN is the Achievement Standards Network core schema.
	NamespaceASN = "http://purl.org/ASN/schema/core/"

	// NamespaceSKOS is the SKOS core namespace.
	NamespaceSKOS = "http://www.w3.org/2004/02/skos/core#"
)

// Context is the JSON-LD @context emitted on every CTDL document.
// Downstream consumers match these entries byte for byte.
var Context = map[string]string{
	"ceasn":  NamespaceCEASN,
	"asn":    NamespaceASN,
	"skos":   NamespaceSKOS,
	"@vocab": NamespaceCEASN,
}

// Class terms for translated CASE entities.
const (
	// ClassCompetencyFramework is the @type for a translated CFDocument.
	ClassCompetencyFramework = "ceasn:CompetencyFramework"

	// ClassCompetency is the @type for a translated CFItem.
	ClassCompetency = "ceasn:Competency"
)

// PropIdentifier carries the entity's own IRI on framework and
// competency nodes, mirroring @id.
const PropIdentifier = "ceasn:identifier"
