package scd

// Namespace is the IEEE SCD namespace IRI.
const Namespace = "https://w3id.org/skill-credential/"

// Context is the JSON-LD @context emitted on every SCD document.
// Downstream consumers match these entries byte for byte.
var Context = map[string]string{
	"scd":    Namespace,
	"@vocab": Namespace,
}

// Class terms for translated CASE entities.
const (
	// ClassCompetencyFramework is the @type for a translated CFDocument.
	ClassCompetencyFramework = "scd:CompetencyFramework"

	// ClassCompetencyDefinition is the @type for a translated CFItem.
	ClassCompetencyDefinition = "scd:CompetencyDefinition"

	// ClassResourceAssociation is the @type for a translated CFAssociation.
	ClassResourceAssociation = "scd:ResourceAssociation"
)

// Property terms used on scd:ResourceAssociation nodes.
const (
	// PropRelationType carries the mapped (or passed-through) relation name.
	PropRelationType = "scd:relationType"

	// PropSourceNode references the association origin by IRI.
	PropSourceNode = "scd:sourceNode"

	// PropTargetNode references the association destination by IRI.
	PropTargetNode = "scd:targetNode"
)
