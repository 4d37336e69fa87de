// Package ctdl provides the ASN-CTDL vocabulary: the JSON-LD context,
// class and property terms, and the static CASE-to-CTDL field and
// relation tables.
//
// Unlike SCD, CTDL does not model associations as standalone nodes;
// each association becomes a property set directly on the origin
// competency's graph node.
package ctdl
