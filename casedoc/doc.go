// Package casedoc defines the 1EdTech CASE 1.1 input model and its
// structural parser.
//
// A parsed Document holds exactly one CFDocument (the framework header),
// an ordered list of CFItems, and an ordered list of CFAssociations.
// Parsing validates required fields only; it performs no semantic
// validation, so dangling association references, cyclic associations,
// and duplicate identifiers all parse successfully and flow through to
// translation unchanged.
package casedoc
