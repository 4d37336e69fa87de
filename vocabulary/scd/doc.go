// Package scd provides the IEEE SCD (Skill and Competency Definition)
// vocabulary: the JSON-LD context, class and property terms, and the
// static CASE-to-SCD field and relation tables.
//
// SCD represents associations as standalone scd:ResourceAssociation
// graph nodes referencing source and target by IRI.
package scd
