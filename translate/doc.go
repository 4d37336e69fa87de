// Package translate converts parsed CASE 1.1 documents into JSON-LD for
// a target vocabulary (IEEE SCD or ASN-CTDL).
//
// Translation is a straight pipeline: resolve IRIs, project entities
// through the vocabulary's static field tables, rewrite associations
// (standalone nodes for SCD, property patches for CTDL), assemble the
// graph, and attach the vocabulary context. Every step is a pure
// function of its inputs; nothing is cached or mutated across calls, so
// concurrent translations of independent documents are safe.
//
// Deliberately absent: referential-integrity checks (dangling
// references translate to IRIs with no corresponding node), cycle
// detection (no step recurses over the reference graph), and duplicate
// @id handling (colliding nodes are all emitted).
package translate
