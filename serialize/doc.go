// Package serialize reads and writes the text record format shared by
// count profiles, context-library components, and CRF states: a
// fixed-point encoding where each probability (or log2 profile entry) is
// stored as the signed integer round(-log2(value)*kLogScale), with a
// literal "*" denoting zero/-Inf. Real-valued CRF weights and raw counts
// are stored as round(value*kLogScale) instead. Every record starts with a
// type-tag line and carries its header fields as tab-separated key-value
// lines; component, state and count-profile records terminate at a line
// containing only "//", while the ProfileLibrary and CRF headers are
// followed directly by their component or state records.
//
// Grounded on the jumpstart/"*"-sentinel convention in BergerLab-seq's
// Prob.String/NewProb, generalized from a bare probability string into a
// scaled fixed-point integer.
package serialize
