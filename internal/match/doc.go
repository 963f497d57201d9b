// Package match provides name normalization, Levenshtein distance and
// nearest-name suggestions used when a mapping file references an unknown
// kind, resource field or transform.
package match
