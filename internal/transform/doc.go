// Package transform is the structural mapping engine: it walks a
// mapping.Tree in lock-step with one provider resource and assembles the
// resulting resource.FlatResource.
//
// Literal properties of a tree level always win over the level's capture
// entry, which only sees the remaining properties. Null or absent values
// prune the walk. Values of the wrong type are dropped one by one with a
// logged diagnostic, so Transform always returns a complete record.
package transform
