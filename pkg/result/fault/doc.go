// Package fault provides the structured error record carried by Err
// results: a category kind, a message, and an identity with a creation
// timestamp for correlation across logs.
package fault
