// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/While: transform the value while staying on the Ok track
// - Ensure: trigger side effects without changing the result
// - Or/And: combine alternative and required chains
// - Finally: reduce to a concrete value via handlers
//
// Chain is ideal for small services or tests where lightweight
// synchronous chaining improves readability without branching on every
// intermediate result.
package chain
