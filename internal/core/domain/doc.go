// Package domain holds the core entities of the Bigdata CLI and the pure
// logic defined over them, most importantly the weekly aggregation of daily
// theme volume. It has no dependencies on adapters or external services.
package domain
