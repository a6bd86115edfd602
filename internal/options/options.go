// Package options provides the generic functional-option plumbing shared by
// configurable types in this module.
package options

// Option mutates a configuration target of type T.
type Option[T any] func(T)

// Apply runs every option against the target, in order. Nil options are
// skipped.
func Apply[T any](target T, opts ...Option[T]) {
	for _, opt := range opts {
		if opt != nil {
			opt(target)
		}
	}
}
