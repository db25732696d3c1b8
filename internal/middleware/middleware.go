// Package middleware wraps cobra command handlers with the cross-cutting
// behavior every command shares: request ids, panic recovery and error
// rendering.
package middleware

import "github.com/spf13/cobra"

// CommandFunc is the signature of a cobra RunE handler
type CommandFunc func(cmd *cobra.Command, args []string) error

// Middleware decorates a CommandFunc
type Middleware func(next CommandFunc) CommandFunc

// Chain wraps h with mws. The first middleware is the outermost.
func Chain(h CommandFunc, mws ...Middleware) CommandFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
