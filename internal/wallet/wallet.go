// Package wallet supplies the player identity: a canonical account address
// and a sign-message operation used to answer the authority's bind challenge.
package wallet

import "context"

// Provider is the identity surface the rest of the client depends on.
// Account returns the canonical address, or "" when no identity is
// available. SignMessage is the only suspending operation in the client;
// failure or refusal means the binding is simply not attempted.
type Provider interface {
	Account() string
	SignMessage(ctx context.Context, message string) (string, error)
}

// None is the identity used when no key is configured. Every action that
// needs an identity gates on the empty account.
type None struct{}

func (None) Account() string { return "" }

func (None) SignMessage(context.Context, string) (string, error) {
	return "", ErrNoKey
}
