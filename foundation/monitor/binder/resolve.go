// File: resolve.go
// Title: Overload Resolution
// Description: Orders same-named candidates and selects the first that binds.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package binder

import (
	"reflect"
	"sort"

	"github.com/msto63/devmon/foundation/monitor/fault"
	"github.com/msto63/devmon/foundation/monitor/member"
	"github.com/msto63/devmon/foundation/monitor/token"
)

// Call is a candidate together with its bound arguments
type Call struct {
	Member *member.Member
	Args   []interface{}
}

// Order returns candidates sorted by parameter count, then by the number of
// string parameters, both ascending. Ties keep their declaration order.
func Order(candidates []*member.Member) []*member.Member {
	ordered := append([]*member.Member(nil), candidates...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return less(ordered[i], ordered[j])
	})
	return ordered
}

func less(a, b *member.Member) bool {
	if len(a.Parameters) != len(b.Parameters) {
		return len(a.Parameters) < len(b.Parameters)
	}
	return a.StringParameterCount() < b.StringParameterCount()
}

func sameRank(a, b *member.Member) bool {
	return !less(a, b) && !less(b, a)
}

// Resolve selects the member to invoke for command. groups are tried in turn,
// methods before extensions, each in Order. The first candidate that binds
// wins unless another candidate of the same rank binds too, which is an
// ambiguous overload. When nothing binds the result is a parameters mismatch
// wrapping the last bind failure.
func (b *Binder) Resolve(owner reflect.Type, command string, tokens []token.Token, ambient interface{}, groups ...[]*member.Member) (*Call, error) {
	var lastErr error
	for _, group := range groups {
		ordered := Order(group)
		for i, m := range ordered {
			args, err := b.Bind(tokens, m.Parameters, ambient)
			if err != nil {
				lastErr = err
				continue
			}
			for _, other := range ordered[i+1:] {
				if !sameRank(m, other) {
					break
				}
				if _, err := b.Bind(tokens, other.Parameters, ambient); err == nil {
					return nil, fault.Ambiguous(owner, command, m.Signature(), other.Signature())
				}
			}
			return &Call{Member: m, Args: args}, nil
		}
	}
	return nil, fault.Mismatch(owner, command, lastErr)
}
