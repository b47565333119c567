package types

import (
	"fmt"
	"github.com/cottand/typealg/util"
	"github.com/pkg/errors"
	"log/slog"
	"strings"
)

// ErrContractViolation is the cause of every ConstructionError.
// It signals a bug in the caller rather than a problem in the analysed code.
var ErrContractViolation = errors.New("type construction contract violated")

// ConstructionError is returned when a union is built from members which
// break its invariants (too few members, or nested unions and collections)
type ConstructionError struct {
	Variant string
	// ItemType may be nil for variants without a collection branch
	ItemType Type
	Members  []Type
}

func (e *ConstructionError) Error() string {
	parts := make([]string, 0, len(e.Members)+1)
	if e.ItemType != nil {
		parts = append(parts, e.ItemType.Describe())
	}
	for _, member := range e.Members {
		parts = append(parts, describeOrNil(member))
	}
	return fmt.Sprintf("cannot create %s with: %s", e.Variant, strings.Join(parts, ", "))
}

func (e *ConstructionError) Unwrap() error {
	return ErrContractViolation
}

func (e *ConstructionError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("variant", e.Variant),
		slog.String("members", strings.Join(util.MapSlice(e.Members, describeOrNil), "|")),
	}
	if e.ItemType != nil {
		attrs = append(attrs, slog.String("itemType", e.ItemType.Describe()))
	}
	return slog.GroupValue(attrs...)
}

func describeOrNil(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.Describe()
}

func newConstructionError(variant string, itemType Type, members []Type) error {
	return errors.WithStack(&ConstructionError{
		Variant:  variant,
		ItemType: itemType,
		Members:  members,
	})
}

// validateMembers checks the invariants shared by union variants
func validateMembers(variant string, itemType Type, members []Type, minMembers int) error {
	if len(members) < minMembers {
		return newConstructionError(variant, itemType, members)
	}
	for _, member := range members {
		if member == nil {
			return newConstructionError(variant, itemType, members)
		}
		_, isIterable := member.(IterableType)
		_, isUnion := member.(UnionType)
		if isIterable || isUnion {
			return newConstructionError(variant, itemType, members)
		}
	}
	return nil
}
