package domain

// Kind selects one of the four pre-aggregated satisfaction fetches.
// -mine variants scope results to the requesting user, -whole variants
// aggregate across all users.
type Kind string

const (
	KindPlatformWhole Kind = "platform-whole"
	KindPlatformMine  Kind = "platform-mine"
	KindCategoryWhole Kind = "category-whole"
	KindCategoryMine  Kind = "category-mine"
)

// ParseKind is the single place raw kind strings enter the domain.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindPlatformWhole, KindPlatformMine, KindCategoryWhole, KindCategoryMine:
		return k, nil
	default:
		return "", ErrNotExistKind
	}
}

// Mine reports whether the kind is scoped to a single user.
func (k Kind) Mine() bool {
	return k == KindPlatformMine || k == KindCategoryMine
}
