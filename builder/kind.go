package builder

import (
	"fmt"

	"github.com/katalvlaran/littletsp/matrix"
)

// Kind names a constructor for callers that pick one at run time.
type Kind string

const (
	KindRandom    Kind = "random"
	KindEuclidean Kind = "euclidean"
	KindPlanted   Kind = "planted"
	KindBipartite Kind = "bipartite"
)

// Kinds lists every supported Kind.
func Kinds() []Kind {
	return []Kind{KindRandom, KindEuclidean, KindPlanted, KindBipartite}
}

// Build dispatches to the constructor for kind with n nodes. Bipartite
// splits n into ⌈n/2⌉ and ⌊n/2⌋, so odd n yields an instance with no tour.
func Build(kind Kind, n int, opts ...BuilderOption) (*matrix.Costs, error) {
	switch kind {
	case KindRandom:
		return Random(n, opts...)
	case KindEuclidean:
		m, _, err := Euclidean(n, opts...)
		return m, err
	case KindPlanted:
		m, _, err := Planted(n, opts...)
		return m, err
	case KindBipartite:
		return Bipartite((n+1)/2, n/2, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
