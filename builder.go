package pathgeom

import (
	"github.com/paulmach/orb"
)

// BuildStrategy decides how a sequence of control points is interpreted as
// geometric primitives.
type BuildStrategy interface {
	BuildElements(controlPoints []orb.Point) ([]GeometryElement, error)
}

// LineStrategy interprets every consecutive control point pair as one
// straight segment. It is the default build strategy.
type LineStrategy struct{}

func (LineStrategy) BuildElements(controlPoints []orb.Point) ([]GeometryElement, error) {
	elements := make([]GeometryElement, 0, len(controlPoints)-1)
	for i := 1; i < len(controlPoints); i++ {
		elements = append(elements, NewLine(controlPoints[i-1], controlPoints[i]))
	}
	return elements, nil
}

// PathBuilder carries construction parameters for FromControlPoints.
type PathBuilder struct {
	strategy BuildStrategy
}

// WithBuildStrategy overrides the default line-per-pair construction policy.
func WithBuildStrategy(strategy BuildStrategy) func(*PathBuilder) {
	return func(builder *PathBuilder) {
		builder.strategy = strategy
	}
}
