package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/megaverse-builder/internal/apperror"
)

const (
	LabelSpace    = "SPACE"
	LabelPolyanet = "POLYANET"

	soloonMarker = "SOLOON"
	comethMarker = "COMETH"
)

type Kind string

const (
	KindSpace    Kind = "space"
	KindPolyanet Kind = "polyanet"
	KindSoloon   Kind = "soloon"
	KindCometh   Kind = "cometh"
)

// Object is the astral object a single cell asks for.
// Color is set only for soloons and Direction only for comeths, both lower-cased.
type Object struct {
	Kind      Kind   `json:"kind"`
	Color     string `json:"color,omitempty"`
	Direction string `json:"direction,omitempty"`
}

func (that Object) IsSpace() bool {
	return that.Kind == KindSpace
}

// ParseLabel - classifies a goal cell label.
func ParseLabel(label string) (Object, error) {
	switch {
	case label == LabelSpace:
		return Object{Kind: KindSpace}, nil
	case label == LabelPolyanet:
		return Object{Kind: KindPolyanet}, nil
	case strings.Contains(label, soloonMarker):
		color, err := labelPrefix(label)
		if err != nil {
			return Object{}, err
		}

		return Object{Kind: KindSoloon, Color: color}, nil
	case strings.Contains(label, comethMarker):
		direction, err := labelPrefix(label)
		if err != nil {
			return Object{}, err
		}

		return Object{Kind: KindCometh, Direction: direction}, nil
	default:
		return Object{}, fmt.Errorf("%w: %q", apperror.ErrUnknownLabel, label)
	}
}

func labelPrefix(label string) (string, error) {
	prefix, _, found := strings.Cut(label, "_")
	if !found || prefix == "" {
		return "", fmt.Errorf("%w: %q has no attribute prefix", apperror.ErrUnknownLabel, label)
	}

	return strings.ToLower(prefix), nil
}
