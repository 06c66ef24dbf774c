package figure

import (
	"fmt"

	"github.com/ManuelReschke/CoronaDash/internal/pkg/dataset"
)

// Static holds the figures that never change after startup, serialised once.
type Static struct {
	Map    []byte
	Totals []byte
}

func NewStatic(ds *dataset.Dataset) (*Static, error) {
	m, err := BubbleMap(ds.Snapshot()).JSON()
	if err != nil {
		return nil, fmt.Errorf("encode map figure: %w", err)
	}
	t, err := TotalsBar(ds.Totals()).JSON()
	if err != nil {
		return nil, fmt.Errorf("encode totals figure: %w", err)
	}
	return &Static{Map: m, Totals: t}, nil
}
