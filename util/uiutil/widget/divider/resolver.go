package divider

import (
	"errors"
	"fmt"

	"github.com/jmigpin/listdivider/util/uiutil/widget"
)

// Name of the theme default list divider.
const DefaultName = "listDivider"

var ErrNotFound = errors.New("graphic not found")

type Resolver interface {
	Resolve(name string) (Graphic, error)
}

//----------

type MapResolver map[string]Graphic

func (mr MapResolver) Resolve(name string) (Graphic, error) {
	g, ok := mr[name]
	if !ok || g == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return g, nil
}

//----------

// Resolver with only the default divider: a 1px strip with the palette "divider" color.
func DefaultResolver(pal widget.Palette) MapResolver {
	return MapResolver{
		DefaultName: &Fill{Color: pal.Get("divider"), Size: 1},
	}
}
