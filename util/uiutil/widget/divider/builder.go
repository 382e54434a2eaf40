package divider

// Accumulates the dividers of a vertical list. Not safe for concurrent use; build before handing the decorator to the list view.
type Builder struct {
	res           Resolver
	types         map[int]Graphic
	first, last   Graphic
	stopAfterLast bool
}

// The resolver is used by the *Res methods, can be nil.
func Vertical(res Resolver) *Builder {
	return &Builder{res: res, types: make(map[int]Graphic)}
}

//----------

// Last registration for a type wins. A nil graphic clears the registration.
func (b *Builder) Type(t int, g Graphic) *Builder {
	if g == nil {
		delete(b.types, t)
		return b
	}
	b.types[t] = g
	return b
}

// If the name can't be resolved, the type is left without divider.
func (b *Builder) TypeRes(t int, name string) *Builder {
	return b.Type(t, b.resolve(name))
}

// Uses the resolver default list divider.
func (b *Builder) TypeDefault(t int) *Builder {
	return b.TypeRes(t, DefaultName)
}

//----------

func (b *Builder) First(g Graphic) *Builder {
	b.first = g
	return b
}
func (b *Builder) FirstRes(name string) *Builder {
	return b.First(b.resolve(name))
}

func (b *Builder) Last(g Graphic) *Builder {
	b.last = g
	return b
}
func (b *Builder) LastRes(name string) *Builder {
	return b.Last(b.resolve(name))
}

//----------

// Stops the paint pass at the last row, rows given after it are not painted. By default only the rest of the last row is skipped.
func (b *Builder) StopAfterLast() *Builder {
	b.stopAfterLast = true
	return b
}

//----------

func (b *Builder) resolve(name string) Graphic {
	if b.res == nil {
		Logf("%q: no resolver", name)
		return nil
	}
	g, err := b.res.Resolve(name)
	if err != nil {
		Logf("%v", err)
		return nil
	}
	return g
}

//----------

// The decorator gets its own copy of the types map, later changes to the builder don't affect it.
func (b *Builder) Build() *Decorator {
	types := make(map[int]Graphic, len(b.types))
	for k, v := range b.types {
		types[k] = v
	}
	return &Decorator{
		types:         types,
		first:         b.first,
		last:          b.last,
		stopAfterLast: b.stopAfterLast,
	}
}
