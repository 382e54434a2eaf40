package main

import (
	"flag"
	"fmt"
	"strings"
)

type Options struct {
	Layout string
	Out    string

	// override the layout file when >=0
	Width  int
	Height int
	Scroll int

	Types TypeDividersOpt

	Report bool
	Watch  bool
	Debug  bool
}

func (opt *Options) register(fs *flag.FlagSet) {
	fs.StringVar(&opt.Layout, "layout", "", "list layout file (yaml)")
	fs.StringVar(&opt.Out, "out", "", "output png filename")
	fs.IntVar(&opt.Width, "width", -1, "list width, overrides the layout file")
	fs.IntVar(&opt.Height, "height", -1, "list height, overrides the layout file (0: fit content)")
	fs.IntVar(&opt.Scroll, "scroll", -1, "vertical scroll, overrides the layout file")
	fs.Var(&opt.Types, "type", "override a type divider: `type=graphic` (can be repeated)")
	fs.BoolVar(&opt.Report, "report", false, "print the rows geometry")
	fs.BoolVar(&opt.Watch, "watch", false, "render again when the layout file changes")
	fs.BoolVar(&opt.Debug, "debug", false, "debug log")
}

//----------

type TypeDivider struct {
	Type, Graphic string
}

// implements flag.Value interface
type TypeDividersOpt struct {
	regs []*TypeDivider
}

func (o *TypeDividersOpt) Set(s string) error {
	i := strings.Index(s, "=")
	if i <= 0 {
		return fmt.Errorf("expecting type=graphic: %q", s)
	}
	td := &TypeDivider{Type: strings.TrimSpace(s[:i]), Graphic: strings.TrimSpace(s[i+1:])}
	o.regs = append(o.regs, td)
	return nil
}

func (o *TypeDividersOpt) String() string {
	u := []string{}
	for _, td := range o.regs {
		u = append(u, td.Type+"="+td.Graphic)
	}
	return strings.Join(u, ",")
}
