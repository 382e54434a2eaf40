// Renders a list described in a layout file, with its dividers, into a png.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmigpin/listdivider/core/listlayout"
	"github.com/jmigpin/listdivider/util/fswatcher"
	"github.com/jmigpin/listdivider/util/uiutil/widget/divider"
)

func main() {
	log.SetFlags(log.Llongfile)
	if err := main2(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main2(args []string) error {
	opt := &Options{}
	fs := flag.NewFlagSet("listdivider", flag.ContinueOnError)
	opt.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opt.Layout == "" {
		return errors.New("missing -layout")
	}
	if opt.Debug {
		divider.LogDebug()
	}

	if err := render(opt); err != nil {
		if !opt.Watch {
			return err
		}
		log.Print(err)
	}
	if opt.Watch {
		return watch(opt)
	}
	return nil
}

//----------

func render(opt *Options) error {
	f, err := listlayout.Load(opt.Layout)
	if err != nil {
		return err
	}
	if opt.Width >= 0 {
		f.Width = opt.Width
	}
	if opt.Height >= 0 {
		f.Height = opt.Height
	}
	if opt.Scroll >= 0 {
		f.Scroll = opt.Scroll
	}
	for _, td := range opt.Types.regs {
		if err := f.SetTypeDivider(td.Type, td.Graphic); err != nil {
			return fmt.Errorf("-type: %w", err)
		}
	}

	r, err := f.Render()
	if err != nil {
		return err
	}
	if opt.Debug {
		divider.Dump(r.ListView.Rows())
	}
	if opt.Out != "" {
		if err := r.Save(opt.Out); err != nil {
			return err
		}
	}
	if opt.Report {
		fmt.Println(r.Report())
	}
	return nil
}

//----------

func watch(opt *Options) error {
	w, err := fswatcher.NewFileWatcher(opt.Layout)
	if err != nil {
		return err
	}
	defer w.Close()
	for ev := range w.Events() {
		switch t := ev.(type) {
		case error:
			log.Print(t)
		case *fswatcher.Event:
			divider.Logf("%v: %v", t.Op, t.Name)
			if err := render(opt); err != nil {
				log.Print(err)
			}
		}
	}
	return nil
}
