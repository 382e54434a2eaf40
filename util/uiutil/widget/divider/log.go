package divider

import (
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

type logf func(string, ...interface{})

var Logf logf = func(string, ...interface{}) {}
var Dump = func(...interface{}) {}
var Debug = false

func LogDebug() {
	Debug = true
	spew.Config.MaxDepth = 3 // graphics can hold font faces
	Dump = spew.Dump
	Logf = callerLogf
}

func callerLogf(f string, a ...interface{}) {
	fname := ""
	fpcs := make([]uintptr, 1) // num of callers to get
	n := runtime.Callers(2, fpcs)
	if n != 0 {
		fun := runtime.FuncForPC(fpcs[0] - 1) // get info
		if fun != nil {
			s := fun.Name()
			i := strings.LastIndex(s, ".")
			if i >= 0 {
				s = s[i+1:]
			}
			fname = s + ": "
		}
	}
	log.Print(fname + fmt.Sprintf(f, a...))
}
