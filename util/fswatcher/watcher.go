package fswatcher

import "strings"

type Event struct {
	Op   Op
	Name string
}

//----------

type Op uint8

const (
	Create Op = 1 << iota // also a rename onto the file
	Modify                // write, truncate
)

var opNames = []string{"create", "modify"}

func (op Op) HasAny(op2 Op) bool { return op&op2 != 0 }

func (op Op) String() string {
	u := []string{}
	for i, s := range opNames {
		if op.HasAny(1 << i) {
			u = append(u, s)
		}
	}
	return strings.Join(u, "|")
}
