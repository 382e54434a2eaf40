package listlayout

import (
	"testing"

	"github.com/jmigpin/listdivider/util/testutil"
)

func TestLayouts(t *testing.T) {
	ar := testutil.ParseTxtarFile(t, "testdata/layouts.txt")
	testutil.RunArchive2(t, ar, func(t2 *testing.T, name string, in, out []byte) error {
		f, err := Parse(in)
		if err != nil {
			return err
		}
		r, err := f.Render()
		if err != nil {
			return err
		}
		return testutil.CompareOutput([]byte(r.String()), out)
	})
}
