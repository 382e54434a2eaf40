package listlayout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmigpin/listdivider/util/uiutil/widget"
	"github.com/jmigpin/listdivider/util/uiutil/widget/divider"
)

var reportHeader = []string{"row", "type", "bounds", "offsets", "dividers"}

// One line per row: position, type name, bounds, top/bottom offsets, and the divider boxes (only for visible rows).
func (r *Render) Lines() [][]string {
	lv := r.ListView
	visible := lv.VisibleRows()
	boxes := r.Decorator.Boxes(lv.Canvas(), visible)

	isVisible := map[*widget.ListRow]bool{}
	for _, row := range visible {
		isVisible[row] = true
	}
	rowBoxes := map[*widget.ListRow][]string{}
	for _, b := range boxes {
		rowBoxes[b.Row] = append(rowBoxes[b.Row], fmt.Sprintf("%v%v", b.Kind, b.Rect))
	}

	var lines [][]string
	for _, row := range lv.Rows() {
		divs := "-"
		if !isVisible[row] {
			divs = "hidden"
		} else if u, ok := rowBoxes[row]; ok {
			divs = strings.Join(u, " ")
		}
		line := []string{
			fmt.Sprint(row.Position),
			r.File.TypeName(row.Type),
			fmt.Sprint(row.Bounds),
			fmt.Sprintf("%v/%v", row.Offsets.Top, row.Offsets.Bottom),
			divs,
		}
		lines = append(lines, line)
	}
	return lines
}

func (r *Render) String() string {
	u := []string{}
	for _, l := range r.Lines() {
		u = append(u, strings.Join(l, " "))
	}
	return strings.Join(u, "\n")
}

//----------

var (
	headerStyle = lipgloss.NewStyle().Bold(true).PaddingRight(2)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	hiddenStyle = lipgloss.NewStyle().Faint(true).PaddingRight(2)
)

// Table with the rows geometry, for terminals.
func (r *Render) Report() string {
	lines := r.Lines()
	cols := make([][]string, len(reportHeader))
	for i, h := range reportHeader {
		cols[i] = append(cols[i], headerStyle.Render(h))
	}
	for _, l := range lines {
		st := cellStyle
		if l[len(l)-1] == "hidden" {
			st = hiddenStyle
		}
		for i, s := range l {
			cols[i] = append(cols[i], st.Render(s))
		}
	}

	blocks := make([]string, len(cols))
	for i, c := range cols {
		blocks[i] = lipgloss.JoinVertical(lipgloss.Left, c...)
	}
	t := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	dec := r.Decorator
	summary := fmt.Sprintf("size=%v content=%v scroll=%v first=%v last=%v",
		r.ListView.Bounds.Size(), r.ListView.ContentHeight(), r.ListView.ScrollY(),
		graphicThickness(dec.First()), graphicThickness(dec.Last()))
	return t + "\n" + summary
}

func graphicThickness(g divider.Graphic) string {
	if g == nil {
		return "none"
	}
	return fmt.Sprintf("%vpx", g.Thickness())
}
