package components

import (
	"fmt"

	"masquerade/domain/by"
	"masquerade/domain/interfaces"
)

// Untyped is any component
type Untyped struct {
	base
}

var _ interfaces.Untyped = (*Untyped)(nil)

func NewUntyped(d interfaces.Driver, loc by.Locator) *Untyped {
	return &Untyped{base: newBase(d, loc)}
}

type GroupBox struct {
	base
}

var _ interfaces.GroupBox = (*GroupBox)(nil)

func NewGroupBox(d interfaces.Driver, loc by.Locator) *GroupBox {
	g := &GroupBox{base: newBase(d, loc)}
	g.tr = captionOf(g.captionElement(), g.base.translate)
	return g
}

func (g *GroupBox) captionElement() interfaces.ElementHandle {
	return g.part(by.ClassName(PanelCaptionClass))
}

func (g *GroupBox) Caption() (string, error) {
	return g.captionElement().Text()
}

type Table struct {
	base
}

var _ interfaces.Table = (*Table)(nil)

func NewTable(d interfaces.Driver, loc by.Locator) *Table {
	return &Table{base: newBase(d, loc)}
}

// RowCount returns the number of rendered rows
func (t *Table) RowCount() (int, error) {
	rows, err := t.impl.FindAll(by.CSS(TableRowCSS))
	if err != nil {
		return 0, fmt.Errorf("failed to count rows of %s: %w", by.Format(t.by), err)
	}
	return len(rows), nil
}

// SelectRow clicks the first row showing text
func (t *Table) SelectRow(text string) (interfaces.Table, error) {
	cell := t.part(by.Chained(by.ClassName(TableBodyClass), by.Text(text)))
	if err := clickable(cell); err != nil {
		return t, fmt.Errorf("failed to select row %q of %s: %w", text, by.Format(t.by), err)
	}
	return t, nil
}
