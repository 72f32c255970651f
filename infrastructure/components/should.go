package components

import (
	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

func (u *Untyped) ShouldBe(c ...entities.Condition) (interfaces.Untyped, error) {
	return u, u.should(false, c)
}

func (u *Untyped) ShouldHave(c ...entities.Condition) (interfaces.Untyped, error) {
	return u, u.should(false, c)
}

func (u *Untyped) ShouldNotBe(c ...entities.Condition) (interfaces.Untyped, error) {
	return u, u.should(true, c)
}

func (u *Untyped) ShouldNotHave(c ...entities.Condition) (interfaces.Untyped, error) {
	return u, u.should(true, c)
}

func (b *Button) ShouldBe(c ...entities.Condition) (interfaces.Button, error) {
	return b, b.should(false, c)
}

func (b *Button) ShouldHave(c ...entities.Condition) (interfaces.Button, error) {
	return b, b.should(false, c)
}

func (b *Button) ShouldNotBe(c ...entities.Condition) (interfaces.Button, error) {
	return b, b.should(true, c)
}

func (b *Button) ShouldNotHave(c ...entities.Condition) (interfaces.Button, error) {
	return b, b.should(true, c)
}

func (t *TextField) ShouldBe(c ...entities.Condition) (interfaces.TextField, error) {
	return t, t.should(false, c)
}

func (t *TextField) ShouldHave(c ...entities.Condition) (interfaces.TextField, error) {
	return t, t.should(false, c)
}

func (t *TextField) ShouldNotBe(c ...entities.Condition) (interfaces.TextField, error) {
	return t, t.should(true, c)
}

func (t *TextField) ShouldNotHave(c ...entities.Condition) (interfaces.TextField, error) {
	return t, t.should(true, c)
}

func (p *PasswordField) ShouldBe(c ...entities.Condition) (interfaces.PasswordField, error) {
	return p, p.should(false, c)
}

func (p *PasswordField) ShouldHave(c ...entities.Condition) (interfaces.PasswordField, error) {
	return p, p.should(false, c)
}

func (p *PasswordField) ShouldNotBe(c ...entities.Condition) (interfaces.PasswordField, error) {
	return p, p.should(true, c)
}

func (p *PasswordField) ShouldNotHave(c ...entities.Condition) (interfaces.PasswordField, error) {
	return p, p.should(true, c)
}

func (cb *CheckBox) ShouldBe(c ...entities.Condition) (interfaces.CheckBox, error) {
	return cb, cb.should(false, c)
}

func (cb *CheckBox) ShouldHave(c ...entities.Condition) (interfaces.CheckBox, error) {
	return cb, cb.should(false, c)
}

func (cb *CheckBox) ShouldNotBe(c ...entities.Condition) (interfaces.CheckBox, error) {
	return cb, cb.should(true, c)
}

func (cb *CheckBox) ShouldNotHave(c ...entities.Condition) (interfaces.CheckBox, error) {
	return cb, cb.should(true, c)
}

func (l *Label) ShouldBe(c ...entities.Condition) (interfaces.Label, error) {
	return l, l.should(false, c)
}

func (l *Label) ShouldHave(c ...entities.Condition) (interfaces.Label, error) {
	return l, l.should(false, c)
}

func (l *Label) ShouldNotBe(c ...entities.Condition) (interfaces.Label, error) {
	return l, l.should(true, c)
}

func (l *Label) ShouldNotHave(c ...entities.Condition) (interfaces.Label, error) {
	return l, l.should(true, c)
}

func (l *LookupField) ShouldBe(c ...entities.Condition) (interfaces.LookupField, error) {
	return l, l.should(false, c)
}

func (l *LookupField) ShouldHave(c ...entities.Condition) (interfaces.LookupField, error) {
	return l, l.should(false, c)
}

func (l *LookupField) ShouldNotBe(c ...entities.Condition) (interfaces.LookupField, error) {
	return l, l.should(true, c)
}

func (l *LookupField) ShouldNotHave(c ...entities.Condition) (interfaces.LookupField, error) {
	return l, l.should(true, c)
}

func (t *Table) ShouldBe(c ...entities.Condition) (interfaces.Table, error) {
	return t, t.should(false, c)
}

func (t *Table) ShouldHave(c ...entities.Condition) (interfaces.Table, error) {
	return t, t.should(false, c)
}

func (t *Table) ShouldNotBe(c ...entities.Condition) (interfaces.Table, error) {
	return t, t.should(true, c)
}

func (t *Table) ShouldNotHave(c ...entities.Condition) (interfaces.Table, error) {
	return t, t.should(true, c)
}

func (g *GroupBox) ShouldBe(c ...entities.Condition) (interfaces.GroupBox, error) {
	return g, g.should(false, c)
}

func (g *GroupBox) ShouldHave(c ...entities.Condition) (interfaces.GroupBox, error) {
	return g, g.should(false, c)
}

func (g *GroupBox) ShouldNotBe(c ...entities.Condition) (interfaces.GroupBox, error) {
	return g, g.should(true, c)
}

func (g *GroupBox) ShouldNotHave(c ...entities.Condition) (interfaces.GroupBox, error) {
	return g, g.should(true, c)
}

func (p *PopupButton) ShouldBe(c ...entities.Condition) (interfaces.PopupButton, error) {
	return p, p.should(false, c)
}

func (p *PopupButton) ShouldHave(c ...entities.Condition) (interfaces.PopupButton, error) {
	return p, p.should(false, c)
}

func (p *PopupButton) ShouldNotBe(c ...entities.Condition) (interfaces.PopupButton, error) {
	return p, p.should(true, c)
}

func (p *PopupButton) ShouldNotHave(c ...entities.Condition) (interfaces.PopupButton, error) {
	return p, p.should(true, c)
}
