package formula

import "fmt"

// String renders a fully parenthesised surface form. Re-parsing it always
// yields a structurally equal formula (spec property P2).
func (t *Top) String() string { return "⊤" }

func (b *Bottom) String() string { return "⊥" }

func (v *Variable) String() string { return string(v.Name) }

func (n *Not) String() string { return fmt.Sprintf("¬%s", n.X) }

func (b *Or) String() string { return fmt.Sprintf("(%s∨%s)", b.L, b.R) }

func (b *And) String() string { return fmt.Sprintf("(%s∧%s)", b.L, b.R) }

func (b *Implies) String() string { return fmt.Sprintf("(%s⇒%s)", b.L, b.R) }

func (b *RLImplies) String() string { return fmt.Sprintf("(%s⇐%s)", b.L, b.R) }

func (b *Equiv) String() string { return fmt.Sprintf("(%s⇔%s)", b.L, b.R) }
