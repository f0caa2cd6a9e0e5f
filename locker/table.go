package locker

// Rule is one row of the transition table.
type Rule struct {
	From   State
	Guard  string
	To     State
	Effect string
}

// TransitionTable lists the transitions of a variant in evaluation order.
// Rows with the same From state are checked top to bottom.
func TransitionTable(v Variant) []Rule {
	card, keypad := "card", "keypad"
	if v == VariantRFID {
		card, keypad = "tag == primary", "tag == secondary"
	}

	closeWithPackage := Rule{StateUnlockedByCard, "presence", StateLockedWithPackage, ""}
	closeEmpty := Rule{StateUnlockedByKeypad, "presence", StateLockedEmpty, ""}
	if v == VariantRFID {
		closeWithPackage.Guard = "always"
		closeEmpty.Guard = "always"
		closeEmpty.Effect = "package count = 0"
	}

	openByCard := ""
	if v == VariantRFID {
		openByCard = "package count + 1"
	}

	rules := []Rule{
		{StateInit, "always", StateLockedEmpty, ""},
		{StateLockedEmpty, card, StateUnlockedByCard, openByCard},
		{StateLockedEmpty, keypad, StateUnlockedByKeypad, ""},
		{StateLockedEmpty, "otherwise", StateLockedEmpty, ""},
		closeWithPackage,
	}

	if v == VariantBase {
		rules = append(rules,
			Rule{StateUnlockedByCard, "otherwise", StateUnlockedByCard, ""})
	}

	rules = append(rules,
		Rule{StateLockedWithPackage, card, StateUnlockedByCard, openByCard},
		Rule{StateLockedWithPackage, keypad, StateUnlockedByKeypad, ""},
		Rule{StateLockedWithPackage, "otherwise", StateLockedWithPackage, ""},
		closeEmpty,
	)

	if v == VariantBase {
		rules = append(rules,
			Rule{StateUnlockedByKeypad, "otherwise", StateUnlockedByKeypad, ""})
	}

	return rules
}
