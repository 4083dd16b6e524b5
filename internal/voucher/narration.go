package voucher

import (
	"strings"
	"time"
)

var narrationTemplates = map[Kind]string{
	KindReceipt: "Receipt from {party} on {date}",
	KindPayment: "Payment to {party} on {date}",
	KindIncome:  "Income received on {date}",
	KindExpense: "Expense paid on {date}",
	KindJournal: "Journal entry on {date}",
}

const narrationDateFormat = "02 Jan 2006"

// DefaultNarration renders the per-kind narration template with the
// counterparty display name and formatted date.
func DefaultNarration(k Kind, party string, date time.Time) string {
	t := narrationTemplates[k]
	t = strings.ReplaceAll(t, "{party}", party)
	t = strings.ReplaceAll(t, "{date}", date.Format(narrationDateFormat))
	return t
}

// NarrationMode tells whether narration text is still template-derived.
type NarrationMode int

const (
	NarrationAuto NarrationMode = iota
	NarrationManual
)

// Narration holds voucher narration text with a one-way auto-fill latch:
// template refreshes apply until the user edits the text directly, after
// which the text is never overwritten.
type Narration struct {
	mode NarrationMode
	text string
}

// Manual returns a Narration already latched to the given text, as when
// reopening a stored voucher for edit.
func Manual(text string) Narration {
	return Narration{mode: NarrationManual, text: text}
}

// Refresh re-renders the template if the narration has not been edited.
func (n *Narration) Refresh(k Kind, party string, date time.Time) {
	if n.mode == NarrationAuto {
		n.text = DefaultNarration(k, party, date)
	}
}

// Edit sets the text and latches the narration to manual.
func (n *Narration) Edit(text string) {
	n.text = text
	n.mode = NarrationManual
}

// Text returns the current narration text.
func (n Narration) Text() string { return n.text }

// Mode returns the current mode.
func (n Narration) Mode() NarrationMode { return n.mode }
