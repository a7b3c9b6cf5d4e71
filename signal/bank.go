package signal

// Bank is the set of signals the kernel commits at the end of every edge.
type Bank struct {
	signals []Committer
}

// Add registers signals in the bank.
func (b *Bank) Add(signals ...Committer) {
	b.signals = append(b.signals, signals...)
}

// Len returns the number of registered signals.
func (b *Bank) Len() int {
	return len(b.signals)
}

// Signals returns a copy of the registered signals in registration order.
func (b *Bank) Signals() []Committer {
	return append([]Committer(nil), b.signals...)
}

// CommitAll commits every signal. It returns true if any value changed.
func (b *Bank) CommitAll() bool {
	changed := false
	for _, s := range b.signals {
		changed = s.Commit() || changed
	}

	return changed
}
