package noc

// NotValid marks a buffer level or sender id that carries no information,
// such as the values on a link with no node on the far side.
const NotValid = -1

// ChannelStatus is the state of one input channel of a node as seen by its
// neighbors.
type ChannelStatus struct {
	BufferLevel int
	Available   bool
}

// NoPData is what a node tells its neighbors about its own neighborhood. It is
// the lookahead input of congestion-aware routing.
type NoPData struct {
	SenderID              int
	ChannelStatusNeighbor [NumDirections]ChannelStatus
}

// DummyNoPData returns the value driven on links that have no sender.
func DummyNoPData() NoPData {
	d := NoPData{SenderID: NotValid}
	for i := range d.ChannelStatusNeighbor {
		d.ChannelStatusNeighbor[i] = ChannelStatus{
			BufferLevel: NotValid,
			Available:   false,
		}
	}

	return d
}

// IsValid tells if the data comes from a real sender.
func (d NoPData) IsValid() bool {
	return d.SenderID != NotValid
}
