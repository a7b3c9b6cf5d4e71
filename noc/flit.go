package noc

// FlitType tells the position of a flit in its packet.
type FlitType int

const (
	FlitHead FlitType = iota
	FlitBody
	FlitTail
)

// Flit is the unit of data carried over one link per handshake.
type Flit struct {
	SrcID     NodeID
	DstID     NodeID
	Type      FlitType
	Sequence  int
	Timestamp float64
	HopNo     int
}

// IsHead tells if the flit opens a packet.
func (f Flit) IsHead() bool {
	return f.Type == FlitHead
}

// IsTail tells if the flit closes a packet.
func (f Flit) IsTail() bool {
	return f.Type == FlitTail
}
