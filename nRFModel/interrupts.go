package nRFModel

import "strings"

// InterruptKind is one of the three interrupt sources of the chip.
// The values are the source bits in STATUS and CONFIG.
type InterruptKind uint8

const (
	TransmissionFail InterruptKind = 1 << BMaxRt
	TransmissionOk   InterruptKind = 1 << BTxDs
	DataReady        InterruptKind = 1 << BRxDr
)

var interruptKinds = []InterruptKind{TransmissionFail, TransmissionOk, DataReady}

func (k InterruptKind) String() string {
	switch k {
	case TransmissionFail:
		return "MAX_RT"
	case TransmissionOk:
		return "TX_DS"
	case DataReady:
		return "RX_DR"
	default:
		return "unknown"
	}
}

// Interrupts is a set of interrupt sources.
// Bits outside of the three sources are never stored.
type Interrupts struct {
	v uint8
}

// NewInterrupts returns an empty set
func NewInterrupts() Interrupts {
	return Interrupts{}
}

// AllInterrupts returns the set of all three sources
func AllInterrupts() Interrupts {
	return NewInterrupts().TransmissionFail().TransmissionOk().DataReady()
}

// InterruptsFromRaw drops every bit that is not an interrupt source
func InterruptsFromRaw(b uint8) Interrupts {
	return Interrupts{v: b & AllInterrupts().v}
}

func (i Interrupts) with(k InterruptKind) Interrupts {
	i.v |= uint8(k)
	return i
}

func (i Interrupts) TransmissionFail() Interrupts {
	return i.with(TransmissionFail)
}

func (i Interrupts) TransmissionOk() Interrupts {
	return i.with(TransmissionOk)
}

func (i Interrupts) DataReady() Interrupts {
	return i.with(DataReady)
}

func (i Interrupts) Contains(k InterruptKind) bool {
	return 0 != i.v&uint8(k)
}

// Value returns the bitmask to be written to the device
func (i Interrupts) Value() uint8 {
	return i.v
}

// Kinds lists the sources in the set, lowest bit first
func (i Interrupts) Kinds() []InterruptKind {
	var ret []InterruptKind
	for _, k := range interruptKinds {
		if i.Contains(k) {
			ret = append(ret, k)
		}
	}
	return ret
}

func (i Interrupts) String() string {
	names := make([]string, 0, len(interruptKinds))
	for _, k := range i.Kinds() {
		names = append(names, k.String())
	}
	return "Interrupts{" + strings.Join(names, "|") + "}"
}

// Report has one field per source, whether or not it is in the set
func (i Interrupts) Report() Report {
	r := Report{Title: "Interrupts", Valid: true}
	for _, k := range interruptKinds {
		r.Fields = append(r.Fields, Field{Key: strings.ToLower(k.String()), Name: k.String(), Value: i.Contains(k)})
	}
	return r
}
