package nRFModel

// FIFOStatus is the FIFO_STATUS register value.
type FIFOStatus uint8

func FIFOStatusFromRaw(b uint8) FIFOStatus {
	return FIFOStatus(b)
}

func (f FIFOStatus) Value() uint8 {
	return uint8(f)
}

// TxReuse is set while the last TX payload is being reused (REUSE_TX_PL)
func (f FIFOStatus) TxReuse() bool {
	return bitSet(byte(f), BTxReuse)
}

// TxFull returns true if there are no available locations in transmission queue
func (f FIFOStatus) TxFull() bool {
	return bitSet(byte(f), BFifoTxFull)
}

// TxEmpty returns true if the transmission queue is empty
func (f FIFOStatus) TxEmpty() bool {
	return bitSet(byte(f), BTxEmpty)
}

// RxFull returns true if there are no available locations in receive queue
func (f FIFOStatus) RxFull() bool {
	return bitSet(byte(f), BRxFull)
}

// RxEmpty returns true if the receive queue is empty
func (f FIFOStatus) RxEmpty() bool {
	return bitSet(byte(f), BRxEmpty)
}

// Report lists the four queue flags, FIFO_STATUS has no invalid marker
func (f FIFOStatus) Report() Report {
	return Report{
		Title: "FIFOStatus",
		Valid: true,
		Fields: []Field{
			{Key: "tx_full", Name: "TX full", Value: f.TxFull()},
			{Key: "tx_empty", Name: "TX empty", Value: f.TxEmpty()},
			{Key: "rx_full", Name: "RX full", Value: f.RxFull()},
			{Key: "rx_empty", Name: "RX empty", Value: f.RxEmpty()},
		},
	}
}

func (f FIFOStatus) String() string {
	return f.Report().Text()
}
