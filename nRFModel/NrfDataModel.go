package nRFModel

// NRF-related stuff
type Bit byte

// BV returns the byte with only bit b set
func BV(b Bit) byte {
	return 1 << byte(b)
}

// nRF24L01 CONFIG register interrupt mask bits.
// A set bit keeps that source off the IRQ pin.
const (
	BMaskRxDr  Bit = 6
	BMaskTxDs      = 5
	BMaskMaxRt     = 4
)

// nRF24L01 STATUS register bits
const (
	BStatusInvalid Bit  = 7 // never set by a healthy SPI read
	BRxDr          Bit  = 6
	BTxDs               = 5
	BMaxRt              = 4
	BRxPNo              = 1
	BStatusTxFull       = 0
	BRxPNoMask     byte = 0x0E
)

// RX_P_NO values outside of the 0..5 pipe range
const (
	RxPNoReserved byte = 6 // not used by the chip, a read that shows it is corrupted
	RxPNoEmpty    byte = 7
)

// nRF24L01 FIFO_STATUS register bits
const (
	BTxReuse    Bit = 6
	BFifoTxFull     = 5
	BTxEmpty        = 4
	BRxFull         = 1
	BRxEmpty        = 0
)

func bitSet(v byte, b Bit) bool {
	return 0 != v&BV(b)
}
