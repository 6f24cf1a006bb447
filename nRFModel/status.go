package nRFModel

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Status is the STATUS register value the chip shifts out with every SPI command.
// Accessors do not check IsValid, bits of an invalid status are undefined.
type Status uint8

// StatusFromRaw wraps a byte read from the device
func StatusFromRaw(b uint8) Status {
	return Status(b)
}

// StatusFlags returns a status with all three interrupt flags set,
// writing it to STATUS clears them
func StatusFlags() Status {
	return Status(BV(BRxDr) | BV(BTxDs) | BV(BMaxRt))
}

// Value returns the raw register byte
func (s Status) Value() uint8 {
	return uint8(s)
}

// IsValid is false when the MSB is set, which the chip never does
func (s Status) IsValid() bool {
	return !bitSet(byte(s), BStatusInvalid)
}

// DataReady indicates there is data ready to be read (RX_DR)
func (s Status) DataReady() bool {
	return bitSet(byte(s), BRxDr)
}

// DataSent indicates whether data has been sent (TX_DS)
func (s Status) DataSent() bool {
	return bitSet(byte(s), BTxDs)
}

// ReachedMaxRetries indicates whether the max retries has been reached (MAX_RT).
// Can only be true if auto acknowledgement is enabled.
func (s Status) ReachedMaxRetries() bool {
	return bitSet(byte(s), BMaxRt)
}

// DataPipeAvailable returns the pipe of the payload at the head of RX FIFO,
// ok is false when RX FIFO is empty.
// Panics on the reserved RX_P_NO value 6.
func (s Status) DataPipeAvailable() (pipe DataPipe, ok bool) {
	switch n := (byte(s) & BRxPNoMask) >> BRxPNo; n {
	case RxPNoEmpty:
		return 0, false
	case RxPNoReserved:
		invariantViolation(logrus.Fields{
			"status":  fmt.Sprintf("0x%02x", byte(s)),
			"rx_p_no": n,
		}, "reserved RX_P_NO value in STATUS register")
		return 0, false
	default:
		return DataPipe(n), true
	}
}

// TxFull indicates whether the transmission queue is full
func (s Status) TxFull() bool {
	return bitSet(byte(s), BStatusTxFull)
}

// Interrupts returns the interrupt sources that fired
func (s Status) Interrupts() Interrupts {
	return InterruptsFromRaw(byte(s))
}

// Report is the field set every status rendering is built from.
// An invalid status yields no fields.
func (s Status) Report() Report {
	if !s.IsValid() {
		return Report{Title: "Status"}
	}
	r := Report{Title: "Status", Valid: true}
	r.Fields = append(r.Fields,
		Field{Key: "rx_dr", Name: "Data ready", Value: s.DataReady()},
		Field{Key: "tx_ds", Name: "Data sent", Value: s.DataSent()},
		Field{Key: "max_rt", Name: "Reached max retries", Value: s.ReachedMaxRetries()},
	)
	if pipe, ok := s.DataPipeAvailable(); ok {
		r.Fields = append(r.Fields, Field{Key: "rx_pipe", Name: "Data ready to be read on pipe", Value: pipe.Pipe()})
	} else {
		r.Fields = append(r.Fields, Field{Key: "rx_empty", Name: "No data ready to be read in FIFO", Value: true})
	}
	r.Fields = append(r.Fields, Field{Key: "tx_full", Name: "Transmission FIFO full", Value: s.TxFull()})
	return r
}

func (s Status) String() string {
	return s.Report().Text()
}
