// Package ModemStatus interprets register snapshots the UART modem returns for its
// debug status command. Nothing here talks to the modem.
package ModemStatus

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/ndenev/RF24-rs/nRFModel"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger replaces the package logger, nil restores the default one
func SetLogger(l *logrus.Logger) {
	if nil == l {
		l = logrus.New()
	}
	log = l
}

// Register is a single byte nrf transciever register value
type Register byte

// ModemStatusRegisters response to the modem status debug command
type ModemStatusRegisters struct {
	Config            Register
	EnAA              Register
	EnRxAddr          Register
	SetupAW           Register
	SetupRetr         Register
	RfCh              Register
	RfSetup           Register
	Status            Register
	ObserveTx         Register
	RPD               Register
	RxPWP0            Register
	RxPWP1            Register
	RxPWP2            Register
	RxPWP3            Register
	RxPWP4            Register
	RxPWP5            Register
	FifoStatus        Register
	DynPD             Register
	Feature           Register
	BufferPacketCount byte
}

// ModemStatusSize is the payload length of the debug status response
const ModemStatusSize = 20

var ErrShortPayload = errors.New("modem status payload is too short")

// ResetRegisters returns the register values the chip has after power on reset
func ResetRegisters() ModemStatusRegisters {
	return ModemStatusRegisters{
		Config:     0x08,
		EnAA:       0x3F,
		EnRxAddr:   0x03,
		SetupAW:    0x03,
		SetupRetr:  0x03,
		RfCh:       0x02,
		RfSetup:    0x0E,
		Status:     0x0E,
		FifoStatus: 0x11,
	}
}

// ParseModemStatus reads the debug status payload, bytes after the first 20 are ignored
func ParseModemStatus(payload []byte) (ret ModemStatusRegisters, err error) {
	if ModemStatusSize > len(payload) {
		return ret, fmt.Errorf("%w: %d bytes [%s]", ErrShortPayload, len(payload), Dump(payload))
	}
	if err := binary.Read(bytes.NewReader(payload[:ModemStatusSize]), binary.LittleEndian, &ret); err != nil {
		return ret, fmt.Errorf("ParseModemStatus: binary.Read: %w", err)
	}
	return ret, nil
}

// Snapshot is the decoded part of a register dump
type Snapshot struct {
	Status          nRFModel.Status
	FIFOStatus      nRFModel.FIFOStatus
	Masked          nRFModel.Interrupts // sources the CONFIG MASK_* bits keep off the IRQ pin
	BufferedPackets byte
}

// Decode does not look at the fields of an invalid status, see Snapshot.Reports
func (r ModemStatusRegisters) Decode() Snapshot {
	return Snapshot{
		Status:          nRFModel.StatusFromRaw(byte(r.Status)),
		FIFOStatus:      nRFModel.FIFOStatusFromRaw(byte(r.FifoStatus)),
		Masked:          nRFModel.InterruptsFromRaw(byte(r.Config)),
		BufferedPackets: r.BufferPacketCount,
	}
}

// Reports lists status, FIFO status and masked interrupts in that order.
// A reserved RX_P_NO value in the status panics, as for any status decode.
func (s Snapshot) Reports() []nRFModel.Report {
	masked := s.Masked.Report()
	masked.Title = "Masked interrupts"
	return []nRFModel.Report{s.Status.Report(), s.FIFOStatus.Report(), masked}
}

// Render prints every report on its own line
func (s Snapshot) Render(with nRFModel.Renderer) string {
	var lines []string
	for _, r := range s.Reports() {
		lines = append(lines, r.Render(with))
	}
	return strings.Join(lines, "\n")
}

// Dump formats bytes as space separated hex pairs
func Dump(b []byte) string {
	var ret strings.Builder
	for i, c := range b {
		if 0 != i {
			ret.WriteByte(' ')
		}
		fmt.Fprintf(&ret, "%02X", c)
	}
	return ret.String()
}
