package ModemStatus

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ndenev/RF24-rs/nRFModel"
)

func modemPayload() []byte {
	return []byte{
		0x38, 0x3F, 0x03, 0x03, 0x03, 0x4C, 0x0E, // CONFIG .. RF_SETUP
		0x40, 0x00, 0x00, // STATUS, OBSERVE_TX, RPD
		0x20, 0x20, 0x00, 0x00, 0x00, 0x00, // RX_PW_P0..5
		0x10, 0x03, 0x06, // FIFO_STATUS, DYNPD, FEATURE
		3, // buffered packets
	}
}

func TestParseModemStatus(t *testing.T) {
	got, err := ParseModemStatus(modemPayload())
	if err != nil {
		t.Fatalf("ParseModemStatus() error = %v", err)
	}
	want := ModemStatusRegisters{
		Config:            0x38,
		EnAA:              0x3F,
		EnRxAddr:          0x03,
		SetupAW:           0x03,
		SetupRetr:         0x03,
		RfCh:              0x4C,
		RfSetup:           0x0E,
		Status:            0x40,
		RxPWP0:            0x20,
		RxPWP1:            0x20,
		FifoStatus:        0x10,
		DynPD:             0x03,
		Feature:           0x06,
		BufferPacketCount: 3,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseModemStatus() = %+v, want %+v", got, want)
	}

	// trailing bytes are not part of the register block
	got, err = ParseModemStatus(append(modemPayload(), 0xFF, 0xFF))
	if err != nil || got != want {
		t.Errorf("ParseModemStatus() with trailing bytes = %+v, %v", got, err)
	}
}

func TestParseModemStatusShort(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		dump    string
	}{
		{"empty", nil, "[]"},
		{"three bytes", []byte{0x01, 0x02, 0xC0}, "[01 02 C0]"},
		{"one short", modemPayload()[:ModemStatusSize-1], "[38 3F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseModemStatus(tt.payload)
			if !errors.Is(err, ErrShortPayload) {
				t.Fatalf("ParseModemStatus() error = %v, want %v", err, ErrShortPayload)
			}
			if !strings.Contains(err.Error(), tt.dump) {
				t.Errorf("ParseModemStatus() error = %q, want it to contain %q", err, tt.dump)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	regs, err := ParseModemStatus(modemPayload())
	if err != nil {
		t.Fatalf("ParseModemStatus() error = %v", err)
	}
	s := regs.Decode()
	if s.Status != nRFModel.StatusFromRaw(0x40) {
		t.Errorf("Status = %v", s.Status)
	}
	if s.FIFOStatus != nRFModel.FIFOStatusFromRaw(0x10) {
		t.Errorf("FIFOStatus = %v", s.FIFOStatus)
	}
	masks := nRFModel.BV(nRFModel.BMaskTxDs) | nRFModel.BV(nRFModel.BMaskMaxRt)
	if s.Masked.Value() != masks {
		t.Errorf("Masked = %v, want 0x%02X", s.Masked, masks)
	}
	if s.BufferedPackets != 3 {
		t.Errorf("BufferedPackets = %d, want 3", s.BufferedPackets)
	}

	want := strings.Join([]string{
		"Status { Data ready: true, Data sent: false, Reached max retries: false, " +
			"Data ready to be read on pipe: 0, Transmission FIFO full: false }",
		"FIFOStatus { TX full: false, TX empty: true, RX full: false, RX empty: false }",
		"Masked interrupts { MAX_RT: true, TX_DS: true, RX_DR: false }",
	}, "\n")
	if got := s.Render(nRFModel.RenderText); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	want = strings.Join([]string{
		"rx_dr=1 tx_ds=0 max_rt=0 rx_pipe=0 tx_full=0",
		"tx_full=0 tx_empty=1 rx_full=0 rx_empty=0",
		"max_rt=1 tx_ds=1 rx_dr=0",
	}, "\n")
	if got := s.Render(nRFModel.RenderCompact); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestDecodeInvalidStatus(t *testing.T) {
	regs := ResetRegisters()
	regs.Status = 0xFC // invalid, with the reserved RX_P_NO underneath
	reports := regs.Decode().Reports()
	if reports[0].Valid {
		t.Fatalf("status report is valid")
	}
	if got := strings.Split(regs.Decode().Render(nRFModel.RenderText), "\n")[0]; got != nRFModel.InvalidStatusMessage {
		t.Errorf("first line = %q, want %q", got, nRFModel.InvalidStatusMessage)
	}
}

func TestDump(t *testing.T) {
	tests := []struct {
		data []byte
		want string
	}{
		{nil, ""},
		{[]byte{0x00}, "00"},
		{[]byte{0x0E, 0xC0, 0xDB}, "0E C0 DB"},
	}
	for _, tt := range tests {
		if got := Dump(tt.data); got != tt.want {
			t.Errorf("Dump(%v) = %q, want %q", tt.data, got, tt.want)
		}
	}
}
