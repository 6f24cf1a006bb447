package ModemStatus

import (
	"errors"
	"fmt"
	"io/ioutil"
	"math"
	"strconv"

	"github.com/flynn/json5"
)

var ErrBadRegisterValue = errors.New("register value is not a byte")

// fields maps dump file keys to the registers they set
func (r *ModemStatusRegisters) fields() map[string]*Register {
	return map[string]*Register{
		"config":      &r.Config,
		"en_aa":       &r.EnAA,
		"en_rxaddr":   &r.EnRxAddr,
		"setup_aw":    &r.SetupAW,
		"setup_retr":  &r.SetupRetr,
		"rf_ch":       &r.RfCh,
		"rf_setup":    &r.RfSetup,
		"status":      &r.Status,
		"observe_tx":  &r.ObserveTx,
		"rpd":         &r.RPD,
		"rx_pw_p0":    &r.RxPWP0,
		"rx_pw_p1":    &r.RxPWP1,
		"rx_pw_p2":    &r.RxPWP2,
		"rx_pw_p3":    &r.RxPWP3,
		"rx_pw_p4":    &r.RxPWP4,
		"rx_pw_p5":    &r.RxPWP5,
		"fifo_status": &r.FifoStatus,
		"dynpd":       &r.DynPD,
		"feature":     &r.Feature,
	}
}

// ParseDump reads a JSON5 object of register name to value, eg.
//
//	{ status: 14, fifo_status: "0x11", config: "0b1000" }
//
// Registers missing in the dump keep their reset values, unknown keys are ignored.
func ParseDump(data []byte) (ModemStatusRegisters, error) {
	ret := ResetRegisters()
	var dump map[string]interface{}
	if err := json5.Unmarshal(data, &dump); nil != err {
		return ret, fmt.Errorf("ParseDump: json5.Unmarshal: %w", err)
	}
	fields := ret.fields()
	for key, value := range dump {
		reg, ok := fields[key]
		if !ok {
			log.Debugf("ParseDump: skipping unknown key %q", key)
			continue
		}
		v, err := registerValue(value)
		if nil != err {
			return ret, fmt.Errorf("ParseDump: %s: %w", key, err)
		}
		*reg = v
	}
	return ret, nil
}

// LoadDump reads and parses a dump file
func LoadDump(path string) (ModemStatusRegisters, error) {
	data, err := ioutil.ReadFile(path)
	if nil != err {
		return ModemStatusRegisters{}, fmt.Errorf("LoadDump: ioutil.ReadFile: %w", err)
	}
	return ParseDump(data)
}

func registerValue(value interface{}) (Register, error) {
	switch v := value.(type) {
	case float64:
		if v < 0 || v > math.MaxUint8 || v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %v", ErrBadRegisterValue, v)
		}
		return Register(v), nil
	case string:
		n, err := strconv.ParseUint(v, 0, 8)
		if nil != err {
			return 0, fmt.Errorf("%w: %q", ErrBadRegisterValue, v)
		}
		return Register(n), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrBadRegisterValue, value)
	}
}
