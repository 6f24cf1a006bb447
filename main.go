// nrfdecode prints what nRF24L01 STATUS, FIFO_STATUS and interrupt mask bytes mean.
//
//	nrfdecode [-format text|compact|log] [-register status|fifo|irq] 0x0E 0b01000000 17
//	nrfdecode -dump registers.json5
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ndenev/RF24-rs/ModemStatus"
	"github.com/ndenev/RF24-rs/nRFModel"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

var errUnknownRegister = errors.New("unknown register")

func main() {
	format := flag.String("format", "text", "output format: text, compact or log")
	register := flag.String("register", "status", "register the bytes were read from: status, fifo or irq")
	dump := flag.String("dump", "", "JSON5 register dump file to decode instead of bytes")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Formatter = new(logrus.TextFormatter)
	log.Out = os.Stderr
	if *verbose {
		log.Level = logrus.DebugLevel
	}
	nRFModel.SetLogger(log)
	ModemStatus.SetLogger(log)

	lines, err := run(*format, *register, *dump, flag.Args())
	if nil != err {
		log.Fatal(err)
	}
	fmt.Println(strings.Join(lines, "\n"))
}

func run(format string, register string, dump string, args []string) ([]string, error) {
	renderer, err := nRFModel.ParseRenderer(format)
	if nil != err {
		return nil, err
	}
	if "" != dump {
		regs, err := ModemStatus.LoadDump(dump)
		if nil != err {
			return nil, err
		}
		log.Debugf("decoding dump %v", dump)
		return []string{regs.Decode().Render(renderer)}, nil
	}
	if 0 == len(args) {
		return nil, errors.New("nothing to decode, give register bytes or -dump")
	}
	var ret []string
	for _, arg := range args {
		b, err := strconv.ParseUint(arg, 0, 8)
		if nil != err {
			return nil, fmt.Errorf("bad register byte %q: %w", arg, err)
		}
		report, err := decode(register, uint8(b))
		if nil != err {
			return nil, err
		}
		ret = append(ret, report.Render(renderer))
	}
	return ret, nil
}

func decode(register string, b uint8) (nRFModel.Report, error) {
	switch register {
	case "status":
		return nRFModel.StatusFromRaw(b).Report(), nil
	case "fifo":
		return nRFModel.FIFOStatusFromRaw(b).Report(), nil
	case "irq":
		return nRFModel.InterruptsFromRaw(b).Report(), nil
	}
	return nRFModel.Report{}, fmt.Errorf("%w %q", errUnknownRegister, register)
}
