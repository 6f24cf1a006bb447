package nRFModel

import "strconv"

// DataPipe is one of the six receive pipes of the transceiver.
type DataPipe uint8

const (
	DataPipe0 DataPipe = 0
	DataPipe1 DataPipe = 1
	DataPipe2 DataPipe = 2
	DataPipe3 DataPipe = 3
	DataPipe4 DataPipe = 4
	DataPipe5 DataPipe = 5
)

// Pipe returns the pipe number
func (p DataPipe) Pipe() uint8 {
	return uint8(p)
}

func (p DataPipe) String() string {
	return "P" + strconv.Itoa(int(p))
}
