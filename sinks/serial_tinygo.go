//go:build tinygo

package sinks

import (
	"machine"
)

// NewMachineSerialSink creates a serial sink on the board's default UART.
func NewMachineSerialSink() *SerialSink {
	return NewSerialSink(machine.Serial)
}
