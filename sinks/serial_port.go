//go:build !tinygo

package sinks

import (
	"fmt"

	"go.bug.st/serial"
)

// DefaultBaudRate is used when OpenSerialPort is given a non-positive rate.
const DefaultBaudRate = 115200

// OpenSerialPort opens a UART in 8N1 mode for use with NewSerialSink.
func OpenSerialPort(name string, baud int) (serial.Port, error) {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}
	return port, nil
}

// SerialPorts lists the serial ports present on the host.
func SerialPorts() ([]string, error) {
	return serial.GetPortsList()
}
