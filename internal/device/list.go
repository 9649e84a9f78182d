package device

import (
	"fmt"

	"go.bug.st/serial/enumerator"
)

// PortInfo describes one enumerated serial port.
type PortInfo struct {
	Device      string `json:"device"`
	Description string `json:"description"`
}

// PortList is the shape of the port listing, also used verbatim for
// the --list-json output.
type PortList struct {
	Ports []PortInfo `json:"ports"`
}

// List enumerates the serial ports on this machine.
func List() (PortList, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return PortList{}, fmt.Errorf("enumerate serial ports: %w", err)
	}
	list := PortList{Ports: make([]PortInfo, 0, len(details))}
	for _, d := range details {
		list.Ports = append(list.Ports, PortInfo{
			Device:      d.Name,
			Description: describe(d),
		})
	}
	return list, nil
}

func describe(d *enumerator.PortDetails) string {
	if d.Product != "" {
		return d.Product
	}
	if d.IsUSB {
		return fmt.Sprintf("USB VID:PID=%s:%s", d.VID, d.PID)
	}
	return "n/a"
}
