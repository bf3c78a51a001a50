package probe

import (
	"os/exec"
	"strings"
)

// Wifi reads the associated SSID via `networksetup -getairportnetwork`.
type Wifi struct {
	// Interface is the Wi-Fi device to query, e.g. "en0".
	Interface string
}

// SSID returns the current network name, or "" when not associated or
// when the query fails.
func (w Wifi) SSID() string {
	out, err := exec.Command("networksetup", "-getairportnetwork", w.Interface).Output()
	if err != nil {
		return ""
	}
	return parseAirportNetwork(string(out))
}

// parseAirportNetwork extracts the SSID from networksetup output:
//
//	Current Wi-Fi Network: HomeNet
//
// When the interface is not associated, networksetup prints a sentence
// without that prefix ("You are not associated with an AirPort network.")
// and this returns "".
func parseAirportNetwork(out string) string {
	const prefix = "Current Wi-Fi Network: "
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return ""
}
