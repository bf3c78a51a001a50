package probe

import "testing"

// ─── pmset Parsing ──────────────────────────────────────────────────────────

const pmsetOnAC = `Now drawing from 'AC Power'
 -InternalBattery-0 (id=4522083)	100%; charged; 0:00 remaining present: true
`

const pmsetOnBattery = `Now drawing from 'Battery Power'
 -InternalBattery-0 (id=4522083)	87%; discharging; 3:12 remaining present: true
`

const pmsetCharging = `Now drawing from 'AC Power'
 -InternalBattery-0 (id=4522083)	64%; charging; 1:05 remaining present: true
`

const pmsetDesktop = `Now drawing from 'AC Power'
`

func TestParsePmset(t *testing.T) {
	tests := []struct {
		name       string
		out        string
		onAC       bool
		hasBattery bool
		percent    int
	}{
		{"on AC full", pmsetOnAC, true, true, 100},
		{"on battery", pmsetOnBattery, false, true, 87},
		{"charging", pmsetCharging, true, true, 64},
		{"desktop no battery", pmsetDesktop, true, false, 0},
		{"empty output", "", false, false, 0},
		{"garbage", "no batteries available\n", false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := parsePmset(tt.out)
			if st.OnAC != tt.onAC {
				t.Errorf("OnAC = %v, want %v", st.OnAC, tt.onAC)
			}
			if st.HasBattery != tt.hasBattery {
				t.Errorf("HasBattery = %v, want %v", st.HasBattery, tt.hasBattery)
			}
			if st.Percent != tt.percent {
				t.Errorf("Percent = %d, want %d", st.Percent, tt.percent)
			}
		})
	}
}

// ─── sysctl Parsing ─────────────────────────────────────────────────────────

func TestParseLoadAvg(t *testing.T) {
	tests := []struct {
		out  string
		want float64
	}{
		{"{ 1.23 1.50 1.70 }", 1.23},
		{"{ 0.00 0.02 0.00 }", 0},
		{"{ 12.80 9.31 7.55 }", 12.8},
		{"1.23 1.50 1.70", 1.23}, // some variants omit the braces
		{"", 0},
		{"{ }", 0},
		{"{ banana 1.50 1.70 }", 0}, // non-numeric never aborts evaluation
		{"{ -1.0 0.0 0.0 }", 0},
	}
	for _, tt := range tests {
		if got := parseLoadAvg(tt.out); got != tt.want {
			t.Errorf("parseLoadAvg(%q) = %v, want %v", tt.out, got, tt.want)
		}
	}
}

func TestParseCoreCount(t *testing.T) {
	tests := []struct {
		out  string
		want int
	}{
		{"8", 8},
		{"1", 1},
		{"", 0},
		{"eight", 0},
		{"-4", 0},
	}
	for _, tt := range tests {
		if got := parseCoreCount(tt.out); got != tt.want {
			t.Errorf("parseCoreCount(%q) = %d, want %d", tt.out, got, tt.want)
		}
	}
}

// ─── networksetup Parsing ───────────────────────────────────────────────────

func TestParseAirportNetwork(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{"associated", "Current Wi-Fi Network: HomeNet\n", "HomeNet"},
		{"ssid with spaces", "Current Wi-Fi Network: Back Yard 5G\n", "Back Yard 5G"},
		{"not associated", "You are not associated with an AirPort network.\n", ""},
		{"wifi off", "You are not associated with an AirPort network.\nWi-Fi power is currently off.\n", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseAirportNetwork(tt.out); got != tt.want {
				t.Errorf("parseAirportNetwork(%q) = %q, want %q", tt.out, got, tt.want)
			}
		})
	}
}
