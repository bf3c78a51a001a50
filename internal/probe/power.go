// Package probe implements the production probes behind the check
// package's interfaces. Each probe shells out to one macOS utility and
// parses its text output; parsing lives in pure functions so it can be
// tested against canned transcripts. A failed command degrades to the
// type's zero value rather than an error — the verdict layer already
// treats "cannot confirm" as a plain check failure.
package probe

import (
	"os/exec"
	"strings"

	"powerful/internal/check"
)

// Power reads the power-supply state via `pmset -g batt`.
type Power struct{}

// PowerState runs pmset and parses its report. On command failure the
// zero value is returned, which fails the AC check downstream.
func (Power) PowerState() check.PowerState {
	out, err := exec.Command("pmset", "-g", "batt").Output()
	if err != nil {
		return check.PowerState{}
	}
	return parsePmset(string(out))
}

// parsePmset extracts AC status and battery charge from pmset output:
//
//	Now drawing from 'AC Power'
//	 -InternalBattery-0 (id=12345)	100%; charged; 0:00 remaining present: true
func parsePmset(out string) check.PowerState {
	var st check.PowerState
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Now drawing from") {
			st.OnAC = strings.Contains(line, "'AC Power'")
			continue
		}
		if !strings.Contains(line, "InternalBattery") {
			continue
		}
		st.HasBattery = true
		if pct, ok := percentBefore(line, strings.Index(line, "%")); ok {
			st.Percent = pct
		}
	}
	return st
}

// percentBefore reads the run of digits ending at line[idx].
func percentBefore(line string, idx int) (int, bool) {
	if idx <= 0 {
		return 0, false
	}
	start := idx
	for start > 0 && line[start-1] >= '0' && line[start-1] <= '9' {
		start--
	}
	if start == idx {
		return 0, false
	}
	pct := 0
	for _, c := range line[start:idx] {
		pct = pct*10 + int(c-'0')
	}
	return pct, true
}
