// Package check implements the "powerful connection" verdict: a fixed
// sequence of host-state checks that short-circuits on the first failure.
// The evaluator is pure — all OS state arrives through the probe
// interfaces, so the decision logic is unit-testable with canned values.
package check

import "fmt"

// Exit codes are the external contract. Cron-style callers branch on
// these values, so they must never change.
const (
	CodeOK             = 0
	CodeNotOnAC        = 20
	CodeBatteryNotFull = 21
	CodeLoadTooHigh    = 22
	CodeNoSSID         = 30
	CodeNotAccepted    = 31
	CodeRejected       = 32
)

// PowerState is the machine's power-supply snapshot.
type PowerState struct {
	OnAC       bool
	HasBattery bool
	Percent    int
}

// LoadState is the processor-headroom snapshot.
type LoadState struct {
	Load1 float64 // 1-minute load average
	Cores int     // physical core count
}

// PowerProbe reports the current power-supply state.
type PowerProbe interface {
	PowerState() PowerState
}

// LoadProbe reports the current load average and core count.
type LoadProbe interface {
	LoadState() LoadState
}

// WifiProbe reports the currently associated SSID, or "" when the
// machine is not associated with any wireless network.
type WifiProbe interface {
	SSID() string
}

// NetworkList is an SSID membership test. A nil list means the backing
// file is absent and the corresponding check is skipped.
type NetworkList interface {
	Contains(ssid string) bool
}

// Result is the outcome of one evaluation. A failing verdict is a value,
// not an error — mapping Code to process exit happens at the CLI boundary.
type Result struct {
	Code   int
	Reason string
	SSID   string
}

// Ok reports whether every check passed.
func (r Result) Ok() bool { return r.Code == CodeOK }

// Evaluator runs the six checks in order. Zero-value list fields (nil)
// skip the corresponding membership check.
type Evaluator struct {
	Power PowerProbe
	Load  LoadProbe
	Wifi  WifiProbe

	Accept NetworkList
	Reject NetworkList

	// MinBattery is the charge percentage required to pass the battery
	// check. Zero means the default of 100 (fully charged).
	MinBattery int

	// Trace, when non-nil, is called after each check with its outcome.
	Trace func(name string, ok bool, detail string)
}

// Evaluate runs the checks in fixed order and returns the first failure,
// or an OK result when every check passes.
func (e *Evaluator) Evaluate() Result {
	ps := e.Power.PowerState()
	if !ps.OnAC {
		return e.fail("power", Result{Code: CodeNotOnAC, Reason: "not drawing from AC power"})
	}
	e.pass("power", "on AC power")

	min := e.MinBattery
	if min == 0 {
		min = 100
	}
	// Machines without a battery (desktops) skip the charge check.
	if ps.HasBattery && ps.Percent < min {
		return e.fail("battery", Result{
			Code:   CodeBatteryNotFull,
			Reason: fmt.Sprintf("battery at %d%%, want at least %d%%", ps.Percent, min),
		})
	}
	e.pass("battery", fmt.Sprintf("charge %d%%", ps.Percent))

	ls := e.Load.LoadState()
	if int(ls.Load1) >= ls.Cores {
		return e.fail("load", Result{
			Code:   CodeLoadTooHigh,
			Reason: fmt.Sprintf("load average %.2f with %d cores", ls.Load1, ls.Cores),
		})
	}
	e.pass("load", fmt.Sprintf("load %.2f under %d cores", ls.Load1, ls.Cores))

	ssid := e.Wifi.SSID()
	if ssid == "" {
		return e.fail("ssid", Result{Code: CodeNoSSID, Reason: "not associated with a wireless network"})
	}
	e.pass("ssid", ssid)

	if e.Accept != nil && !e.Accept.Contains(ssid) {
		return e.fail("accept-list", Result{
			Code:   CodeNotAccepted,
			Reason: fmt.Sprintf("%q is not in the accept list", ssid),
			SSID:   ssid,
		})
	}
	e.pass("accept-list", "ok")

	if e.Reject != nil && e.Reject.Contains(ssid) {
		return e.fail("reject-list", Result{
			Code:   CodeRejected,
			Reason: fmt.Sprintf("%q is in the reject list", ssid),
			SSID:   ssid,
		})
	}
	e.pass("reject-list", "ok")

	return Result{Code: CodeOK, SSID: ssid}
}

func (e *Evaluator) pass(name, detail string) {
	if e.Trace != nil {
		e.Trace(name, true, detail)
	}
}

func (e *Evaluator) fail(name string, r Result) Result {
	if e.Trace != nil {
		e.Trace(name, false, r.Reason)
	}
	return r
}
