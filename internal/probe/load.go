package probe

import (
	"os/exec"
	"strconv"
	"strings"

	"powerful/internal/check"
)

// Load reads processor headroom via sysctl.
type Load struct{}

// LoadState queries `sysctl -n vm.loadavg` and `sysctl -n hw.physicalcpu`.
// A load average that fails to parse is reported as 0, which passes the
// load check — a broken reading must never abort the evaluation. An
// unknown core count is reported as 0, which fails it.
func (Load) LoadState() check.LoadState {
	return check.LoadState{
		Load1: parseLoadAvg(sysctl("vm.loadavg")),
		Cores: parseCoreCount(sysctl("hw.physicalcpu")),
	}
}

func sysctl(name string) string {
	out, err := exec.Command("sysctl", "-n", name).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// parseLoadAvg extracts the 1-minute average from sysctl's braced
// triple, e.g. "{ 1.23 1.50 1.70 }". Anything malformed yields 0.
func parseLoadAvg(out string) float64 {
	out = strings.TrimSpace(strings.Trim(out, "{}"))
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func parseCoreCount(out string) int {
	n, err := strconv.Atoi(out)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
