package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Phase identifies the part of the season a week belongs to. Week numbers are
// phase-scoped: REG1 and POST1 are different weeks, so a week value is only
// meaningful when paired with its phase.
type Phase string

const (
	PhasePre  Phase = "pre"
	PhaseReg  Phase = "reg"
	PhasePost Phase = "post"
)

// PhasePreference is the order phases are considered when resolving the
// current week. The regular season is the common case; pre and post only
// matter before any regular-season games exist or after they have all been
// played.
var PhasePreference = []Phase{PhaseReg, PhasePre, PhasePost}

func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre":
		return PhasePre, nil
	case "reg":
		return PhaseReg, nil
	case "post":
		return PhasePost, nil
	}
	return "", fmt.Errorf("unknown phase: %q", s)
}

var weekLabelRegex = regexp.MustCompile(`(?i)^(PRE|REG|POST)\s*([0-9]+)$`)

// ParseWeekLabel parses a boundary label like "REG3" or "pre1" into a phase
// and week number. Anything not matching the prefix+number pattern is
// rejected.
func ParseWeekLabel(label string) (Phase, int, error) {
	m := weekLabelRegex.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return "", 0, fmt.Errorf("invalid week label: %q (expected PRE1/REG1/POST1)", label)
	}
	week, err := strconv.Atoi(m[2])
	if err != nil || week < 1 {
		return "", 0, fmt.Errorf("invalid week label: %q (expected PRE1/REG1/POST1)", label)
	}
	phase, err := ParsePhase(m[1])
	if err != nil {
		return "", 0, err
	}
	return phase, week, nil
}

// WeekLabel formats a phase and week as the label used at API boundaries and
// in logs, e.g. "REG3".
func WeekLabel(phase Phase, week int) string {
	return fmt.Sprintf("%s%d", strings.ToUpper(string(phase)), week)
}
