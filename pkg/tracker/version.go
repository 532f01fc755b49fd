package tracker

import (
	"strconv"
	"strings"

	"github.com/issuekit/issuekit/pkg/resource"
)

// CompareVersions compares two dotted release strings segment by segment,
// numerically where both segments are numbers. It returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		var sa, sb string
		if i < len(as) {
			sa = as[i]
		}
		if i < len(bs) {
			sb = bs[i]
		}
		if sa == sb {
			continue
		}

		na, errA := strconv.Atoi(sa)
		nb, errB := strconv.Atoi(sb)
		if errA == nil && errB == nil {
			if na < nb {
				return -1
			}
			if na > nb {
				return 1
			}
			continue
		}
		if sa < sb {
			return -1
		}
		return 1
	}
	return 0
}

// checkVersion enforces a feature's minimum server version. An unknown
// server version passes; the gate only trips on a declared, older server.
func checkVersion(s *resource.Settings, feature, required string) error {
	if s == nil || s.ServerVersion == "" {
		return nil
	}
	if CompareVersions(s.ServerVersion, required) < 0 {
		return &resource.VersionMismatchError{
			Feature:  feature,
			Required: required,
			Server:   s.ServerVersion,
		}
	}
	return nil
}
