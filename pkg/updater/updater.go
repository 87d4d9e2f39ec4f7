// Package updater checks GitHub for a newer release of the tool.
package updater

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Wangshengwei666/JY-Book-Manager/pkg/version"
)

const releaseURL = "https://api.github.com/repos/Wangshengwei666/JY-Book-Manager/releases/latest"

// Release is the newer version found by a check.
type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check queries GitHub for the latest release. It returns nil when the
// running build is current, when the check is rate-limited, or when GitHub
// cannot be reached quickly; startup must never block on it.
func Check() (*Release, error) {
	client := &http.Client{Timeout: 2 * time.Second}
	return check(client, releaseURL)
}

func check(client *http.Client, url string) (*Release, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	// GitHub 403s some unauthenticated requests without a UA.
	req.Header.Set("User-Agent", "jybooks-update-check")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
			return nil, nil
		}
		return nil, fmt.Errorf("github api returned status: %s", resp.Status)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, err
	}

	if compareVersions(rel.TagName, version.Version) > 0 {
		return &rel, nil
	}
	return nil, nil
}

// compareVersions compares semver-ish strings with an optional leading 'v'
// and optional pre-release suffix. A pre-release ranks below its release.
// Returns 1 if v1>v2, -1 if v1<v2, 0 if equal; falls back to lexicographic
// comparison when parsing fails.
func compareVersions(v1, v2 string) int {
	type parsed struct {
		parts      []int
		prerelease bool
		preLabel   string
	}

	parse := func(v string) *parsed {
		v = strings.TrimPrefix(v, "v")
		prerelease := false
		preLabel := ""
		if idx := strings.Index(v, "-"); idx != -1 {
			prerelease = true
			preLabel = v[idx+1:]
			v = v[:idx]
		}
		parts := strings.Split(v, ".")
		res := make([]int, 3)
		for i := 0; i < len(res) && i < len(parts); i++ {
			n, err := strconv.Atoi(parts[i])
			if err != nil {
				return nil
			}
			res[i] = n
		}
		return &parsed{parts: res, prerelease: prerelease, preLabel: preLabel}
	}

	p1 := parse(v1)
	p2 := parse(v2)

	if p1 != nil && p2 != nil {
		for i := 0; i < 3; i++ {
			if p1.parts[i] != p2.parts[i] {
				if p1.parts[i] > p2.parts[i] {
					return 1
				}
				return -1
			}
		}
		if p1.prerelease != p2.prerelease {
			if p1.prerelease {
				return -1
			}
			return 1
		}
		if p1.prerelease {
			return strings.Compare(p1.preLabel, p2.preLabel)
		}
		return 0
	}

	return strings.Compare(strings.TrimPrefix(v1, "v"), strings.TrimPrefix(v2, "v"))
}
