package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

// githubRelease is the subset of the GitHub releases API we read.
type githubRelease struct {
	TagName    string         `json:"tag_name"`
	Name       string         `json:"name"`
	Draft      bool           `json:"draft"`
	Prerelease bool           `json:"prerelease"`
	Assets     []releaseAsset `json:"assets"`
}

type releaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

var semverRe = regexp.MustCompile(`v?\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?`)

// fetchReleases lists the releases of repo ("owner/name").
func fetchReleases(apiBase, repo string) ([]githubRelease, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(fmt.Sprintf("%s/repos/%s/releases", apiBase, repo))
	if err != nil {
		return nil, fmt.Errorf("github API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading github response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github API returned status %d: %s", resp.StatusCode, string(body))
	}
	var releases []githubRelease
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, fmt.Errorf("failed to decode github releases: %w", err)
	}
	return releases, nil
}

// pickLatestRelease returns the highest published, non-prerelease release
// whose tag (or name) contains a semver. Assets named after an OS or
// architecture are preferred over the first asset.
func pickLatestRelease(releases []githubRelease) (*selfupdate.Release, bool) {
	var candidates []selfupdate.Release
	for _, r := range releases {
		if r.Draft || r.Prerelease {
			continue
		}
		match := semverRe.FindString(r.TagName)
		if match == "" {
			match = semverRe.FindString(r.Name)
		}
		if match == "" {
			continue
		}
		v, err := semver.Parse(strings.TrimPrefix(match, "v"))
		if err != nil {
			continue
		}
		assetURL := ""
		for _, a := range r.Assets {
			name := strings.ToLower(a.Name)
			if strings.Contains(name, "darwin") || strings.Contains(name, "linux") || strings.Contains(name, "windows") ||
				strings.Contains(name, "amd64") || strings.Contains(name, "arm64") {
				assetURL = a.BrowserDownloadURL
				break
			}
			if assetURL == "" {
				assetURL = a.BrowserDownloadURL
			}
		}
		candidates = append(candidates, selfupdate.Release{Version: v, AssetURL: assetURL})
	}
	if len(candidates) == 0 {
		return nil, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Version.GT(candidates[j].Version)
	})
	return &candidates[0], true
}

// checkForUpdates compares Version against the latest release and, after a
// confirmation read from in, replaces the running executable.
func checkForUpdates(in io.Reader, out io.Writer, apiBase string) error {
	fmt.Fprintf(out, "Current version: %s\n", Version)
	releases, err := fetchReleases(apiBase, updateRepo)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	latest, found := pickLatestRelease(releases)
	if !found {
		fmt.Fprintf(out, "No releases found for %s.\n", updateRepo)
		return nil
	}
	fmt.Fprintf(out, "Latest version: %s\n", latest.Version)

	current, err := semver.Parse(strings.TrimPrefix(Version, "v"))
	if err != nil {
		logger.Printf("could not parse current version %q: %v", Version, err)
	} else if !latest.Version.GT(current) {
		fmt.Fprintf(out, "You are already running the latest version: %s.\n", current)
		return nil
	}
	if latest.AssetURL == "" {
		fmt.Fprintf(out, "A new version (%s) is available but there is no downloadable asset.\n", latest.Version)
		return nil
	}

	fmt.Fprintf(out, "A new version (%s) is available. Update now? (y/N): ", latest.Version)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	if answer != "y" && answer != "yes" {
		fmt.Fprintln(out, "Update cancelled.")
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	fmt.Fprintf(out, "Updated to version %s.\n", latest.Version)
	return nil
}
