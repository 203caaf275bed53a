package config

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/manifoldco/promptui"
)

// detectAppDirs returns the directories below root that already contain deck
// configs, most populated first.
func detectAppDirs(root string) []string {
	matches, err := doublestar.Glob(os.DirFS(root), "**/*_SJconfig.yaml")
	if err != nil {
		return nil
	}

	counts := make(map[string]int)
	for _, m := range matches {
		counts[path.Dir(m)]++
	}
	dirs := make([]string, 0, len(counts))
	for d := range counts {
		dirs = append(dirs, d)
	}
	sort.Slice(dirs, func(i, j int) bool {
		if counts[dirs[i]] != counts[dirs[j]] {
			return counts[dirs[i]] > counts[dirs[j]]
		}
		return dirs[i] < dirs[j]
	})
	return dirs
}

// RunWizard runs an interactive configuration wizard and saves the result
// to configPath.
func RunWizard(configPath string) (*Config, error) {
	fmt.Println("Welcome to SlideJet! Let's configure the presentation hub.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. App directory.
	appDir := DefaultAppDir
	if found := detectAppDirs("."); len(found) > 0 {
		fmt.Printf("Found deck configs in: %s\n\n", strings.Join(found, ", "))
		if len(found) == 1 {
			appDir = found[0]
		} else {
			sel := promptui.Select{
				Label: "Select the directory holding *_SJconfig.yaml files",
				Items: found,
			}
			_, choice, err := sel.Run()
			if err != nil {
				return nil, fmt.Errorf("app dir selection: %w", err)
			}
			appDir = choice
		}
	}
	appDirPrompt := promptui.Prompt{
		Label:   "Deck config directory (relative to repository root)",
		Default: appDir,
	}
	appDir, err := appDirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("app dir: %w", err)
	}
	cfg.AppDir = strings.TrimSpace(appDir)

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to listen on",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Public base URL.
	basePrompt := promptui.Prompt{
		Label:   "Public base URL for share links (leave blank for none)",
		Default: "",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			u, err := url.Parse(strings.TrimSpace(s))
			if err != nil || u.Host == "" {
				return fmt.Errorf("enter an absolute URL such as https://slides.example.com/")
			}
			return nil
		},
	}
	baseURL, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	cfg.BaseURL = strings.TrimSpace(baseURL)

	// 4. Live reload.
	watchPrompt := promptui.Select{
		Label: "Reload open pages when deck files change?",
		Items: []string{"no", "yes"},
	}
	watchIdx, _, err := watchPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("watch selection: %w", err)
	}
	cfg.Watch = watchIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
