package project

import (
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// Info describes the JavaScript project a feature is generated into.
type Info struct {
	RootPath         string            // directory holding package.json
	Name             string            // package.json name, or the directory name
	Type             string            // nextjs, react, gatsby, remix or npm
	DetectedPackages []string          // known frameworks found among the dependencies
	Dependencies     map[string]string // dependencies and devDependencies merged
	HasTSConfig      bool              // tsconfig.json next to package.json
}

// knownPackages maps dependency names to the framework they identify.
var knownPackages = map[string]string{
	"next":              "nextjs",
	"react":             "react",
	"react-dom":         "react",
	"gatsby":            "gatsby",
	"@remix-run/react":  "remix",
	"react-router-dom":  "react-router",
	"react-router":      "react-router",
	"typescript":        "typescript",
	"styled-components": "styled-components",
	"@emotion/react":    "emotion",
	"tailwindcss":       "tailwindcss",
}

// typePriority picks Info.Type from the detected frameworks, first match
// wins.
var typePriority = []string{"nextjs", "gatsby", "remix", "react"}

type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Detect walks up from start looking for the nearest package.json. It
// reports false when none is found before the filesystem root. A
// package.json that does not parse still counts as a project, with no
// dependencies.
func Detect(fsys afero.Fs, start string) (Info, bool) {
	currentPath := filepath.Clean(start)
	for {
		if data, err := afero.ReadFile(fsys, filepath.Join(currentPath, "package.json")); err == nil {
			return newInfo(fsys, currentPath, data), true
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			return Info{}, false
		}
		currentPath = parentPath
	}
}

func newInfo(fsys afero.Fs, root string, data []byte) Info {
	info := Info{
		RootPath:     root,
		Name:         filepath.Base(root),
		Type:         "npm",
		Dependencies: make(map[string]string),
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err == nil {
		if pkg.Name != "" {
			info.Name = pkg.Name
		}
		for name, v := range pkg.DevDependencies {
			info.Dependencies[name] = v
		}
		for name, v := range pkg.Dependencies {
			info.Dependencies[name] = v
		}
	}

	detected := make(map[string]bool)
	for name := range info.Dependencies {
		if fw, ok := knownPackages[name]; ok {
			detected[fw] = true
		}
	}
	for fw := range detected {
		info.DetectedPackages = append(info.DetectedPackages, fw)
	}
	sort.Strings(info.DetectedPackages)

	for _, t := range typePriority {
		if detected[t] {
			info.Type = t
			break
		}
	}

	info.HasTSConfig, _ = afero.Exists(fsys, filepath.Join(root, "tsconfig.json"))
	return info
}

// HasDependency reports whether name is a dependency or devDependency.
func (i Info) HasDependency(name string) bool {
	_, ok := i.Dependencies[name]
	return ok
}

// UsesTypeScript reports whether the project has a tsconfig.json or
// depends on typescript.
func (i Info) UsesTypeScript() bool {
	return i.HasTSConfig || i.HasDependency("typescript")
}
