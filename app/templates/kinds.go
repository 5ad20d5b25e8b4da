package templates

import (
	"fmt"
	"sort"

	"github.com/Guerrilla-Interactive/featgen/app/casing"
)

// Kind identifiers. They double as embedded template names.
const (
	KindFeature = "feature"
	KindContext = "context"
	KindType    = "type"
	KindStyle   = "style"
	KindRoute   = "route"
)

// Options controls how file names are derived.
type Options struct {
	Language Language
	// ComponentCase names the component file; every other file uses
	// param-case.
	ComponentCase casing.Style
}

// DefaultOptions is TypeScript with a PascalCase component file.
func DefaultOptions() Options {
	return Options{Language: TypeScript, ComponentCase: casing.StylePascal}
}

// Kind is one file of the scaffold.
type Kind struct {
	ID          string
	Description string
	// Order fixes the position of the kind in listings and reports.
	Order int
	// Suffix goes between the base name and the extension, e.g. ".context".
	Suffix string
	// TSExt is the TypeScript extension; JavaScript always uses ".js".
	TSExt string
	// ComponentNamed kinds take their base name from Options.ComponentCase.
	ComponentNamed bool
	Render         func(name casing.Name, lang Language) string
}

// FileName returns the file name of k for name under o.
func (k Kind) FileName(name casing.Name, o Options) string {
	base := name.Param
	if k.ComponentNamed {
		base = o.ComponentCase.Apply(name)
	}
	ext := ".js"
	if o.Language.IsTypeScript() {
		ext = k.TSExt
	}
	return base + k.Suffix + ext
}

// kindRegistry holds every registered kind by ID.
var kindRegistry = make(map[string]Kind)

// RegisterKind adds a kind to the registry. Registering the same ID twice
// panics.
func RegisterKind(k Kind) {
	if _, exists := kindRegistry[k.ID]; exists {
		panic(fmt.Sprintf("template kind already registered: %s", k.ID))
	}
	kindRegistry[k.ID] = k
}

// GetKind retrieves a kind by ID.
func GetKind(id string) (Kind, bool) {
	k, ok := kindRegistry[id]
	return k, ok
}

// AllKinds returns every registered kind sorted by Order.
func AllKinds() []Kind {
	out := make([]Kind, 0, len(kindRegistry))
	for _, k := range kindRegistry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func init() {
	RegisterKind(Kind{
		ID:             KindFeature,
		Description:    "React component",
		Order:          0,
		TSExt:          ".tsx",
		ComponentNamed: true,
		Render:         RenderFeatureComponent,
	})
	RegisterKind(Kind{
		ID:          KindContext,
		Description: "State context with provider and accessor hooks",
		Order:       1,
		Suffix:      ".context",
		TSExt:       ".tsx",
		Render:      RenderContextModule,
	})
	RegisterKind(Kind{
		ID:          KindType,
		Description: "Props type declaration",
		Order:       2,
		Suffix:      ".type",
		TSExt:       ".ts",
		Render:      RenderTypeModule,
	})
	RegisterKind(Kind{
		ID:          KindStyle,
		Description: "Style module",
		Order:       3,
		Suffix:      ".style",
		TSExt:       ".ts",
		Render: func(_ casing.Name, lang Language) string {
			return RenderStyleModule(lang)
		},
	})
	RegisterKind(Kind{
		ID:          KindRoute,
		Description: "Route switch with a not-found fallback",
		Order:       4,
		Suffix:      ".route",
		TSExt:       ".tsx",
		Render:      RenderRouteModule,
	})
}
