// Package templates renders the source files of a feature scaffold.
//
// Every renderer is a pure function of a validated casing.Name and the
// target Language: no filesystem access, no shared mutable state, and the
// same input always produces byte-identical output.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Guerrilla-Interactive/featgen/app/casing"
)

//go:embed tmpl
var templateFS embed.FS

// Language selects the flavour of the generated sources.
type Language string

const (
	TypeScript Language = "ts"
	JavaScript Language = "js"
)

// ParseLanguage accepts "ts", "typescript", "js" or "javascript".
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ts", "typescript":
		return TypeScript, nil
	case "js", "javascript":
		return JavaScript, nil
	default:
		return "", fmt.Errorf("unknown language %q (want ts or js)", s)
	}
}

// IsTypeScript reports whether l is TypeScript. Anything that is not
// explicitly JavaScript is treated as TypeScript.
func (l Language) IsTypeScript() bool { return l != JavaScript }

// funcs are available to every template.
var funcs = template.FuncMap{
	"props": PropsTypeName,
}

// parsed holds every embedded template keyed by "<lang>/<kind>" or
// "shared/<kind>".
var parsed = mustParse()

func mustParse() map[string]*template.Template {
	out := make(map[string]*template.Template)
	for _, dir := range []string{"ts", "js", "shared"} {
		entries, err := templateFS.ReadDir("tmpl/" + dir)
		if err != nil {
			panic(fmt.Sprintf("templates: reading %s: %v", dir, err))
		}
		for _, e := range entries {
			name := strings.TrimSuffix(e.Name(), ".tmpl")
			body, err := templateFS.ReadFile("tmpl/" + dir + "/" + e.Name())
			if err != nil {
				panic(fmt.Sprintf("templates: reading %s/%s: %v", dir, e.Name(), err))
			}
			key := dir + "/" + name
			out[key] = template.Must(template.New(key).Option("missingkey=error").Funcs(funcs).Parse(string(body)))
		}
	}
	return out
}

// execute renders kind for lang, preferring a language specific template
// over the shared one.
func execute(kind string, lang Language, name casing.Name) string {
	dir := "ts"
	if !lang.IsTypeScript() {
		dir = "js"
	}
	t, ok := parsed[dir+"/"+kind]
	if !ok {
		t, ok = parsed["shared/"+kind]
	}
	if !ok {
		panic(fmt.Sprintf("templates: no template for %s", kind))
	}
	var b strings.Builder
	if err := t.Execute(&b, name); err != nil {
		// Only reachable if an embedded template references a field Name
		// does not have.
		panic(fmt.Sprintf("templates: rendering %s: %v", t.Name(), err))
	}
	return b.String()
}

// RenderFeatureComponent returns the component module. It imports
// {Pascal}Props from the sibling type module.
func RenderFeatureComponent(name casing.Name, lang Language) string {
	return execute(KindFeature, lang, name)
}

// RenderContextModule returns the state container: a provider plus the
// use{Pascal}State and use{Pascal}Dispatch accessors, which throw when used
// outside the provider.
func RenderContextModule(name casing.Name, lang Language) string {
	return execute(KindContext, lang, name)
}

// RenderTypeModule returns a module declaring an empty {Pascal}Props.
func RenderTypeModule(name casing.Name, lang Language) string {
	return execute(KindType, lang, name)
}

// RenderStyleModule returns an empty style module. It does not depend on
// the feature name.
func RenderStyleModule(lang Language) string {
	return execute(KindStyle, lang, casing.Name{})
}

// RenderRouteModule returns the route switch for the feature with a
// /{param}/404 fallback.
func RenderRouteModule(name casing.Name, lang Language) string {
	return execute(KindRoute, lang, name)
}

// PropsTypeName is the name of the Props type shared by the component and
// type modules.
func PropsTypeName(name casing.Name) string {
	return name.Pascal + "Props"
}
