package route

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rohanthewiz/serr"
)

// conventionSuffix is dropped from controller type names by convention routing.
const conventionSuffix = "Controller"

var (
	ErrNoControllerName = serr.New("controller name is required")
	ErrNoActionName     = serr.New("action name is required")
	ErrDuplicateAction  = serr.New("duplicate action name")
)

// Controller describes a controller and its actions.
// It replaces annotation scanning: callers fill it in at registration time.
type Controller[T any] struct {
	// Name is the controller type name, e.g. "ConventionController".
	Name string
	// Path is the base path for every action. Empty means convention routing.
	Path    string
	Actions []Action[T]
}

// Action describes one action of a controller.
type Action[T any] struct {
	// Name is the method name, e.g. "WithoutPath".
	Name string
	// Path overrides the derived path when set.
	Path string
	// Methods restricts the HTTP verbs. Empty means any verb.
	Methods []string
	Handler T
}

// Validate reports the first problem with the descriptor.
func (c Controller[T]) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNoControllerName
	}

	seen := make(map[string]struct{}, len(c.Actions))
	for _, a := range c.Actions {
		if err := a.validate(); err != nil {
			return serr.Wrap(err, "controller", c.Name)
		}
		if _, ok := seen[a.Name]; ok {
			return serr.Wrap(ErrDuplicateAction, "controller", c.Name, "action", a.Name)
		}
		seen[a.Name] = struct{}{}
	}
	return nil
}

func (a Action[T]) validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrNoActionName
	}
	return nil
}

// ConventionName derives the base path segment from a controller type name.
// A package qualifier, a pointer star and a trailing "Controller" are dropped,
// then the first letter is lowercased: "*web.ConventionController" -> "convention".
func ConventionName(typeName string) string {
	name := strings.TrimLeft(typeName, "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if trimmed := strings.TrimSuffix(name, conventionSuffix); trimmed != "" {
		name = trimmed
	}
	return lowerFirst(name)
}

// ActionName derives the path segment for an action: "WithoutPath" -> "withoutPath".
func ActionName(methodName string) string {
	return lowerFirst(methodName)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
