package i18n

import (
	"errors"
	"io/fs"
	"path"
	"slices"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rohanthewiz/serr"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultBasename is the file name stem of route bundles: routes.pt-BR.toml.
const DefaultBasename = "routes"

// bundleFormats are the file extensions LoadResources understands.
var bundleFormats = []string{"toml", "yaml", "yml", "json"}

// RoutesResources is the source of translation bundles.
type RoutesResources interface {
	AvailableBundles() []Bundle
}

// StaticResources serves a fixed list of bundles.
type StaticResources []Bundle

// AvailableBundles returns the bundles.
func (s StaticResources) AvailableBundles() []Bundle {
	return s
}

// Resources holds the bundles read from a directory, one per locale.
type Resources struct {
	bundles []*MapBundle
	files   []string
}

// LoadResources reads every <basename>.<language-tag>.<format> file in dir.
// Files for the same language tag are merged in name order.
// A missing dir yields no bundles; a malformed file is an error.
func LoadResources(fsys fs.FS, dir string, basename string) (*Resources, error) {
	if basename == "" {
		basename = DefaultBasename
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Resources{}, nil
		}
		return nil, serr.Wrap(err, "unable to read bundle directory", "dir", dir)
	}

	gb := goi18n.NewBundle(language.Und)
	gb.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	gb.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	gb.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	res := &Resources{}
	byTag := make(map[language.Tag]*MapBundle)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isBundleFile(name, basename) {
			continue
		}

		filePath := path.Join(dir, name)
		buf, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, serr.Wrap(err, "unable to read bundle", "file", filePath)
		}

		mf, err := gb.ParseMessageFileBytes(buf, name)
		if err != nil {
			return nil, serr.Wrap(err, "unable to parse bundle", "file", filePath)
		}
		if mf.Tag == language.Und {
			return nil, serr.New("bundle file has no language tag", "file", filePath)
		}

		messages := make(map[string]string, len(mf.Messages))
		for _, msg := range mf.Messages {
			messages[msg.ID] = msg.Other
		}

		b, ok := byTag[mf.Tag]
		if !ok {
			b = NewBundle(LocaleOf(mf.Tag), nil)
			byTag[mf.Tag] = b
			res.bundles = append(res.bundles, b)
		}
		b.merge(messages)
		res.files = append(res.files, filePath)
	}

	slices.SortFunc(res.bundles, func(a, b *MapBundle) int {
		return strings.Compare(a.Locale().String(), b.Locale().String())
	})
	return res, nil
}

// AvailableBundles returns the loaded bundles sorted by locale.
func (r *Resources) AvailableBundles() []Bundle {
	bundles := make([]Bundle, len(r.bundles))
	for i, b := range r.bundles {
		bundles[i] = b
	}
	return bundles
}

// Bundle returns the bundle for a locale.
func (r *Resources) Bundle(locale Locale) (*MapBundle, bool) {
	for _, b := range r.bundles {
		if b.Locale() == locale {
			return b, true
		}
	}
	return nil, false
}

// Locales returns the locales that have a bundle.
func (r *Resources) Locales() []Locale {
	locales := make([]Locale, len(r.bundles))
	for i, b := range r.bundles {
		locales[i] = b.Locale()
	}
	return locales
}

// Files returns the files that were loaded.
func (r *Resources) Files() []string {
	return slices.Clone(r.files)
}

// isBundleFile matches routes.pt-BR.toml but not routes.toml or other.pt-BR.toml.
func isBundleFile(name string, basename string) bool {
	rest, ok := strings.CutPrefix(name, basename+".")
	if !ok {
		return false
	}

	ext := strings.TrimPrefix(path.Ext(rest), ".")
	if !slices.Contains(bundleFormats, ext) {
		return false
	}
	return strings.TrimSuffix(rest, "."+ext) != ""
}
