package theme

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Token is one entry of the design-token table: a named, collection-scoped
// value, optionally with per-mode variants.
type Token struct {
	ID         string
	Name       string
	Collection string
	Value      string
	Modes      map[string]string
}

type tokenKey struct {
	collection string
	name       string
}

// Table is the read-only token lookup built once per conversion run.
type Table struct {
	prefix string
	byKey  map[tokenKey]Token
}

// Resolve looks up a token by collection and name.
func (t *Table) Resolve(collection, name string) (Token, bool) {
	if t == nil {
		return Token{}, false
	}
	tok, ok := t.byKey[tokenKey{collection: collection, name: name}]
	return tok, ok
}

// ResolvePath resolves a dotted theme path (e.g. "colorScheme.primary",
// "textTheme.bodyLarge.fontSize") against the table.
func (t *Table) ResolvePath(path string) (Token, bool) {
	if t == nil {
		return Token{}, false
	}
	collection, name := SplitPath(path, t.prefix)
	if name == "" {
		return Token{}, false
	}
	return t.Resolve(collection, name)
}

// Len returns the number of tokens in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byKey)
}

// SplitPath derives the (collection, token name) pair for a dotted theme
// path. The first segment selects the collection; the remaining segments
// kebab-join into the token name, so "textTheme.bodyLarge.fontSize" becomes
// "body-large-font-size" in the Typography collection.
func SplitPath(path, prefix string) (string, string) {
	segments := strings.Split(path, ".")
	if len(segments) < 2 {
		return "", ""
	}

	var suffix string
	switch segments[0] {
	case "colorScheme":
		suffix = "Colors"
	case "textTheme":
		suffix = "Typography"
	case "spacing":
		suffix = "Spacing"
	case "radius", "borderRadius":
		suffix = "Radius"
	default:
		suffix = capitalize(segments[0])
	}

	parts := make([]string, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		parts = append(parts, Kebab(seg))
	}
	return collectionName(prefix, suffix), strings.Join(parts, "-")
}

// Build constructs the token table for a theme model. The table is immutable
// after this call; concurrent runs may share it freely.
func Build(model *Model, cfg MappingConfig) *Table {
	table := &Table{prefix: cfg.CollectionPrefix, byKey: make(map[tokenKey]Token)}
	if model == nil {
		return table
	}

	colors := collectionName(cfg.CollectionPrefix, "Colors")
	for name, hex := range model.ColorScheme {
		tok := Token{
			Name:       Kebab(name),
			Collection: colors,
			Value:      hex,
		}
		if cfg.PreferMultiMode {
			if dark, ok := model.DarkColorScheme[name]; ok {
				tok.Modes = map[string]string{"Light": hex, "Dark": dark}
			}
		}
		table.add(tok)
	}

	typography := collectionName(cfg.CollectionPrefix, "Typography")
	for styleName, style := range model.TextStyles {
		base := Kebab(styleName)
		table.add(Token{
			Name:       base + "-font-size",
			Collection: typography,
			Value:      formatNumber(style.FontSize),
		})
		if style.FontFamily != "" {
			table.add(Token{Name: base + "-font-family", Collection: typography, Value: style.FontFamily})
		}
		if style.FontWeight != "" {
			table.add(Token{Name: base + "-font-weight", Collection: typography, Value: style.FontWeight})
		}
		if style.LetterSpacing != 0 {
			table.add(Token{Name: base + "-letter-spacing", Collection: typography, Value: formatNumber(style.LetterSpacing)})
		}
		if style.LineHeight != 0 {
			table.add(Token{Name: base + "-line-height", Collection: typography, Value: formatNumber(style.LineHeight)})
		}
	}

	spacing := collectionName(cfg.CollectionPrefix, "Spacing")
	for name, value := range model.SpacingScale {
		table.add(Token{Name: Kebab(name), Collection: spacing, Value: formatNumber(value)})
	}

	radius := collectionName(cfg.CollectionPrefix, "Radius")
	for name, value := range model.RadiusScale {
		table.add(Token{Name: Kebab(name), Collection: radius, Value: formatNumber(value)})
	}

	return table
}

func (t *Table) add(tok Token) {
	if tok.ID == "" {
		tok.ID = fmt.Sprintf("var:%s/%s", Kebab(tok.Collection), tok.Name)
	}
	t.byKey[tokenKey{collection: tok.Collection, name: tok.Name}] = tok
}

func collectionName(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	return prefix + " " + suffix
}

// Kebab converts a camelCase identifier to kebab-case.
func Kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '.' || r == '_' || r == ' ' {
			b.WriteByte('-')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
