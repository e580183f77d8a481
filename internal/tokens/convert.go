package tokens

import (
	"strconv"
	"strings"

	"bennypowers.dev/asimonim/token"
	"bennypowers.dev/cssvalues/property"
	"bennypowers.dev/cssvalues/value"
)

// Raw is token text emitted unchanged
type Raw string

func (r Raw) String() string { return string(r) }

// Convert maps one parsed token onto a typed CSS value.
// Aliases such as "{color.primary}" become var() references.
func Convert(tok *token.Token) (value.Renderer, error) {
	if ref, ok := alias(tok); ok {
		return ref, nil
	}

	raw := tok.RawValue
	if raw == nil {
		raw = tok.Value
	}

	switch tok.Type {
	case "color":
		switch v := raw.(type) {
		case map[string]any:
			c, err := colorFromObject(v)
			if err != nil {
				return nil, invalid(tok.Name, tok.Type, err.Error())
			}
			return c, nil
		case string:
			return colorFromString(v), nil
		}
	case "dimension":
		switch v := raw.(type) {
		case map[string]any:
			return dimensionFromObject(tok, v)
		case string:
			return dimensionFromString(v), nil
		}
	case "number", "fontWeight":
		switch v := raw.(type) {
		case float64:
			return value.NewNumber(v), nil
		case int:
			return value.Int(v), nil
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return value.NewNumber(f), nil
			}
			return Raw(v), nil
		}
	case "fontFamily":
		switch v := raw.(type) {
		case string:
			return property.FontFamily{Families: []property.Family{family(v)}}, nil
		case []any:
			ff := property.FontFamily{}
			for _, f := range v {
				name, ok := f.(string)
				if !ok {
					return nil, invalid(tok.Name, tok.Type, "font family names must be strings")
				}
				ff.Families = append(ff.Families, family(name))
			}
			return ff, nil
		}
	case "", "string":
		if s, ok := raw.(string); ok {
			return Raw(s), nil
		}
	default:
		return nil, unsupported(tok.Name, tok.Type)
	}
	return nil, invalid(tok.Name, tok.Type, "unexpected $value shape")
}

func alias(tok *token.Token) (value.Renderer, bool) {
	v := strings.TrimSpace(tok.Value)
	if len(v) < 3 || v[0] != '{' || v[len(v)-1] != '}' {
		return nil, false
	}
	target := token.Token{Name: v[1 : len(v)-1], Prefix: tok.Prefix}
	return Raw("var(" + target.CSSVariableName() + ")"), true
}

func dimensionFromObject(tok *token.Token, obj map[string]any) (value.Renderer, error) {
	n, ok := obj["value"].(float64)
	if !ok {
		return nil, invalid(tok.Name, tok.Type, "dimension value must be a number")
	}
	unit, _ := obj["unit"].(string)
	u, ok := value.UnitFor(unit)
	if !ok {
		return nil, invalid(tok.Name, tok.Type, "unknown unit "+strconv.Quote(unit))
	}
	return value.NewLength(n, u), nil
}

// dimensionFromString reads draft-schema dimensions like "1.5rem" or "50%"
func dimensionFromString(s string) value.Renderer {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789.+-", r)
	})
	if i == -1 {
		i = len(s)
	}
	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Raw(s)
	}
	suffix := s[i:]
	switch suffix {
	case "":
		if n == 0 {
			return value.Zero()
		}
	case "%":
		return value.Percent(n)
	default:
		if u, ok := value.UnitFor(suffix); ok {
			return value.NewLength(n, u)
		}
	}
	return Raw(s)
}

func family(name string) property.Family {
	if f, ok := property.GenericFamily(name); ok {
		return f
	}
	return property.FamilyNamed(name)
}
