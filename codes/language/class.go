package language

import "fmt"

// Class is the ISO 639-3 scope of a language code.
type Class int

const (
	ClassIndividual Class = iota
	ClassMacroLanguage
	ClassSpecial
)

var classNames = []string{"Individual", "MacroLanguage", "Special"}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

func (c Class) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(classNames) {
		return nil, fmt.Errorf("language: invalid class %d", int(c))
	}
	return []byte(classNames[c]), nil
}

func (c *Class) UnmarshalText(text []byte) error {
	i, err := parseName("class", classNames, string(text))
	if err != nil {
		return err
	}
	*c = Class(i)
	return nil
}

// Type is the ISO 639-3 language type.
type Type int

const (
	TypeAncient Type = iota
	TypeConstructed
	TypeExtinct
	TypeHistorical
	TypeLiving
	TypeSpecial
)

var typeNames = []string{"Ancient", "Constructed", "Extinct", "Historical", "Living", "Special"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("language: invalid type %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	i, err := parseName("type", typeNames, string(text))
	if err != nil {
		return err
	}
	*t = Type(i)
	return nil
}

func parseName(kind string, names []string, s string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("language: unknown %s %q", kind, s)
}
