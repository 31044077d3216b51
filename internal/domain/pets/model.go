package pets

import (
	"strings"
	"time"
	"unicode"
)

// Kind define las especies soportadas por el inventario.
// El valor string es el nombre canónico (se usa al filtrar y al renderizar).
// @Enum Dog, Cat, Lizard, Bird
type Kind string

const (
	KindDog    Kind = "Dog"
	KindCat    Kind = "Cat"
	KindLizard Kind = "Lizard"
	KindBird   Kind = "Bird"
)

// Kinds en el orden en que se muestran al usuario.
var Kinds = []Kind{KindDog, KindCat, KindLizard, KindBird}

// ParseKind compara sin distinguir mayúsculas contra los nombres de Kinds.
// No recorta espacios: " dog" no es válido.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if strings.EqualFold(s, string(k)) {
			return k, true
		}
	}
	return "", false
}

// Gender define el sexo de la mascota.
// @Enum Male, Female
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ParseGender acepta "M" o "F" (después de pasar a mayúsculas).
func ParseGender(s string) (Gender, bool) {
	switch strings.ToUpper(s) {
	case "M":
		return GenderMale, true
	case "F":
		return GenderFemale, true
	default:
		return "", false
	}
}

// IsBlank: vacío o solo espacios. Los separadores U+001C..U+001F también
// cuentan como espacio aunque unicode.IsSpace no los incluya.
// La consola y el servicio usan esta misma regla.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, isBlankRune) == ""
}

func isBlankRune(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Attribute es el dato propio de cada especie.
// Solo los tipos de este paquete lo implementan (unión cerrada).
type Attribute interface {
	Kind() Kind
	isAttribute()
}

type DogAttr struct {
	Breed string `validate:"notblank"`
}

type CatAttr struct {
	IsLonghaired bool
}

type LizardAttr struct {
	CanFly bool
}

type BirdAttr struct {
	CanFly bool
}

func (DogAttr) Kind() Kind    { return KindDog }
func (CatAttr) Kind() Kind    { return KindCat }
func (LizardAttr) Kind() Kind { return KindLizard }
func (BirdAttr) Kind() Kind   { return KindBird }

func (DogAttr) isAttribute()    {}
func (CatAttr) isAttribute()    {}
func (LizardAttr) isAttribute() {}
func (BirdAttr) isAttribute()   {}

// Pet representa una mascota del inventario.
// Se construye completa una sola vez y no se modifica después.
type Pet struct {
	ID        string
	SessionID string

	Name   string
	Gender Gender
	Owner  string
	Attr   Attribute

	CreatedAt time.Time
}

// Kind se deriva del atributo, así especie y atributo nunca se mezclan.
func (p Pet) Kind() Kind {
	if p.Attr == nil {
		return ""
	}
	return p.Attr.Kind()
}

// Sound es el sonido característico de cada especie.
func (p Pet) Sound() string {
	switch p.Attr.(type) {
	case DogAttr:
		return "Woof! Woof!"
	case CatAttr:
		return "Meow! Meow!"
	case LizardAttr:
		return "..."
	case BirdAttr:
		return "Tweet! Tweet!"
	default:
		return ""
	}
}
