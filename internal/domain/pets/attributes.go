package pets

import "fmt"

// Attributes es la forma "plana" del atributo por especie, tal como se
// guarda en columnas nullable (breed, is_longhaired, can_fly).
type Attributes struct {
	Breed        *string
	IsLonghaired *bool
	CanFly       *bool
}

func AttributesOf(a Attribute) Attributes {
	switch v := a.(type) {
	case DogAttr:
		return Attributes{Breed: &v.Breed}
	case CatAttr:
		return Attributes{IsLonghaired: &v.IsLonghaired}
	case LizardAttr:
		return Attributes{CanFly: &v.CanFly}
	case BirdAttr:
		return Attributes{CanFly: &v.CanFly}
	default:
		return Attributes{}
	}
}

// For reconstruye el atributo de la especie indicada.
// Falla si la columna que corresponde a esa especie viene vacía.
func (a Attributes) For(kind Kind) (Attribute, error) {
	switch kind {
	case KindDog:
		if a.Breed == nil {
			return nil, fmt.Errorf("dog without breed: %w", ErrInvalidInput)
		}
		return DogAttr{Breed: *a.Breed}, nil
	case KindCat:
		if a.IsLonghaired == nil {
			return nil, fmt.Errorf("cat without hair type: %w", ErrInvalidInput)
		}
		return CatAttr{IsLonghaired: *a.IsLonghaired}, nil
	case KindLizard:
		if a.CanFly == nil {
			return nil, fmt.Errorf("lizard without can_fly: %w", ErrInvalidInput)
		}
		return LizardAttr{CanFly: *a.CanFly}, nil
	case KindBird:
		if a.CanFly == nil {
			return nil, fmt.Errorf("bird without can_fly: %w", ErrInvalidInput)
		}
		return BirdAttr{CanFly: *a.CanFly}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q: %w", kind, ErrInvalidInput)
	}
}
