package pets

import "fmt"

// String devuelve la línea legible de la mascota, p.ej.
// "Dog - Rex (Male), Owner: Sam, Breed: Lab".
func (p Pet) String() string {
	base := fmt.Sprintf("%s (%s), Owner: %s", p.Name, p.Gender, p.Owner)

	switch a := p.Attr.(type) {
	case DogAttr:
		return fmt.Sprintf("Dog - %s, Breed: %s", base, a.Breed)
	case CatAttr:
		return fmt.Sprintf("Cat - %s, Hair Type: %s", base, hairType(a.IsLonghaired))
	case LizardAttr:
		return fmt.Sprintf("Lizard - %s, Can Fly: %s", base, yesNo(a.CanFly))
	case BirdAttr:
		return fmt.Sprintf("Bird - %s, Can Fly: %s", base, yesNo(a.CanFly))
	default:
		return base
	}
}

func hairType(longhaired bool) string {
	if longhaired {
		return "Longhaired"
	}
	return "Shorthair"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
