// Package session implementa la sesión interactiva de consola: pide mascotas
// una por una, las registra y al final las lista con un filtro por especie.
package session

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"pet-inventory/internal/domain/pets"
	"pet-inventory/internal/platform/logger"
)

type State int

const (
	CollectingKind State = iota
	CollectingName
	CollectingGender
	CollectingOwner
	CollectingVariantField
	AskAddAnother
	CollectingFilter
	Listing
	Done
)

func (s State) String() string {
	switch s {
	case CollectingKind:
		return "collecting_kind"
	case CollectingName:
		return "collecting_name"
	case CollectingGender:
		return "collecting_gender"
	case CollectingOwner:
		return "collecting_owner"
	case CollectingVariantField:
		return "collecting_variant_field"
	case AskAddAnother:
		return "ask_add_another"
	case CollectingFilter:
		return "collecting_filter"
	case Listing:
		return "listing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Session es de un solo uso: Run la lleva de CollectingKind a Done.
type Session struct {
	id     string
	svc    *pets.Service
	prompt *Prompter
	log    logger.Logger

	state State
	pets  []pets.Pet
}

func New(svc *pets.Service, in io.Reader, out io.Writer, log logger.Logger) *Session {
	id := uuid.NewString()
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		id:     id,
		svc:    svc,
		prompt: NewPrompter(in, out),
		log:    log.With(map[string]any{"session_id": id}),
		state:  CollectingKind,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State { return s.state }

// Pets devuelve una copia de la colección, en orden de entrada.
func (s *Session) Pets() []pets.Pet {
	out := make([]pets.Pet, len(s.pets))
	copy(out, s.pets)
	return out
}

// draft junta los campos de la mascota en curso.
type draft struct {
	kind   pets.Kind
	name   string
	gender pets.Gender
	owner  string
}

// Run ejecuta la sesión completa. Los errores de validación se resuelven
// repreguntando; solo devuelve error por fin de entrada o fallo del store.
func (s *Session) Run(ctx context.Context) error {
	s.prompt.WriteLine("Welcome to the Pet Inventory!")
	s.log.Debug("session started", nil)

	var (
		d      draft
		filter string
	)

	for s.state != Done {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := s.step(ctx, &d, &filter)
		if err != nil {
			s.log.Warn("session aborted", map[string]any{
				"state": s.state.String(),
				"pets":  len(s.pets),
				"error": err,
			})
			return err
		}
		s.state = next
	}

	s.log.Debug("session finished", map[string]any{"pets": len(s.pets), "filter": filter})
	return nil
}

func (s *Session) step(ctx context.Context, d *draft, filter *string) (State, error) {
	var err error

	switch s.state {
	case CollectingKind:
		*d = draft{}
		s.prompt.WriteLine("")
		s.prompt.WriteLine(fmt.Sprintf("Pet %d:", len(s.pets)+1))
		d.kind, err = s.prompt.Kind()
		return CollectingName, err

	case CollectingName:
		d.name, err = s.prompt.Text("Name: ")
		return CollectingGender, err

	case CollectingGender:
		d.gender, err = s.prompt.Gender()
		return CollectingOwner, err

	case CollectingOwner:
		d.owner, err = s.prompt.Text("Owner: ")
		return CollectingVariantField, err

	case CollectingVariantField:
		attr, err := s.variantField(d.kind)
		if err != nil {
			return s.state, err
		}
		if err := s.add(ctx, *d, attr); err != nil {
			return s.state, err
		}
		return AskAddAnother, nil

	case AskAddAnother:
		more, err := s.prompt.YesNo("Add another pet? (y/n): ")
		if more {
			return CollectingKind, err
		}
		return CollectingFilter, err

	case CollectingFilter:
		s.prompt.WriteLine("")
		*filter, err = s.prompt.Ask("Which type of animal would you like to list? (Dog, Cat, Lizard, Bird, or 'All'):")
		return Listing, err

	case Listing:
		s.prompt.WriteLine("")
		s.prompt.WriteLine("All pets in the inventory:")
		for _, p := range pets.Filter(s.pets, *filter) {
			s.prompt.WriteLine("* " + p.String())
		}
		return Done, nil

	default:
		return Done, nil
	}
}

func (s *Session) variantField(kind pets.Kind) (pets.Attribute, error) {
	switch kind {
	case pets.KindDog:
		breed, err := s.prompt.Text("Breed: ")
		return pets.DogAttr{Breed: breed}, err
	case pets.KindCat:
		longhaired, err := s.prompt.YesNo("Is Longhaired? (y/n): ")
		return pets.CatAttr{IsLonghaired: longhaired}, err
	case pets.KindLizard:
		canFly, err := s.prompt.YesNo("Can Fly? (y/n): ")
		return pets.LizardAttr{CanFly: canFly}, err
	case pets.KindBird:
		canFly, err := s.prompt.YesNo("Can Fly? (y/n): ")
		return pets.BirdAttr{CanFly: canFly}, err
	default:
		return nil, fmt.Errorf("unknown kind %q: %w", kind, pets.ErrInvalidInput)
	}
}

func (s *Session) add(ctx context.Context, d draft, attr pets.Attribute) error {
	p, err := s.svc.Register(ctx, pets.RegisterInput{
		SessionID: s.id,
		Name:      d.name,
		Gender:    d.gender,
		Owner:     d.owner,
		Attr:      attr,
	})
	if err != nil {
		return err
	}

	s.pets = append(s.pets, p)
	s.log.Debug("pet registered", map[string]any{
		"pet_id":   p.ID,
		"kind":     string(p.Kind()),
		"position": len(s.pets),
	})
	return nil
}
