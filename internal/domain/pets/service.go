package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo     Repository
	now      func() time.Time
	newID    func() string
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	v := validator.New()
	// notblank usa IsBlank, la misma regla que aplica la consola al preguntar
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !IsBlank(fl.Field().String())
	})

	return &Service{
		repo:     repo,
		now:      time.Now,
		newID:    uuid.NewString,
		validate: v,
	}
}

type RegisterInput struct {
	SessionID string
	Name      string
	Gender    Gender
	Owner     string
	Attr      Attribute
}

// registration es lo que se valida con tags; Kind sale del atributo.
type registration struct {
	SessionID string `validate:"required"`
	Name      string `validate:"notblank"`
	Owner     string `validate:"notblank"`
	Gender    Gender `validate:"oneof=Male Female"`
	Kind      Kind   `validate:"oneof=Dog Cat Lizard Bird"`
}

// Register valida, asigna ID y fecha, y guarda la mascota.
// Los textos se guardan tal cual (sin trim).
func (s *Service) Register(ctx context.Context, in RegisterInput) (Pet, error) {
	if err := s.validate.Struct(registration{
		SessionID: in.SessionID,
		Name:      in.Name,
		Owner:     in.Owner,
		Gender:    in.Gender,
		Kind:      kindOf(in.Attr),
	}); err != nil {
		return Pet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.validate.Struct(in.Attr); err != nil {
		return Pet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p := Pet{
		ID:        s.newID(),
		SessionID: in.SessionID,
		Name:      in.Name,
		Gender:    in.Gender,
		Owner:     in.Owner,
		Attr:      in.Attr,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, fmt.Errorf("store pet: %w", err)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type ListInput struct {
	SessionID string // vacío = todo el inventario
	Filter    string // vacío = "All"
}

func (s *Service) List(ctx context.Context, in ListInput) ([]Pet, error) {
	var (
		items []Pet
		err   error
	)
	if in.SessionID != "" {
		items, err = s.repo.ListBySession(ctx, in.SessionID)
	} else {
		items, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	filter := in.Filter
	if filter == "" {
		filter = FilterAll
	}
	return Filter(items, filter), nil
}

func kindOf(a Attribute) Kind {
	if a == nil {
		return ""
	}
	return a.Kind()
}
