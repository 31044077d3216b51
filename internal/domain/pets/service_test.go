package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Pet
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	r.items = append(r.items, p)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	return append([]Pet(nil), r.items...), nil
}

func (r *testRepo) ListBySession(ctx context.Context, sessionID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.items {
		if p.SessionID == sessionID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(repo)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	n := 0
	svc.newID = func() string {
		n++
		return "pet-" + string(rune('0'+n))
	}
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Register_AssignsIdentity(t *testing.T) {
	svc, repo := newTestService()

	p, err := svc.Register(context.Background(), RegisterInput{
		SessionID: "s-1",
		Name:      "Rex",
		Gender:    GenderMale,
		Owner:     "Sam",
		Attr:      DogAttr{Breed: "Lab"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if p.ID != "pet-1" || p.SessionID != "s-1" {
		t.Fatalf("unexpected identity id=%q session=%q", p.ID, p.SessionID)
	}
	if !p.CreatedAt.Equal(time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected clock time, got %v", p.CreatedAt)
	}
	if len(repo.items) != 1 || repo.items[0].ID != p.ID {
		t.Fatalf("expected pet stored, got %+v", repo.items)
	}
}

func TestService_Register_KeepsTextVerbatim(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Register(context.Background(), RegisterInput{
		SessionID: "s-1",
		Name:      "  Mr Whiskers ",
		Gender:    GenderFemale,
		Owner:     "Ana  Maria",
		Attr:      CatAttr{IsLonghaired: true},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Name != "  Mr Whiskers " || p.Owner != "Ana  Maria" {
		t.Fatalf("expected verbatim text, got name=%q owner=%q", p.Name, p.Owner)
	}
}

func TestService_Register_RejectsInvalid(t *testing.T) {
	valid := RegisterInput{
		SessionID: "s-1",
		Name:      "Rex",
		Gender:    GenderMale,
		Owner:     "Sam",
		Attr:      DogAttr{Breed: "Lab"},
	}

	cases := map[string]func(in *RegisterInput){
		"blank name":      func(in *RegisterInput) { in.Name = "   " },
		"empty owner":     func(in *RegisterInput) { in.Owner = "" },
		"blank breed":     func(in *RegisterInput) { in.Attr = DogAttr{Breed: " \t"} },
		"separator name":  func(in *RegisterInput) { in.Name = "\x1c" },
		"separator breed": func(in *RegisterInput) { in.Attr = DogAttr{Breed: "\x1f "} },
		"missing attr":    func(in *RegisterInput) { in.Attr = nil },
		"unknown gender":  func(in *RegisterInput) { in.Gender = Gender("Other") },
		"missing session": func(in *RegisterInput) { in.SessionID = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc, repo := newTestService()
			in := valid
			mutate(&in)

			_, err := svc.Register(context.Background(), in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(repo.items) != 0 {
				t.Fatalf("expected nothing stored, got %d", len(repo.items))
			}
		})
	}
}

func TestService_List_FiltersBySessionAndKind(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	mustRegister := func(session, name string, attr Attribute) {
		t.Helper()
		if _, err := svc.Register(ctx, RegisterInput{
			SessionID: session, Name: name, Gender: GenderMale, Owner: "Sam", Attr: attr,
		}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	mustRegister("s-1", "Rex", DogAttr{Breed: "Lab"})
	mustRegister("s-2", "Mia", CatAttr{})
	mustRegister("s-1", "Tweety", BirdAttr{CanFly: true})

	names := func(items []Pet) []string {
		out := make([]string, 0, len(items))
		for _, p := range items {
			out = append(out, p.Name)
		}
		return out
	}

	cases := []struct {
		in   ListInput
		want []string
	}{
		{ListInput{}, []string{"Rex", "Mia", "Tweety"}},
		{ListInput{Filter: "all"}, []string{"Rex", "Mia", "Tweety"}},
		{ListInput{Filter: "cat"}, []string{"Mia"}},
		{ListInput{Filter: "Cats"}, []string{}},
		{ListInput{SessionID: "s-1"}, []string{"Rex", "Tweety"}},
		{ListInput{SessionID: "s-1", Filter: "Bird"}, []string{"Tweety"}},
		{ListInput{SessionID: "nope"}, []string{}},
	}
	for _, tc := range cases {
		items, err := svc.List(ctx, tc.in)
		if err != nil {
			t.Fatalf("list %+v: %v", tc.in, err)
		}
		got := names(items)
		if len(got) != len(tc.want) {
			t.Fatalf("list %+v: expected %v, got %v", tc.in, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("list %+v: expected %v, got %v", tc.in, tc.want, got)
			}
		}
	}
}

func TestService_GetByID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p, err := svc.Register(ctx, RegisterInput{
		SessionID: "s-1", Name: "Zed", Gender: GenderFemale, Owner: "Ana", Attr: LizardAttr{},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.String() != "Lizard - Zed (Female), Owner: Ana, Can Fly: No" {
		t.Fatalf("unexpected pet %q", got.String())
	}

	if _, err := svc.GetByID(ctx, " "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank id, got %v", err)
	}
	if _, err := svc.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
