package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"pet-inventory/internal/adapters/api"
	"pet-inventory/internal/adapters/storage/memory"
	"pet-inventory/internal/domain/pets"
	"pet-inventory/internal/platform/httpclient"
	"pet-inventory/internal/router"
)

func TestClient_ListPets_AgainstRouter(t *testing.T) {
	repo := memory.NewPetRepo()
	svc := pets.NewService(repo)
	ctx := context.Background()

	for _, in := range []pets.RegisterInput{
		{SessionID: "s-1", Name: "Rex", Gender: pets.GenderMale, Owner: "Sam", Attr: pets.DogAttr{Breed: "Lab"}},
		{SessionID: "s-2", Name: "Zed", Gender: pets.GenderFemale, Owner: "Ana", Attr: pets.LizardAttr{}},
	} {
		if _, err := svc.Register(ctx, in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{Repo: repo}))
	defer ts.Close()

	c, err := api.NewClient(ts.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	items, err := c.ListPets(ctx, "LIZARD", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := make([]string, 0, len(items))
	for _, p := range items {
		got = append(got, p.Summary)
	}
	if diff := cmp.Diff([]string{"Lizard - Zed (Female), Owner: Ana, Can Fly: No"}, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	items, err = c.ListPets(ctx, "", "s-1")
	if err != nil {
		t.Fatalf("list by session: %v", err)
	}
	if len(items) != 1 || items[0].Kind != "Dog" {
		t.Fatalf("expected only the dog of s-1, got %+v", items)
	}
}

func TestClient_ListPets_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c, err := api.NewClient(ts.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = c.ListPets(context.Background(), "", "")
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected HTTPError 500, got %v", err)
	}
	if httpErr.Body != "boom" {
		t.Fatalf("expected body boom, got %q", httpErr.Body)
	}
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	if _, err := api.NewClient("not a url", time.Second); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}
