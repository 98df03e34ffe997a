package users

import (
	"context"
	"errors"
	"testing"

	"birrieria-admin/internal/ports/auth"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Profile
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Profile{}}
}

func (r *testRepo) Create(ctx context.Context, p Profile) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (Profile, error) {
	for _, p := range r.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return Profile{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Profile, error) {
	out := make([]Profile, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestCreateNormalizesEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{
		Email: "  Ana.Ruiz@Birrieria.MX ",
		Role:  auth.RoleCocinero,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Email != "ana.ruiz@birrieria.mx" {
		t.Fatalf("email = %q", p.Email)
	}
	if p.ID == "" {
		t.Fatalf("debe generar ID cuando no viene del proveedor")
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	in := CreateInput{Email: "ana@birrieria.mx", Role: auth.RoleMesero}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("primer Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("esperaba ErrDuplicate, obtuve %v", err)
	}
}

func TestCreateRequiresEmailAndRole(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), CreateInput{Email: "sin-arroba", Role: auth.RoleUser}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("email inválido: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Email: "ok@x.mx"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("sin role: %v", err)
	}
}

func TestRoleAndBranch(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), CreateInput{
		Email:  "luis@birrieria.mx",
		Role:   auth.RoleTortillero,
		Branch: auth.BranchSanPedro,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	role, branch, err := svc.RoleAndBranch(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("RoleAndBranch: %v", err)
	}
	if role != auth.RoleTortillero || branch != auth.BranchSanPedro {
		t.Fatalf("role=%s branch=%s", role, branch)
	}

	if _, _, err := svc.RoleAndBranch(context.Background(), "no-existe"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("esperaba ErrNotFound, obtuve %v", err)
	}
}
