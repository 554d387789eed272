package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestUserStore(t *testing.T) *UserStore {
	t.Helper()
	store, err := LoadUserStore(filepath.Join(t.TempDir(), "users.yaml"), testLogger())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return store
}

func TestRegisterValidation(t *testing.T) {
	store := newTestUserStore(t)

	if err := store.Register("", "senha"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty username err = %v, want ErrValidation", err)
	}
	if err := store.Register("maria", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("empty password err = %v, want ErrValidation", err)
	}

	if err := store.Register("maria", "senha"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := store.Register("maria", "outra"); !errors.Is(err, ErrValidation) {
		t.Errorf("duplicate username err = %v, want ErrValidation", err)
	}
}

func TestAuthenticate(t *testing.T) {
	store := newTestUserStore(t)
	if err := store.Register("joao", "segredo"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := store.Authenticate("joao", "segredo"); err != nil {
		t.Errorf("valid credentials: %v", err)
	}
	if err := store.Authenticate("joao", "errada"); !errors.Is(err, ErrAuth) {
		t.Errorf("wrong password err = %v, want ErrAuth", err)
	}
	if err := store.Authenticate("ninguem", "segredo"); !errors.Is(err, ErrAuth) {
		t.Errorf("unknown user err = %v, want ErrAuth", err)
	}
}

func TestAuthenticateLegacyPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	legacy := "ana:\n  password: antiga\n  daily_hours: 8\n"
	if err := os.WriteFile(path, []byte(legacy), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store, err := LoadUserStore(path, testLogger())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	if err := store.Authenticate("ana", "antiga"); err != nil {
		t.Errorf("legacy plain-text password: %v", err)
	}
	if err := store.Authenticate("ana", "nova"); !errors.Is(err, ErrAuth) {
		t.Errorf("wrong legacy password err = %v, want ErrAuth", err)
	}
	if got := store.Quota("ana"); got != 8 {
		t.Errorf("quota = %v, want 8", got)
	}
}

func TestSetQuota(t *testing.T) {
	store := newTestUserStore(t)
	if err := store.Register("rui", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := store.SetQuota("ninguem", 8); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user err = %v, want ErrNotFound", err)
	}
	if err := store.SetQuota("rui", -1); !errors.Is(err, ErrValidation) {
		t.Errorf("negative quota err = %v, want ErrValidation", err)
	}

	if err := store.SetQuota("rui", 7.5); err != nil {
		t.Fatalf("set quota: %v", err)
	}
	if got := store.Quota("rui"); got != 7.5 {
		t.Errorf("quota = %v, want 7.5", got)
	}
}

func TestUserStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	store, err := LoadUserStore(path, testLogger())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if err := store.Register("bia", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}

	reloaded, err := LoadUserStore(path, testLogger())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if err := reloaded.Authenticate("bia", "pw"); err != nil {
		t.Errorf("authenticate after reload: %v", err)
	}
	if got := reloaded.Quota("bia"); got != defaultDailyHours {
		t.Errorf("quota = %v, want default %v", got, defaultDailyHours)
	}
}
