package main

import (
	"crypto/subtle"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
)

const defaultDailyHours = 7.2

// UserStore keeps the username -> credentials/quota mapping backed by a
// yaml file in the data directory. Load at start, save on every change.
type UserStore struct {
	path  string
	users map[string]*User
	log   *logrus.Entry
}

func LoadUserStore(path string, log *logrus.Entry) (*UserStore, error) {
	s := &UserStore{
		path:  path,
		users: make(map[string]*User),
		log:   log,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("falha ao ler arquivo de usuários: %w", err)
	}

	if err := yaml.Unmarshal(data, &s.users); err != nil {
		return nil, fmt.Errorf("falha ao decodificar arquivo de usuários: %w", err)
	}
	return s, nil
}

func (s *UserStore) Save() error {
	data, err := yaml.Marshal(s.users)
	if err != nil {
		return fmt.Errorf("falha ao codificar usuários: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("falha ao criar diretório de dados: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("falha ao gravar arquivo de usuários: %w", err)
	}
	return nil
}

// Register creates a new user with the default daily quota. Duplicate
// usernames are rejected rather than overwritten.
func (s *UserStore) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%w: usuário vazio", ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: senha vazia", ErrValidation)
	}
	if _, exists := s.users[username]; exists {
		return fmt.Errorf("%w: usuário %q já existe", ErrValidation, username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}

	s.users[username] = &User{
		Password:   string(hash),
		DailyHours: defaultDailyHours,
	}
	if err := s.Save(); err != nil {
		return err
	}

	s.log.WithField("usuario", username).Info("usuário registrado")
	return nil
}

// SetQuota overwrites the user's daily quota and persists the store.
func (s *UserStore) SetQuota(username string, hours float64) error {
	user, ok := s.users[strings.TrimSpace(username)]
	if !ok {
		return fmt.Errorf("%w: usuário %q", ErrNotFound, username)
	}
	if hours <= 0 {
		return fmt.Errorf("%w: carga horária deve ser positiva", ErrValidation)
	}

	user.DailyHours = hours
	if err := s.Save(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"usuario": username,
		"horas":   hours,
	}).Info("carga horária atualizada")
	return nil
}

// Authenticate validates credentials. Passwords are stored as bcrypt
// hashes; entries migrated from old plain-text stores are compared in
// constant time so existing files keep working.
func (s *UserStore) Authenticate(username, password string) error {
	user, ok := s.users[strings.TrimSpace(username)]
	if !ok {
		s.log.WithField("usuario", username).Warn("autenticação de usuário desconhecido")
		return ErrAuth
	}

	if strings.HasPrefix(user.Password, "$2") {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			s.log.WithField("usuario", username).Warn("senha incorreta")
			return ErrAuth
		}
		return nil
	}

	// legacy plain-text entry
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		s.log.WithField("usuario", username).Warn("senha incorreta")
		return ErrAuth
	}
	return nil
}

// Quota returns the stored daily quota for the user, or 0 when unknown.
func (s *UserStore) Quota(username string) float64 {
	if user, ok := s.users[strings.TrimSpace(username)]; ok {
		return user.DailyHours
	}
	return 0
}
