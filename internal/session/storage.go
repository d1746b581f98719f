package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CredentialStorage persistencia del token de sesión. La presencia del token
// es la única señal para intentar restaurar sesión al arranque (equivalente
// al key-value local del navegador).
type CredentialStorage interface {
	Token() (string, bool)
	Save(token string) error
	Clear() error
}

// MemoryStorage storage volátil, útil en tests y procesos efímeros.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStorage construye el storage en memoria, opcionalmente con token inicial.
func NewMemoryStorage(token string) *MemoryStorage {
	return &MemoryStorage{token: token}
}

func (s *MemoryStorage) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *MemoryStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// FileStorage persiste el token en un archivo bajo una clave fija.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// DefaultCredentialFile nombre del archivo de credencial.
const DefaultCredentialFile = "jbg_session_token"

// NewFileStorage construye el storage en disco. Si dir es vacío usa el
// directorio de configuración del usuario.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "jbg-logistica")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStorage{path: filepath.Join(dir, DefaultCredentialFile)}, nil
}

func (s *FileStorage) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	return token, token != ""
}

func (s *FileStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
