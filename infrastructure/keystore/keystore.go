package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	keysFile = "api-keys.enc"
	keyFile  = ".encryption-key"

	encryptionKeySize = 32
	nonceSize         = 12
)

// Store is an encrypted file-backed store for Steam partner API keys. The
// secrets never touch the database; only their metadata does.
type Store interface {
	Add(id, apiKey string) error
	Get(id string) (string, error)
	Delete(id string) error
	DeleteAll() error
}

type fileStore struct {
	mu            sync.Mutex
	dataDir       string
	encryptionKey []byte
}

// New opens the keystore in dataDir, generating a fresh encryption key on
// first run.
func New(dataDir string) (Store, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create keystore directory: %w", err)
	}

	keyPath := filepath.Join(dataDir, keyFile)

	var encryptionKey []byte

	if raw, err := os.ReadFile(keyPath); err == nil {
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
		if err != nil {
			return nil, fmt.Errorf("failed to decode encryption key: %w", err)
		}
		if len(decoded) != encryptionKeySize {
			return nil, fmt.Errorf("invalid encryption key length: %d", len(decoded))
		}
		encryptionKey = decoded
	} else if os.IsNotExist(err) {
		encryptionKey = make([]byte, encryptionKeySize)
		if _, err := rand.Read(encryptionKey); err != nil {
			return nil, fmt.Errorf("failed to generate encryption key: %w", err)
		}

		encoded := base64.StdEncoding.EncodeToString(encryptionKey)
		if err := os.WriteFile(keyPath, []byte(encoded), 0o600); err != nil {
			return nil, fmt.Errorf("failed to persist encryption key: %w", err)
		}
	} else {
		return nil, fmt.Errorf("failed to read encryption key: %w", err)
	}

	return &fileStore{
		dataDir:       dataDir,
		encryptionKey: encryptionKey,
	}, nil
}

func (s *fileStore) Add(id, apiKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load()
	if err != nil {
		return err
	}

	keys[id] = apiKey

	return s.save(keys)
}

// Get returns the stored secret for id, or "" when none is stored.
func (s *fileStore) Get(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load()
	if err != nil {
		return "", err
	}

	return keys[id], nil
}

func (s *fileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load()
	if err != nil {
		return err
	}

	delete(keys, id)

	return s.save(keys)
}

func (s *fileStore) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dataDir, keysFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove keys file: %w", err)
	}

	return nil
}

func (s *fileStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(filepath.Join(s.dataDir, keysFile))
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("failed to read keys file: %w", err)
	}

	plaintext, err := s.decrypt(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, err
	}

	keys := make(map[string]string)
	if err := json.Unmarshal(plaintext, &keys); err != nil {
		return nil, fmt.Errorf("failed to decode keys file: %w", err)
	}

	return keys, nil
}

func (s *fileStore) save(keys map[string]string) error {
	plaintext, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("failed to encode keys: %w", err)
	}

	encrypted, err := s.encrypt(plaintext)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(s.dataDir, keysFile), []byte(encrypted), 0o600); err != nil {
		return fmt.Errorf("failed to write keys file: %w", err)
	}

	return nil
}

// encrypt seals plaintext with AES-256-GCM and encodes nonce+ciphertext as
// base64, nonce first.
func (s *fileStore) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	combined := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(combined), nil
}

func (s *fileStore) decrypt(encoded string) ([]byte, error) {
	combined, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode keys file: %w", err)
	}

	if len(combined) < nonceSize {
		return nil, fmt.Errorf("keys file too short")
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	plaintext, err := gcm.Open(nil, combined[:nonceSize], combined[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keys file: %w", err)
	}

	return plaintext, nil
}
