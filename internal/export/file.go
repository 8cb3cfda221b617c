package export

import (
	"errors"
	"fmt"
	"path"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zfilesystem"
)

// ErrWrongPassphrase is returned when an encrypted export cannot be opened.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupt file")

// WriteFile writes data to name inside fsys, creating parent directories.
func WriteFile(fsys zfilesystem.ReadWriteFileFS, name string, data []byte) error {
	if err := mkParent(fsys, name); err != nil {
		return err
	}
	if err := fsys.WriteFile(name, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// WriteEncrypted encrypts data under a key derived from passphrase and a
// fresh salt, and writes salt followed by ciphertext to name.
func WriteEncrypted(fsys zfilesystem.ReadWriteFileFS, name string, data, passphrase []byte) error {
	salt, err := zcrypto.RandBytes(zcrypto.SaltSize)
	if err != nil {
		return fmt.Errorf("write encrypted %s: generate salt: %w", name, err)
	}

	key, _, err := zcrypto.DeriveKey(passphrase, salt)
	if err != nil {
		return fmt.Errorf("write encrypted %s: derive key: %w", name, err)
	}
	defer zcrypto.Erase(key)

	ct, err := zcrypto.Encrypt(key, data)
	if err != nil {
		return fmt.Errorf("write encrypted %s: encrypt: %w", name, err)
	}

	out := make([]byte, 0, len(salt)+len(ct))
	out = append(out, salt...)
	out = append(out, ct...)
	return WriteFile(fsys, name, out)
}

// ReadEncrypted reverses WriteEncrypted.
func ReadEncrypted(fsys zfilesystem.ReadWriteFileFS, name string, passphrase []byte) ([]byte, error) {
	blob, err := fsys.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read encrypted %s: %w", name, err)
	}
	if len(blob) <= zcrypto.SaltSize {
		return nil, fmt.Errorf("read encrypted %s: %w", name, ErrWrongPassphrase)
	}

	key, _, err := zcrypto.DeriveKey(passphrase, blob[:zcrypto.SaltSize])
	if err != nil {
		return nil, fmt.Errorf("read encrypted %s: derive key: %w", name, err)
	}
	defer zcrypto.Erase(key)

	data, err := zcrypto.Decrypt(key, blob[zcrypto.SaltSize:])
	if err != nil {
		return nil, fmt.Errorf("read encrypted %s: %w", name, ErrWrongPassphrase)
	}
	return data, nil
}

func mkParent(fsys zfilesystem.ReadWriteFileFS, name string) error {
	dir := path.Dir(name)
	if dir == "." || dir == "/" {
		return nil
	}
	if err := fsys.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	return nil
}
