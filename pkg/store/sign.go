// pkg/store/sign.go
package store

import (
	"bytes"
	"crypto"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

// SignatureExt is appended to an export's path for its detached
// signature.
const SignatureExt = ".asc"

// Signer produces armored detached signatures for exported catalogs.
type Signer struct {
	entity *openpgp.Entity
}

// NewSigner loads the first key from keyPath, accepting armored or
// binary key rings. A non-empty passphrase decrypts the private key and
// its subkeys.
func NewSigner(keyPath, passphrase string) (*Signer, error) {
	keys, err := readKeyRing(keyPath)
	if err != nil {
		return nil, err
	}
	entity := keys[0]
	if passphrase != "" {
		if entity.PrivateKey != nil && entity.PrivateKey.Encrypted {
			if err := entity.PrivateKey.Decrypt([]byte(passphrase)); err != nil {
				return nil, fmt.Errorf("decrypting private key: %w", err)
			}
		}
		for _, sub := range entity.Subkeys {
			if sub.PrivateKey != nil && sub.PrivateKey.Encrypted {
				if err := sub.PrivateKey.Decrypt([]byte(passphrase)); err != nil {
					return nil, fmt.Errorf("decrypting subkey: %w", err)
				}
			}
		}
	}
	return &Signer{entity: entity}, nil
}

// Sign writes an armored detached signature for the file at path next
// to it and returns the signature path.
func (s *Signer) Sign(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	err = openpgp.ArmoredDetachSign(&buf, s.entity, f, &packet.Config{DefaultHash: crypto.SHA512})
	if err != nil {
		return "", fmt.Errorf("signing %s: %w", path, err)
	}
	sigPath := path + SignatureExt
	if err := os.WriteFile(sigPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", sigPath, err)
	}
	return sigPath, nil
}

// Verify checks the armored detached signature at sigPath against the
// file at path using the keys at keyPath.
func Verify(path, sigPath, keyPath string) error {
	keys, err := readKeyRing(keyPath)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	sig, err := os.Open(sigPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", sigPath, err)
	}
	defer sig.Close()

	if _, err := openpgp.CheckArmoredDetachedSignature(keys, f, sig, nil); err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	return nil
}

func readKeyRing(keyPath string) (openpgp.EntityList, error) {
	if keyPath == "" {
		return nil, fmt.Errorf("key path is empty")
	}
	f, err := os.Open(keyPath)
	if err != nil {
		return nil, fmt.Errorf("opening key file: %w", err)
	}
	defer f.Close()

	keys, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		// Binary key rings carry no armor to strip.
		if _, serr := f.Seek(0, 0); serr != nil {
			return nil, serr
		}
		keys, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("no keys in %s", keyPath)
	}
	return keys, nil
}
