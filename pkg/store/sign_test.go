// pkg/store/sign_test.go
package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestKey generates a throwaway signing key and writes it armored.
func writeTestKey(t *testing.T, dir string) string {
	t.Helper()

	entity, err := openpgp.NewEntity("Catalog Test", "", "test@example.invalid", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	require.NoError(t, err)
	require.NoError(t, entity.SerializePrivate(w, nil))
	require.NoError(t, w.Close())

	path := filepath.Join(dir, "signing.key")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	return path
}

func TestSignAndVerify(t *testing.T) {
	dir := t.TempDir()
	keyPath := writeTestKey(t, dir)

	exportPath := filepath.Join(dir, "list.json")
	require.NoError(t, Export(testCatalog(), exportPath))

	signer, err := NewSigner(keyPath, "")
	require.NoError(t, err)

	sigPath, err := signer.Sign(exportPath)
	require.NoError(t, err)
	assert.Equal(t, exportPath+SignatureExt, sigPath)

	sig, err := os.ReadFile(sigPath)
	require.NoError(t, err)
	assert.Contains(t, string(sig), "BEGIN PGP SIGNATURE")

	assert.NoError(t, Verify(exportPath, sigPath, keyPath))
}

func TestVerifyRejectsTamperedFile(t *testing.T) {
	dir := t.TempDir()
	keyPath := writeTestKey(t, dir)

	exportPath := filepath.Join(dir, "list.json")
	require.NoError(t, Export(testCatalog(), exportPath))

	signer, err := NewSigner(keyPath, "")
	require.NoError(t, err)
	sigPath, err := signer.Sign(exportPath)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(exportPath, []byte(`{"apt": ["imposter"]}`), 0644))
	assert.Error(t, Verify(exportPath, sigPath, keyPath))
}

func TestNewSignerErrors(t *testing.T) {
	_, err := NewSigner("", "")
	assert.Error(t, err)

	_, err = NewSigner(filepath.Join(t.TempDir(), "absent.key"), "")
	assert.Error(t, err)

	junk := filepath.Join(t.TempDir(), "junk.key")
	require.NoError(t, os.WriteFile(junk, []byte("not a key"), 0600))
	_, err = NewSigner(junk, "")
	assert.Error(t, err)
}
