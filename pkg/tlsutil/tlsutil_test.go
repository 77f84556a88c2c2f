package tlsutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDevCertificate_LoadsAsServerCredentials(t *testing.T) {
	dir := t.TempDir()

	certFile, keyFile, err := GenerateDevCertificate([]string{"localhost", "127.0.0.1"}, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "server.pem"), certFile)
	assert.Equal(t, filepath.Join(dir, "server-key.pem"), keyFile)

	creds, err := ServerTLSConfig(certFile, keyFile)
	require.NoError(t, err)
	assert.Equal(t, "tls", creds.Info().SecurityProtocol)
}

func TestServerTLSConfig_MissingFiles(t *testing.T) {
	_, err := ServerTLSConfig("/nonexistent/cert.pem", "/nonexistent/key.pem")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load server key pair")
}
