package sysinfo

import (
	"errors"
	"os"

	"github.com/hostcond-org/hostcond/internal/fileutil"
)

// ErrNoCredentialsDir means no credential store is configured for this
// process.
var ErrNoCredentialsDir = errors.New("no credentials directory set")

// CredentialsDir returns the directory holding regular credentials passed
// to this process.
func CredentialsDir() (string, error) {
	return credentialsDirFromEnv("CREDENTIALS_DIRECTORY")
}

// EncryptedCredentialsDir returns the directory holding encrypted
// credentials passed to this process.
func EncryptedCredentialsDir() (string, error) {
	return credentialsDirFromEnv("ENCRYPTED_CREDENTIALS_DIRECTORY")
}

func credentialsDirFromEnv(key string) (string, error) {
	dir, ok := os.LookupEnv(key)
	if !ok || dir == "" {
		return "", ErrNoCredentialsDir
	}
	return dir, nil
}

// CredentialNameValid reports whether name is a well-formed credential
// name. Credentials with invalid names cannot exist.
func CredentialNameValid(name string) bool {
	return fileutil.IsValidFilename(name)
}
