package utils

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/square/go-jose/v3"
	"golang.org/x/crypto/hkdf"
)

// SessionTokenUtil mints and decodes the encrypted session tokens handed out
// at login. The payload carries sub (username), jti (session id), iat and exp.
type SessionTokenUtil struct{}

func NewSessionTokenUtil() *SessionTokenUtil {
	return &SessionTokenUtil{}
}

func (u *SessionTokenUtil) CreateToken(username string, sessionId string, ttl time.Duration) (string, error) {
	encryptionKey, err := getDerivedEncryptionKey([]byte(os.Getenv("SESSION_SECRET")))
	if err != nil {
		return "", err
	}

	encrypter, err := jose.NewEncrypter(
		jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: encryptionKey},
		nil,
	)
	if err != nil {
		return "", err
	}

	now := time.Now()
	payload, err := json.Marshal(map[string]interface{}{
		"sub": username,
		"jti": sessionId,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	if err != nil {
		return "", err
	}

	object, err := encrypter.Encrypt(payload)
	if err != nil {
		return "", err
	}

	return object.CompactSerialize()
}

func (u *SessionTokenUtil) DecodeToken(token string) (map[string]interface{}, error) {
	encryptionKey, err := getDerivedEncryptionKey([]byte(os.Getenv("SESSION_SECRET")))
	if err != nil {
		return nil, err
	}

	payload, err := decodeToken(token, encryptionKey)
	if err != nil {
		return nil, err
	}

	if err := validateClaims(payload); err != nil {
		return nil, err
	}

	return payload, nil
}

func getDerivedEncryptionKey(keyMaterial []byte) ([]byte, error) {
	info := []byte("Expense Tracker Generated Encryption Key")
	h := hkdf.New(sha256.New, keyMaterial, nil, info)
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}

func decodeToken(tokenStr string, encryptionKey []byte) (map[string]interface{}, error) {
	jweObject, err := jose.ParseEncrypted(tokenStr)
	if err != nil {
		return nil, err
	}
	decrypted, err := jweObject.Decrypt(encryptionKey)
	if err != nil {
		return nil, err
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(decrypted, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func validateClaims(payload map[string]interface{}) error {
	now := time.Now().Unix()

	if exp, ok := payload["exp"].(float64); ok {
		if now > int64(exp) {
			return errors.New("token expired")
		}
	}

	if iat, ok := payload["iat"].(float64); ok {
		if now < int64(iat) {
			return errors.New("token not valid yet")
		}
	}

	return nil
}
