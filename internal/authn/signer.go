package authn

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ErrMissingSecret is returned when a signature is requested without a secret key.
var ErrMissingSecret = errors.New("secret key is required")

// SignedRequest holds the per-request authentication values sent as headers.
// It must never be reused for another request.
type SignedRequest struct {
	Nonce     string
	Timestamp string
	Signature string
}

// Compute returns base64(HMAC-SHA512(key=secret, msg=SHA256(nonce+timestamp))).
//
// The HMAC input is the raw 32 byte digest, not its hex form.
func Compute(secret, nonce, timestamp string) string {
	digest := sha256.Sum256([]byte(nonce + timestamp))
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(digest[:])
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

type SignerOptions struct {
	SecretKey string
	// Now and NewNonce are replaceable for tests.
	Now      func() time.Time
	NewNonce func() string
}

type Signer struct {
	secret   string
	now      func() time.Time
	newNonce func() string
}

func NewSigner(opts SignerOptions) (*Signer, error) {
	if opts.SecretKey == "" {
		return nil, ErrMissingSecret
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewNonce == nil {
		opts.NewNonce = uuid.NewString
	}

	return &Signer{
		secret:   opts.SecretKey,
		now:      opts.Now,
		newNonce: opts.NewNonce,
	}, nil
}

// Sign generates a fresh nonce and timestamp and signs them.
func (s *Signer) Sign() (SignedRequest, error) {
	if s == nil || s.secret == "" {
		return SignedRequest{}, ErrMissingSecret
	}

	nonce := s.newNonce()
	timestamp := strconv.FormatInt(s.now().Unix(), 10)

	return SignedRequest{
		Nonce:     nonce,
		Timestamp: timestamp,
		Signature: Compute(s.secret, nonce, timestamp),
	}, nil
}
