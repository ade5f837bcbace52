package authn

import (
	"fmt"
	"net/http"
)

const (
	HeaderAPIKey    = "api-key"
	HeaderSignature = "signature"
	HeaderNonce     = "nonce"
	HeaderTimestamp = "timestamp"
)

type RestAuthProviderOptions struct {
	Credentials Credentials
	SignerOptions
}

type RestAuthProvider struct {
	credentials Credentials
	signer      *Signer
}

func NewRestAuthProvider(opts RestAuthProviderOptions) (*RestAuthProvider, error) {
	opts.SignerOptions.SecretKey = opts.Credentials.SecretKey
	signer, err := NewSigner(opts.SignerOptions)
	if err != nil {
		return nil, err
	}

	return &RestAuthProvider{
		credentials: opts.Credentials,
		signer:      signer,
	}, nil
}

func (p *RestAuthProvider) Credentials() Credentials {
	return p.credentials
}

// SetAuthHeader signs req with a fresh nonce and timestamp.
// Every call produces a new SignedRequest.
func (p *RestAuthProvider) SetAuthHeader(req *http.Request) (SignedRequest, error) {
	signed, err := p.signer.Sign()
	if err != nil {
		return SignedRequest{}, fmt.Errorf("sign: %w", err)
	}

	req.Header.Set(HeaderAPIKey, p.credentials.APIKey)
	req.Header.Set(HeaderSignature, signed.Signature)
	req.Header.Set(HeaderNonce, signed.Nonce)
	req.Header.Set(HeaderTimestamp, signed.Timestamp)

	return signed, nil
}
