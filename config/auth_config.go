package config

type AuthorizerConfig struct {
	JwksURL string `validate:"required,url"`
	// RequiredScope, when set, must appear in the token's scope claim.
	RequiredScope string
}

// NewAuthorizerConfig returns nil when JWKS_URL is unset, which disables the
// operator routes rather than exposing them unauthenticated.
func NewAuthorizerConfig() (*AuthorizerConfig, error) {
	jwksURL := getEnv("JWKS_URL", "")
	if jwksURL == "" {
		return nil, nil
	}

	conf := &AuthorizerConfig{
		JwksURL:       jwksURL,
		RequiredScope: getEnv("OPERATOR_SCOPE", ""),
	}
	if err := validateConfig("authorizer", conf); err != nil {
		return nil, err
	}
	return conf, nil
}
