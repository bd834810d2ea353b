package cmd

import (
	"github.com/aymanalhattami/deepseek-go-client/deepseek"
	"github.com/aymanalhattami/deepseek-go-client/internal/config"
)

// newClient builds a library client from the CLI configuration.
func newClient(cfg *config.Config) (*deepseek.Client, error) {
	token, err := cfg.GetToken()
	if err != nil {
		return nil, err
	}

	return deepseek.NewBuilder().
		SetKey(token).
		SetBaseURL(cfg.GetBaseURL()).
		SetTimeout(cfg.Timeout()).
		Build()
}
