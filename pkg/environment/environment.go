package environment

import (
	"errors"
	"fmt"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// ErrUnknownEnvironment is returned by Parse for values that name no environment.
var ErrUnknownEnvironment = errors.New("environment.errors.unknown_environment")

// Parse maps a configuration value to an Environment.
// Matching is case-insensitive and surrounding whitespace is ignored.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Development), "dev":
		return Development, nil
	case string(Staging), "stage":
		return Staging, nil
	case string(Production), "prod":
		return Production, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
	}
}

func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsStaging() bool     { return e == Staging }
func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) String() string { return string(e) }
