// Package environment names the deployment environment a process runs in
// (development, staging or production) and parses it from configuration.
//
// The logger package uses these values to pick output defaults, and the
// notify command reads the environment from APP_ENV:
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//	    // unknown value
//	}
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
//
// Short aliases are accepted: "dev", "stage" and "prod". An empty string
// parses as Development.
package environment
