package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// Environment is the default deployment-environment label echoed into
	// reports when a request does not supply one.
	Environment string `mapstructure:"environment" default:"UAT"`
}

// Deployment-environment labels accepted for display.
const (
	EnvironmentDev  = "DEV"
	EnvironmentTest = "TEST"
	EnvironmentUAT  = "UAT"
	EnvironmentProd = "PROD"
)

// IsValidEnvironment checks whether a label is one of the known environments.
func IsValidEnvironment(env string) bool {
	switch env {
	case EnvironmentDev, EnvironmentTest, EnvironmentUAT, EnvironmentProd:
		return true
	default:
		return false
	}
}

// NormalizeEnvironment returns the label unchanged when it is known, and the
// UAT default otherwise. The label is display-only; the validation engine
// never interprets it.
func NormalizeEnvironment(env string) string {
	if IsValidEnvironment(env) {
		return env
	}
	return EnvironmentUAT
}
