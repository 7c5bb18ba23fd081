package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the authenticated caller identity into usecases.
// It is resolved once by the auth middleware and passed explicitly so domain
// code never reads ambient session state.
type Scope struct {
	UserID string
}
