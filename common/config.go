package common

type Config struct {
	// DeploymentID separates the signed requests of different deployments
	DeploymentID string `mapstructure:"DeploymentID"`
}
