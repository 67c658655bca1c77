// Package secrets resolves database credentials from AWS Secrets Manager,
// falling back to the configured DSN when no secret ARN is set.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// dbSecret é o formato JSON padrão dos secrets de RDS.
type dbSecret struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DBName   string `json:"dbname"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// ResolveDatabaseURL returns fallbackDSN when secretARN is empty; otherwise
// it fetches the RDS secret and assembles a Postgres DSN from it.
func ResolveDatabaseURL(ctx context.Context, region, secretARN, fallbackDSN string) (string, error) {
	if secretARN == "" {
		return fallbackDSN, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	return resolveWithClient(ctx, secretsmanager.NewFromConfig(cfg), secretARN)
}

func resolveWithClient(ctx context.Context, client SecretsManagerClient, secretARN string) (string, error) {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretARN),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret value: %w", err)
	}

	var secret dbSecret
	if err := json.Unmarshal([]byte(aws.ToString(out.SecretString)), &secret); err != nil {
		return "", fmt.Errorf("failed to parse secret: %w", err)
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		url.QueryEscape(secret.Username),
		url.QueryEscape(secret.Password),
		secret.Host, secret.Port, secret.DBName,
	), nil
}
