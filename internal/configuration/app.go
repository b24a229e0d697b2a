package configuration

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// ServiceAccountPath is read exactly once at startup. The process refuses to
// start without a parseable credential file.
const ServiceAccountPath = "./serviceAccountKey.json"

const defaultPort = "5000"

type AppConfig struct {
	port           string
	openAiToken    string
	storageBucket  string
	serviceAccount *ServiceAccount
}

// ServiceAccount holds the fields of the credential file this service cares
// about; the full JSON is handed to the Firebase SDK untouched.
type ServiceAccount struct {
	Type        string `json:"type"`
	ProjectId   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

func Load() (*AppConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	data, err := os.ReadFile(ServiceAccountPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading service account file")
	}
	serviceAccount := &ServiceAccount{}
	if err := json.Unmarshal(data, serviceAccount); err != nil {
		return nil, errors.Wrap(err, "parsing service account file")
	}

	return &AppConfig{
		port:           port,
		openAiToken:    os.Getenv("OPENAI_API_KEY"),
		storageBucket:  os.Getenv("FIREBASE_STORAGE_BUCKET"),
		serviceAccount: serviceAccount,
	}, nil
}

func (s *AppConfig) GetPort() string {
	return s.port
}

func (s *AppConfig) GetOpenAiToken() string {
	return s.openAiToken
}

func (s *AppConfig) GetStorageBucket() string {
	return s.storageBucket
}

func (s *AppConfig) GetServiceAccount() *ServiceAccount {
	return s.serviceAccount
}

func (s *AppConfig) GetProjectId() string {
	return s.serviceAccount.ProjectId
}
