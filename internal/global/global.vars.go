// Package global holds process-wide shared state: server config, the
// MongoDB session, collection names and the collection registry.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"gotask_backend/config"
	"gotask_backend/internal/registry"
)

// MongoDB_CollectionName groups the collection names used by the app.
type MongoDB_CollectionName struct {
	Customers    string // customer accounts
	Users        string // staff users
	Franchises   string
	Vendors      string
	Requests     string // service requests
	Departments  string
	Designations string
}

var (
	// Validate is the shared validator instance, set up by InitValidator.
	Validate *validator.Validate

	// MongoDB_Session is the shared database client.
	MongoDB_Session *mongo.Client

	// ServerConfig is the parsed startup configuration.
	ServerConfig *config.Configuration

	// MongoDB_ColNames holds the collection names, filled at startup.
	MongoDB_ColNames MongoDB_CollectionName

	// RegistryCollections maps collection names to live collection handles.
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)
