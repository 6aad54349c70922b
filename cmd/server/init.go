package main

import (
	"context"

	"github.com/sirupsen/logrus"

	customermodels "gotask_backend/internal/api/customer/models"
	franchisemodels "gotask_backend/internal/api/franchise/models"
	orgmodels "gotask_backend/internal/api/org/models"
	requestmodels "gotask_backend/internal/api/request/models"
	vendormodels "gotask_backend/internal/api/vendors/models"
	"gotask_backend/config"
	"gotask_backend/internal/database"
	"gotask_backend/internal/global"
)

// InitGlobal fills the process-wide state in dependency order.
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

func initColNames() {
	global.MongoDB_ColNames.Customers = "aaacustomers"
	global.MongoDB_ColNames.Users = "aaausers"
	global.MongoDB_ColNames.Franchises = "franchises"
	global.MongoDB_ColNames.Vendors = "vendors"
	global.MongoDB_ColNames.Requests = "requests"
	global.MongoDB_ColNames.Departments = "aaadepartments"
	global.MongoDB_ColNames.Designations = "designations"

	logrus.Info("Initialized collection names")
}

func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	ctx := context.TODO()
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Customers), customermodels.AAACustomer{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Users), customermodels.AAAUser{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Franchises), franchisemodels.Franchise{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Vendors), vendormodels.Vendor{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Requests), requestmodels.ServiceRequest{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Departments), orgmodels.Department{})
	database.CreateIndexes(ctx, db.Collection(global.MongoDB_ColNames.Designations), orgmodels.Designation{})

	if err := database.CreateDashboardIndexes(ctx, db); err != nil {
		logrus.Warnf("Failed to create dashboard indexes: %v", err)
	}
}
