// Package database - compound indexes serving the dashboard aggregations,
// which cannot be expressed through model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gotask_backend/internal/global"
)

// CreateDashboardIndexes builds the indexes the dashboard and filter
// pipelines match on. Call after CreateIndexes for the base collections.
func CreateDashboardIndexes(ctx context.Context, db *mongo.Database) error {
	// requests: (AssignedFranchiseId, Date) for franchise area breakdowns
	requests := db.Collection(global.MongoDB_ColNames.Requests)
	if _, err := requests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "AssignedFranchiseId", Value: 1},
			{Key: "Date", Value: 1},
		},
		Options: options.Index().SetName("request_franchise_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// requests: (Date, CategoryName) for category breakdowns over a window
	if _, err := requests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "Date", Value: 1},
			{Key: "CategoryName", Value: 1},
		},
		Options: options.Index().SetName("request_date_category"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// requests: (AssignedFranchiseStateID, AssignedFranchiseDistrictID,
	// AssignedFranchiseId) for territory-scoped breakdowns
	if _, err := requests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "AssignedFranchiseStateID", Value: 1},
			{Key: "AssignedFranchiseDistrictID", Value: 1},
			{Key: "AssignedFranchiseId", Value: 1},
		},
		Options: options.Index().SetName("request_territory"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// franchises: (StateID, DistrictID) for the district franchiser dropdown
	franchises := db.Collection(global.MongoDB_ColNames.Franchises)
	if _, err := franchises.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "StateID", Value: 1},
			{Key: "DistrictID", Value: 1},
		},
		Options: options.Index().SetName("franchise_state_district"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// users: (DepartmenID, DesignationName) for staff by-department listings
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "DepartmenID", Value: 1},
			{Key: "DesignationName", Value: 1},
		},
		Options: options.Index().SetName("user_department_designation"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

// isIndexExistsError reports whether the error means an equivalent index
// already exists.
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "IndexOptionsConflict") ||
		strings.Contains(msg, "IndexKeySpecsConflict") ||
		strings.Contains(msg, "already exists")
}
