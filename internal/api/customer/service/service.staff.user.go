package customersvc

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	customerdto "gotask_backend/internal/api/customer/dto"
	models "gotask_backend/internal/api/customer/models"
	basesvc "gotask_backend/internal/api/base/service"
	"gotask_backend/internal/common"
	"gotask_backend/internal/global"
	"gotask_backend/internal/utility"
)

const randomPasswordLength = 8

// StaffService handles staff account management on the aaausers collection.
type StaffService struct {
	*basesvc.BaseServiceMongoImpl[models.AAAUser]
}

// NewStaffService creates a StaffService bound to the users collection.
func NewStaffService() (*StaffService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &StaffService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AAAUser](collection),
	}, nil
}

// Login authenticates a staff member by email and password.
func (s *StaffService) Login(ctx context.Context, input *customerdto.LoginInput) (models.AAAUser, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"Email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.AAAUser{}, common.NewError(common.ErrCodeDatabaseQuery, "Email does not exist", common.StatusNotFound, nil)
		}
		return models.AAAUser{}, err
	}
	if !utility.ComparePassword(user.Password, input.Password) {
		return models.AAAUser{}, common.ErrInvalidCredentials
	}
	return user, nil
}

// SaveUser creates a staff account. When no password is supplied a random
// one is generated; either way only the bcrypt hash is stored.
func (s *StaffService) SaveUser(ctx context.Context, input *customerdto.SaveUserInput) (models.AAAUser, error) {
	rawPassword := input.Password
	if rawPassword == "" {
		rawPassword = utility.RandomPassword(randomPasswordLength)
	}
	hashed, err := utility.HashPassword(rawPassword)
	if err != nil {
		return models.AAAUser{}, common.NewError(common.ErrCodeInternalServer, "Failed to hash password", common.StatusInternalServerError, err)
	}

	user := models.AAAUser{
		FirstName:             input.FirstName,
		LastName:              input.LastName,
		PrimaryMobileNumber:   input.PrimaryMobileNumber,
		SecondaryMobileNumber: input.SecondaryMobileNumber,
		Gender:                input.Gender,
		Email:                 input.Email,
		Password:              hashed,
		AddressOne:            input.AddressOne,
		AddressTwo:            input.AddressTwo,
		City:                  input.City,
		State:                 input.State,
		District:              input.District,
		IsActive:              true,
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, user)
}

// BuildListFilter turns the list query into a Mongo filter. The free-text
// search is escaped so metacharacters match literally.
func BuildListFilter(query *customerdto.ListUsersQuery) bson.M {
	filter := bson.M{}

	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := regexp.QuoteMeta(search)
		regex := bson.M{"$regex": pattern, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"FirstName": regex},
			bson.M{"LastName": regex},
			bson.M{"Email": regex},
			bson.M{"PrimaryMobileNumber": regex},
			bson.M{"SecondaryMobileNumber": regex},
		}
	}

	if query.IsActive != nil {
		filter["isActive"] = *query.IsActive
	}
	if query.Gender != "" {
		filter["Gender"] = query.Gender
	}
	if query.RoleID != "" {
		filter["RoleID"] = query.RoleID
	}
	if query.City != "" {
		filter["City"] = query.City
	}
	if query.State != "" {
		filter["State"] = query.State
	}
	if query.District != "" {
		filter["District"] = query.District
	}

	createdAt := bson.M{}
	if from, ok := utility.ParseDate(query.From); ok {
		createdAt["$gte"] = from
	}
	if to, ok := utility.ParseDate(query.To); ok {
		createdAt["$lte"] = to
	}
	if len(createdAt) > 0 {
		filter["createdAt"] = createdAt
	}

	return filter
}

// BuildListProjection honours a comma-separated field list while always
// excluding the password hash. An inclusion projection cannot carry an
// exclusion, so a requested Password field is simply dropped.
func BuildListProjection(fields string) bson.M {
	selected := splitFields(fields)
	if len(selected) == 0 {
		return bson.M{"Password": 0}
	}
	projection := bson.M{}
	for _, f := range selected {
		if f == "Password" {
			continue
		}
		projection[f] = 1
	}
	if len(projection) == 0 {
		return bson.M{"Password": 0}
	}
	return projection
}

func splitFields(fields string) []string {
	parts := strings.Split(fields, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ListTotalPages floors the page count at 1 so an empty list still reports
// a single page.
func ListTotalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}

// ListUsers runs the filtered, sorted, projected page query together with
// a total count.
func (s *StaffService) ListUsers(ctx context.Context, query *customerdto.ListUsersQuery) ([]bson.M, int64, error) {
	filter := BuildListFilter(query)
	projection := BuildListProjection(query.Fields)

	sortOrder := -1
	if query.SortOrder == "asc" {
		sortOrder = 1
	}
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}

	skip := (query.Page - 1) * query.Limit
	opts := options.Find().
		SetProjection(projection).
		SetSort(bson.D{{Key: sortBy, Value: sortOrder}}).
		SetSkip(skip).
		SetLimit(query.Limit)

	cursor, err := s.Collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	items := make([]bson.M, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, common.ConvertMongoError(err)
	}

	total, err := s.Collection().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, common.ConvertMongoError(err)
	}
	return items, total, nil
}

// UsersByDepartment lists non-manager staff of a department. The stored
// query key keeps the historical spelling.
func (s *StaffService) UsersByDepartment(ctx context.Context, input *customerdto.UsersByDepartmentInput) ([]bson.M, int64, error) {
	filter := bson.M{
		"$and": bson.A{
			bson.M{"DepartmenID": input.DepartmenID},
			bson.M{"RoleName": "User"},
			bson.M{"DesignationName": bson.M{"$not": bson.M{"$regex": "Manager", "$options": "i"}}},
		},
	}
	projection := bson.M{
		"FirstName":           1,
		"LastName":            1,
		"Email":               1,
		"PrimaryMobileNumber": 1,
		"RoleName":            1,
	}

	skip := (input.Page - 1) * input.Limit
	opts := options.Find().SetProjection(projection).SetSkip(skip).SetLimit(input.Limit)

	cursor, err := s.Collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	users := make([]bson.M, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, common.ConvertMongoError(err)
	}

	total, err := s.Collection().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, common.ConvertMongoError(err)
	}
	return users, total, nil
}

// ManagersByDepartment lists the managers of a department. Without an
// explicit field list only the names are returned.
func (s *StaffService) ManagersByDepartment(ctx context.Context, input *customerdto.ManagersByDepartmentInput) ([]bson.M, error) {
	filter := bson.M{
		"DepartmenID":     input.DepartmenID,
		"DesignationName": "Manager",
	}

	projection := bson.M{"FirstName": 1, "LastName": 1}
	if selected := splitFields(input.Fields); len(selected) > 0 {
		projection = bson.M{}
		for _, f := range selected {
			if f == "Password" {
				continue
			}
			projection[f] = 1
		}
		if len(projection) == 0 {
			projection = bson.M{"FirstName": 1, "LastName": 1}
		}
	}

	cursor, err := s.Collection().Find(ctx, filter, options.Find().SetProjection(projection))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	managers := make([]bson.M, 0)
	if err := cursor.All(ctx, &managers); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return managers, nil
}

// DeleteUser removes a staff account by id after confirming it exists.
func (s *StaffService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.BaseServiceMongoImpl.FindOneById(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewError(common.ErrCodeDatabaseQuery, "User not found", common.StatusNotFound, nil)
		}
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// UpdateUser applies a partial update and returns the updated document.
func (s *StaffService) UpdateUser(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (models.AAAUser, error) {
	user, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.AAAUser{}, common.NewError(common.ErrCodeDatabaseQuery, "User not found", common.StatusNotFound, nil)
		}
		return models.AAAUser{}, err
	}
	return user, nil
}
