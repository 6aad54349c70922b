// Package filterssvc - paged aggregation pipelines behind the filter
// dashboard endpoints. Every endpoint runs a count pipeline and a data
// pipeline concurrently and folds the pair into one paged result.
package filterssvc

import (
	"context"
	"fmt"
	"math"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	filtersdto "gotask_backend/internal/api/filters/dto"
	reportsvc "gotask_backend/internal/api/report/service"
	"gotask_backend/internal/common"
	"gotask_backend/internal/global"
	"gotask_backend/internal/utility"
)

// FiltersService aggregates over the request, franchise, department and
// designation collections.
type FiltersService struct {
	requests     *mongo.Collection
	franchises   *mongo.Collection
	departments  *mongo.Collection
	designations *mongo.Collection
}

// NewFiltersService resolves the collections it reads from the registry.
func NewFiltersService() (*FiltersService, error) {
	names := []string{
		global.MongoDB_ColNames.Requests,
		global.MongoDB_ColNames.Franchises,
		global.MongoDB_ColNames.Departments,
		global.MongoDB_ColNames.Designations,
	}
	collections := make([]*mongo.Collection, len(names))
	for i, name := range names {
		col, exist := global.RegistryCollections.Get(name)
		if !exist {
			return nil, fmt.Errorf("failed to get %s collection: %v", name, common.ErrNotFound)
		}
		collections[i] = col
	}
	return &FiltersService{
		requests:     collections[0],
		franchises:   collections[1],
		departments:  collections[2],
		designations: collections[3],
	}, nil
}

// PagedResult is the joined output of a count/data pipeline pair.
type PagedResult struct {
	Rows        []bson.M
	CurrentPage int64
	TotalPages  int64
}

func matchStage(condition bson.M) bson.D {
	return bson.D{{Key: "$match", Value: condition}}
}

func groupCountStage(field string) bson.D {
	return bson.D{{Key: "$group", Value: bson.M{
		"_id":   field,
		"count": bson.M{"$sum": 1},
	}}}
}

func countStage(name string) bson.D {
	return bson.D{{Key: "$count", Value: name}}
}

func sortStage(key string, direction int) bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{{Key: key, Value: direction}}}}
}

func pageStages(page, limit int64) []bson.D {
	return []bson.D{
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
	}
}

// counterValue pulls the named counter out of the count pipeline's single
// row; a missing row means an empty dataset.
func counterValue(rows []bson.M, name string) int64 {
	if len(rows) == 0 {
		return 0
	}
	switch v := rows[0][name].(type) {
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func (s *FiltersService) aggregate(ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline) ([]bson.M, error) {
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return rows, nil
}

// runPaged executes the count and data pipelines concurrently and joins
// them into one result. totalPages stays 0 for an empty dataset.
func (s *FiltersService) runPaged(ctx context.Context, col *mongo.Collection, countPipeline, dataPipeline mongo.Pipeline, counterName string, page, limit int64) (PagedResult, error) {
	var (
		wg        sync.WaitGroup
		countRows []bson.M
		dataRows  []bson.M
		countErr  error
		dataErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		countRows, countErr = s.aggregate(ctx, col, countPipeline)
	}()
	go func() {
		defer wg.Done()
		dataRows, dataErr = s.aggregate(ctx, col, dataPipeline)
	}()
	wg.Wait()

	if countErr != nil {
		return PagedResult{}, countErr
	}
	if dataErr != nil {
		return PagedResult{}, dataErr
	}
	if dataRows == nil {
		dataRows = []bson.M{}
	}

	totalCount := counterValue(countRows, counterName)
	return PagedResult{
		Rows:        dataRows,
		CurrentPage: page,
		TotalPages:  int64(math.Ceil(float64(totalCount) / float64(limit))),
	}, nil
}

// groupedPipelines builds the standard count/data pair: match, group with
// a per-group count, then count the groups (count side) or sort the
// groups descending and page them (data side).
func groupedPipelines(condition bson.M, groupField, counterName string, page, limit int64) (mongo.Pipeline, mongo.Pipeline) {
	countPipeline := mongo.Pipeline{
		matchStage(condition),
		groupCountStage(groupField),
		countStage(counterName),
	}
	dataPipeline := mongo.Pipeline{
		matchStage(condition),
		groupCountStage(groupField),
		sortStage("count", -1),
	}
	dataPipeline = append(dataPipeline, pageStages(page, limit)...)
	return countPipeline, dataPipeline
}

// lookupPipelines builds the pair for plain record lookups: the count side
// counts matching documents, the data side pages them unmodified.
func lookupPipelines(condition bson.M, counterName string, page, limit int64) (mongo.Pipeline, mongo.Pipeline) {
	countPipeline := mongo.Pipeline{
		matchStage(condition),
		countStage(counterName),
	}
	dataPipeline := mongo.Pipeline{matchStage(condition)}
	dataPipeline = append(dataPipeline, pageStages(page, limit)...)
	return countPipeline, dataPipeline
}

func parseDatePair(fromDate, toDate string) (bson.M, error) {
	start, okFrom := utility.ParseDate(fromDate)
	end, okTo := utility.ParseDate(toDate)
	if !okFrom || !okTo {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Invalid date format", common.StatusBadRequest, nil)
	}
	return bson.M{"$gte": start, "$lte": end}, nil
}

// DashboardByArea groups a franchise's requests in the date window by
// assigned area.
func (s *FiltersService) DashboardByArea(ctx context.Context, in filtersdto.DashboardInput, page, limit int64) (PagedResult, error) {
	window, err := reportsvc.ResolveDateRange(in.FromDate, in.ToDate)
	if err != nil {
		return PagedResult{}, err
	}
	condition := bson.M{
		"AssignedFranchiseId": in.AssignedFranchiseId,
		"Date":                bson.M{"$gte": window.Start, "$lte": window.End},
	}
	countPipeline, dataPipeline := groupedPipelines(condition, "$AssignedFranchiseArea", "totalAreas", page, limit)
	return s.runPaged(ctx, s.requests, countPipeline, dataPipeline, "totalAreas", page, limit)
}

// AreaRequests groups a territory's requests by assigned area.
func (s *FiltersService) AreaRequests(ctx context.Context, in filtersdto.AreaRequestsInput, page, limit int64) (PagedResult, error) {
	condition := bson.M{"$and": bson.A{
		bson.M{"AssignedFranchiseStateID": in.AssignedFranchiseStateID},
		bson.M{"AssignedFranchiseDistrictID": in.AssignedFranchiseDistrictID},
		bson.M{"AssignedFranchiseId": in.AssignedFranchiseId},
	}}
	countPipeline, dataPipeline := groupedPipelines(condition, "$AssignedFranchiseArea", "totalAreas", page, limit)
	return s.runPaged(ctx, s.requests, countPipeline, dataPipeline, "totalAreas", page, limit)
}

// CategoryWise groups the date window's requests by category.
func (s *FiltersService) CategoryWise(ctx context.Context, in filtersdto.CategoryWiseInput, page, limit int64) (PagedResult, error) {
	dateRange, err := parseDatePair(in.FromDate, in.ToDate)
	if err != nil {
		return PagedResult{}, err
	}
	condition := bson.M{"Date": dateRange}
	countPipeline, dataPipeline := groupedPipelines(condition, "$CategoryName", "totalCategories", page, limit)
	return s.runPaged(ctx, s.requests, countPipeline, dataPipeline, "totalCategories", page, limit)
}

// FranchiseComplaints groups a franchise's raised complaints in the date
// window by category.
func (s *FiltersService) FranchiseComplaints(ctx context.Context, in filtersdto.FranchiseComplaintsInput, page, limit int64) (PagedResult, error) {
	dateRange, err := parseDatePair(in.FromDate, in.ToDate)
	if err != nil {
		return PagedResult{}, err
	}
	condition := bson.M{"$and": bson.A{
		bson.M{"RaisedComplaint": true},
		bson.M{
			"AssignedFranchiseId": in.AssignedFranchiseId,
			"Date":                dateRange,
		},
	}}
	countPipeline, dataPipeline := groupedPipelines(condition, "$CategoryName", "totalCategories", page, limit)
	return s.runPaged(ctx, s.requests, countPipeline, dataPipeline, "totalCategories", page, limit)
}

// FranchiseCountByDistrict groups a state's franchises by district.
func (s *FiltersService) FranchiseCountByDistrict(ctx context.Context, in filtersdto.FranchiseCountInput, page, limit int64) (PagedResult, error) {
	condition := bson.M{"State": in.State}
	countPipeline, dataPipeline := groupedPipelines(condition, "$District", "totalDistricts", page, limit)
	return s.runPaged(ctx, s.franchises, countPipeline, dataPipeline, "totalDistricts", page, limit)
}

// DistrictFranchisers lists a district's franchise owners by name.
func (s *FiltersService) DistrictFranchisers(ctx context.Context, in filtersdto.DistrictFranchisersInput, page, limit int64) (PagedResult, error) {
	condition := bson.M{"$and": bson.A{
		bson.M{"StateID": in.AssignedFranchiseStateID},
		bson.M{"DistrictID": in.AssignedFranchiseDistrictID},
	}}
	countPipeline := mongo.Pipeline{
		matchStage(condition),
		countStage("totalFranchisers"),
	}
	dataPipeline := mongo.Pipeline{
		matchStage(condition),
		{{Key: "$project", Value: bson.M{"_id": 1, "FranchiseOwnerName": 1}}},
		sortStage("FranchiseOwnerName", 1),
	}
	dataPipeline = append(dataPipeline, pageStages(page, limit)...)
	return s.runPaged(ctx, s.franchises, countPipeline, dataPipeline, "totalFranchisers", page, limit)
}

// AreaComplaints totals a territory's raised complaints per area.
func (s *FiltersService) AreaComplaints(ctx context.Context, in filtersdto.AreaComplaintsInput, page, limit int64) (PagedResult, error) {
	condition := bson.M{"$and": bson.A{
		bson.M{"AssignedFranchiseId": in.AssignedFranchiseId},
		bson.M{"AssignedFranchiseStateID": in.AssignedFranchiseStateID},
		bson.M{"AssignedFranchiseDistrictID": in.AssignedFranchiseDistrictID},
		bson.M{"ComplaintRaised": true},
	}}
	group := bson.D{{Key: "$group", Value: bson.M{
		"_id":   bson.M{"AssignedFranchiseArea": "$AssignedFranchiseArea"},
		"Total": bson.M{"$sum": 1},
	}}}
	countPipeline := mongo.Pipeline{
		matchStage(condition),
		group,
		countStage("totalAreas"),
	}
	dataPipeline := mongo.Pipeline{
		matchStage(condition),
		group,
		sortStage("Total", -1),
	}
	dataPipeline = append(dataPipeline, pageStages(page, limit)...)
	return s.runPaged(ctx, s.requests, countPipeline, dataPipeline, "totalAreas", page, limit)
}

// DepartmentByID fetches one department record. The _id match keeps the
// raw string form the documents were written with.
func (s *FiltersService) DepartmentByID(ctx context.Context, in filtersdto.DepartmentByIDInput, page, limit int64) (PagedResult, error) {
	condition := bson.M{"$and": bson.A{bson.M{"_id": in.DepartmentID}}}
	countPipeline, dataPipeline := lookupPipelines(condition, "totalDepartments", page, limit)
	return s.runPaged(ctx, s.departments, countPipeline, dataPipeline, "totalDepartments", page, limit)
}

// DepartmentsByOrg lists an organization's departments.
func (s *FiltersService) DepartmentsByOrg(ctx context.Context, in filtersdto.DepartmentsByOrgInput, page, limit int64) (PagedResult, error) {
	condition := bson.M{"$and": bson.A{bson.M{"OrganizationID": in.OrganizationID}}}
	countPipeline, dataPipeline := lookupPipelines(condition, "totalDepartments", page, limit)
	return s.runPaged(ctx, s.departments, countPipeline, dataPipeline, "totalDepartments", page, limit)
}

// DesignationByID fetches one designation record.
func (s *FiltersService) DesignationByID(ctx context.Context, in filtersdto.DesignationByIDInput, page, limit int64) (PagedResult, error) {
	id, err := primitive.ObjectIDFromHex(in.DesignationID)
	if err != nil {
		return PagedResult{}, common.NewError(common.ErrCodeValidationFormat, "DesignationID must be a valid ObjectId", common.StatusBadRequest, nil)
	}
	condition := bson.M{"$and": bson.A{bson.M{"_id": id}}}
	countPipeline, dataPipeline := lookupPipelines(condition, "totalDesignations", page, limit)
	return s.runPaged(ctx, s.designations, countPipeline, dataPipeline, "totalDesignations", page, limit)
}

// DesignationsByDept lists a department's designations by name. The match
// uses the DepartmenID spelling the stored documents carry.
func (s *FiltersService) DesignationsByDept(ctx context.Context, in filtersdto.DesignationsByDeptInput, page, limit int64) (PagedResult, error) {
	condition := bson.M{"$and": bson.A{bson.M{"DepartmenID": in.DepartmentID}}}
	countPipeline := mongo.Pipeline{
		matchStage(condition),
		countStage("totalDesignations"),
	}
	dataPipeline := mongo.Pipeline{
		matchStage(condition),
		{{Key: "$project", Value: bson.M{"_id": 1, "DesignationName": 1}}},
		sortStage("DesignationName", 1),
	}
	dataPipeline = append(dataPipeline, pageStages(page, limit)...)
	return s.runPaged(ctx, s.designations, countPipeline, dataPipeline, "totalDesignations", page, limit)
}
