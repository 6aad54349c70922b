// Package reportsvc - aggregation pipelines behind the admin dashboards.
package reportsvc

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	models "gotask_backend/internal/api/report/models"
	reqmodels "gotask_backend/internal/api/request/models"
	"gotask_backend/internal/common"
	"gotask_backend/internal/global"
)

// DashboardService aggregates metrics across the customer, vendor,
// franchise and request collections.
type DashboardService struct {
	customers  *mongo.Collection
	vendors    *mongo.Collection
	franchises *mongo.Collection
	requests   *mongo.Collection
}

// NewDashboardService resolves the collections it reads from the registry.
func NewDashboardService() (*DashboardService, error) {
	names := []string{
		global.MongoDB_ColNames.Customers,
		global.MongoDB_ColNames.Vendors,
		global.MongoDB_ColNames.Franchises,
		global.MongoDB_ColNames.Requests,
	}
	collections := make([]*mongo.Collection, len(names))
	for i, name := range names {
		col, exist := global.RegistryCollections.Get(name)
		if !exist {
			return nil, fmt.Errorf("failed to get %s collection: %v", name, common.ErrNotFound)
		}
		collections[i] = col
	}
	return &DashboardService{
		customers:  collections[0],
		vendors:    collections[1],
		franchises: collections[2],
		requests:   collections[3],
	}, nil
}

type countRow struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}

type revenueRow struct {
	ID          string  `bson:"_id"`
	Count       int64   `bson:"count"`
	TotalIncome float64 `bson:"Totalincome"`
}

// countGroup closes a pipeline with a labeled count group.
func countGroup(label string) bson.D {
	return bson.D{{Key: "$group", Value: bson.M{
		"_id":   label,
		"count": bson.M{"$sum": 1},
	}}}
}

func (s *DashboardService) runCountCard(ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline, defaultLabel string) (models.Metric, error) {
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return models.Metric{}, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []countRow
	if err := cursor.All(ctx, &rows); err != nil {
		return models.Metric{}, common.ConvertMongoError(err)
	}
	if len(rows) > 0 {
		return models.Metric{Label: rows[0].ID, Value: rows[0].Count}, nil
	}
	return models.Metric{Label: defaultLabel, Value: 0}, nil
}

func (s *DashboardService) runRevenueCard(ctx context.Context, pipeline mongo.Pipeline, defaultLabel string) (models.RevenueMetric, error) {
	cursor, err := s.requests.Aggregate(ctx, pipeline)
	if err != nil {
		return models.RevenueMetric{}, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []revenueRow
	if err := cursor.All(ctx, &rows); err != nil {
		return models.RevenueMetric{}, common.ConvertMongoError(err)
	}
	if len(rows) > 0 {
		return models.RevenueMetric{Label: rows[0].ID, Value1: rows[0].Count, Value2: rows[0].TotalIncome}, nil
	}
	return models.RevenueMetric{Label: defaultLabel, Value1: 0, Value2: 0}, nil
}

type dashboardCard struct {
	collection   *mongo.Collection
	pipeline     mongo.Pipeline
	defaultLabel string
}

// DashboardCards computes the ten admin overview cards concurrently.
// The failed-request card keeps its historical default label, which
// differs from the label the pipeline itself produces.
func (s *DashboardService) DashboardCards(ctx context.Context) ([]models.Metric, error) {
	window := todayRange(timeNow())

	todayMatch := bson.M{"$gte": window.Start, "$lt": window.End}
	cards := []dashboardCard{
		{s.customers, mongo.Pipeline{countGroup("Total Users")}, "Total Users"},
		{s.customers, mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{"isProfileUpdated": true}}},
			countGroup("Total Profile Updated Users"),
		}, "Total Profile Updated Users"},
		{s.customers, mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{"isProfileUpdated": false}}},
			countGroup("Total Profile Not Updated Users"),
		}, "Total Profile Not Updated Users"},
		{s.vendors, mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{"CategoryName": reqmodels.CategoryCarWash}}},
			countGroup("Total Car wash Vendors"),
		}, "Total Car wash Vendors"},
		{s.vendors, mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{"CategoryName": reqmodels.CategoryTowing}}},
			countGroup("Total Towing Vendors"),
		}, "Total Towing Vendors"},
		{s.franchises, mongo.Pipeline{
			bson.D{{Key: "$unwind", Value: "$EmployeeData"}},
			bson.D{{Key: "$match", Value: bson.M{"EmployeeData.JobRoleName": "Permanent"}}},
			countGroup("Total Permanent Employees"),
		}, "Total Permanent Employees"},
		{s.franchises, mongo.Pipeline{
			bson.D{{Key: "$unwind", Value: "$EmployeeData"}},
			bson.D{{Key: "$match", Value: bson.M{"EmployeeData.JobRoleName": "Contract Based"}}},
			countGroup("Total Contract Based Employees"),
		}, "Total Contract Based Employees"},
		{s.requests, mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{
				"PaymentStatus": reqmodels.PaymentStatusSuccess,
				"Date":          todayMatch,
			}}},
			countGroup("Total Request For Today"),
		}, "Total Request For Today"},
		{s.requests, mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{
				"PaymentStatus": reqmodels.PaymentStatusFailed,
				"Date":          todayMatch,
			}}},
			countGroup("Total Request Failed For Today"),
		}, "Total Failed Request For Today"},
		{s.franchises, mongo.Pipeline{countGroup("Total Franchise")}, "Total Franchise"},
	}

	metrics := make([]models.Metric, len(cards))
	errs := make([]error, len(cards))
	var wg sync.WaitGroup
	for i, card := range cards {
		wg.Add(1)
		go func(i int, card dashboardCard) {
			defer wg.Done()
			metrics[i], errs[i] = s.runCountCard(ctx, card.collection, card.pipeline, card.defaultLabel)
		}(i, card)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return metrics, nil
}

type revenueCard struct {
	pipeline     mongo.Pipeline
	defaultLabel string
}

// RevenueMetrics computes the six revenue cards concurrently. The whole-
// request cards sum Price; the per-category cards unwind Services and sum
// the line item prices.
func (s *DashboardService) RevenueMetrics(ctx context.Context) ([]models.RevenueMetric, error) {
	window := todayRange(timeNow())
	todayMatch := bson.M{"$gte": window.Start, "$lt": window.End}

	revenueGroup := func(label, priceField string) bson.D {
		return bson.D{{Key: "$group", Value: bson.M{
			"_id":         label,
			"count":       bson.M{"$sum": 1},
			"Totalincome": bson.M{"$sum": priceField},
		}}}
	}
	categoryPipeline := func(label, category string, todayOnly bool) mongo.Pipeline {
		match := bson.M{
			"CategoryName":  category,
			"PaymentStatus": reqmodels.PaymentStatusSuccess,
		}
		if todayOnly {
			match["Date"] = todayMatch
		}
		return mongo.Pipeline{
			bson.D{{Key: "$unwind", Value: "$Services"}},
			bson.D{{Key: "$match", Value: match}},
			revenueGroup(label, "$Services.Price"),
		}
	}

	cards := []revenueCard{
		{mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{
				"PaymentStatus": reqmodels.PaymentStatusSuccess,
				"Date":          todayMatch,
			}}},
			revenueGroup("Today Request", "$Price"),
		}, "Today Request"},
		{mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{"PaymentStatus": reqmodels.PaymentStatusSuccess}}},
			revenueGroup("Overall Request", "$Price"),
		}, "Overall Request"},
		{categoryPipeline("Today Carwash Payments", reqmodels.CategoryCarWash, true), "Today Carwash Payments"},
		{categoryPipeline("Total Carwash Payments", reqmodels.CategoryCarWash, false), "Total Carwash Payments"},
		{categoryPipeline("Today Towing Payments", reqmodels.CategoryTowing, true), "Today Towing Payments"},
		{categoryPipeline("Total Towing Payments", reqmodels.CategoryTowing, false), "Total Towing Payments"},
	}

	metrics := make([]models.RevenueMetric, len(cards))
	errs := make([]error, len(cards))
	var wg sync.WaitGroup
	for i, card := range cards {
		wg.Add(1)
		go func(i int, card revenueCard) {
			defer wg.Done()
			metrics[i], errs[i] = s.runRevenueCard(ctx, card.pipeline, card.defaultLabel)
		}(i, card)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return metrics, nil
}

// RevenueByVendor breaks today's car wash revenue down per vendor. The
// grouping key is the stored VenodrName field; the response keeps the
// readable "Vendor Name" key.
func (s *DashboardService) RevenueByVendor(ctx context.Context) ([]models.RevenueMetric, error) {
	window := todayRange(timeNow())

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$Services"}},
		bson.D{{Key: "$match", Value: bson.M{
			"CategoryName":  reqmodels.CategoryCarWash,
			"PaymentStatus": reqmodels.PaymentStatusSuccess,
			"Date":          bson.M{"$gte": window.Start, "$lt": window.End},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         bson.M{"Vendor Name": "$VenodrName"},
			"count":       bson.M{"$sum": 1},
			"Totalincome": bson.M{"$sum": "$Services.Price"},
		}}},
	}

	cursor, err := s.requests.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			VendorName string `bson:"Vendor Name"`
		} `bson:"_id"`
		Count       int64   `bson:"count"`
		TotalIncome float64 `bson:"Totalincome"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	metrics := make([]models.RevenueMetric, 0, len(rows))
	for _, row := range rows {
		metrics = append(metrics, models.RevenueMetric{
			Label:  fmt.Sprintf("Vendor: %s", row.ID.VendorName),
			Value1: row.Count,
			Value2: row.TotalIncome,
		})
	}
	return metrics, nil
}

type ticketCard struct {
	match       bson.M
	label       string
	filter      string
	defaultType string
}

// TicketMetrics computes the five per-person ticket cards concurrently.
func (s *DashboardService) TicketMetrics(ctx context.Context, assignedPersonID string) ([]models.TicketMetric, error) {
	cards := []ticketCard{
		{
			match:       bson.M{"TicketStatus.AssignedPersonID": assignedPersonID},
			label:       "All Tickets",
			filter:      models.FilterAllTickets,
			defaultType: "All Tickets",
		},
		{
			match: bson.M{"$and": bson.A{
				bson.M{"RaiseComplaint.AssignedPersonID": assignedPersonID},
				bson.M{"RaiseComplaint.Status": reqmodels.TicketStatusOpen},
			}},
			label:       "Open Tickets",
			filter:      models.FilterOpen,
			defaultType: "Open Tickets",
		},
		{
			match: bson.M{"$and": bson.A{
				bson.M{"RaiseComplaint.AssignedPersonID": assignedPersonID},
				bson.M{"RaiseComplaint.Status": reqmodels.TicketStatusWaitingForApproval},
			}},
			label:       "Waiting For An Approval",
			filter:      models.FilterWaitingForApproval,
			defaultType: "Waiting For An Approval",
		},
		{
			match: bson.M{"$and": bson.A{
				bson.M{"TicketStatus.AssignedPersonID": assignedPersonID},
				bson.M{"RaiseComplaint.Status": reqmodels.TicketStatusClosed},
			}},
			label:       "Closed Tickets",
			filter:      models.FilterClosed,
			defaultType: "Closed Tickets",
		},
		{
			match: bson.M{"$and": bson.A{
				bson.M{"TicketStatus.AssignedPersonID": assignedPersonID},
				bson.M{"RaiseComplaint.Status": reqmodels.TicketStatusRefundApprovals},
			}},
			label:       "Refund Approvals",
			filter:      models.FilterRefundApproval,
			defaultType: "Refund Approvals",
		},
	}

	metrics := make([]models.TicketMetric, len(cards))
	errs := make([]error, len(cards))
	var wg sync.WaitGroup
	for i, card := range cards {
		wg.Add(1)
		go func(i int, card ticketCard) {
			defer wg.Done()
			pipeline := mongo.Pipeline{
				bson.D{{Key: "$match", Value: card.match}},
				countGroup(card.label),
			}
			metric, err := s.runCountCard(ctx, s.requests, pipeline, card.defaultType)
			if err != nil {
				errs[i] = err
				return
			}
			metrics[i] = models.TicketMetric{Type: metric.Label, Count: metric.Value, Filter: card.filter}
		}(i, card)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return metrics, nil
}

// TicketsByStatus groups a person's tickets by complaint status and by
// which assignment path matched.
func (s *DashboardService) TicketsByStatus(ctx context.Context, assignedPersonID string) ([]models.TicketMetric, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"TicketStatus.AssignedPersonID": assignedPersonID},
			bson.M{"RaiseComplaint.AssignedPersonID": assignedPersonID},
		}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"status": "$RaiseComplaint.Status",
				"assignedVia": bson.M{"$cond": bson.M{
					"if":   bson.M{"$ne": bson.A{"$TicketStatus.AssignedPersonID", nil}},
					"then": "TicketStatus",
					"else": "RaiseComplaint",
				}},
			},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id.status", Value: 1}}}},
	}

	cursor, err := s.requests.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			Status      string `bson:"status"`
			AssignedVia string `bson:"assignedVia"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	metrics := make([]models.TicketMetric, 0, len(rows))
	for _, row := range rows {
		filter := "unknown"
		if row.ID.Status != "" {
			filter = strings.ReplaceAll(strings.ToLower(row.ID.Status), " ", "_")
		}
		metrics = append(metrics, models.TicketMetric{
			Type:   fmt.Sprintf("%s (via %s)", row.ID.Status, row.ID.AssignedVia),
			Count:  row.Count,
			Filter: filter,
		})
	}
	return metrics, nil
}
