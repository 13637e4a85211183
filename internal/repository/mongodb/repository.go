package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hardwin/shopfloor/internal/domain/models"
)

// ErrNotFound is returned when a worksheet id does not exist in the store.
var ErrNotFound = errors.New("worksheet not found")

// ListFilter narrows a worksheet listing. FactoryID is a plain equality
// filter; FromDate/ToDate are inclusive YYYY-MM-DD bounds and may be empty.
type ListFilter struct {
	FactoryID string
	FromDate  string
	ToDate    string
}

// Repository defines the interface for worksheet storage.
type Repository interface {
	ListWorksheets(ctx context.Context, filter ListFilter) ([]models.Worksheet, error)
	GetWorksheet(ctx context.Context, id string) (models.Worksheet, error)
	CreateWorksheet(ctx context.Context, ws models.Worksheet) error
	UpdateWorksheet(ctx context.Context, ws models.Worksheet) error
	DeleteWorksheet(ctx context.Context, id string) error
	ListFactoryIDs(ctx context.Context) ([]string, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "worksheets",
	}, nil
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// ListWorksheets returns worksheets matching the filter, ordered by production
// date then creation time so derived metrics see a stable input order.
func (r *MongoDBRepository) ListWorksheets(ctx context.Context, filter ListFilter) ([]models.Worksheet, error) {
	query := bson.M{}
	if filter.FactoryID != "" {
		query["factory_id"] = filter.FactoryID
	}

	dateRange := bson.M{}
	if filter.FromDate != "" {
		dateRange["$gte"] = filter.FromDate
	}
	if filter.ToDate != "" {
		dateRange["$lte"] = filter.ToDate
	}
	if len(dateRange) > 0 {
		query["production_date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "production_date", Value: 1}, {Key: "created_at", Value: 1}})

	cursor, err := r.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list worksheets: %w", err)
	}
	defer cursor.Close(ctx)

	worksheets := []models.Worksheet{}
	if err := cursor.All(ctx, &worksheets); err != nil {
		return nil, fmt.Errorf("failed to decode worksheets: %w", err)
	}
	return worksheets, nil
}

// GetWorksheet fetches a single worksheet by id.
func (r *MongoDBRepository) GetWorksheet(ctx context.Context, id string) (models.Worksheet, error) {
	var ws models.Worksheet
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&ws)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Worksheet{}, ErrNotFound
	}
	if err != nil {
		return models.Worksheet{}, fmt.Errorf("failed to fetch worksheet %s: %w", id, err)
	}
	return ws, nil
}

// CreateWorksheet inserts a new worksheet document.
func (r *MongoDBRepository) CreateWorksheet(ctx context.Context, ws models.Worksheet) error {
	if _, err := r.collection().InsertOne(ctx, ws); err != nil {
		return fmt.Errorf("failed to insert worksheet: %w", err)
	}
	return nil
}

// UpdateWorksheet replaces an existing worksheet document.
func (r *MongoDBRepository) UpdateWorksheet(ctx context.Context, ws models.Worksheet) error {
	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": ws.ID}, ws)
	if err != nil {
		return fmt.Errorf("failed to update worksheet %s: %w", ws.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWorksheet removes a worksheet document by id.
func (r *MongoDBRepository) DeleteWorksheet(ctx context.Context, id string) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete worksheet %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFactoryIDs returns the distinct factory ids present in the store. The
// digest job iterates over these.
func (r *MongoDBRepository) ListFactoryIDs(ctx context.Context) ([]string, error) {
	values, err := r.collection().Distinct(ctx, "factory_id", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list factory ids: %w", err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
