package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

const auditCollection = "audit_log"

// AuditRepository persists the global trail; ObjectID insertion order doubles
// as the log order.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
	User      string             `bson:"user"`
	Role      string             `bson:"role"`
	Action    string             `bson:"action"`
	Details   string             `bson:"details"`
}

func (r *AuditRepository) Append(ctx context.Context, entry domain.AuditEntry) error {
	doc := mongoAuditEntry{
		Timestamp: entry.Timestamp.UTC(),
		User:      entry.AccountID,
		Role:      string(entry.Role),
		Action:    entry.Action,
		Details:   entry.Details,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context) ([]domain.AuditEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAuditEntry
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode audit entries: %w", err)
	}

	entries := make([]domain.AuditEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, domain.AuditEntry{
			Timestamp: doc.Timestamp.UTC(),
			AccountID: doc.User,
			Role:      domain.Role(doc.Role),
			Action:    doc.Action,
			Details:   doc.Details,
		})
	}
	return entries, nil
}
