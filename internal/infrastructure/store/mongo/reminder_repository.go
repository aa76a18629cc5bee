package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

const remindersCollection = "reminders"

type ReminderRepository struct {
	coll *mongo.Collection
}

func NewReminderRepository(db *mongo.Database) *ReminderRepository {
	return &ReminderRepository{coll: db.Collection(remindersCollection)}
}

type mongoReminder struct {
	ID        string    `bson:"_id"`
	AccountID string    `bson:"account_id"`
	Title     string    `bson:"title"`
	Amount    string    `bson:"amount"`
	DueDate   time.Time `bson:"due_date"`
	Frequency string    `bson:"frequency"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *ReminderRepository) Append(ctx context.Context, reminder *domain.Reminder) error {
	doc := mongoReminder{
		ID:        reminder.ID,
		AccountID: reminder.AccountID,
		Title:     reminder.Title,
		Amount:    reminder.Amount.String(),
		DueDate:   reminder.DueDate.UTC(),
		Frequency: string(reminder.Frequency),
		CreatedAt: reminder.CreatedAt.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

func (r *ReminderRepository) List(ctx context.Context, accountID string) ([]domain.Reminder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"account_id": accountID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find reminders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoReminder
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reminders: %w", err)
	}

	reminders := make([]domain.Reminder, 0, len(docs))
	for _, doc := range docs {
		amount, err := decimal.NewFromString(doc.Amount)
		if err != nil {
			return nil, fmt.Errorf("reminder %s: parse amount: %w", doc.ID, err)
		}
		reminders = append(reminders, domain.Reminder{
			ID:        doc.ID,
			AccountID: doc.AccountID,
			Title:     doc.Title,
			Amount:    amount,
			DueDate:   doc.DueDate.UTC(),
			Frequency: domain.Frequency(doc.Frequency),
			CreatedAt: doc.CreatedAt.UTC(),
		})
	}
	return reminders, nil
}
