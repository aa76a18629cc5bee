package mongo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seerahverse/account-dashboard/internal/core/domain"
)

const budgetsCollection = "budgets"

type BudgetRepository struct {
	coll *mongo.Collection
}

func NewBudgetRepository(db *mongo.Database) *BudgetRepository {
	return &BudgetRepository{coll: db.Collection(budgetsCollection)}
}

type mongoBudget struct {
	AccountID     string            `bson:"_id"`
	MonthlyBudget string            `bson:"monthly_budget"`
	Categories    map[string]string `bson:"categories"`
}

func (r *BudgetRepository) Get(ctx context.Context, accountID string) (*domain.Budget, error) {
	var doc mongoBudget
	if err := r.coll.FindOne(ctx, bson.M{"_id": accountID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, fmt.Errorf("find budget: %w", err)
	}

	monthly, err := decimal.NewFromString(doc.MonthlyBudget)
	if err != nil {
		return nil, fmt.Errorf("parse monthly budget: %w", err)
	}
	categories := make(map[domain.Category]decimal.Decimal, len(doc.Categories))
	for name, raw := range doc.Categories {
		limit, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("parse category limit %q: %w", name, err)
		}
		categories[domain.Category(name)] = limit
	}
	return &domain.Budget{
		AccountID:     doc.AccountID,
		MonthlyBudget: monthly,
		Categories:    categories,
	}, nil
}

func (r *BudgetRepository) Put(ctx context.Context, budget domain.Budget) error {
	categories := make(map[string]string, len(budget.Categories))
	for name, limit := range budget.Categories {
		categories[string(name)] = limit.String()
	}
	doc := mongoBudget{
		AccountID:     budget.AccountID,
		MonthlyBudget: budget.MonthlyBudget.String(),
		Categories:    categories,
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": budget.AccountID}, doc, opts); err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	return nil
}
