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

const (
	transactionsCollection = "transactions"
	balancesCollection     = "balances"
)

// LedgerRepository persists the transaction log and balance records in
// MongoDB. A per-account monotonic sequence number preserves insertion order.
type LedgerRepository struct {
	transactions *mongo.Collection
	balances     *mongo.Collection
}

func NewLedgerRepository(db *mongo.Database) *LedgerRepository {
	return &LedgerRepository{
		transactions: db.Collection(transactionsCollection),
		balances:     db.Collection(balancesCollection),
	}
}

type mongoTransaction struct {
	ID         string           `bson:"_id"`
	AccountID  string           `bson:"account_id"`
	Seq        int64            `bson:"seq"`
	Type       string           `bson:"type"`
	Amount     string           `bson:"amount"`
	Category   string           `bson:"category"`
	Reason     string           `bson:"reason"`
	Date       time.Time        `bson:"date"`
	Document   *domain.Document `bson:"receipt,omitempty"`
	RecordedAt time.Time        `bson:"recorded_at"`
}

type mongoBalance struct {
	AccountID   string    `bson:"_id"`
	Current     string    `bson:"current_balance"`
	LastUpdated time.Time `bson:"last_updated"`
}

func (r *LedgerRepository) AppendTransaction(ctx context.Context, tx *domain.Transaction) error {
	seq, err := r.nextSeq(ctx, tx.AccountID)
	if err != nil {
		return err
	}

	doc := mongoTransaction{
		ID:         tx.ID,
		AccountID:  tx.AccountID,
		Seq:        seq,
		Type:       string(tx.Type),
		Amount:     tx.Amount.String(),
		Category:   string(tx.Category),
		Reason:     tx.Reason,
		Date:       tx.Date.UTC(),
		Document:   tx.Document,
		RecordedAt: tx.RecordedAt.UTC(),
	}
	if _, err := r.transactions.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *LedgerRepository) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.transactions.Find(ctx, bson.M{"account_id": accountID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoTransaction
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(docs))
	for _, doc := range docs {
		amount, err := decimal.NewFromString(doc.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: parse amount: %w", doc.ID, err)
		}
		txs = append(txs, domain.Transaction{
			ID:         doc.ID,
			AccountID:  doc.AccountID,
			Type:       domain.TransactionType(doc.Type),
			Amount:     amount,
			Category:   domain.Category(doc.Category),
			Reason:     doc.Reason,
			Date:       doc.Date.UTC(),
			Document:   doc.Document,
			RecordedAt: doc.RecordedAt.UTC(),
		})
	}
	return txs, nil
}

func (r *LedgerRepository) GetBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	var doc mongoBalance
	if err := r.balances.FindOne(ctx, bson.M{"_id": accountID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBalanceNotFound
		}
		return nil, fmt.Errorf("find balance: %w", err)
	}

	current, err := decimal.NewFromString(doc.Current)
	if err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}
	return &domain.Balance{
		AccountID:   doc.AccountID,
		Current:     current,
		LastUpdated: doc.LastUpdated.UTC(),
	}, nil
}

func (r *LedgerRepository) PutBalance(ctx context.Context, balance domain.Balance) error {
	doc := mongoBalance{
		AccountID:   balance.AccountID,
		Current:     balance.Current.String(),
		LastUpdated: balance.LastUpdated.UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.balances.ReplaceOne(ctx, bson.M{"_id": balance.AccountID}, doc, opts); err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

// nextSeq returns one past the highest sequence number for the account.
// Single-writer by design, so read-then-insert is safe here.
func (r *LedgerRepository) nextSeq(ctx context.Context, accountID string) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "seq", Value: -1}})
	var last mongoTransaction
	err := r.transactions.FindOne(ctx, bson.M{"account_id": accountID}, opts).Decode(&last)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 1, nil
		}
		return 0, fmt.Errorf("find last transaction: %w", err)
	}
	return last.Seq + 1, nil
}
