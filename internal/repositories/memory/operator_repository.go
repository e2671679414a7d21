package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type operatorRepository struct {
	store *Store
}

func (r *operatorRepository) FindByEmail(_ context.Context, email string) (*models.Operator, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	operator, ok := r.store.operators[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	c := *operator
	return &c, nil
}

func (r *operatorRepository) Create(_ context.Context, operator *models.Operator) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.operators[operator.Email]; ok {
		return fmt.Errorf("operator %s already exists", operator.Email)
	}
	operator.ID = primitive.NewObjectID()
	operator.CreatedAt = time.Now()
	operator.UpdatedAt = operator.CreatedAt
	c := *operator
	r.store.operators[operator.Email] = &c
	return nil
}
