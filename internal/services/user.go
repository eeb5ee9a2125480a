package services

import (
	"context"

	"github.com/yungbote/truthlens-backend/internal/analysis"
	"github.com/yungbote/truthlens-backend/internal/ident"
	"github.com/yungbote/truthlens-backend/internal/platform/logger"
	"github.com/yungbote/truthlens-backend/internal/store"
)

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*analysis.User, error)
	Get(ctx context.Context, id string) (*analysis.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type userService struct {
	docs store.Store
	log  *logger.Logger
}

func NewUserService(docs store.Store, log *logger.Logger) UserService {
	return &userService{
		docs: docs,
		log:  log.With("service", "UserService"),
	}
}

func (us *userService) Create(ctx context.Context, input CreateUserInput) (*analysis.User, error) {
	user := &analysis.User{
		ID:            ident.MakeID(string(store.KindUser)),
		AccountID:     input.AccountID,
		Name:          input.Name,
		Email:         input.Email,
		WalletAddress: input.WalletAddress,
		CreatedAt:     ident.NowISO(),
	}
	if err := saveDoc(ctx, us.docs, store.KindUser, user.ID, user); err != nil {
		return nil, err
	}
	us.log.Debug("user created", "user_id", user.ID)
	return user, nil
}

func (us *userService) Get(ctx context.Context, id string) (*analysis.User, error) {
	return getDoc[analysis.User](ctx, us.docs, store.KindUser, id)
}

func (us *userService) Delete(ctx context.Context, id string) (bool, error) {
	return us.docs.Delete(ctx, store.KindUser, id)
}
