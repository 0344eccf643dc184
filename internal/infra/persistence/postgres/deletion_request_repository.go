package postgres

import (
	"context"
	"time"

	"clubrelay/internal/domain/entity"
	domainerrors "clubrelay/internal/domain/errors"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type deletionRequestRepository struct {
	db *gorm.DB
}

// NewDeletionRequestRepository is the constructor for deletionRequestRepository.
func NewDeletionRequestRepository(db *gorm.DB) repository.DeletionRequestRepository {
	return &deletionRequestRepository{db: db}
}

// Create inserts a new request. The partial unique index on active requests
// surfaces as ErrDuplicateActiveRequest.
func (repo *deletionRequestRepository) Create(ctx context.Context, req *entity.DeletionRequest) error {
	reqM := fromDeletionRequestDomain(req)
	if reqM.ID == uuid.Nil {
		reqM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActiveRequest
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create deletion request")
	}

	*req = *toDeletionRequestDomain(reqM)

	return nil
}

func (repo *deletionRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeletionRequest, error) {
	var reqM model.DeletionRequestModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeletionRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find deletion request")
	}

	return toDeletionRequestDomain(&reqM), nil
}

func (repo *deletionRequestRepository) FindActiveByUser(ctx context.Context, userID string) (*entity.DeletionRequest, error) {
	var reqM model.DeletionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, statusStrings(entity.ActiveDeletionStatuses)).
		First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeletionRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find active deletion request")
	}

	return toDeletionRequestDomain(&reqM), nil
}

// FindDue returns pending requests whose timer has elapsed, oldest first.
func (repo *deletionRequestRepository) FindDue(ctx context.Context, now time.Time) ([]*entity.DeletionRequest, error) {
	var reqModels []*model.DeletionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND auto_delete_at <= ?", string(entity.DeletionStatusPending), now).
		Order("auto_delete_at ASC").
		Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due deletion requests")
	}

	reqs := make([]*entity.DeletionRequest, 0, len(reqModels))
	for _, reqM := range reqModels {
		reqs = append(reqs, toDeletionRequestDomain(reqM))
	}

	return reqs, nil
}

// Transition runs a single conditional UPDATE. When no row matches it reads the
// request back to tell a missing row from a rejected source status.
func (repo *deletionRequestRepository) Transition(
	ctx context.Context,
	id uuid.UUID,
	t entity.DeletionTransition,
) (*entity.DeletionRequest, error) {
	updates := map[string]any{
		"status":     string(t.To),
		"updated_at": time.Now().UTC(),
	}
	if t.AutoDeleteAt != nil {
		updates["auto_delete_at"] = *t.AutoDeleteAt
	}
	if t.ResolvedAt != nil {
		updates["resolved_at"] = *t.ResolvedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeletionRequestModel{}).
		Where("id = ? AND status IN ?", id, statusStrings(t.From)).
		Updates(updates)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update deletion request")
	}

	current, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected == 0 {
		return current, repository.ErrTransitionRejected
	}

	return current, nil
}

func statusStrings(statuses []entity.DeletionStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}

	return out
}

// --- Mapper Functions ---

func toDeletionRequestDomain(data *model.DeletionRequestModel) *entity.DeletionRequest {
	if data == nil {
		return nil
	}

	return &entity.DeletionRequest{
		ID:           data.ID,
		UserID:       data.UserID,
		Status:       entity.DeletionStatus(data.Status),
		Reason:       data.Reason,
		RequestedAt:  data.RequestedAt,
		AutoDeleteAt: data.AutoDeleteAt,
		ResolvedAt:   data.ResolvedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromDeletionRequestDomain(data *entity.DeletionRequest) *model.DeletionRequestModel {
	if data == nil {
		return nil
	}

	return &model.DeletionRequestModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Status:       string(data.Status),
		Reason:       data.Reason,
		RequestedAt:  data.RequestedAt,
		AutoDeleteAt: data.AutoDeleteAt,
		ResolvedAt:   data.ResolvedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
