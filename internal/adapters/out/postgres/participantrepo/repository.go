package participantrepo

import (
	"context"
	"errors"

	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormParticipantRepository implements ports.ParticipantRepository using GORM.
type GormParticipantRepository struct {
	db *gorm.DB
}

func NewGormParticipantRepository(db *gorm.DB) *GormParticipantRepository {
	return &GormParticipantRepository{db: db}
}

func (r *GormParticipantRepository) Add(ctx context.Context, actor *participant.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	dto := actorFromDomain(actor)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("participant", actor.Ref().String(), err)
		}
		return err
	}
	return nil
}

func (r *GormParticipantRepository) Lookup(ctx context.Context, ref participant.ActorRef) (*participant.Actor, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND role = ?", ref.ID.String(), ref.Role.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(ref.Role.String(), ref.ID.String())
		}
		return nil, err
	}

	return actorToDomain(dto)
}

func (r *GormParticipantRepository) AddSatellite(ctx context.Context, satellite *participant.Satellite) error {
	if err := satellite.Validate(); err != nil {
		return err
	}

	dto := satelliteFromDomain(satellite)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("satellite", satellite.ID().String(), err)
		}
		return err
	}
	return nil
}

func (r *GormParticipantRepository) GetSatellite(ctx context.Context, id kernel.ParticipantID) (*participant.Satellite, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SatelliteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("satellite", id.String())
		}
		return nil, err
	}

	return satelliteToDomain(dto)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
