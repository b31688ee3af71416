package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrFacilityNotFound = errors.New("facility not found")
)

type HospitalProfileUsecase interface {
	GetProfile(ctx context.Context) (*dto.HospitalProfileResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateHospitalProfileRequest) (*dto.HospitalProfileResponse, error)
	ToggleFacility(ctx context.Context, facilityID string) (*dto.HospitalProfileResponse, error)
	ListFacilities(ctx context.Context) (*dto.FacilityListResponse, error)
}

type hospitalProfileUsecase struct {
	mu           sync.Mutex
	log          *logrus.Logger
	profileRepo  repository.HospitalProfileRepository
	auditService service.AuditService
	facilities   []entity.Facility
	saveDelay    time.Duration
}

// NewHospitalProfileUsecase serves the profile against a fixed facility
// catalog. Each save waits saveDelay first; the wait ends early when the
// request context is cancelled.
func NewHospitalProfileUsecase(
	log *logrus.Logger,
	profileRepo repository.HospitalProfileRepository,
	auditService service.AuditService,
	facilities []entity.Facility,
	saveDelay time.Duration,
) HospitalProfileUsecase {
	return &hospitalProfileUsecase{
		log:          log,
		profileRepo:  profileRepo,
		auditService: auditService,
		facilities:   facilities,
		saveDelay:    saveDelay,
	}
}

func (u *hospitalProfileUsecase) GetProfile(ctx context.Context) (*dto.HospitalProfileResponse, error) {
	profile, err := u.profileRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to get hospital profile: %+v", err)
		return nil, err
	}

	return converter.HospitalProfileToResponse(profile), nil
}

func (u *hospitalProfileUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateHospitalProfileRequest) (*dto.HospitalProfileResponse, error) {
	if req.Facilities != nil {
		for _, id := range *req.Facilities {
			if !u.isKnownFacility(id) {
				return nil, ErrFacilityNotFound
			}
		}
	}

	return u.save(ctx, entity.AuditActionProfileUpdate, func(p entity.HospitalProfile) entity.HospitalProfile {
		return converter.ApplyHospitalProfileUpdate(p, req)
	})
}

// ToggleFacility adds the facility when absent and removes it when present
func (u *hospitalProfileUsecase) ToggleFacility(ctx context.Context, facilityID string) (*dto.HospitalProfileResponse, error) {
	if !u.isKnownFacility(facilityID) {
		return nil, ErrFacilityNotFound
	}

	return u.save(ctx, entity.AuditActionProfileFacility, func(p entity.HospitalProfile) entity.HospitalProfile {
		if !p.HasFacility(facilityID) {
			p.Facilities = append(p.Facilities, facilityID)
			return p
		}
		kept := make([]string, 0, len(p.Facilities))
		for _, f := range p.Facilities {
			if f != facilityID {
				kept = append(kept, f)
			}
		}
		p.Facilities = kept
		return p
	})
}

func (u *hospitalProfileUsecase) ListFacilities(ctx context.Context) (*dto.FacilityListResponse, error) {
	profile, err := u.profileRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to get hospital profile: %+v", err)
		return nil, err
	}

	return &dto.FacilityListResponse{
		Facilities: converter.FacilitiesToResponses(u.facilities, profile),
		Total:      len(u.facilities),
	}, nil
}

func (u *hospitalProfileUsecase) save(ctx context.Context, action string, apply func(entity.HospitalProfile) entity.HospitalProfile) (*dto.HospitalProfileResponse, error) {
	if u.saveDelay > 0 {
		timer := time.NewTimer(u.saveDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	old, err := u.profileRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to get hospital profile: %+v", err)
		return nil, err
	}

	updated := apply(old.Clone())
	if err := u.profileRepo.Save(ctx, &updated); err != nil {
		u.log.Warnf("Failed to save hospital profile: %+v", err)
		return nil, err
	}

	res := converter.HospitalProfileToResponse(&updated)
	if err := u.auditService.LogUpdate(ctx, action, "hospital_profile", "profile", converter.HospitalProfileToResponse(old), res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Info("Hospital profile saved")
	return res, nil
}

func (u *hospitalProfileUsecase) isKnownFacility(id string) bool {
	for _, f := range u.facilities {
		if f.ID == id {
			return true
		}
	}
	return false
}
