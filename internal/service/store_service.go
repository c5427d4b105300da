package service

import (
	"go-printpos-ws/internal/model"
	"go-printpos-ws/internal/repository"
	"go-printpos-ws/internal/ws"
)

type StoreService interface {
	Get() (*model.StoreSettings, error)
	Update(req *StoreSettingsRequest, actor Actor) (*model.StoreSettings, error)
}

// StoreSettingsRequest updates only the fields the client sends.
type StoreSettingsRequest struct {
	StoreName    *string `json:"store_name"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	ReceiptNotes *string `json:"receipt_notes"`
	LogoURL      *string `json:"logo_url"`
}

type storeService struct {
	storeRepo repository.StoreSettingsRepository
	wsHub     *ws.Hub
	appID     string
}

func NewStoreService(storeRepo repository.StoreSettingsRepository, hub *ws.Hub, appID string) StoreService {
	return &storeService{
		storeRepo: storeRepo,
		wsHub:     hub,
		appID:     appID,
	}
}

func (s *storeService) Get() (*model.StoreSettings, error) {
	return s.storeRepo.Get()
}

func (s *storeService) Update(req *StoreSettingsRequest, actor Actor) (*model.StoreSettings, error) {
	fields := map[string]interface{}{
		"updated_by": actor.UserID,
	}
	if req.StoreName != nil {
		fields["store_name"] = *req.StoreName
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.ReceiptNotes != nil {
		fields["receipt_notes"] = *req.ReceiptNotes
	}
	if req.LogoURL != nil {
		fields["logo_url"] = *req.LogoURL
	}

	settings, err := s.storeRepo.Update(fields)
	if err != nil {
		return nil, err
	}

	go s.wsHub.NotifyCollection(s.appID, "storeSettings", "settings_updated", settings)

	return settings, nil
}
